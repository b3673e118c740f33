package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/mikem23/zim-import-tomboy/internal"
	pkgconfig "github.com/mikem23/zim-import-tomboy/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()

	if configPath := cmd.String("config"); configPath != "" {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Flags override file settings.
	if v := cmd.String("source"); v != "" {
		cfg.Source.Path = v
	}
	if v := cmd.String("output"); v != "" {
		cfg.Output.Path = v
	}
	if cmd.Bool("force") {
		cfg.Convert.Force = true
	}
	if cmd.Bool("watch") {
		cfg.Convert.Watch = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "zim-import-tomboy",
		Usage:  "Convert a directory of Tomboy/Gnote notes into a Zim wiki notebook",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "Tomboy note directory",
				Sources: cli.EnvVars("TOMBOY_DIR"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Zim notebook directory to create",
				Sources: cli.EnvVars("ZIM_NOTEBOOK_DIR"),
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Reconvert notes even when the manifest says they are unchanged",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Keep running and reconvert notes as they change",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
