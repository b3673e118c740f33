// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikem23/zim-import-tomboy/internal/convert"
	"github.com/mikem23/zim-import-tomboy/internal/manifest"
	"github.com/mikem23/zim-import-tomboy/internal/resolve"
	"github.com/mikem23/zim-import-tomboy/internal/storage"
	"github.com/mikem23/zim-import-tomboy/internal/tomboy"
	"github.com/mikem23/zim-import-tomboy/internal/watch"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := app.logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.App.LogLevel,
		}))
		slog.SetDefault(logger)
	}

	logger.Info("Configuration loaded",
		slog.String("source_path", cfg.Source.Path),
		slog.String("output_path", cfg.Output.Path),
		slog.String("manifest_path", cfg.Manifest.Path),
		slog.Int("workers", cfg.Convert.Workers),
		slog.String("log_level", cfg.App.LogLevel.String()))

	notebook, err := storage.NewNotebook(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("init notebook: %w", err)
	}

	var db *manifest.DB
	if cfg.Manifest.Path != "" {
		db, err = manifest.Open(cfg.Manifest.Path)
		if err != nil {
			return fmt.Errorf("init manifest: %w", err)
		}
		defer db.Close()
	}

	imp := &importer{cfg: cfg, logger: logger, notebook: notebook, db: db}

	if err := imp.importAll(ctx); err != nil {
		return err
	}

	if !cfg.Convert.Watch {
		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watch.Watch(gCtx, cfg.Source.Path, logger, func(paths []string) {
			logger.Info("re-importing after change", slog.Int("changed", len(paths)))
			if err := imp.importAll(gCtx); err != nil {
				logger.Error("re-import failed", slog.String("error", err.Error()))
			}
		})
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
		}
		return context.Canceled
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("Importer stopped")
	return nil
}

// importer drives one full conversion pass over the source directory.
type importer struct {
	cfg      *Config
	logger   *slog.Logger
	notebook *storage.Notebook
	db       *manifest.DB // nil disables incremental conversion
}

// importAll scans the source directory, assigns page names corpus-wide and
// converts every note, in parallel up to the configured worker bound. Notes
// whose checksum matches the manifest are skipped unless force is set.
// Per-note failures are reported and counted, never papered over with
// partial output.
func (imp *importer) importAll(ctx context.Context) error {
	paths, err := tomboy.ListNotes(imp.cfg.Source.Path)
	if err != nil {
		return err
	}

	var notes []*tomboy.Note
	sums := make(map[string]string, len(paths))
	var failed atomic.Int64

	for _, path := range paths {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			imp.logger.Warn("read failed", slog.String("path", path), slog.String("error", readErr.Error()))
			failed.Add(1)
			continue
		}
		note, parseErr := tomboy.Parse(data)
		if parseErr != nil {
			imp.logger.Warn("parse failed", slog.String("path", path), slog.String("error", parseErr.Error()))
			failed.Add(1)
			continue
		}
		note.Path = path
		if note.IsTemplate() {
			imp.logger.Debug("skipping template", slog.String("path", path))
			continue
		}
		notes = append(notes, note)
		sums[path] = manifest.Checksum(data)
	}

	names := resolve.AssignNames(notes)

	stored := map[string]string{}
	if imp.db != nil {
		if stored, err = imp.db.AllChecksums(); err != nil {
			return err
		}
	}

	var converted, skipped atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(imp.cfg.Convert.Workers)
	for _, note := range notes {
		note := note
		g.Go(func() error {
			if gCtx.Err() != nil {
				return gCtx.Err()
			}
			cs := sums[note.Path]
			if imp.db != nil && !imp.cfg.Convert.Force && stored[note.Path] == cs {
				skipped.Add(1)
				return nil
			}
			if err := imp.importOne(note, names, cs); err != nil {
				imp.logger.Warn("conversion failed",
					slog.String("path", note.Path),
					slog.String("title", note.Title),
					slog.String("error", err.Error()))
				failed.Add(1)
				return nil
			}
			converted.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Remove manifest entries whose source note is gone.
	for p := range stored {
		if _, ok := sums[p]; ok {
			continue
		}
		if imp.db != nil {
			if delErr := imp.db.Delete(p); delErr != nil {
				imp.logger.Warn("stale delete failed", slog.String("path", p), slog.String("error", delErr.Error()))
			} else {
				imp.logger.Debug("removed stale manifest entry", slog.String("path", p))
			}
		}
	}

	if err := imp.notebook.WriteNotebookFile(imp.cfg.Output.Name); err != nil {
		return err
	}

	imp.logger.Info("Import finished",
		slog.Int64("converted", converted.Load()),
		slog.Int64("skipped", skipped.Load()),
		slog.Int64("failed", failed.Load()))

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d notes failed", n, len(paths))
	}
	return nil
}

// importOne converts a single note and persists its page.
func (imp *importer) importOne(note *tomboy.Note, names *resolve.Names, cs string) error {
	text, err := convert.Page(note, names)
	if err != nil {
		return err
	}

	page := names.Page(note.Path)
	file := resolve.FileName(page)
	if err := imp.notebook.WritePage(file, []byte(text)); err != nil {
		return err
	}
	if err := imp.notebook.Touch(file, note.Modified); err != nil {
		return err
	}

	imp.logger.Debug("converted", slog.String("path", note.Path), slog.String("page", page))

	if imp.db == nil {
		return nil
	}
	return imp.db.Upsert(manifest.Row{
		Path:        note.Path,
		Title:       note.Title,
		Page:        page,
		Checksum:    cs,
		ConvertedAt: time.Now().UTC(),
	})
}
