package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Source   SourceConfig      `yaml:"source"`
	Output   OutputConfig      `yaml:"output"`
	Manifest ManifestConfig    `yaml:"manifest"`
	Convert  ConvertConfig     `yaml:"convert"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Source.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Convert.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// SourceConfig holds the path to the Tomboy note directory.
type SourceConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the source configuration.
func (c *SourceConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// OutputConfig holds the target Zim notebook settings.
type OutputConfig struct {
	Path string `yaml:"path"`
	// Name is written into notebook.zim.
	Name string `yaml:"name"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Name, validation.Required),
	)
}

// ManifestConfig holds the conversion manifest database path. An empty path
// disables incremental conversion.
type ManifestConfig struct {
	Path string `yaml:"path"`
}

// ConvertConfig holds conversion behavior settings.
type ConvertConfig struct {
	// Workers bounds how many notes convert in parallel. Notes are
	// independent; each single conversion is sequential.
	Workers int  `yaml:"workers"`
	Force   bool `yaml:"force"`
	Watch   bool `yaml:"watch"`
}

// Validate validates the conversion configuration.
func (c *ConvertConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Workers, validation.Required, validation.Min(1), validation.Max(64)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Source: SourceConfig{
			Path: "./notes",
		},
		Output: OutputConfig{
			Path: "./notebook",
			Name: "Notes",
		},
		Manifest: ManifestConfig{
			Path: "./zim-import.db",
		},
		Convert: ConvertConfig{
			Workers: 4,
		},
	}
}
