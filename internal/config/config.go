// Package config loads phonedir settings from an optional YAML file, .env
// files and PHONEDIR_* environment variables.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
)

// DefaultPath is the config file looked up when no path is given.
const DefaultPath = "phonedir.yaml"

// Config represents the application configuration.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
	Normalize NormalizeConfig `yaml:"normalize"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// OutputConfig selects how the sorted directory is written.
type OutputConfig struct {
	Format string `yaml:"format" validate:"output_format"`
}

// LoggingConfig controls diagnostics on stderr.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
	// WarnOnSkip logs dropped entries at warn level instead of debug.
	WarnOnSkip bool `yaml:"warn_on_skip"`
}

// NormalizeConfig tunes number normalization.
type NormalizeConfig struct {
	FoldWidth bool `yaml:"fold_width"`
}

// MetricsConfig enables the Prometheus textfile dump.
type MetricsConfig struct {
	Textfile string `yaml:"textfile" validate:"omitempty,filepath"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Output:  OutputConfig{Format: "text"},
		Logging: LoggingConfig{Level: string(LogLevelInfo), Format: string(LogFormatText)},
	}
}

// Load builds the effective configuration. When path is empty DefaultPath
// is used if it exists; an explicitly named file must exist.
// Environment variables (including those from .env files) override file values.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if err := cfg.mergeFile(path, explicit); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return perrors.ConfigError("read configuration file").WithCause(err).
			WithContext("path", path).
			Build()
	}

	expanded := os.ExpandEnv(string(data))
	dec := yaml.NewDecoder(strings.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return perrors.ConfigError("parse configuration file").WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}

func (c *Config) normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	c.Logging.Level = string(NormalizeLogLevel(c.Logging.Level))
	c.Logging.Format = string(NormalizeLogFormat(c.Logging.Format))
}

// SlogLevel maps Logging.Level to a slog level.
func (c *Config) SlogLevel() slog.Level {
	return LogLevel(c.Logging.Level).Slog()
}

// Init writes a commented default configuration to path.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return perrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	var buf bytes.Buffer
	buf.WriteString("# phonedir configuration\n")
	buf.WriteString("# Environment variables PHONEDIR_FORMAT, PHONEDIR_LOG_LEVEL, PHONEDIR_LOG_FORMAT,\n")
	buf.WriteString("# PHONEDIR_WARN_ON_SKIP, PHONEDIR_FOLD_WIDTH and PHONEDIR_METRICS_FILE override these values.\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Default()); err != nil {
		return perrors.InternalError("encode default configuration").WithCause(err).Build()
	}
	if err := enc.Close(); err != nil {
		return perrors.InternalError("encode default configuration").WithCause(err).Build()
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return perrors.FileSystemError("write configuration file").WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
