package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	perrors "git.home.luguber.info/inful/phonedir/internal/foundation/errors"
	"git.home.luguber.info/inful/phonedir/internal/logfields"
)

// Environment variables recognized by applyEnv.
const (
	EnvFormat      = "PHONEDIR_FORMAT"
	EnvLogLevel    = "PHONEDIR_LOG_LEVEL"
	EnvLogFormat   = "PHONEDIR_LOG_FORMAT"
	EnvWarnOnSkip  = "PHONEDIR_WARN_ON_SKIP"
	EnvFoldWidth   = "PHONEDIR_FOLD_WIDTH"
	EnvMetricsFile = "PHONEDIR_METRICS_FILE"
)

// envFiles are loaded in order. godotenv never overwrites a variable that
// is already set, so earlier files take precedence.
var envFiles = []string{".env.local", ".env"}

// loadEnvFiles loads every env file that exists. Variables already present
// in the process environment are never overwritten.
func loadEnvFiles() error {
	for _, name := range envFiles {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return perrors.ConfigError("load env file").WithCause(err).
				WithContext("path", name).
				Build()
		}
		slog.Debug("Loaded env file", logfields.Path(name))
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookupEnv(EnvFormat); ok {
		c.Output.Format = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvMetricsFile); ok {
		c.Metrics.Textfile = v
	}
	if err := envBool(EnvWarnOnSkip, &c.Logging.WarnOnSkip); err != nil {
		return err
	}
	return envBool(EnvFoldWidth, &c.Normalize.FoldWidth)
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func envBool(key string, dst *bool) error {
	v, ok := lookupEnv(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return perrors.ConfigError("invalid boolean environment variable").WithCause(err).
			WithContext("variable", key).
			WithContext("value", v).
			Build()
	}
	*dst = b
	return nil
}
