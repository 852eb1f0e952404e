package config

import (
	"io"
	"log/slog"

	"git.home.luguber.info/inful/phonedir/internal/foundation/normalization"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer("log level", map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
})

// NormalizeLogLevel resolves raw to a LogLevel, falling back to info for
// empty input. Unknown values are returned cleaned so validation can
// report them.
func NormalizeLogLevel(raw string) LogLevel {
	if lvl, ok := logLevelNormalizer.Lookup(raw); ok {
		return lvl
	}
	if cleaned := normalization.Clean(raw); cleaned != "" {
		return LogLevel(cleaned)
	}
	return LogLevelInfo
}

// Slog maps the level to its slog equivalent.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer("log format", map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
	"txt":  LogFormatText,
})

// NormalizeLogFormat resolves raw to a LogFormat with text as the fallback
// for empty input.
func NormalizeLogFormat(raw string) LogFormat {
	if f, ok := logFormatNormalizer.Lookup(raw); ok {
		return f
	}
	if cleaned := normalization.Clean(raw); cleaned != "" {
		return LogFormat(cleaned)
	}
	return LogFormatText
}

// NewLogger builds a slog logger writing to w in the configured format.
func (l LoggingConfig) NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if NormalizeLogFormat(l.Format) == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
