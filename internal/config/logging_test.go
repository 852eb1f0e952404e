package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":         LogLevelInfo,
		"DEBUG":    LogLevelDebug,
		" warning": LogLevelWarn,
		"error":    LogLevelError,
		"Verbose":  LogLevel("verbose"),
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeLogLevel(raw), "raw=%q", raw)
	}
	assert.Equal(t, slog.LevelWarn, LogLevelWarn.Slog())
	assert.Equal(t, slog.LevelInfo, LogLevel("bogus").Slog())
}

func TestNormalizeLogFormat(t *testing.T) {
	assert.Equal(t, LogFormatText, NormalizeLogFormat(""))
	assert.Equal(t, LogFormatJSON, NormalizeLogFormat("JSON"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat("txt"))
	assert.Equal(t, LogFormat("xml"), NormalizeLogFormat("xml"))
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	LoggingConfig{Format: "json"}.NewLogger(&buf, slog.LevelInfo).Info("hello", "k", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])

	buf.Reset()
	LoggingConfig{}.NewLogger(&buf, slog.LevelWarn).Info("hidden")
	assert.Empty(t, buf.String())
}

func TestLoad_LogFormat(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLogFormat, "JSON")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logging.Format)

	t.Setenv(EnvLogFormat, "xml")
	_, err = Load("")
	require.Error(t, err)
}
