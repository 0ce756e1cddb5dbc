package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"namebot/internal/logger"
)

func TestNew_DefaultsToJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	log.Info("hello", "session", "1:2")
	log.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "INFO", entry["level"])
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "1:2", entry["session"])
}

func TestNew_DevelopmentIsTextAtDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("development", "namebot"))
	log.Debug("visible")

	out := buf.String()
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, "msg=visible")
	require.Contains(t, out, "service=namebot")
}

func TestNew_OptionsOverrideEnvironment(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithEnvironment("development", "namebot"),
		logger.WithFormat(logger.FormatJSON),
		logger.WithLevel(slog.LevelWarn),
	)
	log.Info("dropped")
	log.Warn("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "kept", entry["msg"])
	require.Equal(t, "development", entry["env"])
}

func TestParseLevel(t *testing.T) {
	l, err := logger.ParseLevel("DEBUG")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, l)

	l, err = logger.ParseLevel("warn")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, l)

	_, err = logger.ParseLevel("loud")
	require.Error(t, err)
}
