package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coderank/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func reset(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { _ = Sync() })
}

func TestGetBeforeInitializeIsNoop(t *testing.T) {
	reset(t)
	l := Get(CategoryBoot)
	require.NotNil(t, l)
	l.Info("dropped")
	assert.Same(t, l, Get(CategoryBoot))
}

func TestInitializeConsoleFallback(t *testing.T) {
	reset(t)
	var buf bytes.Buffer
	require.NoError(t, Initialize(config.LoggingConfig{Level: "info", Format: "console"}, zapcore.AddSync(&buf)))

	Get(CategoryFetch).Debug("hidden")
	Get(CategoryFetch).Info("Leaderboard loaded", zap.Int("rows", 3))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "fetch")
	assert.Contains(t, out, "Leaderboard loaded")
	assert.Contains(t, out, `"rows": 3`)
}

func TestInitializeJSONAndLevel(t *testing.T) {
	reset(t)
	var buf bytes.Buffer
	require.NoError(t, Initialize(config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.AddSync(&buf)))
	assert.Equal(t, zapcore.WarnLevel, Level())

	Get(CategoryUI).Info("skipped")
	Get(CategoryUI).Warn("resize", zap.Int("width", 640))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "ui", entry["logger"])
	assert.Equal(t, "resize", entry["msg"])
	assert.EqualValues(t, 640, entry["width"])
}

func TestInitializeFile(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "logs", "coderank.log")
	require.NoError(t, Initialize(config.LoggingConfig{Level: "debug", Format: "console", File: path}, nil))

	Get(CategoryCLI).Info("print rendered")
	require.NoError(t, Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "print rendered")
}

func TestInitializeNilFallbackDiscards(t *testing.T) {
	reset(t)
	require.NoError(t, Initialize(config.LoggingConfig{Level: "debug", Format: "console"}, nil))
	assert.False(t, Get(CategoryUI).Core().Enabled(zapcore.ErrorLevel))
}

func TestInitializeRejectsBadLevel(t *testing.T) {
	reset(t)
	assert.Error(t, Initialize(config.LoggingConfig{Level: "chatty"}, nil))
}
