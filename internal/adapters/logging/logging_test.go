package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, level)

	level, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)

	_, err = ParseLevel("loud")
	require.Error(t, err)
	assert.ErrorContains(t, err, `parse log level "loud"`)
}

func TestNewFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	require.NoError(t, err)

	logger.Info("request sent", "path", "health")
	logger.Warn("request failed", "status", 502)

	output := buf.String()
	assert.NotContains(t, output, "request sent")
	assert.Contains(t, output, "request failed")
	assert.Contains(t, output, "status=502")
}

func TestOpenFileWritesJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "mlp.log")
	logger, closeFile, err := OpenFile(path, "debug")
	require.NoError(t, err)

	logger.Debug("action failed", "action", "train")
	require.NoError(t, closeFile())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"action failed"`)
	assert.Contains(t, string(data), `"action":"train"`)
}

func TestFanoutDeliversToEnabledHandlers(t *testing.T) {
	t.Parallel()

	var debugBuf, warnBuf bytes.Buffer
	logger := slog.New(Fanout{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}).With("component", "rest")

	logger.Debug("detail")
	logger.Warn("problem")

	assert.Contains(t, debugBuf.String(), "detail")
	assert.Contains(t, debugBuf.String(), "problem")
	assert.NotContains(t, warnBuf.String(), "detail")
	assert.Contains(t, warnBuf.String(), "component=rest")

	assert.False(t, Fanout{}.Enabled(context.Background(), slog.LevelError))
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
