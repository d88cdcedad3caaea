package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBufferedLogger(t *testing.T) {
	log := New()
	log.Debug("[f] first", zap.Int("n", 1))
	log.Info("second")

	lines := log.Logs()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[f] first")
	assert.Contains(t, lines[0], "DEBUG")
	assert.Contains(t, lines[0], `{"n": 1}`)
	assert.Contains(t, lines[1], "INFO")

	log.ClearLogs()
	assert.Empty(t, log.Logs())

	log.Named("sub").Warn("third")
	lines = log.Logs()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "sub")
}

func TestWriterLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, zapcore.InfoLevel, false)
	log.Debug("hidden")
	log.Info("shown")
	require.NoError(t, log.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Nil(t, log.Logs())
}

func TestColorLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, zapcore.DebugLevel, true)
	log.Warn("careful")
	assert.Contains(t, buf.String(), "\033[33mWARN\033[0m")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("dropped")
	assert.Nil(t, log.Logs())
	log.ClearLogs()
}
