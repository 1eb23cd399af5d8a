package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestReopenableWriteSyncer_WriteAndReload(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "monitor.log")
	rotatedPath := filepath.Join(tempDir, "monitor.log.1")

	ws, err := NewReopenableWriteSyncer(logPath)
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.Write([]byte("before rotate\n"))
	require.NoError(t, err)

	require.NoError(t, os.Rename(logPath, rotatedPath))
	require.NoError(t, ws.Reload())

	_, err = ws.Write([]byte("after rotate\n"))
	require.NoError(t, err)
	ws.Sync()

	rotated, err := os.ReadFile(rotatedPath)
	require.NoError(t, err)
	assert.Equal(t, "before rotate\n", string(rotated))

	current, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "after rotate\n", string(current))
}

func TestNewReopenableWriteSyncer_PathIsDirectory(t *testing.T) {
	ws, err := NewReopenableWriteSyncer(t.TempDir())
	assert.Error(t, err)
	assert.Nil(t, ws)
}

func TestNewLogger_Levels(t *testing.T) {
	ws, err := NewReopenableWriteSyncer(os.DevNull)
	require.NoError(t, err)
	defer ws.Close()

	testCases := []struct {
		name          string
		logLevel      string
		expectedLevel zapcore.Level
	}{
		{"debug level", "debug", zap.DebugLevel},
		{"info level", "info", zap.InfoLevel},
		{"warn level", "warn", zap.WarnLevel},
		{"error level", "error", zap.ErrorLevel},
		{"invalid level", "loud", zap.InfoLevel},
		{"empty level", "", zap.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogger(tc.logLevel, ws)
			require.NotNil(t, logger)
			assert.True(t, logger.Core().Enabled(tc.expectedLevel))
		})
	}
}
