package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/arcshelf/internal/config"
)

func TestOpen_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "arcshelf.log")

	logger, closer, err := Open(config.LogConfig{File: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug("carousel phase", "to", "sliding")
	logger.Info("catalog loaded", "albums", 7)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "carousel phase")
	assert.Contains(t, string(data), "albums=7")
}

func TestOpen_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcshelf.log")

	logger, closer, err := Open(config.LogConfig{File: path, Level: "warn"})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestOpen_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcshelf.log")
	for _, msg := range []string{"first run", "second run"} {
		logger, closer, err := Open(config.LogConfig{File: path})
		require.NoError(t, err)
		logger.Info(msg)
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestOpen_BadLevelStillLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcshelf.log")

	logger, closer, err := Open(config.LogConfig{File: path, Level: "chatty"})
	require.Error(t, err)
	require.NotNil(t, logger)
	defer closer.Close()
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

func TestOpen_NoFile(t *testing.T) {
	logger, closer, err := Open(config.LogConfig{})
	require.NoError(t, err)
	logger.Error("dropped")
	assert.NoError(t, closer.Close())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{"error", log.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
