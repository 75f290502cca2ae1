package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")

	err := Init(Config{Debug: false, DataDir: dataDir})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dataDir, "logs"))
	assert.NoError(t, err, "log directory should be created")
	require.NotNil(t, Logger)

	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message", "key", "goals")
	Error("Test error message")
}

func TestInitDebugMode(t *testing.T) {
	err := Init(Config{Debug: true, DataDir: t.TempDir()})
	require.NoError(t, err)
	require.NotNil(t, Logger)

	Debug("Test debug message in debug mode")
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// Must not panic without a logger
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}
