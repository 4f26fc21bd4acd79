package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "resale.log")
	logger, err := New(path, "debug")
	require.NoError(t, err)

	logger.Debug("fetch", zap.String("list", "orders"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"fetch"`)
	assert.Contains(t, string(data), `"list":"orders"`)
}

func TestNewDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resale.log")
	logger, err := New(path, "")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestNewOrNopFallsBack(t *testing.T) {
	logger, err := NewOrNop(filepath.Join(t.TempDir(), "x.log"), "loud")
	require.Error(t, err)
	require.NotNil(t, logger)
	logger.Info("dropped")
}
