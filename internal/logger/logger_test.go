package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		_, err := parseLevel(level)
		assert.NoError(t, err, level)
	}

	_, err := parseLevel("verbose")
	assert.EqualError(t, err, "invalid log level: verbose")
}

func TestInitWithOptions_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithOptions(Options{Level: "warn", Format: "json", Output: &buf}))

	GetZapLogger().Debug("hidden")
	GetZapLogger().Warn("shown", zap.String("cache_dir", "/tmp/cache"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"cache_dir":"/tmp/cache"`)
}

func TestInitWithOptions_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixi-assistant.log")
	require.NoError(t, InitWithOptions(Options{Level: "debug", Format: "text", File: path, MaxSizeMB: 1}))

	Log.Infow("written to file", "gb", 5.0)
	_ = Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestInitWithOptions_InvalidLevel(t *testing.T) {
	assert.Error(t, InitWithOptions(Options{Level: "loud", Format: "text"}))
}
