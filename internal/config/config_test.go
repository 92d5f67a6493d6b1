package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "pixi", cfg.Pixi.Binary)
	assert.Equal(t, time.Duration(0), cfg.Pixi.GetTimeout())
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Logging.File)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
pixi:
  binary: /opt/pixi/bin/pixi
  timeout: 45s
logging:
  level: debug
  format: json
  file: /var/log/pixi-assistant.log
  max_backups: 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/pixi/bin/pixi", cfg.Pixi.Binary)
	assert.Equal(t, 45*time.Second, cfg.Pixi.GetTimeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/var/log/pixi-assistant.log", cfg.Logging.File)
	assert.Equal(t, 7, cfg.Logging.MaxBackups)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad timeout",
			content: "pixi:\n  timeout: soon\n",
			wantErr: "invalid pixi.timeout",
		},
		{
			name:    "negative timeout",
			content: "pixi:\n  timeout: -1s\n",
			wantErr: "pixi.timeout must not be negative",
		},
		{
			name:    "empty binary",
			content: "pixi:\n  binary: \"\"\n",
			wantErr: "pixi.binary is required",
		},
		{
			name:    "bad level",
			content: "logging:\n  level: trace\n",
			wantErr: "invalid logging.level: trace",
		},
		{
			name:    "bad format",
			content: "logging:\n  format: xml\n",
			wantErr: "invalid logging.format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
