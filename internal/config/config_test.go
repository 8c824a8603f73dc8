package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, float32(900), cfg.WindowWidth)
	assert.Equal(t, float32(700), cfg.WindowHeight)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.JSONLogs)
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "window_width = 1200\nwindow_height = 800\nlog_level = \"debug\"\njson_logs = true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, float32(1200), cfg.WindowWidth)
	assert.Equal(t, float32(800), cfg.WindowHeight)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("window_width = {"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileNormalizesGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("window_width = -10\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, float32(900), cfg.WindowWidth)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("INKWELL_DEBUG", "true")
	t.Setenv("INKWELL_JSON_LOGS", "true")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.Level(), "level %q", tt.level)
	}
}
