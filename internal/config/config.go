package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config holds the optional settings file. Every field has a default:
// the file may be missing entirely.
type Config struct {
	WindowWidth  float32 `toml:"window_width"`
	WindowHeight float32 `toml:"window_height"`
	LogLevel     string  `toml:"log_level"`
	JSONLogs     bool    `toml:"json_logs"`
}

// Default matches the original 900x700 window.
func Default() Config {
	return Config{
		WindowWidth:  900,
		WindowHeight: 700,
		LogLevel:     "info",
	}
}

// Path returns the settings file location under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "inkwell", "config.toml"), nil
}

// Load reads the settings file when present and applies environment
// overrides. A missing file is not an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads settings from an explicit path, falling back to
// defaults when the file does not exist.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Default(), err
	}
	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if os.Getenv("INKWELL_DEBUG") == "true" {
		c.LogLevel = "debug"
	}
	if os.Getenv("INKWELL_JSON_LOGS") == "true" {
		c.JSONLogs = true
	}
}

func (c *Config) normalize() {
	if c.WindowWidth <= 0 {
		c.WindowWidth = Default().WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = Default().WindowHeight
	}
}

// Level maps the log_level setting onto a zerolog level, defaulting to
// info for anything unrecognized.
func (c Config) Level() zerolog.Level {
	switch c.LogLevel {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
