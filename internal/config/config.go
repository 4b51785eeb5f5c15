// Package config loads application settings from an optional YAML file and
// HOMEWORK_* environment variables. Environment values win over the file;
// invalid values are ignored and the previous value is kept.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all settings for the homework CLI and TUI.
type Config struct {
	// DBPath is the SQLite database holding persisted history.
	DBPath string `yaml:"db_path"`

	// Persist disables the database entirely when false; history then lives
	// only for the lifetime of the process.
	Persist bool `yaml:"persist"`

	// ExportDir is where downloads are written.
	ExportDir string `yaml:"export_dir"`

	// GenerationDelayMs is the artificial generation latency.
	GenerationDelayMs int `yaml:"generation_delay_ms"`

	// HistoryLimit caps the number of retained records.
	HistoryLimit int `yaml:"history_limit"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// GenerationDelay returns GenerationDelayMs as a duration.
func (c Config) GenerationDelay() time.Duration {
	return time.Duration(c.GenerationDelayMs) * time.Millisecond
}

// HomeDir returns the application directory, ~/.homework. It falls back to
// a relative ".homework" when the home directory cannot be determined.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".homework"
	}
	return filepath.Join(home, ".homework")
}

// DefaultPath is the config file read when none is given.
func DefaultPath() string {
	return filepath.Join(HomeDir(), "config.yaml")
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	dir := HomeDir()
	return Config{
		DBPath:            filepath.Join(dir, "homework.db"),
		Persist:           true,
		ExportDir:         ".",
		GenerationDelayMs: 3000,
		HistoryLimit:      10,
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dir, "homework.log"),
		},
	}
}

// Load reads the YAML file at path (a missing file is not an error), then
// applies environment overrides. When the file cannot be read or parsed the
// error is returned together with a usable Config built from defaults and
// the environment.
func Load(path string) (Config, error) {
	cfg, fileErr := loadFile(path)
	applyEnv(&cfg)
	cfg.normalize()
	return cfg, fileErr
}

func loadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return DefaultConfig(), fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HOMEWORK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("HOMEWORK_PERSIST"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Persist = b
		}
	}
	if v := os.Getenv("HOMEWORK_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("HOMEWORK_GENERATION_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.GenerationDelayMs = n
		}
	}
	if v := os.Getenv("HOMEWORK_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}
	if v := os.Getenv("HOMEWORK_LOG_LEVEL"); v != "" && validLevel(v) {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HOMEWORK_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// normalize restores defaults for values a config file set out of range.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.GenerationDelayMs < 0 {
		c.GenerationDelayMs = def.GenerationDelayMs
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = def.HistoryLimit
	}
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.ExportDir == "" {
		c.ExportDir = def.ExportDir
	}
	if !validLevel(c.Log.Level) {
		c.Log.Level = def.Log.Level
	}
}

func validLevel(s string) bool {
	_, err := zapcore.ParseLevel(s)
	return err == nil
}
