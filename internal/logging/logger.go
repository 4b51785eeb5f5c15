// Package logging builds the zap logger shared by the CLI and TUI. Logs go
// to a file by default because the TUI owns the terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tulikamejora/homework-help/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stderr is the log file value that selects standard error.
const Stderr = "stderr"

// New builds a JSON logger from cfg. verbose forces debug level. An empty
// cfg.File logs to standard error.
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	out := cfg.File
	if out == "" {
		out = Stderr
	}
	if out != Stderr {
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{out}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Sampling = nil

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return log, nil
}

// NewOrNop is New for startup paths where logging must not stop the
// program. On failure it writes a warning to warn and returns a no-op logger.
func NewOrNop(cfg config.LogConfig, verbose bool, warn io.Writer) *zap.Logger {
	log, err := New(cfg, verbose)
	if err != nil {
		fmt.Fprintf(warn, "Warning: logging disabled: %v\n", err)
		return zap.NewNop()
	}
	return log
}
