package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tulikamejora/homework-help/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "homework.log")
	log, err := New(config.LogConfig{Level: "info", File: path}, false)
	require.NoError(t, err)

	log.Info("history appended", zap.Int("count", 3))
	log.Debug("suppressed at info")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"history appended"`)
	assert.Contains(t, string(data), `"count":3`)
	assert.NotContains(t, string(data), "suppressed at info")
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homework.log")
	log, err := New(config.LogConfig{Level: "warn", File: path}, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "chatty"}, false)
	assert.Error(t, err)
}

func TestNewOrNop_UnwritableDirFallsBack(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	var warn bytes.Buffer
	log := NewOrNop(config.LogConfig{Level: "info", File: filepath.Join(blocker, "homework.log")}, false, &warn)
	require.NotNil(t, log)
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel), "no-op logger expected")
	assert.Contains(t, warn.String(), "logging disabled")
	assert.Contains(t, warn.String(), "creating log directory")
}

func TestNewOrNop_InvalidLevelFallsBack(t *testing.T) {
	var warn bytes.Buffer
	log := NewOrNop(config.LogConfig{Level: "loud"}, false, &warn)
	require.NotNil(t, log)
	assert.Contains(t, warn.String(), `parsing log level "loud"`)
}

func TestNewOrNop_Success(t *testing.T) {
	var warn bytes.Buffer
	log := NewOrNop(config.LogConfig{Level: "info", File: filepath.Join(t.TempDir(), "h.log")}, false, &warn)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.Empty(t, warn.String())
}
