package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/vidscale/internal/config"
)

func newTestLogger(t *testing.T, cfg *config.Config) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cfg.ColorMode = config.ColorNever
	l, err := NewLoggerTo(cfg, &stdout, &stderr)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l, &stdout, &stderr
}

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestLogger_StreamsByLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	l, stdout, stderr := newTestLogger(t, &cfg)

	l.Info("info %d", 1)
	l.Success("done")
	l.Warn("careful")
	l.Error("broken %s", "pipe")

	assert.Contains(t, stdout.String(), "[INFO] info 1")
	assert.Contains(t, stdout.String(), "[SUCCESS] done")
	assert.Contains(t, stdout.String(), "[WARN] careful")
	assert.NotContains(t, stdout.String(), "broken")
	assert.Contains(t, stderr.String(), "[ERROR] broken pipe")
}

func TestLogger_DebugGatedByVerbose(t *testing.T) {
	cfg := config.DefaultConfig()
	l, stdout, _ := newTestLogger(t, &cfg)

	l.Debug(false, "hidden")
	l.Debug(true, "shown")

	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stdout.String(), "[DEBUG] shown")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "vidscale.log")
	l, _, _ := newTestLogger(t, &cfg)

	l.Info("to file")
	l.Error("failed")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "INFO", rec["tag"])
	assert.Equal(t, "to file", rec["message"])
	assert.Contains(t, rec, "time")

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "error", rec["level"])
}

func TestLogger_CloseTwice(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "vidscale.log")
	l, _, _ := newTestLogger(t, &cfg)

	require.NoError(t, l.Close())
	assert.NoError(t, l.Close())
	l.Info("after close goes to console only")
}
