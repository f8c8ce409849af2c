package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("skipped %d", 1)
	log.Warn("slot %s is taken", "14:30:00")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "slot 14:30:00 is taken", entry["message"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	log, err := New(path, "info")
	require.NoError(t, err)
	log.Info("hello")
	assert.NoError(t, log.Close())
	assert.NoError(t, log.Close())
}
