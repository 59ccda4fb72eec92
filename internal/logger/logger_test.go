package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	for _, name := range Levels {
		if _, err := ParseLevel(name); err != nil {
			t.Errorf("ParseLevel(%q) error = %v, want nil", name, err)
		}
	}
	if lvl, err := ParseLevel(""); err != nil || lvl != zapcore.InfoLevel {
		t.Errorf("ParseLevel(\"\") = %v, %v, want info", lvl, err)
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(\"verbose\") error = nil, want error")
	}
}

func TestConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := newZapLogger(zapcore.AddSync(&buf), "warn", "")
	require.NoError(t, err)

	l.Info("session", "hidden", nil)
	l.Warn("session", "shown", map[string]interface{}{"expr": "1/0"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "1/0")
	assert.Empty(t, l.FilePath())
}

func TestFileCore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physcalc.log")
	var console bytes.Buffer
	l, err := newZapLogger(zapcore.AddSync(&console), "debug", path)
	require.NoError(t, err)

	l.Error("calc", "evaluation failed", map[string]interface{}{"error": errors.New("boom")})
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "evaluation failed", entry["message"])
	assert.Equal(t, "calc", entry["module"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, path, l.FilePath())
}

func TestNewZapLoggerRejectsLevel(t *testing.T) {
	_, err := NewZapLogger("loud", "")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Info("x", "y", nil)
	assert.NoError(t, l.Sync())
}
