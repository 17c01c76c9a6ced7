package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFields(t *testing.T) {
	os.Unsetenv(DebugEnvVar)

	var buf bytes.Buffer
	l := New(&buf, Options{Component: "sim", Level: "info"})
	l.Info("round %d applied", 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "sim", entry["component"])
	assert.Equal(t, "round 3 applied", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_LevelFiltering(t *testing.T) {
	os.Unsetenv(DebugEnvVar)

	tests := []struct {
		name      string
		level     string
		logDebug  bool
		logWarn   bool
		wantLines int
	}{
		{name: "info hides debug", level: "info", logDebug: true, logWarn: true, wantLines: 1},
		{name: "debug shows debug", level: "debug", logDebug: true, logWarn: true, wantLines: 2},
		{name: "error hides warn", level: "error", logDebug: true, logWarn: true, wantLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, Options{Level: tt.level})
			if tt.logDebug {
				l.Debug("debug line")
			}
			if tt.logWarn {
				l.Warn("warn line")
			}
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			if buf.Len() == 0 {
				lines = nil
			}
			assert.Len(t, lines, tt.wantLines)
		})
	}
}

func TestNew_DebugEnvOverridesLevel(t *testing.T) {
	t.Setenv(DebugEnvVar, "1")

	var buf bytes.Buffer
	l := New(&buf, Options{Level: "error"})
	l.Debug("visible %s", "now")

	assert.Contains(t, buf.String(), "visible now")
}

func TestNew_ConsoleFormat(t *testing.T) {
	os.Unsetenv(DebugEnvVar)

	var buf bytes.Buffer
	l := New(&buf, Options{Format: "console", Component: "cli"})
	l.Error("failed: %s", "bad")

	out := buf.String()
	assert.Contains(t, out, "failed: bad")
	assert.Contains(t, out, "component=cli")
	assert.False(t, strings.HasPrefix(out, "{"), "console output should not be JSON")
}

func TestNew_NilWriter(t *testing.T) {
	l := New(nil, Options{})
	assert.NotPanics(t, func() { l.Info("dropped") })
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel(""))
	assert.True(t, ValidLevel("Debug"))
	assert.False(t, ValidLevel("verbose"))
}

func TestOpenFile(t *testing.T) {
	w, err := OpenFile("")
	require.NoError(t, err)
	_, err = w.Write([]byte("discarded"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "vitals.log")
	w, err = OpenFile(path)
	require.NoError(t, err)
	l := New(w, Options{})
	l.Info("to file")
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestOpenFile_BadPath(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	l := Noop()
	assert.NotPanics(t, func() {
		l.Debug("a")
		l.Info("b")
		l.Warn("c")
		l.Error("d")
	})
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()
	l.Debug("d %d", 1)
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	require.Len(t, l.Messages, 4)
	assert.Equal(t, LogMessage{Level: "debug", Message: "d 1"}, l.Messages[0])
	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("fatal"))

	l.Clear()
	assert.Empty(t, l.Messages)
	assert.False(t, l.HasLevel("info"))
}

func TestDefaultAndSetDefault(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Info("hello")

	require.Len(t, buf.Messages, 1)
	assert.Equal(t, "hello", buf.Messages[0].Message)
}
