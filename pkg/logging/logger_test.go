package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(INFO, FormatPlain)
	l.SetOutput(&buf)

	l.Debug("hidden")
	l.Info(`"test_walk" completed successfully`)
	l.Log(WARNING, "invalid speed for Runner")

	assert.Equal(t, "INFO: \"test_walk\" completed successfully\nWARNING: invalid speed for Runner\n", buf.String())
}

func TestJSONFormatWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(DEBUG, FormatJSON)
	l.SetOutput(&buf)

	l.WithField("suite", "RunnerTest").Warning("frozen", map[string]interface{}{"case": "test_run"})

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARNING", entry.Level)
	assert.Equal(t, "frozen", entry.Message)
	assert.Equal(t, "RunnerTest", entry.Fields["suite"])
	assert.Equal(t, "test_run", entry.Fields["case"])
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(INFO, FormatText)
	l.SetOutput(&buf)

	l.Error("boom")
	assert.Contains(t, buf.String(), "ERROR: boom")
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\]`, buf.String())
}

func TestFileLoggerTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "runner_tests.log")

	first, err := NewFileLogger(path, INFO, FormatPlain, true)
	require.NoError(t, err)
	first.Info("first run")
	require.NoError(t, first.Close())

	second, err := NewFileLogger(path, INFO, FormatPlain, true)
	require.NoError(t, err)
	second.Info("second run")
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "INFO: second run\n", string(data))
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner_tests.log")

	for _, msg := range []string{"one", "two"} {
		l, err := NewFileLogger(path, INFO, FormatPlain, false)
		require.NoError(t, err)
		l.Info(msg)
		require.NoError(t, l.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "INFO: one\nINFO: two\n", string(data))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"warn", WARNING},
		{"WARNING", WARNING},
		{"error", ERROR},
		{"fatal", FATAL},
		{"nonsense", INFO},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, f)

	f, err = ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Log(INFO, "a")
	r.Log(WARNING, "b")
	r.Log(WARNING, "c")

	assert.Len(t, r.Entries(), 3)
	assert.Equal(t, 2, r.Count(WARNING))
	assert.Equal(t, Entry{Level: INFO, Message: "a"}, r.Entries()[0])
}
