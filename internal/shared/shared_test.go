package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(content)
}

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	second := GenerateID()

	if first == "" || second == "" {
		t.Fatal("generated ID should not be empty")
	}
	if first == second {
		t.Error("consecutive IDs should differ")
	}
	if len(first) != 36 {
		t.Errorf("expected canonical UUID length 36, got %d", len(first))
	}
}

func TestMarshalJSON(t *testing.T) {
	data := map[string]string{"key": "value"}

	t.Run("Compact", func(t *testing.T) {
		out, err := MarshalJSON(data, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(string(out), "\n") {
			t.Error("compact output should not contain newlines")
		}
	})

	t.Run("Pretty", func(t *testing.T) {
		out, err := MarshalJSON(data, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(out), "\n") {
			t.Error("pretty output should be indented")
		}
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Info("hello", "key", "value")

	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected log output, got %q", buf.String())
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create file logger: %v", err)
	}

	logger.Info("written to file")

	content := readFile(t, path)
	if !strings.Contains(content, "written to file") {
		t.Errorf("expected log line in file, got %q", content)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)
	SetLogLevel(logger, log.DebugLevel)

	child := WithLogger(logger, "component", "test")
	child.Debug("scoped")

	out := buf.String()
	if !strings.Contains(out, "component") || !strings.Contains(out, "scoped") {
		t.Errorf("expected scoped log output, got %q", out)
	}
}
