package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithOutput_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("flow", "info", &buf)

	logger.Debug("hidden")
	logger.Info("shown", "rows", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "rows=4") {
		t.Errorf("expected info line with rows=4, got %q", out)
	}
	if !strings.Contains(out, "flow") {
		t.Errorf("expected logger name in output, got %q", out)
	}
}

func TestNewWithOutput_UnknownLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("flow", "loud", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("expected only the warn line, got %q", out)
	}
}

func TestOrNull(t *testing.T) {
	logger := OrNull(nil)
	if logger == nil {
		t.Fatal("expected a logger")
	}
	logger.Error("discarded")
}
