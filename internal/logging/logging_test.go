package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel, "whack")

	logger.Debug("hidden")
	logger.Info("round started", "mode", "timed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "round started") || !strings.Contains(out, "whack") {
		t.Errorf("Expected prefixed info line, got %q", out)
	}
}

func TestNewNilWriter(t *testing.T) {
	logger := New(nil, log.DebugLevel, "whack")
	logger.Info("goes nowhere")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "whack.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	New(f, log.InfoLevel, "whack").Info("hello")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("Log file missing line: %q", data)
	}
}
