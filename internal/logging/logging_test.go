package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	tmp := t.TempDir()
	logPath := filepath.Join(tmp, "logs", "greenroom.log")

	logger, err := New(logPath)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("startup complete")
	if err := logger.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "startup complete") {
		t.Fatalf("log file missing message, got %q", string(data))
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	logger := Nop()
	logger.Info("ignored")
	if err := logger.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
}
