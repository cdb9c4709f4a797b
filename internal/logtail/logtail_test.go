package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLog(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "greenroom.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestRead_TailsLastLines(t *testing.T) {
	var lines []string
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	path := writeLog(t, lines)

	got, err := Read(path, 4)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("Read() returned %d lines, want 4", len(got))
	}
	for i, want := range []string{"line 7", "line 8", "line 9", "line 10"} {
		if got[i].Message != want {
			t.Fatalf("line[%d].Message = %q, want %q", i, got[i].Message, want)
		}
	}
}

func TestRead_FewerLinesThanRequested(t *testing.T) {
	path := writeLog(t, []string{"only line"})

	got, err := Read(path, 100)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 || got[0].Message != "only line" {
		t.Fatalf("Read() = %v, want single line", got)
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil for missing file", got)
	}
}

func TestRead_NonPositiveLimit(t *testing.T) {
	path := writeLog(t, []string{"a", "b"})
	got, err := Read(path, 0)
	if err != nil || got != nil {
		t.Fatalf("Read(0) = %v, %v, want nil, nil", got, err)
	}
}

func TestRead_ParsesZapJSON(t *testing.T) {
	path := writeLog(t, []string{
		`{"level":"info","ts":1756400000.25,"msg":"startup complete"}`,
		`{"level":"warn","ts":1756400001.5,"msg":"dashboard refresh failed"}`,
		"plain text line",
	})

	got, err := Read(path, 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Read() returned %d lines, want 3", len(got))
	}

	if got[0].Level != "INFO" || got[0].Message != "startup complete" {
		t.Fatalf("line[0] = %+v, want INFO / startup complete", got[0])
	}
	if got[0].Time.IsZero() {
		t.Fatalf("line[0].Time is zero, want parsed timestamp")
	}
	if got[1].Level != "WARN" {
		t.Fatalf("line[1].Level = %q, want WARN", got[1].Level)
	}
	if got[2].Level != "" || got[2].Message != "plain text line" {
		t.Fatalf("line[2] = %+v, want raw passthrough", got[2])
	}
}
