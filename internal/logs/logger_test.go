package logs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitialize_WritesLogFile(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	Logger.Printf("hello from test")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[jotter] ") || !strings.Contains(string(data), "hello from test") {
		t.Errorf("unexpected log contents:\n%s", data)
	}
}

func TestInitialize_BadDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "dir")
	if err := Initialize(missing); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { Close() })

	Logger.Printf("captured")
	if !strings.Contains(buf.String(), "captured") {
		t.Errorf("expected output in buffer, got %q", buf.String())
	}
}

func TestClose_NoFile(t *testing.T) {
	if err := Close(); err != nil {
		t.Errorf("expected nil error without a log file, got %v", err)
	}
}
