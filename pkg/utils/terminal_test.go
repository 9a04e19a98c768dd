package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTerminalWidthNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if columns, ok := TerminalWidth(f); ok || columns != 0 {
		t.Errorf("TerminalWidth(file) = %d, %v; want 0, false", columns, ok)
	}
}

func TestWriteFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draw.txt")
	if err := WriteFile(path, []byte("001\n002")); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	if !FileExists(path) {
		t.Fatalf("FileExists(%s) = false after write", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("Expected file permissions 0600 (rw-------), got %04o", mode)
	}
}

func TestInitLoggerWriter(t *testing.T) {
	var buf bytes.Buffer
	InitLogger(false, &buf)
	t.Cleanup(func() { InitLogger(false, os.Stderr) })

	Warning.Println("config not found")
	Debug.Println("hidden")
	if !strings.Contains(buf.String(), "config not found") {
		t.Errorf("warning not written to logger writer: %q", buf.String())
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug message printed with debug disabled")
	}
}
