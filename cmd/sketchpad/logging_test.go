package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"honnef.co/go/sketch"
)

func TestSetupLoggingDisabled(t *testing.T) {
	t.Chdir(t.TempDir())
	f, err := setupLogging(false)
	if err != nil {
		t.Fatal(err)
	}
	if f != nil {
		f.Close()
		t.Error("got a log file without debug")
	}
	if slog.Default().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled without debug")
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("log directory was created without debug")
	}
}

func TestSetupLoggingDebug(t *testing.T) {
	t.Chdir(t.TempDir())
	f, err := setupLogging(true)
	if err != nil {
		t.Fatal(err)
	}
	defer setupLogging(false)
	defer f.Close()

	slog.Debug("from the host")
	sketch.Logger().Debug("from the library")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatal(err)
	}
	for _, msg := range []string{"from the host", "from the library"} {
		if !strings.Contains(string(data), msg) {
			t.Errorf("log file lacks %q:\n%s", msg, data)
		}
	}
}

func TestSetupLoggingRotation(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := setupLogging(true)
	if err != nil {
		t.Fatal(err)
	}
	defer setupLogging(false)
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("oversized log file was not rotated")
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() > maxLogSize {
		t.Errorf("new log file has %d bytes", fi.Size())
	}
}
