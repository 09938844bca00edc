package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"honnef.co/go/sketch"
)

const (
	logDir      = "logs"
	logFileName = "sketchpad.log"
	maxLogSize  = 10 << 20
)

// setupLogging installs the process-wide logger. Without debug everything is
// discarded. With debug, records at debug level and above go to
// logs/sketchpad.log, which is rotated first if it has grown past
// maxLogSize. The caller closes the returned file.
func setupLogging(debug bool) (*os.File, error) {
	if !debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		sketch.SetLogger(nil)
		return nil, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	path := filepath.Join(logDir, logFileName)
	if fi, err := os.Stat(path); err == nil && fi.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("sketchpad-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotating log file: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(l)
	sketch.SetLogger(l)
	return f, nil
}
