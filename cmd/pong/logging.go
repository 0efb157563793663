package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// newLogger opens the log destination from cfg. The terminal belongs to the
// game, so logs go to a file unless the config asks for stderr. If the file
// cannot be opened, logging is discarded after a warning on stderr.
func newLogger(cfg config.Config) (*log.Logger, func()) {
	w, closeFn, err := openLogOutput(cfg.LogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		w, closeFn = io.Discard, func() {}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           cfg.LogLevel(),
	})
	return logger, closeFn
}

// openLogOutput returns a writer for path, "-" meaning stderr.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stderr, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
