package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
)

// openLogger returns a logger writing to path and a function closing the file.
// The terminal belongs to the game, so log output never goes to stderr.
// If the file cannot be opened, log output is discarded and err says why.
func openLogger(path string, verbose bool) (*log.Logger, func(), error) {
	logger, closeFn, err := newFileLogger(path)
	if err != nil {
		logger = log.New(io.Discard)
		closeFn = func() {}
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, err
}

func newFileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, nil, fmt.Errorf("log: empty path")
	}
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "minesweeper",
	})
	return logger, func() { f.Close() }, nil
}
