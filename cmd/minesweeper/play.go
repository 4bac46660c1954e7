package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// loadConfig loads the configuration and reports fallback files that were
// skipped, so edits to a broken config file do not vanish silently.
func loadConfig(path string, logger *log.Logger, stderr io.Writer) (config.Config, error) {
	cfg, skipped, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	for _, reason := range skipped {
		logger.Warn("skipping config file", "error", reason)
		fmt.Fprintf(stderr, "Warning: using defaults, %v\n", reason)
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, logErr := openLogger(flagLogPath, flagVerbose)
	defer closeLog()
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", logErr)
	}

	cfg, err := loadConfig(flagConfig, logger, os.Stderr)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	runtimeCfg := core.DefaultConfig()
	runtimeCfg.ScreenW = width
	runtimeCfg.ScreenH = height
	runtimeCfg.Seed = flagSeed

	game := minesweeper.New(cfg.Theme)

	opts := tui.Options{
		Logger: logger,
		Keys:   tui.NewKeyMap(cfg.Keys),
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
	} else {
		defer store.Close()
		opts.Saver = store
	}

	logger.Info("session started", "seed", flagSeed, "db", flagDBPath)
	if err := tui.Run(game, runtimeCfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("session ended")
	return nil
}
