// minesweeper is a terminal Minesweeper game.
//
// Usage:
//
//	minesweeper              - Play a game
//	minesweeper scores       - Show recorded results
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for a reproducible mine layout
//	--db <path>      - Set database path (default: ~/.minesweeper/results.db)
//	--config <path>  - Use a custom theme/keys YAML file
//	--log <path>     - Set log file (default: ~/.minesweeper/minesweeper.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper on a 10x10 board with 10 mines.

Reveal every safe cell you like, but the game is won by flagging
every mine. Revealing a mine loses.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Reveal cell
  H/F          - Toggle flag
  R            - New game (after a win or loss)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  minesweeper
  minesweeper --seed 42
  minesweeper --config ./my-theme.yaml
  minesweeper scores --limit 20`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minesweeper/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.minesweeper/minesweeper.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(scoresCmd)
}
