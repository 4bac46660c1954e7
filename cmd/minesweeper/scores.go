package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded results",
	Long: `Display recent and best results with win/loss totals.

On a terminal the results open in an interactive table; use --plain
(or redirect the output) for a text listing. --limit applies to both.
--clear deletes every recorded result.

Examples:
  minesweeper scores
  minesweeper scores --plain --limit 20
  minesweeper scores --clear`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of results per list")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if flagClear {
		return clearResults(cmd.OutOrStdout(), store)
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		return tui.RunScoreboard(store, minesweeper.ID, "Minesweeper", flagLimit, width, height)
	}
	return printScores(cmd.OutOrStdout(), store, flagLimit)
}

// resultClearer deletes stored results. *storage.Store implements it.
type resultClearer interface {
	Clear(gameID string) error
}

// clearResults deletes every Minesweeper result.
func clearResults(w io.Writer, store resultClearer) error {
	if err := store.Clear(minesweeper.ID); err != nil {
		return err
	}
	fmt.Fprintln(w, "Results cleared.")
	return nil
}

// printScores writes recent and best results followed by totals.
func printScores(w io.Writer, src tui.ResultSource, limit int) error {
	recent, err := src.RecentResults(minesweeper.ID, limit)
	if err != nil {
		return err
	}
	best, err := src.TopResults(minesweeper.ID, limit)
	if err != nil {
		return err
	}
	stats, err := src.Stats(minesweeper.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Results - Minesweeper")
	fmt.Fprintln(w)

	if stats.Games == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'minesweeper' to play your first game!")
		return nil
	}

	printTable(w, "Recent", recent)
	printTable(w, "Best", best)
	fmt.Fprintln(w, tui.FormatStats(stats))
	return nil
}

func printTable(w io.Writer, title string, results []storage.Result) {
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %s\n", "Rank", "Result", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %s\n", "----", "------", "-----", "----")
	for i, r := range results {
		dateStr := r.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-6s  %-6d  %s\n", i+1, r.Outcome, r.Score, dateStr)
	}
	fmt.Fprintln(w)
}
