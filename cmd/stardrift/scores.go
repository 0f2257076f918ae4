package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stardrift/internal/platform/tui"
	"github.com/vovakirdan/stardrift/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the Star Drift score history. In a terminal this opens a
scrollable scoreboard; with --plain or when piped it prints the top 10.
Needs the sqlite store.

Examples:
  stardrift scores
  stardrift scores --plain
  stardrift scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the top 10 instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history and the high score")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagStore != storeSQLite {
		return fmt.Errorf("%w: score history needs --store sqlite", errUsage)
	}

	path := flagDBPath
	if path == "" {
		path = defaultDBPath
	}
	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(storage.GameID); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printScores(os.Stdout, store)
	}

	width, height := terminalSize()
	_, err = tui.RunScoreboard(store, width, height)
	return err
}

// printScores writes the top 10 and the best score to w.
func printScores(w io.Writer, store *storage.Store) error {
	scores, err := store.TopScores(storage.GameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Star Drift")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'stardrift play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if stats, err := store.GetGameStats(storage.GameID); err == nil {
		fmt.Fprintf(w, "Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
