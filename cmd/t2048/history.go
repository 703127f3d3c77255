package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/tui"
)

var (
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded games",
	Long: `Browse the recorded games in an interactive table. Tab switches
between most recent and highest scoring.

Examples:
  t2048 history
  t2048 history --plain
  t2048 history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print the ten most recent games and exit")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded games (keeps the best score)")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if clearErr := store.ClearGames(); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagHistoryPlain {
		printHistory(store)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if runErr := tui.RunHistory(store, width, height); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// printHistory writes the most recent games as a plain table.
func printHistory(store *storage.Store) {
	records, err := store.RecentGames(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %-6s  %s\n", "Score", "Moves", "Max", "Target", "Result", "Played")
	for _, rec := range records {
		fmt.Printf("  %-8d  %-6d  %-6d  %-7d  %-6s  %s\n",
			rec.Score, rec.Moves, rec.MaxTile, rec.Target, rec.Outcome,
			rec.PlayedAt.Format("2006-01-02 15:04"))
	}
}
