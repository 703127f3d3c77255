package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagResetBest bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best score and aggregate stats",
	Long: `Display the persisted best score along with aggregate statistics
over the recorded games.

Examples:
  t2048 best
  t2048 best --reset`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagResetBest, "reset", false, "Reset the best score to 0")
}

func runBest(_ *cobra.Command, _ []string) {
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

	if flagResetBest {
		if !store.SaveBest(0) {
			fmt.Fprintln(os.Stderr, "Error: could not reset the best score")
			os.Exit(1)
		}
		fmt.Println("Best score reset.")
		return
	}

	fmt.Printf("Best score: %d\n", store.LoadBest())

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if stats.GamesPlayed == 0 {
		fmt.Println()
		fmt.Println("No games recorded yet. Play 't2048 play' to start one!")
		return
	}

	fmt.Println()
	fmt.Printf("Games played: %d\n", stats.GamesPlayed)
	fmt.Printf("Wins:         %d\n", stats.Wins)
	fmt.Printf("Average:      %.1f\n", stats.AvgScore)
	fmt.Printf("Best tile:    %d\n", stats.BestTile)
}
