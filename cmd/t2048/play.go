package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/tui"
)

var flagTarget int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Move tiles
  U            - Undo the last move
  N            - New game
  T            - Cycle the target tile (2048, 4096, 8192)
  X            - Reset the best score
  Q/Ctrl+C     - Quit

The on-screen buttons and arrow pad are clickable in terminals with
mouse support.

Examples:
  t2048 play
  t2048 play --target 8192
  t2048 play --seed 42
  t2048 play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Target tile: 2048, 4096 or 8192 (overrides config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	target := cfg.Game.Target
	if flagTarget != 0 {
		target = flagTarget
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	g, err := game.New(bestStore(store), game.Options{
		Target:     target,
		FourChance: cfg.Game.SpawnFourChance,
		Seed:       flagSeed,
	})
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(g, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// bestStore converts a possibly nil *storage.Store into a game.BestStore
// without producing a typed nil interface.
func bestStore(store *storage.Store) game.BestStore {
	if store == nil {
		return nil
	}
	return store
}
