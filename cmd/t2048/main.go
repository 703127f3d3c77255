// t2048 is a terminal 2048 puzzle with undo, selectable targets, and a
// persistent best score.
//
// Usage:
//
//	t2048 play               - Play in the current terminal
//	t2048 best               - Show the best score and aggregate stats
//	t2048 history            - Browse recorded games
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Database path (default: ~/.t2048/scores.db)
//	--seed <value>   - RNG seed for reproducible boards
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is a terminal rendition of the 2048 sliding-tile puzzle.

Join equal tiles, reach the target tile, and try to beat your best
score. One move can be taken back, the target can be raised mid-game,
and every finished game lands in a local history database.

Examples:
  t2048 play
  t2048 play --target 4096
  t2048 best
  t2048 history
  t2048 serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration from the config file
// chain and the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}
