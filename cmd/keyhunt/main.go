// keyhunt is a TUI arcade of physics mission games: collect colored keys
// and deposit them at matching buttons before the clock runs out.
//
// Usage:
//
//	keyhunt list              - List available variants
//	keyhunt play <variant>    - Play a variant
//	keyhunt menu              - Start menu to pick variants interactively
//	keyhunt serve             - Start SSH server for remote play
//	keyhunt scores <variant>  - Show high scores for a variant
//	keyhunt smoke <variant>   - Headless sanity run for CI
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.keyhunt/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the variants to register them
	_ "github.com/quadkeys/keyhunt/internal/games/arena"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keyhunt",
	Short: "Key Hunt - physics mission games in your terminal",
	Long: `Key Hunt is a terminal gaming platform built around one mission:
roam a walled arena, collect colored keys, and deposit them at the
matching button before the clock runs out.

Available commands:
  list     - Show all available variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  smoke    - Headless sanity run for CI

Examples:
  keyhunt list
  keyhunt play keys
  keyhunt menu
  keyhunt serve --ssh :2222
  keyhunt scores rooms`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.keyhunt/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(smokeCmd)
}
