// serpent is a TUI arcade for a continuous snake game, playable solo or as a
// local two-player duel.
//
// Usage:
//
//	serpent list              - List available games
//	serpent play <game>       - Play a game
//	serpent menu              - Start menu to pick games interactively
//	serpent serve             - Start SSH server for remote play
//	serpent scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.serpent/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/serpent-arcade/serpent/internal/games/serpent"
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
	Use:   "serpent",
	Short: "Serpent - Continuous snake duels in your terminal",
	Long: `Serpent is a terminal arcade built around one game: a snake that
moves smoothly through a wraparound plane instead of hopping across a grid.
Play solo for score, or share a keyboard in the two-player duel.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  serpent list
  serpent play serpent
  serpent play serpent_duel --difficulty hard
  serpent menu
  serpent serve --ssh :2222
  serpent scores serpent`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.serpent/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
