// hexfall is a terminal falling-ball puzzle on a hexagonal grid.
//
// Usage:
//
//	hexfall play              - Play the game
//	hexfall menu              - Start with the interactive menu
//	hexfall serve             - Start SSH server for remote play
//	hexfall scores            - Show high scores
//	hexfall list              - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.hexfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/akulikov/hexfall/internal/games/hexfall"
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
	Use:   "hexfall",
	Short: "Hexfall - Falling-ball puzzle on a hexagonal grid",
	Long: `Hexfall is a terminal puzzle game. Pieces of three colored balls fall
onto a hexagonal grid; land six or more same-colored balls next to each
other to clear them before the board fills up.

Available commands:
  play     - Play the game directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show all available games

Examples:
  hexfall play
  hexfall play --difficulty hard
  hexfall menu
  hexfall serve --ssh :2222
  hexfall scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
