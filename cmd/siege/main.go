// siege is a terminal slingshot game: knock down procedurally generated
// block structures with well-aimed shots.
//
// Usage:
//
//	siege play [game]        - Play (default: siege)
//	siege list               - List game variants
//	siege gen                - Print a generated level layout
//	siege scores <game>      - Show best runs for a game
//	siege serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.siege/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its variants
	_ "github.com/vovakirdan/tui-siege/internal/games/siege"
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
	Use:   "siege",
	Short: "Siege - Knock down block structures in your terminal",
	Long: `Siege is a terminal physics game. Pull back the slingshot, release,
and bring down procedurally generated castles, cities, and towers.

Available commands:
  list     - Show game variants
  play     - Play directly
  gen      - Print a generated level layout without playing
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  siege play
  siege play siege_zen
  siege play --difficulty hard --level 5
  siege gen --level 12
  siege scores siege
  siege serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.siege/runs.db", "Path to runs database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
