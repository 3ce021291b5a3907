// mysterions is a terminal pursuit arcade game: guide your agent through
// a field of obstacles, grab every coin, and stay clear of the
// mysterions hunting you down.
//
// Usage:
//
//	mysterions play          - Play the game
//	mysterions serve         - Start SSH server for remote play
//	mysterions scores        - Show high scores and session history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.mysterions/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/cobrien706/mysterions/internal/games/mysterions"
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
	Use:   "mysterions",
	Short: "Mysterions - A terminal pursuit arcade game",
	Long: `Mysterions is a terminal arcade game. Collect every coin on the board
while the mysterions charge after you and weave around obstacles.
Clear a round to earn a life; run out of health and you lose one.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View high scores and session history

Examples:
  mysterions play
  mysterions play --difficulty hard
  mysterions serve --ssh :2222
  mysterions scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mysterions/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
