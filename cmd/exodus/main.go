// exodus is a terminal arcade shooter: sweep the adversary wave before it
// reaches the bottom of the screen.
//
// Usage:
//
//	exodus play               - Play in the current terminal
//	exodus scores             - Show the leaderboard
//	exodus register <user>    - Create a player profile
//	exodus serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.exodus/profiles.db)
//	--config <path>  - Path to custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "exodus",
	Short: "Exodus - terminal arcade shooter",
	Long: `Exodus is a terminal arcade shooter. Pilot your craft along the bottom
of the screen and destroy the adversary wave before it sweeps down to you.

Available commands:
  play      - Play in the current terminal
  scores    - View the leaderboard
  register  - Create a player profile
  serve     - Start SSH server for remote play

Examples:
  exodus play
  exodus play --difficulty hard --user ripley
  exodus register ripley
  exodus scores
  exodus serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.exodus/profiles.db", "Path to profile database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(serveCmd)
}
