// skyglide is a one-key arcade glider for the terminal: keep the craft in
// the air, thread the obstacle gaps, and chase your best score.
//
// Usage:
//
//	skyglide play       - Play in the current terminal
//	skyglide scores     - Show run history
//	skyglide serve      - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.skyglide/skyglide.db)
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
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyglide",
	Short: "Skyglide - A one-key arcade glider for your terminal",
	Long: `Skyglide is a terminal arcade game: tap Space to give the craft an
upward impulse, glide through the gaps in the obstacle pairs, and score a
point for every pair you pass. One collision ends the run.

Available commands:
  play     - Play in the current terminal
  scores   - View run history and best scores
  serve    - Start SSH server for remote play

Examples:
  skyglide play
  skyglide play --seed 42
  skyglide scores
  skyglide serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyglide/skyglide.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
