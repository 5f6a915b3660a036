// tetris is a terminal falling-block puzzle game.
//
// Usage:
//
//	tetris play              - Play in the current terminal
//	tetris serve             - Start SSH server for remote play
//	tetris scores            - Show high scores
//	tetris config            - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
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
	Use:   "tetris",
	Short: "Tetris for your terminal",
	Long: `A falling-block puzzle game played directly in the terminal,
locally or over SSH.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default config YAML

Examples:
  tetris play
  tetris play --feel fast
  tetris play --seed 12345
  tetris serve --ssh :2222
  tetris scores --ui`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
