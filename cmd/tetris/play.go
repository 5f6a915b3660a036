package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagConfig string
	flagFeel   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a round in the current terminal.

Controls:
  A/D or Left/Right  - Shift piece
  S/Down             - Soft drop
  W/Up/X             - Rotate clockwise
  Z                  - Rotate counter-clockwise
  Space              - Hard drop
  T                  - Open the game feel editor
  P                  - Pause
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Feel presets:
  relaxed - Slower gravity and generous lock delay
  classic - The default timings
  fast    - Snappy auto-shift and faster gravity

Examples:
  tetris play
  tetris play --feel fast
  tetris play --config ./my-tetris.yaml
  tetris play --seed 12345`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagFeel, "feel", "", "Feel preset: relaxed, classic, fast")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFeel != "" && !config.ValidFeelPreset(flagFeel) {
		fmt.Fprintf(os.Stderr, "Error: unknown feel preset %q\n", flagFeel)
		fmt.Fprintf(os.Stderr, "Valid presets: %s\n", strings.Join(config.FeelPresetNames(), ", "))
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and feel preset before the game is created
	tetris.SetConfigPath(flagConfig)
	tetris.SetFeelPreset(flagFeel)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
