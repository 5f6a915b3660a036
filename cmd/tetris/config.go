package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the default game config in YAML form.

Save it to customize the game feel:
  tetris config > my-tetris.yaml
  tetris play --config ./my-tetris.yaml

Or install it as your personal default:
  mkdir -p ~/.tetris/configs
  tetris config > ~/.tetris/configs/tetris.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	fmt.Print(string(config.DefaultYAML()))
}
