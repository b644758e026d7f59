package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there. The window is sized from the
config (600x400 pixels with 20 pixel cells by default).

Controls:
  Arrows     - Steer
  Q/Esc      - Quit (closing the window also quits)

Examples:
  pacman window
  pacman window --fps 20 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, settings := loadSettings()
	logger := newLogger(os.Stderr, "pacman")

	seed := resolveSeed()
	logger.Debug("starting window", "seed", seed)

	game := pacman.New(settings, seed)
	err := window.Run(game, window.Options{
		Title:    game.Title(),
		FPS:      cfg.FPS,
		CellSize: cfg.Screen.CellSize,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
}
