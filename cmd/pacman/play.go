package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Steer
  Q/Esc/Ctrl+C - Quit

The terminal needs room for the board (62x22) plus a status and help line.
Logs are discarded unless --log-file is given, since the game owns the screen.

Examples:
  pacman play
  pacman play --seed 42
  pacman play --enemies 8 --redirect 2
  pacman play --log-file ./pacman.log -v`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, settings := loadSettings()

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "pacman")

	// Terminal size is known up front; later changes arrive as resize messages
	width, height := 0, 0
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	seed := resolveSeed()
	logger.Info("starting game", "seed", seed, "fps", cfg.FPS, "enemies", settings.EnemyCount)

	game := pacman.New(settings, seed)
	err := tui.Run(game, tui.ModelOptions{
		FPS:    cfg.FPS,
		Width:  width,
		Height: height,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	state := game.State()
	logger.Info("game over", "ticks", state.Tick, "eaten", game.Snapshot().EatenTotal)
}
