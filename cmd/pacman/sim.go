package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/loop"
)

var (
	flagTicks    uint64
	flagSteer    int
	flagRealtime bool
	flagBoard    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a display. The player is steered by a random
arrow key every --steer ticks, derived from the seed, so a run with a
fixed --seed is reproducible.

By default the simulation runs as fast as possible and the redirect timer
fires every (redirect seconds x fps) ticks. With --realtime the loop is
paced at --fps and the redirect timer runs on the wall clock.

Examples:
  pacman sim --ticks 1000 --seed 42
  pacman sim --ticks 300 --realtime -v
  pacman sim --seed 7 --board`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSteer, "steer", 5, "Press a random arrow key every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace the loop at --fps on the wall clock")
	simCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the final board")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, settings := loadSettings()
	logger := newLogger(os.Stderr, "pacman-sim")

	seed := resolveSeed()
	game := pacman.New(settings, seed)

	screen := core.NewScreen(settings.Grid.Cols, settings.Grid.Rows)
	opts := loop.Options{
		Source:   loop.NewRandomSteer(seed, flagSteer),
		Canvas:   core.NewScreenCanvas(screen, settings.Grid, 0, 0, 1),
		MaxTicks: flagTicks,
		OnTick: func(r core.StepResult) {
			if r.Eaten > 0 {
				logger.Debug("enemies eaten", "tick", r.State.Tick, "count", r.Eaten)
			}
			if r.Respawned {
				logger.Info("enemy batch respawned", "tick", r.State.Tick)
			}
		},
	}

	if flagRealtime {
		timer := loop.NewTickerTimer(settings.RedirectEvery)
		defer timer.Stop()
		pacer := loop.NewTickerPacer(cfg.FPS)
		defer pacer.Stop()
		opts.Timer = timer
		opts.Pacer = pacer
	} else {
		opts.Timer = &loop.EveryNTicks{N: int(settings.RedirectEvery/time.Second) * cfg.FPS}
		opts.Pacer = loop.NopPacer{}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting simulation", "seed", seed, "ticks", flagTicks, "realtime", flagRealtime)
	start := time.Now()

	stats, err := loop.Run(ctx, game, opts)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: simulation failed: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("simulation finished", "elapsed", time.Since(start).Round(time.Millisecond))

	snap := game.Snapshot()
	fmt.Printf("seed:      %d\n", seed)
	fmt.Printf("ticks:     %d\n", stats.Ticks)
	fmt.Printf("eaten:     %d\n", stats.Eaten)
	fmt.Printf("respawns:  %d\n", stats.Respawns)
	fmt.Printf("redirects: %d\n", stats.Redirects)
	fmt.Printf("player:    (%d, %d) heading %s\n", snap.PlayerPos.Col, snap.PlayerPos.Row, snap.PlayerDir)
	fmt.Printf("enemies:   %d\n", len(snap.Enemies))
	for i, e := range snap.Enemies {
		fmt.Printf("  %d: (%d, %d) %s heading %s\n", i, e.Pos.Col, e.Pos.Row, e.Color, e.Dir)
	}

	if flagBoard {
		fmt.Println(screen.String())
	}
}
