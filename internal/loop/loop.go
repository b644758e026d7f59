// Package loop runs a game on a single cooperative loop: drain events,
// step, render, then wait for the next frame. It has no rendering or
// input backend of its own; frontends provide those through small
// interfaces.
package loop

import (
	"context"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Game is the simulation the loop drives.
type Game interface {
	Step(in core.InputFrame) core.StepResult
	Render(dst core.Canvas)
	State() core.GameState
}

// EventSource yields the events that arrived since the last poll.
// Poll must not block.
type EventSource interface {
	Poll() []core.Action
}

// RedirectTimer reports whether the periodic timer fired since the last
// poll. Multiple fires between polls are reported once.
type RedirectTimer interface {
	Fired() bool
}

// Pacer blocks until the next frame is due.
type Pacer interface {
	Wait(ctx context.Context) error
}

// TickHook observes every step result, for logging and stats.
type TickHook func(core.StepResult)

// Options configures a Run.
type Options struct {
	Source EventSource
	Timer  RedirectTimer
	Canvas core.Canvas
	Pacer  Pacer
	OnTick TickHook

	// MaxTicks stops the loop after this many iterations; 0 means no limit.
	MaxTicks uint64
}

// Stats summarizes a finished run.
type Stats struct {
	Ticks     uint64
	Eaten     int
	Respawns  int
	Redirects int
	Quit      bool
}

// Run drives the game until it stops, the context is cancelled, or
// MaxTicks is reached. A context error is returned as is; a quit or tick
// limit returns nil.
func Run(ctx context.Context, g Game, opts Options) (Stats, error) {
	var stats Stats
	frame := core.NewInputFrame()

	for g.State().Running {
		if opts.MaxTicks > 0 && stats.Ticks >= opts.MaxTicks {
			return stats, nil
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		frame.Clear()
		if opts.Source != nil {
			for _, a := range opts.Source.Poll() {
				frame.Set(a)
			}
		}
		if opts.Timer != nil && opts.Timer.Fired() {
			frame.Set(core.ActionRedirect)
			stats.Redirects++
		}

		res := g.Step(frame)
		stats.Ticks++
		stats.Eaten += res.Eaten
		if res.Respawned {
			stats.Respawns++
		}
		if opts.OnTick != nil {
			opts.OnTick(res)
		}
		if !res.State.Running {
			stats.Quit = true
			return stats, nil
		}

		if opts.Canvas != nil {
			g.Render(opts.Canvas)
		}
		if opts.Pacer != nil {
			if err := opts.Pacer.Wait(ctx); err != nil {
				return stats, err
			}
		}
	}

	stats.Quit = true
	return stats, nil
}
