// Package window runs the game in a desktop window using ebiten. The
// window is sized in pixels; each grid cell is a square of CellSize pixels.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/loop"
)

// Options configures the window frontend.
type Options struct {
	Title    string
	FPS      int
	CellSize int
	Logger   *log.Logger
}

// Window adapts a Game to ebiten's Update/Draw/Layout cycle. Ebiten
// calls Update at its default rate; input is gathered on every call and
// the game steps once every stepEvery calls, so a key tapped between
// steps still reaches the next one. The board is redrawn into an
// offscreen image once per step and Draw only presents it.
type Window struct {
	game   *pacman.Game
	source loop.EventSource
	timer  loop.RedirectTimer
	stop   func()
	canvas core.Canvas
	logger *log.Logger

	cellPx        int
	width, height int

	stepEvery int
	updates   int

	frame core.InputFrame
	board *ebiten.Image
}

// New creates a window for the game.
func New(game *pacman.Game, opts Options) *Window {
	grid := game.Settings().Grid
	cellPx := max(opts.CellSize, 1)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Window{
		game:      game,
		source:    &keyPoller{},
		logger:    logger,
		cellPx:    cellPx,
		width:     grid.Cols * cellPx,
		height:    grid.Rows * cellPx,
		stepEvery: stepInterval(opts.FPS),
		frame:     core.NewInputFrame(),
	}
}

// stepInterval returns how many ebiten updates make one game tick.
// Rates above the ebiten update rate step on every update.
func stepInterval(fps int) int {
	return max(ebiten.DefaultTPS/max(fps, 1), 1)
}

// Update gathers input and, once every stepEvery calls, runs one tick.
func (w *Window) Update() error {
	for _, a := range w.source.Poll() {
		w.frame.Set(a)
	}

	w.updates++
	if w.updates < w.stepEvery {
		return nil
	}
	w.updates = 0
	return w.step()
}

// step feeds the gathered events to the game, then renders the board.
func (w *Window) step() error {
	if w.timer == nil {
		t := loop.NewTickerTimer(w.game.Settings().RedirectEvery)
		w.timer, w.stop = t, t.Stop
	}
	if w.timer.Fired() {
		w.frame.Set(core.ActionRedirect)
	}

	result := w.game.Step(w.frame)
	w.frame.Clear()
	if !result.State.Running {
		if w.stop != nil {
			w.stop()
		}
		w.logger.Info("window closed", "tick", result.State.Tick)
		return ebiten.Termination
	}
	if result.Respawned {
		w.logger.Info("enemy batch respawned", "tick", result.State.Tick)
	}

	if w.canvas == nil {
		w.board = ebiten.NewImage(w.width, w.height)
		w.canvas = newImageCanvas(w.board, w.cellPx)
	}
	w.game.Render(w.canvas)
	return nil
}

// Draw presents the last rendered board.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.board == nil {
		return
	}
	screen.DrawImage(w.board, nil)
}

// Layout keeps the logical screen at the board size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Size returns the board size in pixels.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// keyPoller reports a close request and the keys pressed since the
// previous update.
type keyPoller struct {
	keys    []ebiten.Key
	actions []core.Action
}

func (p *keyPoller) Poll() []core.Action {
	p.actions = p.actions[:0]
	if ebiten.IsWindowBeingClosed() {
		p.actions = append(p.actions, core.ActionQuit)
	}
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		p.actions = append(p.actions, keyAction(k))
	}
	return p.actions
}

// keyAction maps a pressed key to a game action.
func keyAction(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeyArrowUp:
		return core.ActionUp
	case ebiten.KeyArrowDown:
		return core.ActionDown
	case ebiten.KeyArrowLeft:
		return core.ActionLeft
	case ebiten.KeyArrowRight:
		return core.ActionRight
	case ebiten.KeyQ, ebiten.KeyEscape:
		return core.ActionQuit
	}
	return core.ActionNone
}

// Run opens the window and blocks until the game stops.
func Run(game *pacman.Game, opts Options) error {
	w := New(game, opts)

	ebiten.SetWindowSize(w.Size())
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowClosingHandled(true)

	w.logger.Info("opening window", "width", w.width, "height", w.height,
		"fps", opts.FPS, "updates_per_tick", w.stepEvery)
	return ebiten.RunGame(w)
}
