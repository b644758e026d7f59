package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// Mouth sweep angles in degrees.
const (
	mouthOpenStart = 30
	mouthOpenEnd   = 330
)

// Player is the character steered by directional input.
type Player struct {
	body
	mouthOpen bool
}

// newPlayer places the player at the grid center, standing still.
func newPlayer(g core.Grid) *Player {
	return &Player{
		body:      body{pos: g.Center()},
		mouthOpen: true,
	}
}

// Move advances the player one step in its current direction.
func (p *Player) Move(g core.Grid) {
	p.step(g)
}

// SetDirection applies a directional action, replacing the current
// direction outright. Returns false for non-directional actions.
func (p *Player) SetDirection(a core.Action) bool {
	dir, ok := a.Direction()
	if !ok {
		return false
	}
	p.dir = dir
	return true
}

// Draw renders the player and toggles the mouth for the next frame.
// The animation follows draw calls, not movement or elapsed time.
func (p *Player) Draw(dst core.Canvas) {
	if p.mouthOpen {
		dst.FillArc(p.pos, mouthOpenStart, mouthOpenEnd, core.ColorYellow)
	} else {
		dst.FillArc(p.pos, 0, 360, core.ColorYellow)
	}
	p.mouthOpen = !p.mouthOpen
}

// MouthOpen reports whether the next draw shows the mouth open.
func (p *Player) MouthOpen() bool {
	return p.mouthOpen
}
