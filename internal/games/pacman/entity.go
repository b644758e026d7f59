// Package pacman implements the grid chase game: a player-steered
// character, randomly wandering enemies, and the tick orchestrator that
// moves them, resolves contacts, and respawns emptied batches.
package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// Mover is the capability shared by the player and the enemies.
type Mover interface {
	Move(g core.Grid)
	Draw(dst core.Canvas)
	Position() core.Cell
}

// body holds the position and direction every mover carries.
type body struct {
	pos core.Cell
	dir core.Direction
}

// Position returns the current cell.
func (b *body) Position() core.Cell {
	return b.pos
}

// Direction returns the current step direction.
func (b *body) Direction() core.Direction {
	return b.dir
}

// step advances one cell, clamped to the grid.
func (b *body) step(g core.Grid) {
	b.pos = core.Move(g, b.pos, b.dir)
}

var (
	_ Mover = (*Player)(nil)
	_ Mover = (*Enemy)(nil)
)
