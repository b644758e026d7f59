package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// enemySize is the side of an enemy square relative to its cell.
const enemySize = 0.5

// Enemy wanders the grid at random.
type Enemy struct {
	body
	color core.Color
	rng   *rand.Rand
}

// newEnemy spawns an enemy at a random cell with a random palette color
// and a random initial direction.
func newEnemy(rng *rand.Rand, s *Settings) *Enemy {
	cols, rows := s.spawnBounds()
	e := &Enemy{
		body: body{pos: core.Cell{
			Col: rng.Intn(max(cols, 1)),
			Row: rng.Intn(max(rows, 1)),
		}},
		color: core.ColorRed,
		rng:   rng,
	}
	if len(s.Palette) > 0 {
		e.color = s.Palette[rng.Intn(len(s.Palette))]
	}
	e.SetRandomDirection()
	return e
}

// spawnBatch creates a fresh batch of the configured size.
func spawnBatch(rng *rand.Rand, s *Settings) []*Enemy {
	n := s.batchSize()
	batch := make([]*Enemy, 0, n)
	for range n {
		batch = append(batch, newEnemy(rng, s))
	}
	return batch
}

// randomDirection picks an x step from {-1,0,1}. A zero x step forces a y
// step from {-1,1}; a non-zero x step forces y to zero. The result is never
// stationary and never diagonal.
func randomDirection(rng *rand.Rand) core.Direction {
	dx := rng.Intn(3) - 1
	if dx != 0 {
		return core.Direction{DX: dx}
	}
	dy := -1
	if rng.Intn(2) == 1 {
		dy = 1
	}
	return core.Direction{DY: dy}
}

// SetRandomDirection re-rolls the enemy's direction.
func (e *Enemy) SetRandomDirection() {
	e.dir = randomDirection(e.rng)
}

// Move steps the enemy and re-rolls its direction whenever it ends up on
// the outer boundary. An enemy pinned against an edge re-rolls every tick.
func (e *Enemy) Move(g core.Grid) {
	e.step(g)
	if g.OnEdge(e.pos) {
		e.SetRandomDirection()
	}
}

// Draw renders a small square centered in the enemy's cell.
func (e *Enemy) Draw(dst core.Canvas) {
	dst.FillSquare(e.pos, enemySize, e.color)
}

// Color returns the palette color chosen at spawn.
func (e *Enemy) Color() core.Color {
	return e.color
}
