package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// eatRadius is the Chebyshev distance at which the player eats an enemy.
const eatRadius = 1

// Game owns the player and the enemy batch and advances them one tick at a time.
type Game struct {
	settings *Settings
	rng      *rand.Rand
	tick     uint64
	running  bool

	player  *Player
	enemies []*Enemy

	// Session counters
	eatenTotal int
	respawns   int
}

// New creates a running game with a full enemy batch.
func New(settings *Settings, seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))
	return &Game{
		settings: settings,
		rng:      rng,
		running:  true,
		player:   newPlayer(settings.Grid),
		enemies:  spawnBatch(rng, settings),
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Settings returns the configuration the game was built with.
func (g *Game) Settings() *Settings {
	return g.settings
}

// Step advances the game by one tick.
//
// Events are processed in arrival order. A quit stops the game
// immediately and skips the rest of the tick; once stopped, Step does
// nothing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.running {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		if a == core.ActionQuit {
			g.running = false
			return core.StepResult{State: g.State()}
		}
		g.handleAction(a)
	}

	g.tick++
	g.moveAll()
	eaten, respawned := g.resolveCollisions()

	return core.StepResult{
		State:     g.State(),
		Eaten:     eaten,
		Respawned: respawned,
	}
}

// handleAction applies a single non-quit event. Unknown actions are ignored.
func (g *Game) handleAction(a core.Action) {
	switch a {
	case core.ActionRedirect:
		for _, e := range g.enemies {
			e.SetRandomDirection()
		}
	default:
		g.player.SetDirection(a)
	}
}

// moveAll moves every enemy, then the player.
func (g *Game) moveAll() {
	for _, e := range g.enemies {
		e.Move(g.settings.Grid)
	}
	g.player.Move(g.settings.Grid)
}

// resolveCollisions removes every enemy within reach of the player and
// replaces the batch wholesale once it is empty.
func (g *Game) resolveCollisions() (eaten int, respawned bool) {
	p := g.player.Position()

	// Filter into a new slice so removal never disturbs the scan.
	alive := make([]*Enemy, 0, len(g.enemies))
	for _, e := range g.enemies {
		if inReach(p, e.Position()) {
			eaten++
			continue
		}
		alive = append(alive, e)
	}
	g.enemies = alive
	g.eatenTotal += eaten

	if len(g.enemies) == 0 {
		g.enemies = spawnBatch(g.rng, g.settings)
		g.respawns++
		respawned = true
	}
	return eaten, respawned
}

// inReach reports whether a sits in the 3x3 neighbourhood around b.
func inReach(a, b core.Cell) bool {
	return core.Abs(a.Col-b.Col) <= eatRadius && core.Abs(a.Row-b.Row) <= eatRadius
}

// Render draws enemies first and the player last so the player is never
// hidden. A stopped game draws nothing.
func (g *Game) Render(dst core.Canvas) {
	if !g.running {
		return
	}
	dst.Clear()
	for _, e := range g.enemies {
		e.Draw(dst)
	}
	g.player.Draw(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Running: g.running,
		Tick:    g.tick,
		Enemies: len(g.enemies),
	}
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Enemies returns a copy of the current enemy batch.
func (g *Game) Enemies() []*Enemy {
	return append([]*Enemy(nil), g.enemies...)
}
