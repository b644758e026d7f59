package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// EnemySnapshot captures one enemy's state.
type EnemySnapshot struct {
	Pos   core.Cell
	Dir   core.Direction
	Color core.Color
}

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Tick       uint64
	Running    bool
	PlayerPos  core.Cell
	PlayerDir  core.Direction
	MouthOpen  bool
	Enemies    []EnemySnapshot
	EatenTotal int
	Respawns   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	enemies := make([]EnemySnapshot, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = EnemySnapshot{Pos: e.Position(), Dir: e.Direction(), Color: e.Color()}
	}

	return Snapshot{
		Tick:       g.tick,
		Running:    g.running,
		PlayerPos:  g.player.pos,
		PlayerDir:  g.player.dir,
		MouthOpen:  g.player.mouthOpen,
		Enemies:    enemies,
		EatenTotal: g.eatenTotal,
		Respawns:   g.respawns,
	}
}
