package pacman

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// recordingCanvas counts draw calls for render tests.
type recordingCanvas struct {
	clears  int
	squares []core.Cell
	arcs    []arcCall
	order   []string
}

type arcCall struct {
	cell       core.Cell
	start, end float64
}

func (c *recordingCanvas) Clear() {
	c.clears++
	c.order = append(c.order, "clear")
}

func (c *recordingCanvas) FillSquare(cell core.Cell, _ float64, _ core.Color) {
	c.squares = append(c.squares, cell)
	c.order = append(c.order, "square")
}

func (c *recordingCanvas) FillArc(cell core.Cell, start, end float64, _ core.Color) {
	c.arcs = append(c.arcs, arcCall{cell: cell, start: start, end: end})
	c.order = append(c.order, "arc")
}

func (c *recordingCanvas) draws() int {
	return len(c.squares) + len(c.arcs)
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	s := DefaultSettings()
	return New(&s, seed)
}

// placeEnemies replaces the batch with enemies at the given cells.
func placeEnemies(g *Game, cells ...core.Cell) {
	g.enemies = g.enemies[:0]
	for _, c := range cells {
		g.enemies = append(g.enemies, &Enemy{
			body:  body{pos: c, dir: core.DirRight},
			color: core.ColorRed,
			rng:   g.rng,
		})
	}
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, 1)

	state := g.State()
	if !state.Running {
		t.Error("Game should start running")
	}
	if state.Enemies != 4 {
		t.Errorf("Enemies = %d, expected 4", state.Enemies)
	}
	if pos := g.Player().Position(); pos != (core.Cell{Col: 15, Row: 10}) {
		t.Errorf("Player starts at %v, expected grid center (15, 10)", pos)
	}
	if !g.Player().Direction().IsZero() {
		t.Errorf("Player should start still, got %v", g.Player().Direction())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	for i := 0; i < 200; i++ {
		in := core.NewInputFrame()
		switch {
		case i == 10:
			in.Set(core.ActionLeft)
		case i == 50:
			in.Set(core.ActionDown)
		case i%50 == 0:
			in.Set(core.ActionRedirect)
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Tick != s2.Tick || s1.PlayerPos != s2.PlayerPos || s1.EatenTotal != s2.EatenTotal || s1.Respawns != s2.Respawns {
		t.Fatalf("Snapshots diverged: %+v vs %+v", s1, s2)
	}
	if len(s1.Enemies) != len(s2.Enemies) {
		t.Fatalf("Enemy count mismatch: %d vs %d", len(s1.Enemies), len(s2.Enemies))
	}
	for i := range s1.Enemies {
		if s1.Enemies[i] != s2.Enemies[i] {
			t.Errorf("Enemy %d mismatch: %+v vs %+v", i, s1.Enemies[i], s2.Enemies[i])
		}
	}
}

func TestCollisionNeighbourhood(t *testing.T) {
	tests := []struct {
		name    string
		enemy   core.Cell
		removed bool
	}{
		{"same cell", core.Cell{Col: 10, Row: 10}, true},
		{"diagonal", core.Cell{Col: 11, Row: 11}, true},
		{"opposite diagonal", core.Cell{Col: 9, Row: 9}, true},
		{"left", core.Cell{Col: 9, Row: 10}, true},
		{"column distance 2", core.Cell{Col: 12, Row: 10}, false},
		{"row distance 2", core.Cell{Col: 10, Row: 8}, false},
		{"far", core.Cell{Col: 0, Row: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 7)
			g.player.pos = core.Cell{Col: 10, Row: 10}
			// A far-away enemy keeps the batch from emptying
			placeEnemies(g, tc.enemy, core.Cell{Col: 25, Row: 18})

			eaten, respawned := g.resolveCollisions()

			wantEaten := 0
			if tc.removed {
				wantEaten = 1
			}
			if eaten != wantEaten {
				t.Errorf("eaten = %d, expected %d", eaten, wantEaten)
			}
			if respawned {
				t.Error("batch should not respawn while an enemy survives")
			}
		})
	}
}

func TestCollisionRemovesAdjacentEnemiesInOnePass(t *testing.T) {
	g := newTestGame(t, 7)
	g.player.pos = core.Cell{Col: 10, Row: 10}

	// Consecutive reachable enemies would be skipped by removing in place.
	placeEnemies(g,
		core.Cell{Col: 11, Row: 11},
		core.Cell{Col: 10, Row: 10},
		core.Cell{Col: 9, Row: 9},
		core.Cell{Col: 12, Row: 10},
		core.Cell{Col: 10, Row: 11},
	)

	eaten, respawned := g.resolveCollisions()
	if eaten != 4 {
		t.Errorf("eaten = %d, expected 4", eaten)
	}
	if respawned {
		t.Error("one enemy remains, batch should not respawn")
	}
	left := g.Enemies()
	if len(left) != 1 || left[0].Position() != (core.Cell{Col: 12, Row: 10}) {
		t.Errorf("remaining enemies = %v, expected only (12, 10)", enemyCells(left))
	}
}

func TestRespawnAfterBatchCleared(t *testing.T) {
	g := newTestGame(t, 99)
	center := g.Player().Position()

	// Stacked on a still player: after one step every enemy is within reach.
	placeEnemies(g, center, center, center, center)

	res := g.Step(core.NewInputFrame())
	if res.Eaten != 4 {
		t.Errorf("Eaten = %d, expected 4", res.Eaten)
	}
	if !res.Respawned {
		t.Error("Emptied batch should respawn")
	}
	if res.State.Enemies != 4 {
		t.Errorf("Enemies after respawn = %d, expected configured count 4", res.State.Enemies)
	}

	grid := g.Settings().Grid
	for _, e := range g.Enemies() {
		if !grid.Contains(e.Position()) {
			t.Errorf("respawned enemy outside grid at %v", e.Position())
		}
		if !validEnemyDirection(e.Direction()) {
			t.Errorf("respawned enemy has invalid direction %v", e.Direction())
		}
	}
	if snap := g.Snapshot(); snap.Respawns != 1 || snap.EatenTotal != 4 {
		t.Errorf("Snapshot counters = respawns %d eaten %d, expected 1 and 4", snap.Respawns, snap.EatenTotal)
	}
}

func TestRespawnNeverLeavesEmptyBatch(t *testing.T) {
	s := DefaultSettings()
	s.EnemyCount = 0
	g := New(&s, 3)

	if g.State().Enemies < 1 {
		t.Fatal("A zero enemy count should still spawn one enemy")
	}

	center := g.Player().Position()
	placeEnemies(g, center)
	g.Step(core.NewInputFrame())
	if g.State().Enemies < 1 {
		t.Error("Batch must be replenished after being cleared")
	}
}

func TestQuitStopsGame(t *testing.T) {
	g := newTestGame(t, 5)
	g.Step(core.NewInputFrame())
	before := g.Snapshot()

	res := g.Step(core.NewInputFrame(core.ActionRight, core.ActionQuit, core.ActionLeft))
	if res.State.Running {
		t.Fatal("Quit should stop the game")
	}

	after := g.Snapshot()
	if after.Tick != before.Tick {
		t.Errorf("Quit tick should not simulate, tick %d -> %d", before.Tick, after.Tick)
	}
	if after.PlayerPos != before.PlayerPos {
		t.Error("Nothing should move on the quit tick")
	}
	if after.PlayerDir != core.DirRight {
		t.Errorf("Events before quit still apply, direction = %v", after.PlayerDir)
	}

	// Further ticks and draws are no-ops
	for range 5 {
		g.Step(core.NewInputFrame(core.ActionDown))
	}
	if g.State().Tick != before.Tick {
		t.Error("Stopped game should not tick")
	}

	canvas := &recordingCanvas{}
	g.Render(canvas)
	if canvas.draws() != 0 || canvas.clears != 0 {
		t.Errorf("Stopped game drew %d shapes", canvas.draws())
	}
}

func TestPlayerDirectionOverwrite(t *testing.T) {
	t.Run("same tick", func(t *testing.T) {
		g := newTestGame(t, 1)
		g.Step(core.NewInputFrame(core.ActionUp, core.ActionLeft))
		if got := g.Player().Direction(); got != core.DirLeft {
			t.Errorf("direction = %v, expected left (-1,0)", got)
		}
	})

	t.Run("consecutive ticks", func(t *testing.T) {
		g := newTestGame(t, 1)
		g.Step(core.NewInputFrame(core.ActionUp))
		g.Step(core.NewInputFrame(core.ActionLeft))
		if got := g.Player().Direction(); got != (core.Direction{DX: -1, DY: 0}) {
			t.Errorf("direction = %v, expected (-1,0)", got)
		}
	})
}

func TestPlayerMovesAfterInput(t *testing.T) {
	g := newTestGame(t, 1)
	start := g.Player().Position()

	g.Step(core.NewInputFrame(core.ActionRight))
	g.Step(core.NewInputFrame())

	want := core.Cell{Col: start.Col + 2, Row: start.Row}
	if got := g.Player().Position(); got != want {
		t.Errorf("player at %v, expected %v", got, want)
	}
}

func TestUnknownActionIgnored(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(core.NewInputFrame(core.Action(99)))

	if !g.State().Running {
		t.Error("Unknown action should not stop the game")
	}
	if !g.Player().Direction().IsZero() {
		t.Error("Unknown action should not steer the player")
	}
}

func TestRedirectRerollsEveryEnemy(t *testing.T) {
	g := newTestGame(t, 21)
	// Interior enemies far from the player; a diagonal marks "not re-rolled".
	placeEnemies(g,
		core.Cell{Col: 3, Row: 3},
		core.Cell{Col: 5, Row: 15},
		core.Cell{Col: 25, Row: 4},
	)
	diag := core.Direction{DX: 1, DY: 1}
	for _, e := range g.enemies {
		e.dir = diag
	}

	g.Step(core.NewInputFrame())
	for _, e := range g.enemies {
		if e.dir != diag {
			t.Fatalf("interior enemy re-rolled without a redirect: %v", e.dir)
		}
	}

	g.Step(core.NewInputFrame(core.ActionRedirect))
	for i, e := range g.enemies {
		if !validEnemyDirection(e.dir) {
			t.Errorf("enemy %d not re-rolled by redirect, direction %v", i, e.dir)
		}
	}
}

func TestRenderOrder(t *testing.T) {
	g := newTestGame(t, 8)
	canvas := &recordingCanvas{}

	g.Render(canvas)

	if canvas.clears != 1 || canvas.order[0] != "clear" {
		t.Fatalf("Render should clear first, order = %v", canvas.order)
	}
	if len(canvas.squares) != 4 || len(canvas.arcs) != 1 {
		t.Fatalf("Render drew %d squares and %d arcs, expected 4 and 1", len(canvas.squares), len(canvas.arcs))
	}
	if last := canvas.order[len(canvas.order)-1]; last != "arc" {
		t.Errorf("Player must be drawn last, got %q", last)
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.DefaultPacmanConfig()
	cfg.Enemies.Count = 6
	cfg.Enemies.Spawn = config.SpawnEdgeInclusive
	cfg.Enemies.Palette = []string{"yellow", "Blue"}

	s, err := SettingsFromConfig(cfg)
	if err != nil {
		t.Fatalf("SettingsFromConfig() failed: %v", err)
	}
	if s.Grid != (core.Grid{Cols: 30, Rows: 20}) || s.EnemyCount != 6 || s.Spawn != config.SpawnEdgeInclusive {
		t.Errorf("settings = %+v", s)
	}
	if len(s.Palette) != 2 || s.Palette[0] != core.ColorYellow || s.Palette[1] != core.ColorBlue {
		t.Errorf("palette = %v, expected [yellow blue]", s.Palette)
	}

	cfg.FPS = 0
	if _, err := SettingsFromConfig(cfg); err == nil {
		t.Error("invalid config should be rejected")
	}
}

func validEnemyDirection(d core.Direction) bool {
	return (d.DX != 0) != (d.DY != 0)
}

func enemyCells(es []*Enemy) []core.Cell {
	cells := make([]core.Cell, len(es))
	for i, e := range es {
		cells[i] = e.Position()
	}
	return cells
}

func TestRandomDirectionDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seen := make(map[core.Direction]int)

	for range 2000 {
		d := randomDirection(rng)
		if !validEnemyDirection(d) {
			t.Fatalf("randomDirection() = %v, expected exactly one non-zero axis", d)
		}
		seen[d]++
	}

	for _, d := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		if seen[d] == 0 {
			t.Errorf("direction %v never produced", d)
		}
	}
	if len(seen) != 4 {
		t.Errorf("produced %d distinct directions, expected 4", len(seen))
	}
}

func TestSnapshotCarriesEnemyColors(t *testing.T) {
	s := DefaultSettings()
	g := New(&s, 11)

	snap := g.Snapshot()
	if len(snap.Enemies) != len(g.Enemies()) {
		t.Fatalf("snapshot enemies = %d, expected %d", len(snap.Enemies), len(g.Enemies()))
	}
	for i, e := range g.Enemies() {
		got := snap.Enemies[i]
		if got.Color != e.Color() || got.Pos != e.Position() || got.Dir != e.Direction() {
			t.Errorf("enemy %d snapshot = %+v, expected %v at %v moving %v", i, got, e.Color(), e.Position(), e.Direction())
		}
	}
}
