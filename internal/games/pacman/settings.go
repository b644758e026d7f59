package pacman

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Settings is the immutable game configuration. It is built once at
// startup and shared by reference with the Game.
type Settings struct {
	Grid          core.Grid
	EnemyCount    int
	RedirectEvery time.Duration
	Palette       []core.Color
	Spawn         config.SpawnMode
}

// DefaultSettings returns the classic setup: a 30x20 grid, four enemies,
// and a five second redirect timer.
func DefaultSettings() Settings {
	return Settings{
		Grid:          core.Grid{Cols: 30, Rows: 20},
		EnemyCount:    4,
		RedirectEvery: 5 * time.Second,
		Palette:       []core.Color{core.ColorRed, core.ColorGreen, core.ColorBlue},
		Spawn:         config.SpawnClamped,
	}
}

// SettingsFromConfig converts a loaded YAML config into game settings.
func SettingsFromConfig(cfg config.PacmanConfig) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}

	palette := make([]core.Color, 0, len(cfg.Enemies.Palette))
	for _, name := range cfg.Enemies.Palette {
		c, ok := core.ParseColor(name)
		if !ok {
			return Settings{}, fmt.Errorf("pacman: unknown palette color %q", name)
		}
		palette = append(palette, c)
	}

	return Settings{
		Grid:          cfg.Grid(),
		EnemyCount:    cfg.Enemies.Count,
		RedirectEvery: cfg.RedirectInterval(),
		Palette:       palette,
		Spawn:         cfg.Enemies.Spawn,
	}, nil
}

// spawnBounds returns the exclusive upper bounds for spawn coordinates.
func (s *Settings) spawnBounds() (cols, rows int) {
	if s.Spawn == config.SpawnEdgeInclusive {
		return s.Grid.Cols + 1, s.Grid.Rows + 1
	}
	return s.Grid.Cols, s.Grid.Rows
}

// batchSize is the configured enemy count, never less than one,
// so a respawn always repopulates the board.
func (s *Settings) batchSize() int {
	return max(s.EnemyCount, 1)
}
