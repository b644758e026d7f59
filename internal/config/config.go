// Package config provides YAML-based game configuration loading and
// validation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SpawnMode selects the coordinate range used when placing new enemies.
type SpawnMode string

const (
	// SpawnClamped draws spawn cells from [0,Cols-1]x[0,Rows-1].
	SpawnClamped SpawnMode = "clamped"

	// SpawnEdgeInclusive draws from [0,Cols]x[0,Rows], so a fresh enemy can
	// start one cell past the right or bottom edge. The first move clamps it.
	SpawnEdgeInclusive SpawnMode = "edge_inclusive"
)

// PacmanConfig contains all configuration for the game.
type PacmanConfig struct {
	Screen  ScreenConfig `yaml:"screen"`
	FPS     int          `yaml:"fps"`
	Enemies EnemyConfig  `yaml:"enemies"`
}

// ScreenConfig defines the playfield size in pixels.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// EnemyConfig defines enemy batch parameters.
type EnemyConfig struct {
	Count           int       `yaml:"count"`
	RedirectSeconds int       `yaml:"redirect_seconds"`
	Spawn           SpawnMode `yaml:"spawn"`
	Palette         []string  `yaml:"palette"`
}

// Grid returns the playfield dimensions in cells.
func (c PacmanConfig) Grid() core.Grid {
	return core.NewGrid(c.Screen.Width, c.Screen.Height, c.Screen.CellSize)
}

// RedirectInterval returns the redirect timer period.
func (c PacmanConfig) RedirectInterval() time.Duration {
	return time.Duration(c.Enemies.RedirectSeconds) * time.Second
}

// minGridSide keeps at least one interior cell on each axis.
const minGridSide = 3

// Validate checks the config for values the game cannot run with.
func (c PacmanConfig) Validate() error {
	s := c.Screen
	if s.CellSize <= 0 {
		return fmt.Errorf("%w: screen.cell_size must be positive, got %d", ErrInvalid, s.CellSize)
	}
	if s.Width%s.CellSize != 0 || s.Height%s.CellSize != 0 {
		return fmt.Errorf("%w: screen %dx%d is not a multiple of cell_size %d", ErrInvalid, s.Width, s.Height, s.CellSize)
	}
	if g := c.Grid(); g.Cols < minGridSide || g.Rows < minGridSide {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d", ErrInvalid, g.Cols, g.Rows, minGridSide, minGridSide)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}
	if c.Enemies.Count < 1 {
		return fmt.Errorf("%w: enemies.count must be at least 1, got %d", ErrInvalid, c.Enemies.Count)
	}
	if c.Enemies.RedirectSeconds < 1 {
		return fmt.Errorf("%w: enemies.redirect_seconds must be at least 1, got %d", ErrInvalid, c.Enemies.RedirectSeconds)
	}
	switch c.Enemies.Spawn {
	case SpawnClamped, SpawnEdgeInclusive:
	default:
		return fmt.Errorf("%w: unknown enemies.spawn %q", ErrInvalid, c.Enemies.Spawn)
	}
	if len(c.Enemies.Palette) == 0 {
		return fmt.Errorf("%w: enemies.palette is empty", ErrInvalid)
	}
	for _, name := range c.Enemies.Palette {
		clr, ok := core.ParseColor(name)
		if !ok {
			return fmt.Errorf("%w: unknown palette color %q", ErrInvalid, name)
		}
		if !clr.Visible() {
			return fmt.Errorf("%w: palette color %q is not visible on the board", ErrInvalid, name)
		}
	}
	return nil
}
