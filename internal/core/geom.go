// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or ebiten)
// to keep game logic pure and testable.
package core

// Cell is one discrete (column, row) unit of the playfield.
type Cell struct {
	Col, Row int
}

// Add returns the cell offset by a direction step.
func (c Cell) Add(d Direction) Cell {
	return Cell{Col: c.Col + d.DX, Row: c.Row + d.DY}
}

// Direction is a per-tick step along the grid axes.
// Each component is one of -1, 0, 1.
type Direction struct {
	DX, DY int
}

// Axis-aligned unit directions.
var (
	DirNone  = Direction{}
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// IsZero reports whether the direction produces no motion.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "diagonal"
	}
}

// Grid describes the bounds of the playfield in cells.
type Grid struct {
	Cols, Rows int
}

// NewGrid derives a grid from pixel dimensions and a cell size.
func NewGrid(width, height, cellSize int) Grid {
	if cellSize <= 0 {
		return Grid{}
	}
	return Grid{Cols: width / cellSize, Rows: height / cellSize}
}

// Contains returns true if the cell lies within [0,Cols-1]x[0,Rows-1].
func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// OnEdge returns true if the cell lies on the outer boundary of the grid.
func (g Grid) OnEdge(c Cell) bool {
	return c.Col == 0 || c.Col == g.Cols-1 || c.Row == 0 || c.Row == g.Rows-1
}

// Clamp restricts a cell to the grid bounds componentwise.
func (g Grid) Clamp(c Cell) Cell {
	return Cell{
		Col: Clamp(c.Col, 0, g.Cols-1),
		Row: Clamp(c.Row, 0, g.Rows-1),
	}
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Cell {
	return Cell{Col: g.Cols / 2, Row: g.Rows / 2}
}

// Move applies one step in the given direction and clamps the result.
// There is no wraparound: a boundary stops motion along that axis.
func Move(g Grid, c Cell, d Direction) Cell {
	return g.Clamp(c.Add(d))
}

// Rect represents an axis-aligned rectangle on the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
