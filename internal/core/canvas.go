package core

// Canvas is the drawing surface entities render into. Coordinates are
// grid cells; each frontend decides how a cell maps to pixels or runes.
type Canvas interface {
	// Clear erases the playfield.
	Clear()

	// FillSquare draws a filled square centered in the cell.
	// Size is the side length as a fraction of the cell (0, 1].
	FillSquare(cell Cell, size float64, color Color)

	// FillArc draws a filled circular sector inscribed in the cell,
	// sweeping from startDeg to endDeg. A 0..360 sweep is a full circle.
	FillArc(cell Cell, startDeg, endDeg float64, color Color)
}

// IsFullCircle reports whether an arc sweep covers the whole circle.
func IsFullCircle(startDeg, endDeg float64) bool {
	return endDeg-startDeg >= 360
}

// Glyphs used by ScreenCanvas.
const (
	GlyphSquare    = '■'
	GlyphBlock     = '█'
	GlyphArcOpen   = 'C'
	GlyphArcClosed = 'O'
)

// ScreenCanvas maps grid cells onto a character Screen.
// Each cell occupies CellWidth columns and one row, starting at (X, Y).
type ScreenCanvas struct {
	Screen    *Screen
	Grid      Grid
	X, Y      int
	CellWidth int
}

// NewScreenCanvas creates a canvas that draws the grid at the given offset.
func NewScreenCanvas(s *Screen, g Grid, x, y, cellWidth int) *ScreenCanvas {
	return &ScreenCanvas{Screen: s, Grid: g, X: x, Y: y, CellWidth: max(cellWidth, 1)}
}

// Clear blanks the grid area of the screen.
func (c *ScreenCanvas) Clear() {
	c.Screen.DrawRect(NewRect(c.X, c.Y, c.Grid.Cols*c.CellWidth, c.Grid.Rows), ' ')
}

// FillSquare draws a block glyph for full-size squares and a small square otherwise.
func (c *ScreenCanvas) FillSquare(cell Cell, size float64, color Color) {
	glyph := GlyphSquare
	if size >= 1 {
		glyph = GlyphBlock
	}
	c.set(cell, glyph, color)
}

// FillArc draws an open or closed glyph depending on the sweep.
func (c *ScreenCanvas) FillArc(cell Cell, startDeg, endDeg float64, color Color) {
	glyph := GlyphArcOpen
	if IsFullCircle(startDeg, endDeg) {
		glyph = GlyphArcClosed
	}
	c.set(cell, glyph, color)
}

// Origin returns the screen position of a cell's first column.
func (c *ScreenCanvas) Origin(cell Cell) (int, int) {
	return c.X + cell.Col*c.CellWidth, c.Y + cell.Row
}

func (c *ScreenCanvas) set(cell Cell, glyph rune, color Color) {
	if !c.Grid.Contains(cell) {
		return
	}
	x, y := c.Origin(cell)
	c.Screen.SetCell(x, y, glyph, color)
}
