package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

var palette = map[core.Color]color.RGBA{
	core.ColorBlack:  {0, 0, 0, 255},
	core.ColorRed:    {255, 0, 0, 255},
	core.ColorGreen:  {0, 255, 0, 255},
	core.ColorYellow: {255, 255, 0, 255},
	core.ColorBlue:   {0, 0, 255, 255},
	core.ColorWhite:  {255, 255, 255, 255},
	core.ColorGray:   {128, 128, 128, 255},
}

// rgba maps a core color to a pixel color. Unknown colors draw white.
func rgba(c core.Color) color.RGBA {
	if p, ok := palette[c]; ok {
		return p
	}
	return color.RGBA{255, 255, 255, 255}
}

// squareRect returns the pixel rectangle of a square of the given
// fraction of a cell, centered in the cell.
func squareRect(cell core.Cell, size float64, cellPx int) (x, y, side float32) {
	side = float32(float64(cellPx) * size)
	pad := (float32(cellPx) - side) / 2
	return float32(cell.Col*cellPx) + pad, float32(cell.Row*cellPx) + pad, side
}

// cellCenter returns the pixel center of a cell.
func cellCenter(cell core.Cell, cellPx int) (cx, cy float32) {
	half := float32(cellPx) / 2
	return float32(cell.Col*cellPx) + half, float32(cell.Row*cellPx) + half
}

func radians(deg float64) float32 {
	return float32(deg * math.Pi / 180)
}

// imageCanvas draws grid shapes onto an ebiten image.
type imageCanvas struct {
	dst    *ebiten.Image
	cellPx int
	white  *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

func newImageCanvas(dst *ebiten.Image, cellPx int) *imageCanvas {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &imageCanvas{
		dst:    dst,
		cellPx: cellPx,
		white:  img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Clear fills the board with black.
func (c *imageCanvas) Clear() {
	c.dst.Fill(color.Black)
}

// FillSquare draws a filled square centered in the cell.
func (c *imageCanvas) FillSquare(cell core.Cell, size float64, clr core.Color) {
	x, y, side := squareRect(cell, size, c.cellPx)
	vector.DrawFilledRect(c.dst, x, y, side, side, rgba(clr), false)
}

// FillArc draws a filled pie slice inscribed in the cell. Angles are in
// degrees, measured clockwise from the positive x axis.
func (c *imageCanvas) FillArc(cell core.Cell, startDeg, endDeg float64, clr core.Color) {
	cx, cy := cellCenter(cell, c.cellPx)
	r := float32(c.cellPx) / 2

	if core.IsFullCircle(startDeg, endDeg) {
		vector.DrawFilledCircle(c.dst, cx, cy, r, rgba(clr), true)
		return
	}

	var path vector.Path
	path.MoveTo(cx, cy)
	path.Arc(cx, cy, r, radians(startDeg), radians(endDeg), vector.Clockwise)
	path.Close()

	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	col := rgba(clr)
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(col.R) / 255
		c.vs[i].ColorG = float32(col.G) / 255
		c.vs[i].ColorB = float32(col.B) / 255
		c.vs[i].ColorA = float32(col.A) / 255
	}
	c.dst.DrawTriangles(c.vs, c.is, c.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
