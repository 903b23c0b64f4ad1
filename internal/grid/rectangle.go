package grid

import "github.com/vovakirdan/gridsnake/internal/core"

// Rectangle is a solid block of color covering an Area.
type Rectangle struct {
	Area
	Color core.Color
}

var _ Element = (*Rectangle)(nil)

// NewRectangle creates a colored block on g.
func NewRectangle(g *Grid, color core.Color, row, column, rowTiles, columnTiles int) *Rectangle {
	return &Rectangle{
		Area:  NewArea(g, row, column, rowTiles, columnTiles),
		Color: color,
	}
}

// NewTile creates a 1x1 colored block at t.
func NewTile(g *Grid, color core.Color, t Tile) *Rectangle {
	return NewRectangle(g, color, t.Row, t.Column, 1, 1)
}

// Draw fills the rectangle's pixel bounds.
func (r *Rectangle) Draw(s core.Surface) {
	b := r.Bounds()
	s.SetFillColor(r.Color)
	s.FillRect(b.X, b.Y, b.W, b.H)
}
