// Package grid maps row/column tile indices onto surface pixels and provides
// the drawable element types positioned on that grid.
package grid

// Grid describes a rows x columns tiling of a pixel rectangle.
// Tile sizes truncate, so a grid may leave a few pixels unused on the right
// and bottom edges.
type Grid struct {
	Rows    int
	Columns int
	X, Y    int // Pixel origin
	Width   int // Pixel width
	Height  int // Pixel height
}

// New creates a grid anchored at the surface origin.
func New(rows, columns, width, height int) *Grid {
	return &Grid{
		Rows:    rows,
		Columns: columns,
		Width:   width,
		Height:  height,
	}
}

// TileWidth returns the pixel width of one tile.
func (g *Grid) TileWidth() int {
	return g.Width / g.Columns
}

// TileHeight returns the pixel height of one tile.
func (g *Grid) TileHeight() int {
	return g.Height / g.Rows
}
