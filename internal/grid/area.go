package grid

import "github.com/vovakirdan/gridsnake/internal/core"

// Area is a block of tiles anchored at (Row, Column) spanning
// RowTiles x ColumnTiles. Its pixel bounds are recomputed on every Update,
// so changing the anchor takes effect on the next frame.
type Area struct {
	Base
	Row         int
	Column      int
	RowTiles    int
	ColumnTiles int

	bounds core.Rect
}

// NewArea creates an area on g. Spans below one are raised to one.
func NewArea(g *Grid, row, column, rowTiles, columnTiles int) Area {
	return Area{
		Base:        Base{grid: g},
		Row:         row,
		Column:      column,
		RowTiles:    max(rowTiles, 1),
		ColumnTiles: max(columnTiles, 1),
	}
}

// Tile returns the anchor tile.
func (a *Area) Tile() Tile {
	return Tile{Row: a.Row, Column: a.Column}
}

// MoveTo sets the anchor tile.
func (a *Area) MoveTo(t Tile) {
	a.Row = t.Row
	a.Column = t.Column
}

// Bounds returns the pixel rectangle computed by the last Update.
func (a *Area) Bounds() core.Rect {
	return a.bounds
}

// Update recomputes the pixel bounds from the grid and tile indices.
func (a *Area) Update() {
	g := a.grid
	if g == nil {
		return
	}
	tw, th := g.TileWidth(), g.TileHeight()
	a.bounds = core.NewRect(
		g.X+a.Column*tw,
		g.Y+a.Row*th,
		a.ColumnTiles*tw,
		a.RowTiles*th,
	)
}

// TilesOccupied returns every tile covered by the area.
func (a *Area) TilesOccupied() TileSet {
	set := make(TileSet, a.RowTiles*a.ColumnTiles)
	for r := a.Row; r < a.Row+a.RowTiles; r++ {
		for c := a.Column; c < a.Column+a.ColumnTiles; c++ {
			set.Add(Tile{Row: r, Column: c})
		}
	}
	return set
}
