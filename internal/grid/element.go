package grid

import "github.com/vovakirdan/gridsnake/internal/core"

// Drawable paints itself onto a surface without changing any state.
type Drawable interface {
	Draw(s core.Surface)
}

// Updatable recomputes derived state, typically pixel geometry.
type Updatable interface {
	Update()
}

// Occupier reports the tiles it currently covers.
type Occupier interface {
	TilesOccupied() TileSet
}

// Element is anything that lives on a grid: it draws, updates and occupies
// tiles. Collections push their grid down to children before updating them.
type Element interface {
	Drawable
	Updatable
	Occupier
	Grid() *Grid
	SetGrid(g *Grid)
}

// Base holds the grid reference shared by all element types.
type Base struct {
	grid *Grid
}

// Grid returns the grid the element is positioned on.
func (b *Base) Grid() *Grid {
	return b.grid
}

// SetGrid attaches the element to a grid.
func (b *Base) SetGrid(g *Grid) {
	b.grid = g
}
