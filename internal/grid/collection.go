package grid

import "github.com/vovakirdan/gridsnake/internal/core"

// Collection is an ordered group of elements drawn back to front.
// It is itself an Element, so collections nest.
type Collection[E Element] struct {
	Base
	Elements []E
}

var _ Element = (*Collection[Element])(nil)

// NewCollection creates a collection on g holding elems.
func NewCollection[E Element](g *Grid, elems ...E) *Collection[E] {
	return &Collection[E]{
		Base:     Base{grid: g},
		Elements: elems,
	}
}

// Len returns the number of children.
func (c *Collection[E]) Len() int {
	return len(c.Elements)
}

// Draw draws every child in order.
func (c *Collection[E]) Draw(s core.Surface) {
	for _, e := range c.Elements {
		e.Draw(s)
	}
}

// Update attaches every child to the collection's grid and updates it.
func (c *Collection[E]) Update() {
	for _, e := range c.Elements {
		e.SetGrid(c.grid)
		e.Update()
	}
}

// TilesOccupied returns the union of the children's tiles.
func (c *Collection[E]) TilesOccupied() TileSet {
	set := make(TileSet)
	for _, e := range c.Elements {
		set.Union(e.TilesOccupied())
	}
	return set
}
