package grid

import "strconv"

// Tile identifies a grid cell.
type Tile struct {
	Row, Column int
}

// Hash returns the canonical "row,column" key of the tile.
func (t Tile) Hash() string {
	return strconv.Itoa(t.Row) + "," + strconv.Itoa(t.Column)
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	return "(" + t.Hash() + ")"
}

// Step returns the tile offset by the given number of rows and columns.
func (t Tile) Step(dRow, dColumn int) Tile {
	return Tile{Row: t.Row + dRow, Column: t.Column + dColumn}
}

// TileSet is a set of tiles keyed by their canonical hash.
type TileSet map[string]struct{}

// NewTileSet creates a set holding the given tiles.
func NewTileSet(tiles ...Tile) TileSet {
	s := make(TileSet, len(tiles))
	for _, t := range tiles {
		s.Add(t)
	}
	return s
}

// Add inserts a tile.
func (s TileSet) Add(t Tile) {
	s[t.Hash()] = struct{}{}
}

// Has reports whether the tile is in the set.
func (s TileSet) Has(t Tile) bool {
	_, ok := s[t.Hash()]
	return ok
}

// Union adds every tile of other to s.
func (s TileSet) Union(other TileSet) {
	for h := range other {
		s[h] = struct{}{}
	}
}

// Len returns the number of distinct tiles.
func (s TileSet) Len() int {
	return len(s)
}
