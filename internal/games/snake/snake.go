package snake

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/grid"
)

// Snake is an ordered collection of unit tiles, head first.
// Plain movement recycles the tail tile; only Eat allocates.
type Snake struct {
	grid.Collection[*grid.Rectangle]
	Direction Direction

	color   core.Color
	created int // Tiles allocated by Eat
}

// NewSnake creates an empty snake on g heading in dir.
func NewSnake(g *grid.Grid, color core.Color, dir Direction) *Snake {
	s := &Snake{
		Direction: dir,
		color:     color,
	}
	s.SetGrid(g)
	return s
}

// Len returns the number of body tiles.
func (s *Snake) Len() int {
	return len(s.Elements)
}

// Head returns the head tile, or nil for an empty snake.
func (s *Snake) Head() *grid.Rectangle {
	if len(s.Elements) == 0 {
		return nil
	}
	return s.Elements[0]
}

// Tail returns the last tile, or nil for an empty snake.
func (s *Snake) Tail() *grid.Rectangle {
	if len(s.Elements) == 0 {
		return nil
	}
	return s.Elements[len(s.Elements)-1]
}

// TilesCreated returns how many body tiles have been allocated.
func (s *Snake) TilesCreated() int {
	return s.created
}

// TileInFrontOfHead returns the tile one step from the head.
// ok is false when the snake is not moving (DirNone) or has no head.
// An undefined direction yields ErrInvalidDirection.
func (s *Snake) TileInFrontOfHead() (t grid.Tile, ok bool, err error) {
	if !s.Direction.Valid() {
		return grid.Tile{}, false, fmt.Errorf("%w: %d", ErrInvalidDirection, s.Direction)
	}
	head := s.Head()
	if head == nil || s.Direction == DirNone {
		return grid.Tile{}, false, nil
	}
	return head.Tile().Step(s.Direction.delta()), true, nil
}

// AdvanceOneTile moves the snake forward by relocating the tail tile in
// front of the head and making it the new head.
func (s *Snake) AdvanceOneTile() error {
	front, ok, err := s.TileInFrontOfHead()
	if err != nil || !ok {
		return err
	}

	n := len(s.Elements)
	tail := s.Elements[n-1]
	copy(s.Elements[1:], s.Elements[:n-1])
	tail.MoveTo(front)
	s.Elements[0] = tail
	return nil
}

// Eat grows the snake by inserting a new head tile at t.
// The tail stays where it is.
func (s *Snake) Eat(t grid.Tile) {
	tile := grid.NewTile(s.Grid(), s.color, t)
	s.Elements = slices.Insert(s.Elements, 0, tile)
	s.created++
}
