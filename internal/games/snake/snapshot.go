package snake

import "github.com/vovakirdan/gridsnake/internal/grid"

// Snapshot captures the observable game state for tests and host logging.
type Snapshot struct {
	State    StateKind
	Score    int
	SnakeLen int
	Head     grid.Tile
	Dir      Direction
	Food     grid.Tile
	Armed    bool
	GameOver bool // Fatal move recorded, transition pending
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:    g.state.Kind(),
		Score:    g.play.Score,
		Food:     g.food.Tile(),
		Armed:    g.play.armed,
		GameOver: g.play.gameOver,
	}
	if g.snake != nil {
		snap.SnakeLen = g.snake.Len()
		snap.Dir = g.snake.Direction
		if head := g.snake.Head(); head != nil {
			snap.Head = head.Tile()
		}
	}
	return snap
}
