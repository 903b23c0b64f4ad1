package snake

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/grid"
)

const tick = 100 * time.Millisecond

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestGame(t *testing.T, cfg config.SnakeConfig) (*Game, *fakeClock, *core.Screen) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	screen := core.NewScreen(575, 598)
	rt := core.RuntimeConfig{ScreenW: 575, ScreenH: 598, TickRate: 60, Seed: 42}

	g, err := New(screen, cfg, rt, WithClock(clk.Now))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, clk, screen
}

// startGame begins a round with the food parked in the top-left floor
// corner, away from the snake's row.
func startGame(t *testing.T, cfg config.SnakeConfig) (*Game, *fakeClock) {
	t.Helper()
	g, clk, _ := newTestGame(t, cfg)
	g.OnKeyDown(core.KeyStart)
	g.moveFood(grid.Tile{Row: 2, Column: 1})
	return g, clk
}

func step(t *testing.T, g *Game, clk *fakeClock) {
	t.Helper()
	clk.Advance(tick)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestStartsOnTitle(t *testing.T) {
	g, _, _ := newTestGame(t, config.DefaultSnakeConfig())
	if g.State() != StateTitle {
		t.Fatalf("Initial state = %v, expected title", g.State())
	}

	// Direction keys do nothing on the title screen.
	if !g.OnKeyDown(core.KeyUp) {
		t.Error("Arrow keys should be reported as handled")
	}
	if g.State() != StateTitle {
		t.Errorf("State changed to %v on arrow key", g.State())
	}
	if g.OnKeyDown(core.KeyNone) {
		t.Error("Unrecognized key should not be reported as handled")
	}
}

func TestNewGameLayout(t *testing.T) {
	g, _, _ := newTestGame(t, config.DefaultSnakeConfig())
	g.OnKeyDown(core.KeyStart)

	snap := g.Snapshot()
	if snap.State != StatePlay {
		t.Fatalf("State = %v, expected play", snap.State)
	}
	if snap.SnakeLen != 5 {
		t.Errorf("Snake length = %d, expected 5", snap.SnakeLen)
	}
	if snap.Head != (grid.Tile{Row: 13, Column: 19}) {
		t.Errorf("Head = %v, expected 13,19", snap.Head)
	}
	if tail := g.snake.Tail().Tile(); tail != (grid.Tile{Row: 13, Column: 23}) {
		t.Errorf("Tail = %v, expected 13,23", tail)
	}
	if snap.Dir != DirLeft {
		t.Errorf("Direction = %v, expected left", snap.Dir)
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, expected 0", snap.Score)
	}
	if g.snake.TilesOccupied().Has(snap.Food) {
		t.Errorf("Food %v placed on the snake", snap.Food)
	}
}

func TestMoveCadence(t *testing.T) {
	g, clk := startGame(t, config.DefaultSnakeConfig())

	// Frames before the interval elapses do not move the snake.
	for i := 0; i < 5; i++ {
		clk.Advance(16 * time.Millisecond)
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if head := g.Snapshot().Head; head != (grid.Tile{Row: 13, Column: 19}) {
		t.Fatalf("Snake moved early to %v", head)
	}

	clk.Advance(19*time.Millisecond + 900*time.Microsecond)
	_ = g.Update()
	if head := g.Snapshot().Head; head != (grid.Tile{Row: 13, Column: 19}) {
		t.Fatalf("Snake moved at 99.9ms to %v", head)
	}

	clk.Advance(100 * time.Microsecond)
	_ = g.Update()
	if head := g.Snapshot().Head; head != (grid.Tile{Row: 13, Column: 18}) {
		t.Errorf("Snake should move once 100ms elapsed, head at %v", head)
	}
}

func TestReversalRejected(t *testing.T) {
	g, clk := startGame(t, config.DefaultSnakeConfig())

	g.OnKeyDown(core.KeyRight)
	snap := g.Snapshot()
	if snap.Dir != DirLeft {
		t.Errorf("Reversal accepted: direction %v", snap.Dir)
	}
	if !snap.Armed {
		t.Error("Rejected reversal should not consume the input")
	}

	g.OnKeyDown(core.KeyUp)
	if g.Snapshot().Dir != DirUp {
		t.Fatalf("Direction = %v, expected up", g.Snapshot().Dir)
	}

	step(t, g, clk)
	if head := g.Snapshot().Head; head != (grid.Tile{Row: 12, Column: 19}) {
		t.Errorf("Head = %v, expected 12,19", head)
	}
}

func TestOneDirectionChangePerTick(t *testing.T) {
	g, clk := startGame(t, config.DefaultSnakeConfig())

	// Up then Right within one tick would reverse the body into itself.
	g.OnKeyDown(core.KeyUp)
	g.OnKeyDown(core.KeyRight)
	if g.Snapshot().Dir != DirUp {
		t.Errorf("Second key in a tick accepted: direction %v", g.Snapshot().Dir)
	}

	step(t, g, clk)
	if !g.Snapshot().Armed {
		t.Fatal("Input should be re-armed after a move")
	}
	g.OnKeyDown(core.KeyRight)
	if g.Snapshot().Dir != DirRight {
		t.Errorf("Direction = %v, expected right after re-arm", g.Snapshot().Dir)
	}
}

func TestSameDirectionConsumesInput(t *testing.T) {
	g, _ := startGame(t, config.DefaultSnakeConfig())

	g.OnKeyDown(core.KeyLeft)
	g.OnKeyDown(core.KeyUp)
	if g.Snapshot().Dir != DirLeft {
		t.Errorf("Direction = %v, expected left", g.Snapshot().Dir)
	}
}

func TestEatFood(t *testing.T) {
	g, clk := startGame(t, config.DefaultSnakeConfig())
	g.moveFood(grid.Tile{Row: 13, Column: 18})

	step(t, g, clk)

	snap := g.Snapshot()
	if snap.SnakeLen != 6 {
		t.Errorf("Length = %d, expected 6", snap.SnakeLen)
	}
	if snap.Score != 1 {
		t.Errorf("Score = %d, expected 1", snap.Score)
	}
	if snap.Head != (grid.Tile{Row: 13, Column: 18}) {
		t.Errorf("Head = %v, expected 13,18", snap.Head)
	}
	if g.snake.TilesOccupied().Has(snap.Food) {
		t.Errorf("Relocated food %v is on the snake", snap.Food)
	}
	if g.board.scoreText.Content != "Score:   1" {
		t.Errorf("Score label = %q", g.board.scoreText.Content)
	}
}

func TestWallCollision(t *testing.T) {
	g, clk := startGame(t, config.DefaultSnakeConfig())

	for i := 0; i < 18; i++ {
		step(t, g, clk)
		if g.Snapshot().GameOver {
			t.Fatalf("Game over after %d moves", i+1)
		}
	}

	step(t, g, clk)
	snap := g.Snapshot()
	if !snap.GameOver {
		t.Fatal("Moving into the wall should end the game")
	}
	if snap.Head != (grid.Tile{Row: 13, Column: 0}) {
		t.Errorf("Head = %v, expected 13,0", snap.Head)
	}
	if snap.State != StatePlay {
		t.Errorf("Transition should wait for the next frame, state %v", snap.State)
	}

	// The next frame only transitions.
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.State() != StateGameOver {
		t.Fatalf("State = %v, expected game over", g.State())
	}
	if g.Snapshot().Head != (grid.Tile{Row: 13, Column: 0}) {
		t.Error("Snake moved during the transition frame")
	}
}

func TestSelfCollision(t *testing.T) {
	g, clk := startGame(t, config.DefaultSnakeConfig())

	for _, k := range []core.Key{core.KeyUp, core.KeyRight, core.KeyDown} {
		g.OnKeyDown(k)
		step(t, g, clk)
	}
	if !g.Snapshot().GameOver {
		t.Error("Turning back into the body should end the game")
	}
}

func TestTailCountsForCollision(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Gameplay.InitialLength = 4
	g, clk := startGame(t, cfg)

	// A four-tile snake circling a 2x2 square runs into its own tail.
	for _, k := range []core.Key{core.KeyUp, core.KeyRight, core.KeyDown} {
		g.OnKeyDown(k)
		step(t, g, clk)
	}
	if !g.Snapshot().GameOver {
		t.Error("Moving onto the tile the tail vacates should end the game")
	}
}

func TestPlayAgain(t *testing.T) {
	g, clk := startGame(t, config.DefaultSnakeConfig())
	g.moveFood(grid.Tile{Row: 13, Column: 18})
	step(t, g, clk)
	g.moveFood(grid.Tile{Row: 2, Column: 1})

	for g.State() == StatePlay {
		step(t, g, clk)
	}
	if g.Score() != 1 {
		t.Errorf("Final score = %d, expected 1", g.Score())
	}

	// Keys other than start are ignored on the game over screen.
	g.OnKeyDown(core.KeyUp)
	if g.State() != StateGameOver {
		t.Fatalf("State = %v, expected game over", g.State())
	}

	g.OnKeyDown(core.KeyStart)
	snap := g.Snapshot()
	if snap.State != StatePlay || snap.Score != 0 || snap.SnakeLen != 5 || snap.GameOver {
		t.Errorf("New round not reset: %+v", snap)
	}
}

// fillFloor replaces the snake with one covering every floor tile except skip.
func fillFloor(g *Game, skip ...grid.Tile) {
	free := grid.NewTileSet(skip...)
	f := g.board.floor
	s := NewSnake(g.grid, ColorSnake, DirNone)
	for r := f.Row; r < f.Row+f.RowTiles; r++ {
		for c := f.Column; c < f.Column+f.ColumnTiles; c++ {
			if tile := (grid.Tile{Row: r, Column: c}); !free.Has(tile) {
				s.Eat(tile)
			}
		}
	}
	g.snake = s
}

func TestFoodFindsLastFreeTile(t *testing.T) {
	g, _ := startGame(t, config.DefaultSnakeConfig())
	last := grid.Tile{Row: 20, Column: 7}
	fillFloor(g, last)

	for i := 0; i < 50; i++ {
		g.moveFood(grid.Tile{Row: 2, Column: 1})
		g.placeFood()
		if food := g.food.Tile(); food != last {
			t.Fatalf("Food placed at %v, expected the only free tile %v", food, last)
		}
	}
}

func TestFoodStaysWhenFloorFull(t *testing.T) {
	g, _ := startGame(t, config.DefaultSnakeConfig())
	fillFloor(g)
	before := g.food.Tile()

	g.placeFood()
	if food := g.food.Tile(); food != before {
		t.Errorf("Food moved from %v to %v with no free tile", before, food)
	}
}

func TestSingleTileSnakeMoves(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Gameplay.InitialLength = 1
	g, clk := startGame(t, cfg)

	for i := 0; i < 5; i++ {
		step(t, g, clk)
	}
	snap := g.Snapshot()
	if snap.GameOver {
		t.Fatal("A one-tile snake should not collide with itself")
	}
	if snap.Head != (grid.Tile{Row: 13, Column: 18}) {
		t.Errorf("Head = %v, expected 13,18", snap.Head)
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	g, _ := startGame(t, config.DefaultSnakeConfig())
	floor := g.board.floor.TilesOccupied()

	for i := 0; i < 500; i++ {
		g.placeFood()
		food := g.food.Tile()
		if g.snake.TilesOccupied().Has(food) {
			t.Fatalf("Food placed on snake at %v", food)
		}
		if !floor.Has(food) {
			t.Fatalf("Food placed off the floor at %v", food)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, clk, _ := newTestGame(t, config.DefaultSnakeConfig())
		g.OnKeyDown(core.KeyStart)
		keys := map[int]core.Key{3: core.KeyUp, 7: core.KeyRight, 12: core.KeyDown}
		for i := 0; i < 20 && g.State() == StatePlay; i++ {
			if k, ok := keys[i]; ok {
				g.OnKeyDown(k)
			}
			clk.Advance(tick)
			_ = g.Update()
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("Same seed produced different games:\n%+v\n%+v", a, b)
	}
}

func TestUpdateError(t *testing.T) {
	g, clk := startGame(t, config.DefaultSnakeConfig())
	g.snake.Direction = Direction(9)

	clk.Advance(tick)
	if err := g.Update(); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Update error = %v, expected ErrInvalidDirection", err)
	}
}

func TestDraw(t *testing.T) {
	g, _, screen := newTestGame(t, config.DefaultSnakeConfig())
	g.OnKeyDown(core.KeyStart)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	g.Draw()

	// Tiles are 23x23 pixels on a 575x598 surface.
	cellAt := func(tile grid.Tile) core.Cell {
		return screen.GetCell(tile.Column*23+1, tile.Row*23+1)
	}
	if c := cellAt(grid.Tile{Row: 13, Column: 19}); c.BG != ColorSnake {
		t.Errorf("Head cell color = %v, expected green", c.BG)
	}
	if c := cellAt(g.food.Tile()); c.BG != ColorFood {
		t.Errorf("Food cell color = %v, expected blue", c.BG)
	}
	if c := cellAt(grid.Tile{Row: 1, Column: 5}); c.BG != ColorWall {
		t.Errorf("Wall cell color = %v, expected black", c.BG)
	}
	if c := cellAt(grid.Tile{Row: 5, Column: 5}); c.BG != ColorFloor {
		t.Errorf("Floor cell color = %v, expected white", c.BG)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Rows = 3
	if _, err := New(core.NewScreen(10, 10), cfg, core.DefaultConfig()); err == nil {
		t.Error("Expected error for undersized grid")
	}

	rt := core.DefaultConfig()
	rt.ScreenW = 0
	if _, err := New(core.NewScreen(10, 10), config.DefaultSnakeConfig(), rt); err == nil {
		t.Error("Expected error for zero-width surface")
	}
}
