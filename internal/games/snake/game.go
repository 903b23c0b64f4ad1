// Package snake implements a single-player Snake game drawn on a tile grid.
// The game owns no host resources: it draws on an injected core.Surface,
// reads time from an injected clock, and is driven by a host calling
// Update, Draw and OnKeyDown.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/grid"
)

// Game is the context object tying the board, the snake and the active
// state together. It is not safe for concurrent use; hosts serialize
// calls on one goroutine.
type Game struct {
	surface core.Surface
	width   int
	height  int

	grid  *grid.Grid
	board *board
	snake *Snake
	food  *grid.Rectangle

	initialLength int
	rng           *rand.Rand
	clock         func() time.Time
	logger        *log.Logger

	title    *TitleState
	play     *PlayState
	gameOver *GameOverState
	state    State
}

// Option customizes a Game.
type Option func(*Game)

// WithClock replaces time.Now as the source of wall-clock time.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.clock = now
	}
}

// WithLogger routes game events to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game drawing on surface and enters the title screen.
// The board size comes from rt, the grid shape and gameplay from cfg.
func New(surface core.Surface, cfg config.SnakeConfig, rt core.RuntimeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		return nil, fmt.Errorf("snake: invalid screen size %dx%d", rt.ScreenW, rt.ScreenH)
	}

	g := &Game{
		surface:       surface,
		width:         rt.ScreenW,
		height:        rt.ScreenH,
		grid:          grid.New(cfg.Grid.Rows, cfg.Grid.Columns, rt.ScreenW, rt.ScreenH),
		initialLength: cfg.Gameplay.InitialLength,
		rng:           rand.New(rand.NewSource(rt.Seed)),
		clock:         time.Now,
		logger:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.board = newBoard(g.grid)
	g.food = grid.NewTile(g.grid, ColorFood, g.board.floor.Tile())
	g.title = &TitleState{screen: newScreen(g)}
	g.play = &PlayState{screen: newScreen(g), interval: cfg.Gameplay.MoveInterval()}
	g.gameOver = &GameOverState{screen: newScreen(g)}

	g.logger.Debug("game created",
		"rows", cfg.Grid.Rows, "columns", cfg.Grid.Columns,
		"width", rt.ScreenW, "height", rt.ScreenH, "seed", rt.Seed)

	g.enter(StateTitle)
	return g, nil
}

// Update advances the active state by one frame.
func (g *Game) Update() error {
	g.surface.SetSize(g.width, g.height)
	if err := g.state.Update(); err != nil {
		return fmt.Errorf("snake: update %s: %w", g.state.Kind(), err)
	}
	return nil
}

// Draw paints the background and then the active state.
func (g *Game) Draw() {
	g.surface.SetFillColor(ColorBackground)
	g.surface.FillRect(0, 0, g.width, g.height)
	g.state.Draw(g.surface)
}

// OnKeyDown forwards k to the active state. It reports whether the key is
// one the game uses, so the host can suppress its default handling.
func (g *Game) OnKeyDown(k core.Key) bool {
	g.state.OnKeyDown(k)
	return k.Recognized()
}

// NewGame starts a fresh round and enters the play state.
func (g *Game) NewGame() {
	g.play.Reset()
	g.enter(StatePlay)
}

// State returns the kind of the active state.
func (g *Game) State() StateKind {
	return g.state.Kind()
}

// Score returns the score of the current or last round.
func (g *Game) Score() int {
	return g.play.Score
}

// Size returns the surface size in pixels.
func (g *Game) Size() (width, height int) {
	return g.width, g.height
}

func (g *Game) enter(kind StateKind) {
	var next State
	switch kind {
	case StatePlay:
		next = g.play
	case StateGameOver:
		next = g.gameOver
	default:
		next = g.title
	}

	next.OnEnter()
	if g.state != nil {
		g.logger.Debug("state change", "from", g.state.Kind(), "to", kind)
	}
	g.state = next
}

func (g *Game) now() time.Time {
	return g.clock()
}

// newSnake builds the starting snake: a horizontal run ending at the right
// edge of the floor's middle row, heading left.
func (g *Game) newSnake() *Snake {
	f := g.board.floor
	row := f.Row + f.RowTiles/2
	col := f.Column + f.ColumnTiles - 1

	s := NewSnake(g.grid, ColorSnake, DirLeft)
	for i := range g.initialLength {
		s.Eat(grid.Tile{Row: row, Column: col - i})
	}
	s.Update()
	return s
}

// placeFood moves the food to a random floor tile the snake does not cover.
// Random draws are bounded; after that a scan picks the first free tile.
// A floor with no free tile leaves the food where it is.
func (g *Game) placeFood() {
	f := g.board.floor
	taken := g.snake.TilesOccupied()

	attempts := 4 * f.RowTiles * f.ColumnTiles
	for range attempts {
		t := grid.Tile{
			Row:    f.Row + g.rng.Intn(f.RowTiles),
			Column: f.Column + g.rng.Intn(f.ColumnTiles),
		}
		if !taken.Has(t) {
			g.moveFood(t)
			return
		}
	}

	for r := f.Row; r < f.Row+f.RowTiles; r++ {
		for c := f.Column; c < f.Column+f.ColumnTiles; c++ {
			if t := (grid.Tile{Row: r, Column: c}); !taken.Has(t) {
				g.moveFood(t)
				return
			}
		}
	}
	g.logger.Warn("no free floor tile for food")
}

func (g *Game) moveFood(t grid.Tile) {
	g.food.MoveTo(t)
	g.food.Update()
}
