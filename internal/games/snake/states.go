package snake

import (
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/grid"
)

// StateKind identifies one of the three game screens.
type StateKind int

const (
	StateTitle StateKind = iota
	StatePlay
	StateGameOver
)

func (k StateKind) String() string {
	switch k {
	case StateTitle:
		return "title"
	case StatePlay:
		return "play"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is one screen of the game. The active state receives every
// frame and every key press.
type State interface {
	Kind() StateKind
	// OnEnter rebuilds the element list before the state becomes active.
	OnEnter()
	Update() error
	Draw(s core.Surface)
	OnKeyDown(k core.Key)
}

// screen is the element list every state draws and updates.
type screen struct {
	game  *Game
	elems *grid.Collection[grid.Element]
}

func newScreen(g *Game) screen {
	return screen{game: g, elems: grid.NewCollection[grid.Element](g.grid)}
}

func (s *screen) Update() error {
	s.elems.Update()
	return nil
}

func (s *screen) Draw(surface core.Surface) {
	s.elems.Draw(surface)
}

// TitleState shows the game name and waits for the start key.
type TitleState struct {
	screen
}

func (t *TitleState) Kind() StateKind { return StateTitle }

func (t *TitleState) OnEnter() {
	b := t.game.board
	t.elems.Elements = []grid.Element{b.walls, b.floor, b.topBar, b.title, b.subtitle}
}

func (t *TitleState) OnKeyDown(k core.Key) {
	if k == core.KeyStart {
		t.game.NewGame()
	}
}

// PlayState runs the snake. Moves happen on a wall-clock tick that is
// independent of the frame rate.
type PlayState struct {
	screen

	Score    int
	interval time.Duration
	lastTick time.Time
	armed    bool // A direction key may be accepted this tick
	gameOver bool // Set by a fatal move; acted on next frame
}

func (p *PlayState) Kind() StateKind { return StatePlay }

// Reset starts a fresh round: new snake, new food, zero score.
func (p *PlayState) Reset() {
	g := p.game
	g.snake = g.newSnake()
	g.placeFood()
	p.Score = 0
	p.lastTick = g.now()
	p.armed = true
	p.gameOver = false
}

func (p *PlayState) OnEnter() {
	g := p.game
	b := g.board
	p.elems.Elements = []grid.Element{b.walls, b.floor, b.topBar, g.snake, g.food, b.scoreText, b.miniTitle}
}

func (p *PlayState) Update() error {
	g := p.game
	if p.gameOver {
		g.enter(StateGameOver)
		return nil
	}

	now := g.now()
	if now.Sub(p.lastTick).Truncate(time.Millisecond) >= p.interval {
		if err := p.move(); err != nil {
			return err
		}
		p.lastTick = now
		p.armed = true
	}

	g.board.scoreText.Score = p.Score
	return p.screen.Update()
}

// move performs one movement tick.
func (p *PlayState) move() error {
	g := p.game
	front, ok, err := g.snake.TileInFrontOfHead()
	if err != nil || !ok {
		return err
	}

	if front == g.food.Tile() {
		g.snake.Eat(front)
		g.placeFood()
		p.Score++
		g.logger.Debug("food eaten", "score", p.Score, "length", g.snake.Len())
		return nil
	}

	// The tail still counts: moving into the tile it is about to vacate is fatal.
	body := g.snake.TilesOccupied()
	if err := g.snake.AdvanceOneTile(); err != nil {
		return err
	}
	if g.board.wallTiles.Has(front) || body.Has(front) {
		p.gameOver = true
		g.logger.Info("game over", "score", p.Score, "length", g.snake.Len(), "head", front)
	}
	return nil
}

func (p *PlayState) OnKeyDown(k core.Key) {
	var want Direction
	switch k {
	case core.KeyUp:
		want = DirUp
	case core.KeyDown:
		want = DirDown
	case core.KeyLeft:
		want = DirLeft
	case core.KeyRight:
		want = DirRight
	default:
		return
	}

	s := p.game.snake
	if !p.armed || want == s.Direction.Opposite() {
		return
	}
	s.Direction = want
	p.armed = false
}

// GameOverState freezes the final board and waits for the start key.
type GameOverState struct {
	screen
}

func (o *GameOverState) Kind() StateKind { return StateGameOver }

func (o *GameOverState) OnEnter() {
	g := o.game
	b := g.board
	o.elems.Elements = []grid.Element{
		b.walls, b.floor, b.topBar, g.snake, g.food,
		b.scoreText, b.gameOverText, b.gameOverSubtitle,
	}
}

func (o *GameOverState) OnKeyDown(k core.Key) {
	if k == core.KeyStart {
		o.game.NewGame()
	}
}
