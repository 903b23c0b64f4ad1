package snake

import (
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/grid"
)

// Board palette.
const (
	ColorBackground = core.ColorBlack
	ColorWall       = core.ColorBlack
	ColorFloor      = core.ColorWhite
	ColorTopBar     = core.ColorLightGray
	ColorSnake      = core.ColorGreen
	ColorFood       = core.ColorBlue
	ColorLabel      = core.ColorBlack
)

// Label fonts.
const (
	FontTitle       = "100px bold Helvetica"
	FontSubtitle    = "40px Arial"
	FontBarTitle    = "bold 21px Helvetica"
	FontBarSubtitle = "19px Arial"
	FontScore       = "18px Helvetica"
)

// board holds the static scenery and labels shared by every state.
// The walls and floor never change after construction.
type board struct {
	walls     *grid.Collection[*grid.Rectangle]
	wallTiles grid.TileSet
	floor     *grid.Rectangle
	topBar    *grid.Rectangle

	title            *grid.Text
	subtitle         *grid.Text
	miniTitle        *grid.Text
	scoreText        *ScoreText
	gameOverText     *grid.Text
	gameOverSubtitle *grid.Text
}

// newBoard lays out a board on g. Row 0 is the top bar, row 1 and the
// last row are walls, and the outer columns are walls below the bar.
func newBoard(g *grid.Grid) *board {
	rows, cols := g.Rows, g.Columns
	b := &board{}

	b.topBar = grid.NewRectangle(g, ColorTopBar, 0, 0, 1, cols)
	b.walls = grid.NewCollection(g,
		grid.NewRectangle(g, ColorWall, 1, 0, 1, cols),
		grid.NewRectangle(g, ColorWall, rows-1, 0, 1, cols),
		grid.NewRectangle(g, ColorWall, 1, 0, rows-1, 1),
		grid.NewRectangle(g, ColorWall, 1, cols-1, rows-1, 1),
	)
	b.walls.Update()
	b.wallTiles = b.walls.TilesOccupied()
	b.floor = grid.NewRectangle(g, ColorFloor, 2, 1, rows-3, cols-2)

	f := b.floor
	b.title = label(g, "SNAKE", FontTitle, f.Row+6, (cols-12)/2, 4, 12)
	b.title.HAlign = grid.AlignCenter
	b.subtitle = label(g, "Press Spacebar to start.", FontSubtitle, f.Row+10, (cols-15)/2, 3, 15)
	b.subtitle.HAlign = grid.AlignCenter

	b.miniTitle = label(g, "Snake", FontBarTitle, 0, 1, 1, 3)
	b.gameOverText = label(g, "Game Over:", FontBarTitle, 0, 1, 1, 6)
	b.gameOverSubtitle = label(g, "Press spacebar to play again.", FontBarSubtitle, 0, 7, 1, 10)
	b.scoreText = &ScoreText{Text: label(g, FormatScore(0), FontScore, 0, cols-5, 1, 4)}

	return b
}

func label(g *grid.Grid, content, font string, row, column, rowTiles, columnTiles int) *grid.Text {
	t := grid.NewText(g, content, row, column, rowTiles, columnTiles)
	t.Color = ColorLabel
	t.Font = font
	return t
}
