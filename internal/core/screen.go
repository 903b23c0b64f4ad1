package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is a single character position on a Screen.
type Cell struct {
	Rune rune
	FG   Color // Text color
	BG   Color // Fill color
}

// Screen is a 2D character buffer implementing Surface for terminal hosts.
// One pixel is one character cell: FillRect paints the cell background and
// FillText writes runes over it, keeping the background.
type Screen struct {
	width    int
	height   int
	cells    [][]Cell
	fill     Color
	font     string
	baseline Baseline
}

var _ Surface = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:    width,
		height:   height,
		baseline: BaselineMiddle,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a rectangle at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// SetSize changes the screen dimensions and clears it, like resizing a canvas.
func (s *Screen) SetSize(width, height int) {
	if width != s.width || height != s.height {
		s.width = width
		s.height = height
		s.allocate()
	}
	s.Clear()
}

// Clear fills the entire screen with blank default cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// SetFillColor sets the color used by FillRect and FillText.
func (s *Screen) SetFillColor(c Color) {
	s.fill = c
}

// SetFont records the font; cells have a single fixed font.
func (s *Screen) SetFont(font string) {
	s.font = font
}

// Font returns the last font set.
func (s *Screen) Font() string {
	return s.font
}

// SetTextBaseline sets the vertical anchor for FillText.
func (s *Screen) SetTextBaseline(b Baseline) {
	s.baseline = b
}

// FillRect paints the background of every cell in the rectangle.
// The area is clipped to the screen.
func (s *Screen) FillRect(x, y, w, h int) {
	r := NewRect(x, y, w, h).Intersect(s.Bounds())
	for cy := r.Y; cy < r.Bottom(); cy++ {
		for cx := r.X; cx < r.Right(); cx++ {
			s.cells[cy][cx] = Cell{Rune: ' ', BG: s.fill}
		}
	}
}

// FillText writes text starting at column x. A bottom baseline puts the text
// on the row above y; top and middle put it on row y.
// Characters outside the screen are clipped.
func (s *Screen) FillText(text string, x, y int) {
	if s.baseline == BaselineBottom {
		y--
	}
	if y < 0 || y >= s.height {
		return
	}
	cx := x
	for _, r := range text {
		if cx >= 0 && cx < s.width {
			cell := &s.cells[y][cx]
			cell.Rune = r
			cell.FG = s.fill
		}
		cx += max(runewidth.RuneWidth(r), 1)
	}
}

// MeasureText returns the display width of text in cells.
func (s *Screen) MeasureText(text string) int {
	return runewidth.StringWidth(text)
}

// Set places a rune at the given position, keeping the cell colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// String converts the screen buffer to plain text, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
