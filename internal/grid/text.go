package grid

import "github.com/vovakirdan/gridsnake/internal/core"

// HAlign is the horizontal placement of text inside its area.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical placement of text inside its area.
// It is also used as the surface text baseline.
type VAlign int

const (
	AlignMiddle VAlign = iota
	AlignTop
	AlignBottom
)

// Baseline returns the surface baseline matching the alignment.
func (v VAlign) Baseline() core.Baseline {
	switch v {
	case AlignTop:
		return core.BaselineTop
	case AlignBottom:
		return core.BaselineBottom
	default:
		return core.BaselineMiddle
	}
}

// DefaultFont is used when a Text has no font set.
const DefaultFont = "bold 16px Arial"

// Text is a label laid out inside an Area.
type Text struct {
	Area
	Color   core.Color
	Font    string
	Content string
	HAlign  HAlign
	VAlign  VAlign
}

var _ Element = (*Text)(nil)

// NewText creates a left/middle aligned label on g.
func NewText(g *Grid, content string, row, column, rowTiles, columnTiles int) *Text {
	return &Text{
		Area:    NewArea(g, row, column, rowTiles, columnTiles),
		Color:   core.ColorBlack,
		Font:    DefaultFont,
		Content: content,
		HAlign:  AlignLeft,
		VAlign:  AlignMiddle,
	}
}

// Position returns where the text is anchored for the given measured width.
func (t *Text) Position(textWidth int) (x, y int) {
	b := t.Bounds()
	x, y = b.X, b.Y

	switch t.HAlign {
	case AlignCenter:
		x = b.X + (b.W-textWidth)/2
	case AlignRight:
		x = b.X + b.W - textWidth
	}

	switch t.VAlign {
	case AlignMiddle:
		y = b.Y + b.H/2
	case AlignBottom:
		y = b.Y + b.H
	}
	return x, y
}

// Draw fills the text with its color, font and alignment.
func (t *Text) Draw(s core.Surface) {
	font := t.Font
	if font == "" {
		font = DefaultFont
	}
	s.SetFillColor(t.Color)
	s.SetFont(font)
	s.SetTextBaseline(t.VAlign.Baseline())

	x, y := t.Position(s.MeasureText(t.Content))
	s.FillText(t.Content, x, y)
}
