package core

// Baseline is the vertical anchor used when filling text.
type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineMiddle
	BaselineBottom
)

// String returns the canvas textBaseline name.
func (b Baseline) String() string {
	switch b {
	case BaselineTop:
		return "top"
	case BaselineBottom:
		return "bottom"
	default:
		return "middle"
	}
}

// Surface is the 2D drawing capability a host injects into the game.
// It mirrors the subset of a canvas 2D context the game needs.
// Fill color, font and baseline are sticky until changed.
type Surface interface {
	// SetSize sets the surface dimensions in pixels and clears it.
	SetSize(width, height int)
	SetFillColor(c Color)
	// SetFont sets a CSS font string. Hosts without fonts ignore it.
	SetFont(font string)
	SetTextBaseline(b Baseline)
	FillRect(x, y, w, h int)
	FillText(text string, x, y int)
	// MeasureText returns the width text would occupy with the current font.
	MeasureText(text string) int
}
