package core

// Color names a fill color for surface operations.
// Terminal hosts map it to ANSI 256-color codes, canvas hosts to CSS colors.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorLightGray
	ColorGray
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
)

// String returns the CSS color name.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorLightGray:
		return "lightgray"
	case ColorGray:
		return "gray"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	default:
		return "black"
	}
}
