package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ansiColors maps core.Color to ANSI 256-color codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:     lipgloss.Color("16"),
	core.ColorWhite:     lipgloss.Color("231"),
	core.ColorLightGray: lipgloss.Color("252"),
	core.ColorGray:      lipgloss.Color("245"),
	core.ColorRed:       lipgloss.Color("160"),
	core.ColorGreen:     lipgloss.Color("28"),
	core.ColorBlue:      lipgloss.Color("21"),
	core.ColorYellow:    lipgloss.Color("226"),
}

// numColors bounds the core.Color range.
const numColors = int(core.ColorYellow) + 1

// Palette holds one lipgloss style per foreground/background pair.
// Each SSH session gets its own so color detection follows the client.
type Palette struct {
	styles [numColors][numColors]lipgloss.Style
}

// NewPalette builds a palette on renderer r.
func NewPalette(r *lipgloss.Renderer) *Palette {
	p := &Palette{}
	for fg := range numColors {
		for bg := range numColors {
			st := r.NewStyle()
			if c, ok := ansiColors[core.Color(fg)]; ok {
				st = st.Foreground(c)
			}
			if c, ok := ansiColors[core.Color(bg)]; ok {
				st = st.Background(c)
			}
			p.styles[fg][bg] = st
		}
	}
	return p
}

// Style returns the style for a cell.
func (p *Palette) Style(c core.Cell) lipgloss.Style {
	fg, bg := int(c.FG), int(c.BG)
	if fg >= numColors {
		fg = 0
	}
	if bg >= numColors {
		bg = 0
	}
	return p.styles[fg][bg]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p *Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.Style(start).Render(run.String()))
		}
	}
	return sb.String()
}
