package web

import (
	"math"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Average glyph advance as a fraction of the font size, used to
// approximate canvas measureText on the server.
const glyphAdvance = 0.55

const defaultFontPx = 10

var fontSizeRe = regexp.MustCompile(`(\d+)px`)

// Recorder is a core.Surface that records calls as canvas ops.
type Recorder struct {
	ops    []Op
	fontPx int
}

var _ core.Surface = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{fontPx: defaultFontPx}
}

// Reset drops recorded ops, keeping the current font.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Ops returns the ops recorded since the last Reset.
// The slice is reused after Reset.
func (r *Recorder) Ops() []Op {
	return r.ops
}

func (r *Recorder) SetSize(width, height int) {
	r.ops = append(r.ops, Op{Code: OpSize, Args: []int{width, height}})
}

func (r *Recorder) SetFillColor(c core.Color) {
	r.ops = append(r.ops, Op{Code: OpFill, Str: c.String()})
}

func (r *Recorder) SetFont(font string) {
	r.fontPx = FontPixels(font)
	r.ops = append(r.ops, Op{Code: OpFont, Str: font})
}

func (r *Recorder) SetTextBaseline(b core.Baseline) {
	r.ops = append(r.ops, Op{Code: OpBaseline, Str: b.String()})
}

func (r *Recorder) FillRect(x, y, w, h int) {
	r.ops = append(r.ops, Op{Code: OpRect, Args: []int{x, y, w, h}})
}

func (r *Recorder) FillText(text string, x, y int) {
	r.ops = append(r.ops, Op{Code: OpText, Args: []int{x, y}, Str: text})
}

// MeasureText approximates the rendered width in pixels of text in the
// current font.
func (r *Recorder) MeasureText(text string) int {
	n := utf8.RuneCountInString(text)
	return int(math.Round(float64(n) * float64(r.fontPx) * glyphAdvance))
}

// FontPixels extracts the pixel size from a CSS font string such as
// "bold 21px Helvetica". It returns the canvas default when none is given.
func FontPixels(font string) int {
	m := fontSizeRe.FindStringSubmatch(font)
	if m == nil {
		return defaultFontPx
	}
	px, err := strconv.Atoi(m[1])
	if err != nil || px <= 0 {
		return defaultFontPx
	}
	return px
}
