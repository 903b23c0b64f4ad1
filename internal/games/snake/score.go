package snake

import (
	"strconv"

	"github.com/vovakirdan/gridsnake/internal/grid"
)

// FormatScore renders a score right-aligned to three digits,
// e.g. "Score:   7", "Score:  42", "Score: 123".
func FormatScore(score int) string {
	prefix := ""
	switch {
	case score < 10:
		prefix = "  "
	case score < 100:
		prefix = " "
	}
	return "Score: " + prefix + strconv.Itoa(score)
}

// ScoreText is a label that shows the current score.
type ScoreText struct {
	*grid.Text
	Score int
}

var _ grid.Element = (*ScoreText)(nil)

// Update refreshes the label from Score and recomputes its geometry.
func (s *ScoreText) Update() {
	s.Content = FormatScore(s.Score)
	s.Text.Update()
}
