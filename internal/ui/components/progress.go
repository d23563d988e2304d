package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Ajinkya236/skillsprint/internal/ui/theme"
)

// QuestionProgress shows where the learner is inside an assessment:
// a segmented track with one cell per question and a position label.
type QuestionProgress struct {
	// Current is the zero-based index of the question being shown.
	Current int
	Total   int
	// Answered marks questions that already have a recorded answer;
	// nil renders every earlier question as answered.
	Answered []bool
	Width    int
}

// View renders the track. Earlier answered questions fill teal, the
// current question amber, the rest stay dim.
func (p QuestionProgress) View() string {
	if p.Total <= 0 {
		return ""
	}

	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d", p.Current+1, p.Total))

	trackWidth := p.Width - lipgloss.Width(label) - 2
	cellWidth := trackWidth / p.Total
	if cellWidth < 1 {
		cellWidth = 1
	}

	answeredStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	currentStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	pendingStyle := lipgloss.NewStyle().Foreground(theme.Border)

	cell := strings.Repeat("━", cellWidth)
	var b strings.Builder
	for i := 0; i < p.Total; i++ {
		switch {
		case i == p.Current:
			b.WriteString(currentStyle.Render(cell))
		case p.answered(i):
			b.WriteString(answeredStyle.Render(cell))
		default:
			b.WriteString(pendingStyle.Render(cell))
		}
	}

	return b.String() + "  " + label
}

func (p QuestionProgress) answered(i int) bool {
	if p.Answered == nil {
		return i < p.Current
	}
	return i < len(p.Answered) && p.Answered[i]
}
