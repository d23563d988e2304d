package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/gamification"
	"github.com/Ajinkya236/skillsprint/internal/router"
	"github.com/Ajinkya236/skillsprint/internal/screen"
	"github.com/Ajinkya236/skillsprint/internal/ui/layout"
	"github.com/Ajinkya236/skillsprint/internal/ui/theme"
)

// SummaryScreen displays the result of a completed assessment, with a
// per-question review view behind a toggle.
type SummaryScreen struct {
	session *assessment.Session
	badges  []gamification.BadgeAward

	reviewing bool
	offset    int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen over a completed session.
func New(sess *assessment.Session, badges []gamification.BadgeAward) *SummaryScreen {
	return &SummaryScreen{session: sess, badges: badges}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.reviewing {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "R", Description: "Back to results"},
			{Key: "Esc", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Review answers"},
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "r", "R":
		s.reviewing = !s.reviewing
		s.offset = 0
	case "up", "k":
		if s.reviewing && s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.reviewing && s.offset < s.session.TotalQuestions()-1 {
			s.offset++
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.session == nil || s.session.Result() == nil {
		return ""
	}
	if s.reviewing {
		return s.renderReview(width, height)
	}
	return s.renderResult(width)
}

func (s *SummaryScreen) renderResult(width int) string {
	sess := s.session
	result := sess.Result()

	var b strings.Builder
	b.WriteString("\n")

	verdict := theme.Failed.Width(width).Align(lipgloss.Center).Render("NOT PASSED")
	if result.Passed {
		verdict = theme.Passed.Width(width).Align(lipgloss.Center).Render("PASSED")
	}
	b.WriteString(verdict)
	b.WriteString("\n")
	b.WriteString(theme.Meta.
		Width(width).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s (%s, %s mode)", sess.Skill.Name, sess.Proficiency.Label(), sess.Mode)))
	b.WriteString("\n\n")

	// Big score.
	scoreStyle := theme.Prompt.Foreground(theme.Primary)
	if result.Passed {
		scoreStyle = theme.Passed
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		scoreStyle.Render(fmt.Sprintf("%d%%", result.Score))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d of %d correct, %d%% needed to pass",
			result.CorrectCount, result.Total, sess.Skill.PassThreshold)))
	b.WriteString("\n\n")

	if len(s.badges) > 0 {
		divider := theme.Divider.Render(strings.Repeat("─", minInt(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Meta.Render("Badges earned")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, award := range s.badges {
			line := fmt.Sprintf("  %s %s  +%d pts — %s",
				award.Type.Icon(),
				award.Type.DisplayName(),
				award.Points,
				award.Reason)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Badge.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if err := sess.PersistErr(); err != nil {
		b.WriteString(theme.WrongMark.
			Width(width).
			Align(lipgloss.Center).
			Render(fmt.Sprintf("Warning: result could not be saved (%s)", err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Meta.
		Width(width).
		Align(lipgloss.Center).
		Render("Press R to review your answers"))

	return b.String()
}

// renderReview lists every question with the learner's answer and the
// correct one, scrolled by offset.
func (s *SummaryScreen) renderReview(width, height int) string {
	sess := s.session

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Answer review"))
	b.WriteString("\n\n")

	// Rough lines-per-question estimate to bound how many fit.
	perQuestion := 5
	visible := maxInt((layout.ContentHeight(height)-4)/perQuestion, 1)

	for i := s.offset; i < sess.TotalQuestions() && i < s.offset+visible; i++ {
		q := sess.QuestionAt(i)
		fb := sess.FeedbackAt(i)
		if q == nil || fb == nil {
			continue
		}

		mark := theme.WrongMark.Render("✘")
		if fb.IsCorrect {
			mark = theme.CorrectMark.Render("✔")
		}

		prompt := theme.Prompt.
			Width(minInt(width-10, 72)).
			Render(fmt.Sprintf("%s Q%d. %s", mark, i+1, q.Prompt))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
		b.WriteString("\n")

		learner := sess.AnswerAt(i)
		if learner == "" {
			learner = "(no answer)"
		}
		detail := fmt.Sprintf("Your answer: %s", learner)
		if !fb.IsCorrect {
			detail += fmt.Sprintf("    Correct: %s", q.CorrectAnswer)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Meta.Render(detail)))
		b.WriteString("\n")

		if fb.Explanation != "" {
			exp := theme.Explanation.
				Width(minInt(width-12, 68)).
				Render(fb.Explanation)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.offset+visible < sess.TotalQuestions() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("↓ more"))
	}

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
