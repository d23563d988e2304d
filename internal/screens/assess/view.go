package assess

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/ui/components"
	"github.com/Ajinkya236/skillsprint/internal/ui/theme"
)

func (s *AssessScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.session == nil {
		return renderLoading(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, s.mode)
	}
	if s.finishing {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Scoring your assessment...")
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question display.
func (s *AssessScreen) renderQuestionView(width int) string {
	sess := s.session
	q := sess.CurrentQuestion()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	// Progress line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", sess.Skill.Name))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d  %s",
			sess.CurrentIndex()+1,
			sess.TotalQuestions(),
			string(sess.Mode),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n")

	answered := make([]bool, sess.TotalQuestions())
	for i := range answered {
		answered[i] = sess.AnswerAt(i) != ""
	}
	track := components.QuestionProgress{
		Current:  sess.CurrentIndex(),
		Total:    sess.TotalQuestions(),
		Answered: answered,
		Width:    minInt(width-4, 60),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, track.View()))
	b.WriteString("\n\n")

	// Question text.
	prompt := lipgloss.NewStyle().
		Width(minInt(width-8, 76)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	if s.mcActive {
		b.WriteString(s.renderChoices(width))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	}

	return b.String()
}

// renderChoices renders the option list, with checkboxes for questions
// that take an answer set.
func (s *AssessScreen) renderChoices(width int) string {
	q := s.session.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "> "
		}

		var line string
		if s.mcPicked != nil {
			mark := "[ ]"
			if s.mcPicked[i] {
				mark = "[x]"
			}
			line = fmt.Sprintf("%s%s %d) %s", prefix, mark, i+1, opt)
		} else {
			line = fmt.Sprintf("%s%d) %s", prefix, i+1, opt)
		}

		if i == s.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	hint := "Select (1-4) or use arrows + Enter"
	if s.mcPicked != nil {
		hint = "Toggle with Space or numbers, Enter to submit"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n" + hint))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback renders the immediate scoring overlay (adaptive mode).
func (s *AssessScreen) renderFeedback(width int) string {
	sess := s.session
	q := sess.CurrentQuestion()
	fb := sess.CurrentFeedback()

	var b strings.Builder
	b.WriteString("\n\n")

	if fb != nil && fb.IsCorrect {
		b.WriteString(theme.Passed.
			Width(width).
			Align(lipgloss.Center).
			Render("Correct!"))
	} else {
		b.WriteString(theme.Failed.
			Width(width).
			Align(lipgloss.Center).
			Render("Not quite"))
		if q != nil {
			b.WriteString("\n")
			b.WriteString(theme.Meta.
				Width(width).
				Align(lipgloss.Center).
				Render(fmt.Sprintf("Correct answer: %s", q.CorrectAnswer)))
		}
	}

	b.WriteString("\n\n")

	if fb != nil && fb.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(minInt(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(fb.Explanation)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the abandon confirmation dialog.
func renderQuitConfirm(width int, mode assessment.Mode) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this assessment?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Unfinished attempts are not scored or saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Generating questions...\n\n  This can take a few seconds.")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Question generation failed.\n\n  %s\n\n  Press R to retry or Esc to go back.", errMsg))
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
