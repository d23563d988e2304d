package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/Ajinkya236/skillsprint/internal/gamification"
	"github.com/Ajinkya236/skillsprint/internal/router"
	"github.com/Ajinkya236/skillsprint/internal/screen"
	"github.com/Ajinkya236/skillsprint/internal/store"
	"github.com/Ajinkya236/skillsprint/internal/ui/layout"
	"github.com/Ajinkya236/skillsprint/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Badges   map[string][]store.BadgeRecord // sessionID → badges
	Err      error
}

// HistoryScreen displays past assessment attempts and badge awards.
type HistoryScreen struct {
	eventRepo store.EventRepo
	attempts  []store.AttemptRecord
	badges    map[string][]store.BadgeRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		attempts, err := s.eventRepo.QueryAttempts(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Load all badge events and group by session.
		allBadges, err := s.eventRepo.QueryBadges(ctx, store.QueryOpts{})
		if err != nil {
			return historyLoadedMsg{Attempts: attempts, Badges: make(map[string][]store.BadgeRecord)}
		}

		badgesBySession := make(map[string][]store.BadgeRecord)
		for _, b := range allBadges {
			badgesBySession[b.SessionID] = append(badgesBySession[b.SessionID], b)
		}

		return historyLoadedMsg{Attempts: attempts, Badges: badgesBySession}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.badges = msg.Badges
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take your first assessment!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, att := range s.attempts {
		dateStr := att.Timestamp.Format("Jan 02, 2006")

		outcome := lipgloss.NewStyle().Foreground(theme.Error).Render("failed")
		if att.Passed {
			outcome = lipgloss.NewStyle().Foreground(theme.Success).Render("passed")
		}

		badgeStr := ""
		if n := len(s.badges[att.SessionID]); n > 0 {
			badgeStr = fmt.Sprintf("  %d badge", n)
			if n > 1 {
				badgeStr += "s"
			}
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-26s %3d%%  %s  %s%s",
			prefix, dateStr, att.SkillName, att.Score, att.Mode, outcome, badgeStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		// Show expanded attempt details.
		if s.expanded[i] {
			detail := fmt.Sprintf("    %d/%d correct, %d%% needed, %s level",
				att.CorrectCount, att.QuestionCount, att.PassThreshold, att.Proficiency)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")

			for _, badge := range s.badges[att.SessionID] {
				t := gamification.BadgeType(badge.BadgeType)
				badgeLine := fmt.Sprintf("    %s %s  +%d pts — %s",
					t.Icon(), t.DisplayName(), badge.Points, badge.Reason)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Accent).Render(badgeLine)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
