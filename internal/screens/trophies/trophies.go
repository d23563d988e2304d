package trophies

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

type badgesLoadedMsg struct {
	Records []store.BadgeRecord
	Points  int
	Err     error
}

// TrophiesScreen displays the learner's badge collection.
type TrophiesScreen struct {
	eventRepo    store.EventRepo
	allBadges    []store.BadgeRecord
	totalPoints  int
	selectedType int // index into AllBadgeTypes
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*TrophiesScreen)(nil)
var _ screen.KeyHintProvider = (*TrophiesScreen)(nil)

// New creates a new TrophiesScreen.
func New(eventRepo store.EventRepo) *TrophiesScreen {
	return &TrophiesScreen{
		eventRepo: eventRepo,
	}
}

func (s *TrophiesScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		records, err := s.eventRepo.QueryBadges(ctx, store.QueryOpts{})
		if err != nil {
			return badgesLoadedMsg{Err: err}
		}
		points, err := s.eventRepo.TotalPoints(ctx)
		if err != nil {
			return badgesLoadedMsg{Records: records}
		}
		return badgesLoadedMsg{Records: records, Points: points}
	}
}

func (s *TrophiesScreen) Title() string {
	return "Trophy Shelf"
}

func (s *TrophiesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch badge"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TrophiesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case badgesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.allBadges = msg.Records
			s.totalPoints = msg.Points
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			types := gamification.AllBadgeTypes()
			s.selectedType = (s.selectedType + 1) % len(types)
			s.scrollOffset = 0
			return s, nil
		case "shift+tab":
			types := gamification.AllBadgeTypes()
			s.selectedType = (s.selectedType - 1 + len(types)) % len(types)
			s.scrollOffset = 0
			return s, nil
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
			return s, nil
		case "down", "j":
			filtered := s.filteredBadges()
			if s.scrollOffset < len(filtered)-1 {
				s.scrollOffset++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *TrophiesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading badges...")
	}

	var b strings.Builder

	// Totals.
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nTotal: %d badges, %d points\n", len(s.allBadges), s.totalPoints)))
	b.WriteString("\n")

	// Type tabs.
	types := gamification.AllBadgeTypes()
	var tabs []string
	for i, t := range types {
		count := s.countByType(t)
		label := fmt.Sprintf("%s %s (%d)", t.Icon(), t.DisplayName(), count)
		if i == s.selectedType {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	tabLine := strings.Join(tabs, "     ")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tabLine))
	b.WriteString("\n\n")

	// Divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Filtered badges list.
	filtered := s.filteredBadges()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No badges of this type yet"))
		return b.String()
	}

	// Show visible items within height constraint.
	maxVisible := height - 10
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	end := start + maxVisible
	if end > len(filtered) {
		end = len(filtered)
	}

	for i := start; i < end; i++ {
		rec := filtered[i]
		dateStr := rec.Timestamp.Format("Jan 02, 2006")

		label := rec.SkillName
		if label == "" {
			label = rec.Reason
		}

		line := fmt.Sprintf("  +%-4d %-34s %s", rec.Points, label, dateStr)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
		b.WriteString("\n")
	}

	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(filtered)-end)))
	}

	return b.String()
}

func (s *TrophiesScreen) filteredBadges() []store.BadgeRecord {
	types := gamification.AllBadgeTypes()
	selectedType := string(types[s.selectedType])
	var filtered []store.BadgeRecord
	for _, b := range s.allBadges {
		if b.BadgeType == selectedType {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

func (s *TrophiesScreen) countByType(t gamification.BadgeType) int {
	count := 0
	for _, b := range s.allBadges {
		if b.BadgeType == string(t) {
			count++
		}
	}
	return count
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
