package catalog

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/gamification"
	"github.com/Ajinkya236/skillsprint/internal/questionbank"
	"github.com/Ajinkya236/skillsprint/internal/router"
	"github.com/Ajinkya236/skillsprint/internal/screen"
	"github.com/Ajinkya236/skillsprint/internal/screens/assess"
	"github.com/Ajinkya236/skillsprint/internal/skills"
	"github.com/Ajinkya236/skillsprint/internal/store"
	"github.com/Ajinkya236/skillsprint/internal/ui/components"
	"github.com/Ajinkya236/skillsprint/internal/ui/layout"
	"github.com/Ajinkya236/skillsprint/internal/ui/theme"
)

// Deps carries everything an assessment launch needs.
type Deps struct {
	Bank         questionbank.Bank
	Recorder     assessment.Recorder
	BadgeService *gamification.Service
	SnapRepo     store.SnapshotRepo
}

type statsLoadedMsg struct {
	Stats map[string]store.SkillStats
	Err   error
}

type phase int

const (
	phaseSkills phase = iota
	phaseProficiency
	phaseMode
)

// CatalogScreen lists the skill catalog grouped by category. In launch
// mode, selecting a skill walks through proficiency and mode pickers and
// starts an assessment; in browse mode it is read-only.
type CatalogScreen struct {
	eventRepo store.EventRepo
	deps      Deps
	launch    bool

	entries  []entry
	selected int
	stats    map[string]store.SkillStats
	loaded   bool

	phase        phase
	profSelected int
	modeSelected int
}

// entry is one selectable row; category headers are non-selectable.
type entry struct {
	skill  skills.Skill
	header string // set on the first skill of each category
}

var _ screen.Screen = (*CatalogScreen)(nil)
var _ screen.KeyHintProvider = (*CatalogScreen)(nil)

// New creates a catalog screen that launches assessments on selection.
func New(eventRepo store.EventRepo, deps Deps) *CatalogScreen {
	return &CatalogScreen{
		eventRepo: eventRepo,
		deps:      deps,
		launch:    true,
		entries:   buildEntries(),
	}
}

// NewBrowser creates a read-only catalog screen.
func NewBrowser(eventRepo store.EventRepo) *CatalogScreen {
	return &CatalogScreen{
		eventRepo: eventRepo,
		entries:   buildEntries(),
	}
}

func buildEntries() []entry {
	var out []entry
	for _, cat := range skills.AllCategories() {
		first := true
		for _, sk := range skills.ByCategory(cat) {
			e := entry{skill: sk}
			if first {
				e.header = skills.CategoryDisplayName(cat)
				first = false
			}
			out = append(out, e)
		}
	}
	return out
}

func (s *CatalogScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.eventRepo == nil {
			return statsLoadedMsg{Stats: map[string]store.SkillStats{}}
		}
		ctx := context.Background()
		stats := make(map[string]store.SkillStats, len(s.entries))
		for _, e := range s.entries {
			st, err := s.eventRepo.SkillStats(ctx, e.skill.ID)
			if err != nil {
				return statsLoadedMsg{Err: err}
			}
			stats[e.skill.ID] = st
		}
		return statsLoadedMsg{Stats: stats}
	}
}

func (s *CatalogScreen) Title() string {
	if s.launch {
		return "Start Assessment"
	}
	return "Skill Catalog"
}

func (s *CatalogScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseProficiency, phaseMode:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	if s.launch {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Select skill"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *CatalogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err == nil {
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch s.phase {
		case phaseSkills:
			return s.updateSkillList(msg)
		case phaseProficiency:
			return s.updatePicker(msg, &s.profSelected, len(skills.AllProficiencies()), phaseMode)
		case phaseMode:
			return s.updateModePicker(msg)
		}
	}
	return s, nil
}

func (s *CatalogScreen) updateSkillList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.entries)-1 {
			s.selected++
		}
	case "enter":
		if s.launch {
			s.phase = phaseProficiency
			s.profSelected = 0
			s.modeSelected = 0
		}
	}
	return s, nil
}

func (s *CatalogScreen) updatePicker(msg tea.KeyMsg, sel *int, count int, next phase) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.phase--
	case "up", "k":
		if *sel > 0 {
			*sel--
		}
	case "down", "j":
		if *sel < count-1 {
			*sel++
		}
	case "enter":
		s.phase = next
	}
	return s, nil
}

func (s *CatalogScreen) updateModePicker(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.phase = phaseProficiency
	case "up", "k", "down", "j":
		s.modeSelected = 1 - s.modeSelected
	case "enter":
		sk := s.entries[s.selected].skill
		prof := skills.AllProficiencies()[s.profSelected]
		mode := assessment.ModeStandard
		if s.modeSelected == 1 {
			mode = assessment.ModeAdaptive
		}
		s.phase = phaseSkills
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: assess.New(sk, prof, mode, assess.Deps{
					Bank:         s.deps.Bank,
					Recorder:     s.deps.Recorder,
					BadgeService: s.deps.BadgeService,
					EventRepo:    s.eventRepo,
					SnapRepo:     s.deps.SnapRepo,
				}),
			}
		}
	}
	return s, nil
}

func (s *CatalogScreen) View(width, height int) string {
	switch s.phase {
	case phaseProficiency:
		return s.renderPicker(width, "Choose a proficiency level", proficiencyLabels(), s.profSelected)
	case phaseMode:
		return s.renderPicker(width, "Choose a mode", []string{
			"Standard — review answers, feedback at the end",
			"Adaptive — instant feedback, difficulty adjusts",
		}, s.modeSelected)
	}
	return s.renderSkillList(width, height)
}

func (s *CatalogScreen) renderSkillList(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading catalog...")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.entries {
		if e.header != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
					Render(strings.ToUpper(e.header))))
			b.WriteString("\n")
		}

		st := s.stats[e.skill.ID]
		status := lipgloss.NewStyle().Foreground(theme.TextDim).Render("not attempted")
		if st.Attempts > 0 {
			if st.Passes > 0 {
				status = lipgloss.NewStyle().Foreground(theme.Success).
					Render(fmt.Sprintf("✔ passed (best %d%%)", st.BestScore))
			} else {
				status = lipgloss.NewStyle().Foreground(theme.Accent).
					Render(fmt.Sprintf("best %d%% of %d%% needed", st.BestScore, e.skill.PassThreshold))
			}
		}

		prefix := "  "
		nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			nameStyle = nameStyle.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%-28s %s", prefix, e.skill.Name, status)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, nameStyle.Render(line)))
		b.WriteString("\n")
	}

	// Description of the highlighted skill.
	sk := s.entries[s.selected].skill
	b.WriteString("\n")
	desc := lipgloss.NewStyle().
		Width(minInt(width-8, 70)).
		Foreground(theme.TextDim).
		Render(sk.Description)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))

	return b.String()
}

func (s *CatalogScreen) renderPicker(width int, title string, options []string, selected int) string {
	sk := s.entries[s.selected].skill

	var b strings.Builder
	b.WriteString("\n\n")

	card := components.ArcadeCard(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(sk.Name)+"\n"+
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("%d questions, %d%% to pass", sk.QuestionCount, sk.PassThreshold)),
		components.ContentWidth(width))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Secondary).
		Render(title))
	b.WriteString("\n\n")

	for i, opt := range options {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+opt)))
		b.WriteString("\n")
	}

	return b.String()
}

func proficiencyLabels() []string {
	profs := skills.AllProficiencies()
	out := make([]string, len(profs))
	for i, p := range profs {
		out[i] = p.Label()
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
