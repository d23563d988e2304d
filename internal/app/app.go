package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/gamification"
	"github.com/Ajinkya236/skillsprint/internal/questionbank"
	"github.com/Ajinkya236/skillsprint/internal/router"
	"github.com/Ajinkya236/skillsprint/internal/screen"
	"github.com/Ajinkya236/skillsprint/internal/screens/assess"
	"github.com/Ajinkya236/skillsprint/internal/screens/home"
	"github.com/Ajinkya236/skillsprint/internal/skills"
	"github.com/Ajinkya236/skillsprint/internal/store"
	"github.com/Ajinkya236/skillsprint/internal/ui/layout"
)

// Options carries the wired collaborators for the TUI. Bank is nil when
// no LLM provider is configured; the UI degrades to browse-only.
type Options struct {
	Bank         questionbank.Bank
	Recorder     assessment.Recorder
	BadgeService *gamification.Service
	EventRepo    store.EventRepo
	SnapRepo     store.SnapshotRepo

	// Start, when set, opens an assessment immediately instead of the
	// home menu.
	Start *StartAssessment
}

// StartAssessment selects the assessment to launch on startup.
type StartAssessment struct {
	Skill       skills.Skill
	Proficiency skills.Proficiency
	Mode        assessment.Mode
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	eventRepo store.EventRepo
	initCmd   tea.Cmd
	width     int
	height    int

	points      int
	badgeCount  int
	passedCount int
}

// newAppModel creates a new AppModel with the home screen, optionally
// stacking an assessment screen on top.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Bank, opts.EventRepo, opts.SnapRepo, opts.BadgeService, opts.Recorder)
	m := AppModel{
		router:    router.New(homeScreen),
		eventRepo: opts.EventRepo,
	}
	if opts.Start != nil {
		m.initCmd = m.router.Push(assess.New(opts.Start.Skill, opts.Start.Proficiency, opts.Start.Mode, assess.Deps{
			Bank:         opts.Bank,
			Recorder:     opts.Recorder,
			BadgeService: opts.BadgeService,
			EventRepo:    opts.EventRepo,
			SnapRepo:     opts.SnapRepo,
		}))
	}
	m.refreshStats()
	return m
}

// refreshStats reloads the header totals from the event log.
func (m *AppModel) refreshStats() {
	if m.eventRepo == nil {
		return
	}
	ctx := context.Background()
	if points, err := m.eventRepo.TotalPoints(ctx); err == nil {
		m.points = points
	}
	if _, total, err := m.eventRepo.BadgeCounts(ctx); err == nil {
		m.badgeCount = total
	}
	if records, err := m.eventRepo.QueryAttempts(ctx, store.QueryOpts{}); err == nil {
		passed := make(map[string]bool)
		for _, r := range records {
			if r.Passed {
				passed[r.SkillID] = true
			}
		}
		m.passedCount = len(passed)
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		// Leaving a screen may have awarded badges or passed a skill.
		m.refreshStats()

	case tea.KeyMsg:
		// Esc is owned by the screens (quit confirm, phase navigation),
		// so only ctrl+c is handled globally.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, layout.HeaderStats{
		Points:       m.points,
		Badges:       m.badgeCount,
		PassedSkills: m.passedCount,
	}, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
