package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/gamification"
	"github.com/Ajinkya236/skillsprint/internal/questionbank"
	"github.com/Ajinkya236/skillsprint/internal/router"
	"github.com/Ajinkya236/skillsprint/internal/screen"
	"github.com/Ajinkya236/skillsprint/internal/screens/catalog"
	"github.com/Ajinkya236/skillsprint/internal/screens/history"
	"github.com/Ajinkya236/skillsprint/internal/screens/placeholder"
	"github.com/Ajinkya236/skillsprint/internal/screens/trophies"
	"github.com/Ajinkya236/skillsprint/internal/store"
	"github.com/Ajinkya236/skillsprint/internal/ui/components"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu        components.Menu
	menuLabels  []string
	points      int
	badgeCount  int
	passedCount int
	llmReady    bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The bank is nil when no LLM provider is
// configured; assessments are disabled but browsing still works.
func New(bank questionbank.Bank, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, badgeService *gamification.Service, recorder assessment.Recorder) *HomeScreen {
	ctx := context.Background()

	var points, badgeCount, passedCount int
	if eventRepo != nil {
		points, _ = eventRepo.TotalPoints(ctx)
		_, badgeCount, _ = eventRepo.BadgeCounts(ctx)
		passedCount = countPassedSkills(ctx, eventRepo)
	}

	menuLabels := []string{"START ASSESSMENT", "SKILL CATALOG", "TROPHY SHELF", "HISTORY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if bank == nil || eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Start Assessment")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: catalog.New(eventRepo, catalog.Deps{
						Bank:         bank,
						Recorder:     recorder,
						BadgeService: badgeService,
						SnapRepo:     snapRepo,
					}),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: catalog.NewBrowser(eventRepo)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Trophy Shelf")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: trophies.New(eventRepo)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		menuLabels:  menuLabels,
		points:      points,
		badgeCount:  badgeCount,
		passedCount: passedCount,
		llmReady:    bank != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.passedCount, h.points, h.badgeCount, cw, compact))

	if !h.llmReady {
		sections = append(sections, renderLLMBanner(cw))
	}

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// countPassedSkills counts distinct skills with at least one passed attempt.
func countPassedSkills(ctx context.Context, repo store.EventRepo) int {
	records, err := repo.QueryAttempts(ctx, store.QueryOpts{})
	if err != nil {
		return 0
	}
	passed := make(map[string]bool)
	for _, r := range records {
		if r.Passed {
			passed[r.SkillID] = true
		}
	}
	return len(passed)
}
