package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/Ajinkya236/skillsprint/internal/ui/components"
	"github.com/Ajinkya236/skillsprint/internal/ui/theme"
)

// Block-letter title.
const bannerFull = ` ███████╗██████╗ ██████╗ ██╗███╗   ██╗████████╗
 ██╔════╝██╔══██╗██╔══██╗██║████╗  ██║╚══██╔══╝
 ███████╗██████╔╝██████╔╝██║██╔██╗ ██║   ██║
 ╚════██║██╔═══╝ ██╔══██╗██║██║╚██╗██║   ██║
 ███████║██║     ██║  ██║██║██║ ╚████║   ██║
 ╚══════╝╚═╝     ╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝   ╚═╝`

const bannerCompact = "S · P · R · I · N · T"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := bannerFull
	if compact {
		art = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(passed, points, badges, cw int, compact bool) string {
	passedStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	pointStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			passedStyle.Render(fmt.Sprintf("✔%d", passed)),
			pointStyle.Render(fmt.Sprintf("◆%d", points)),
			badgeStyle.Render(fmt.Sprintf("★%d", badges)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			passedStyle.Render(fmt.Sprintf("✔ %d PASSED", passed)),
			pointStyle.Render(fmt.Sprintf("◆ %d POINTS", points)),
			badgeStyle.Render(fmt.Sprintf("★ %d BADGES", badges)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderLLMBanner renders a warning banner when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to take assessments (see skillsprint --help)")
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected, cw int) string {
	const buttonWidth = 24

	var b []string
	for i, label := range items {
		b = append(b, components.ArcadeButton(label, i == selected, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(joinLines(b))
}

// renderMenuCompact renders menu items as simple text lines for small terminals.
func renderMenuCompact(items []string, selected, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(joinLines(lines))
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
