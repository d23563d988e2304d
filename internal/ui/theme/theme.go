package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: muted and readable for long terminal sessions
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Verdicts
var (
	Passed = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Failed = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	CorrectMark = lipgloss.NewStyle().
			Foreground(Success)

	WrongMark = lipgloss.NewStyle().
			Foreground(Error)
)

// Question text
var (
	Prompt = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Explanation = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	Meta = lipgloss.NewStyle().
		Foreground(TextDim)

	Divider = lipgloss.NewStyle().
		Foreground(Border)

	Badge = lipgloss.NewStyle().
		Foreground(Accent)
)
