package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/quiz"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	ErrorCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Error).
			Padding(0, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	TimedOut = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	Highlight = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// DifficultyColor maps a difficulty to its badge colour.
func DifficultyColor(d quiz.Difficulty) color.Color {
	switch d {
	case quiz.DifficultyEasy:
		return Success
	case quiz.DifficultyHard:
		return Error
	default:
		return Warning
	}
}

// DifficultyBadge renders d as a coloured label, e.g. "[Medium]".
func DifficultyBadge(d quiz.Difficulty) string {
	return lipgloss.NewStyle().
		Foreground(BgDark).
		Background(DifficultyColor(d)).
		Bold(true).
		Padding(0, 1).
		Render(d.DisplayName())
}

// TimerColor returns the countdown colour for the remaining share of the
// time limit: error at or below 20%, warning at or below 50%.
func TimerColor(fraction float64) color.Color {
	switch {
	case fraction <= 0.2:
		return Error
	case fraction <= 0.5:
		return Warning
	default:
		return Primary
	}
}

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 2)
)
