package components

import (
	"strings"

	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// Button is a styled, focusable label.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button.
func (b Button) View() string {
	label := " " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render("▸" + label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders buttons side by side, focusing active.
func ButtonRow(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = NewButton(l, i == active).View()
	}
	return strings.Join(parts, "  ")
}

// Card wraps content in a rounded box of the given outer width.
func Card(content string, width int) string {
	return theme.Card.Width(width).Render(content)
}

// ContentWidth returns the width used for centred content columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}
