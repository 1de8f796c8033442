package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/ui/keys"
	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// MenuItem represents a single item in a vertical menu.
type MenuItem struct {
	Label    string
	Detail   string
	Disabled bool
}

// Menu is a vertical selection menu. It reports the chosen index through
// Chosen rather than running actions.
type Menu struct {
	Items    []MenuItem
	Selected int
	chosen   int
}

// NewMenu creates a new menu with selected as the initial cursor.
func NewMenu(items []MenuItem, selected int) Menu {
	m := Menu{Items: items, Selected: 0, chosen: -1}
	if selected >= 0 && selected < len(items) && !items[selected].Disabled {
		m.Selected = selected
		return m
	}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) Menu {
	m.chosen = -1
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, keys.Down):
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, keys.Enter):
		if m.Selected >= 0 && m.Selected < len(m.Items) && !m.Items[m.Selected].Disabled {
			m.chosen = m.Selected
		}
	}
	return m
}

// Chosen returns the index confirmed by the last Update, or -1.
func (m Menu) Chosen() int {
	return m.chosen
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		line := "    " + item.Label
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case item.Disabled:
			style = lipgloss.NewStyle().Foreground(theme.Border)
		case i == m.Selected:
			line = "  ▸ " + item.Label
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		if item.Detail != "" {
			b.WriteString("  " + theme.Hint.Render(item.Detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}
