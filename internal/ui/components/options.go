package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/ui/keys"
	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// OptionList renders the answer options of a question. Selected is the
// chosen option or -1.
type OptionList struct {
	Options  []string
	Selected int
	Disabled bool
	Width    int
}

// View renders one labelled row per option.
func (o OptionList) View() string {
	width := o.Width
	if width <= 0 {
		width = 50
	}

	var b strings.Builder
	for i, opt := range o.Options {
		label := fmt.Sprintf("%s  %s", keys.OptionLabel(i), opt)
		style := lipgloss.NewStyle().
			Width(width).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text).
			Padding(0, 1)

		switch {
		case i == o.Selected:
			style = style.BorderForeground(theme.Primary).Foreground(theme.Primary).Bold(true)
			label = "▸ " + label
		case o.Disabled:
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
	}
	return b.String()
}
