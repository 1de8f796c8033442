// Package keys holds the key bindings shared by the screens.
package keys

import (
	"fmt"

	"charm.land/bubbles/v2/key"
)

var (
	Up      = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	Down    = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	Enter   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "select"))
	Next    = key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "next"))
	Back    = key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "back"))
	Quit    = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "quit"))
	Retry   = key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("R", "retry"))
	Offline = key.NewBinding(key.WithKeys("f", "F"), key.WithHelp("F", "offline questions"))
	Restart = key.NewBinding(key.WithKeys("enter", "r", "R"), key.WithHelp("Enter", "play again"))
	Yes     = key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("Y", "yes"))
	No      = key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("N", "no"))
)

// Options select answers by position: 1-4 or A-D.
var Options = []key.Binding{
	key.NewBinding(key.WithKeys("1", "a", "A")),
	key.NewBinding(key.WithKeys("2", "b", "B")),
	key.NewBinding(key.WithKeys("3", "c", "C")),
	key.NewBinding(key.WithKeys("4", "d", "D")),
}

// OptionIndex returns the answer position selected by msg, or -1.
func OptionIndex(msg fmt.Stringer) int {
	for i, b := range Options {
		if key.Matches(msg, b) {
			return i
		}
	}
	return -1
}

// OptionLabel returns the display letter for position i.
func OptionLabel(i int) string {
	return string(rune('A' + i))
}

var (
	Left  = key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "left"))
	Right = key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "right"))
	Exit  = key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("Q", "quit"))
)
