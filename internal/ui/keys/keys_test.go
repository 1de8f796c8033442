package keys

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestOptionIndex(t *testing.T) {
	tests := []struct {
		key  rune
		want int
	}{
		{'1', 0}, {'a', 0},
		{'2', 1}, {'b', 1},
		{'3', 2}, {'c', 2},
		{'4', 3}, {'d', 3},
		{'5', -1}, {'e', -1}, {'x', -1},
	}
	for _, tt := range tests {
		if got := OptionIndex(press(tt.key)); got != tt.want {
			t.Errorf("OptionIndex(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestNextMatchesEnterAndSpace(t *testing.T) {
	if !key.Matches(tea.KeyPressMsg{Code: tea.KeyEnter}, Next) {
		t.Error("enter should advance")
	}
	if !key.Matches(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}, Next) {
		t.Error("space should advance")
	}
}

func TestOptionLabel(t *testing.T) {
	if OptionLabel(0) != "A" || OptionLabel(3) != "D" {
		t.Errorf("labels = %s..%s", OptionLabel(0), OptionLabel(3))
	}
}
