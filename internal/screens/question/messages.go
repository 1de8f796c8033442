package question

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// timerTickMsg is sent every second while a question is shown. Ticks for
// another session or question are stale.
type timerTickMsg struct {
	sessionID string
	index     int
}

// tickCmd returns a 1-second tick command for question index of sessionID.
func tickCmd(sessionID string, index int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{sessionID: sessionID, index: index}
	})
}
