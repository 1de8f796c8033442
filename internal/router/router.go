// Package router switches between the screens of the quiz flow. One screen
// is active at a time; screens hand over by sending ReplaceScreenMsg.
package router

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizmaster/internal/screen"
)

// ReplaceScreenMsg requests the router to swap the active screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Replace returns a command that swaps the active screen for s.
func Replace(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// Router owns the active screen.
type Router struct {
	active  screen.Screen
	logger  *slog.Logger
	changes int
}

// New creates a Router showing initial. A nil logger discards.
func New(initial screen.Screen, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Router{active: initial, logger: logger}
}

// Switch makes s the active screen and returns its Init command.
func (r *Router) Switch(s screen.Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	from := ""
	if r.active != nil {
		from = r.active.Title()
	}
	r.active = s
	r.changes++
	r.logger.Debug("screen changed", "from", from, "to", s.Title())
	return s.Init()
}

// Active returns the current screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Changes returns how many times the active screen has been switched.
func (r *Router) Changes() int {
	return r.changes
}

// Update handles ReplaceScreenMsg and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ReplaceScreenMsg); ok {
		return r.Switch(msg.Screen)
	}
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
