package question

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/quiz"
	"github.com/abhisek/quizmaster/internal/router"
	"github.com/abhisek/quizmaster/internal/screen"
	"github.com/abhisek/quizmaster/internal/ui/components"
	"github.com/abhisek/quizmaster/internal/ui/keys"
	"github.com/abhisek/quizmaster/internal/ui/layout"
	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// QuestionScreen runs the timed question loop of an in-progress session.
type QuestionScreen struct {
	ctrl       *quiz.Controller
	nav        *screen.Nav
	sessionID  string
	confirming bool
	errMsg     string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.StatusProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen for the controller's current session.
func New(ctrl *quiz.Controller, nav *screen.Nav) *QuestionScreen {
	s := &QuestionScreen{ctrl: ctrl, nav: nav}
	if sess := ctrl.Session(); sess != nil {
		s.sessionID = sess.ID
	}
	return s
}

func (s *QuestionScreen) Init() tea.Cmd {
	if s.ctrl.Phase() != quiz.PhaseInProgress {
		return nil
	}
	return s.nextTick()
}

// nextTick schedules the next tick for the current question.
func (s *QuestionScreen) nextTick() tea.Cmd {
	return tickCmd(s.sessionID, s.ctrl.Session().Current)
}

func (s *QuestionScreen) Title() string {
	sess := s.ctrl.Session()
	if sess == nil {
		return "Quiz"
	}
	return fmt.Sprintf("Question %d of %d", sess.Current+1, sess.Total())
}

func (s *QuestionScreen) Status() string {
	status := s.ctrl.Difficulty().DisplayName()
	if s.ctrl.Offline() {
		status += " · offline"
	}
	return status
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit quiz"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	next := "Next"
	if sess := s.ctrl.Session(); sess != nil && sess.IsLast() {
		next = "Finish"
	}
	return []layout.KeyHint{
		{Key: "1-4/A-D", Description: "Answer"},
		{Key: "Enter", Description: next},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuestionScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.sessionID != s.sessionID || s.ctrl.Phase() != quiz.PhaseInProgress {
		return s, nil
	}
	if msg.index != s.ctrl.Session().Current {
		return s, nil
	}
	if _, err := s.ctrl.Tick(); err != nil {
		s.errMsg = err.Error()
	}
	if s.ctrl.Phase() == quiz.PhaseCompleted {
		return s, s.showResults()
	}
	return s, s.nextTick()
}

func (s *QuestionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.ctrl.Phase() != quiz.PhaseInProgress {
		return s, nil
	}

	if s.confirming {
		switch {
		case key.Matches(msg, keys.Yes):
			s.ctrl.Reset()
			return s, router.Replace(s.nav.Setup())
		case key.Matches(msg, keys.No):
			s.confirming = false
		}
		return s, nil
	}

	s.errMsg = ""
	switch {
	case key.Matches(msg, keys.Back):
		s.confirming = true
		return s, nil

	case key.Matches(msg, keys.Next):
		if _, ok := s.ctrl.Session().Selected(); !ok {
			return s, nil
		}
		if err := s.ctrl.Advance(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if s.ctrl.Phase() == quiz.PhaseCompleted {
			return s, s.showResults()
		}
		return s, s.nextTick()
	}

	if i := keys.OptionIndex(msg); i >= 0 {
		err := s.ctrl.SelectIndex(i)
		switch {
		case errors.Is(err, quiz.ErrUnknownChoice), errors.Is(err, quiz.ErrTimeExpired):
		case err != nil:
			s.errMsg = err.Error()
		}
	}
	return s, nil
}

func (s *QuestionScreen) showResults() tea.Cmd {
	return router.Replace(s.nav.Results())
}

func (s *QuestionScreen) View(width, height int) string {
	sess := s.ctrl.Session()
	if sess == nil || s.ctrl.Phase() != quiz.PhaseInProgress {
		return ""
	}
	if s.confirming {
		return renderQuitConfirm(width, height, sess)
	}

	cw := components.ContentWidth(width)
	q := sess.CurrentQuestion()
	selected, answered := sess.Selected()

	var b strings.Builder

	// Progress and timer.
	progress := components.NewProgressBar(
		fmt.Sprintf("%d/%d", sess.Current+1, sess.Total()),
		float64(sess.Current+1)/float64(sess.Total()), false, cw/2)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, progress.View(), "    ", renderTimer(sess.Timer, cw/2-4)))
	b.WriteString("\n\n")

	meta := theme.DifficultyBadge(q.Difficulty)
	if q.Category != "" {
		meta += "  " + theme.Hint.Render(q.Category)
	}
	b.WriteString(meta)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	sel := -1
	for i, c := range sess.CurrentChoices() {
		if answered && c == selected {
			sel = i
		}
	}
	b.WriteString(components.OptionList{
		Options:  sess.CurrentChoices(),
		Selected: sel,
		Disabled: sess.Timer.Expired(),
		Width:    cw,
	}.View())
	b.WriteString("\n")

	switch {
	case s.errMsg != "":
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	case !answered:
		b.WriteString(theme.Hint.Render("Select an answer to continue"))
	case sess.IsLast():
		b.WriteString(theme.Hint.Render("Press Enter to finish the quiz"))
	default:
		b.WriteString(theme.Hint.Render("Press Enter for the next question"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}

// renderTimer renders the countdown, coloured by the share of time left.
func renderTimer(t quiz.Timer, width int) string {
	c := theme.TimerColor(t.Fraction())
	label := lipgloss.NewStyle().Foreground(c).Bold(true).Render(fmt.Sprintf("⏱ %2ds", t.Remaining))
	bar := components.ProgressBar{Percent: t.Fraction(), Width: max(width-lipgloss.Width(label)-2, 4), Color: c}
	return label + "  " + bar.View()
}

func renderQuitConfirm(width, height int, sess *quiz.Session) string {
	answered := len(sess.Answers)
	body := theme.Title.Render("Quit this quiz?") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("You have answered %d of %d questions.", answered, sess.Total())) + "\n" +
		theme.Body.Render("Your progress will not be saved.") + "\n\n" +
		theme.Hint.Render("Y to quit, N to keep playing")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Card(body, 48))
}
