package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
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

const defaultFetchTimeout = 15 * time.Second

// Options configures the setup screen.
type Options struct {
	// Questions is the number of questions per quiz, shown in the
	// instructions.
	Questions int

	// FetchTimeout bounds a single question fetch.
	FetchTimeout time.Duration

	Logger *slog.Logger

	// AutoStart starts a quiz at this difficulty as soon as the screen
	// opens. AutoOffline starts it from the offline set.
	AutoStart   quiz.Difficulty
	AutoOffline bool
}

// SetupScreen lets the player pick a difficulty and start a quiz. It also
// shows the high scores and, after a failed start, the retry options.
type SetupScreen struct {
	ctrl    *quiz.Controller
	nav     *screen.Nav
	opts    Options
	menu    components.Menu
	spinner spinner.Model
	attempt int
	cancel  context.CancelFunc
	err     error
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen for ctrl, which must be in the setup phase.
func New(ctrl *quiz.Controller, nav *screen.Nav, opts Options) *SetupScreen {
	if opts.Questions <= 0 {
		opts.Questions = quiz.DefaultQuestionCount
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	items := make([]components.MenuItem, len(quiz.Difficulties))
	selected := 0
	for i, d := range quiz.Difficulties {
		items[i] = components.MenuItem{Label: d.DisplayName(), Detail: difficultyDetail[d]}
		if d == ctrl.Difficulty() {
			selected = i
		}
	}

	return &SetupScreen{
		ctrl:    ctrl,
		nav:     nav,
		opts:    opts,
		menu:    components.NewMenu(items, selected),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary))),
		err:     ctrl.LastError(),
	}
}

var difficultyDetail = map[quiz.Difficulty]string{
	quiz.DifficultyEasy:   "warm up",
	quiz.DifficultyMedium: "a fair challenge",
	quiz.DifficultyHard:   "for trivia buffs",
}

func (s *SetupScreen) Init() tea.Cmd {
	if s.opts.AutoStart == "" || s.ctrl.Phase() != quiz.PhaseSetup {
		return nil
	}
	return s.start(s.opts.AutoStart, s.opts.AutoOffline)
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.loading() {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Difficulty"},
		{Key: "Enter", Description: "Start"},
	}
	if s.err != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry"})
		if s.ctrl.HasFallback() {
			hints = append(hints, layout.KeyHint{Key: "F", Description: "Offline questions"})
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *SetupScreen) loading() bool {
	return s.ctrl.Phase() == quiz.PhaseLoading
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return s.handleLoaded(msg)

	case spinner.TickMsg:
		if !s.loading() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.loading() {
		if key.Matches(msg, keys.Back) {
			s.cancelFetch()
		}
		return s, nil
	}

	if s.err != nil {
		switch {
		case key.Matches(msg, keys.Retry):
			return s, s.start(s.ctrl.Difficulty(), false)
		case key.Matches(msg, keys.Offline) && s.ctrl.HasFallback():
			return s, s.start(s.ctrl.Difficulty(), true)
		}
	}

	s.menu = s.menu.Update(msg)
	if i := s.menu.Chosen(); i >= 0 {
		return s, s.start(quiz.Difficulties[i], false)
	}
	return s, nil
}

// start begins a quiz and fetches its questions off the update loop.
func (s *SetupScreen) start(d quiz.Difficulty, offline bool) tea.Cmd {
	if err := s.ctrl.Begin(d, offline); err != nil {
		s.err = err
		return nil
	}
	s.err = nil
	s.attempt++
	attempt := s.attempt
	provider := s.ctrl.ProviderFor(offline)

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.FetchTimeout)
	s.cancel = cancel

	fetch := func() tea.Msg {
		defer cancel()
		qs, err := quiz.FetchQuestions(ctx, provider, d)
		return questionsLoadedMsg{attempt: attempt, questions: qs, err: err}
	}
	return tea.Batch(fetch, s.spinner.Tick)
}

func (s *SetupScreen) cancelFetch() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.ctrl.Cancel()
	s.opts.Logger.Info("quiz start canceled", "difficulty", s.ctrl.Difficulty())
}

func (s *SetupScreen) handleLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.attempt != s.attempt || !s.loading() {
		return s, nil
	}
	s.cancel = nil
	if err := s.ctrl.Loaded(msg.questions, msg.err); err != nil {
		s.err = err
		return s, nil
	}
	return s, router.Replace(s.nav.Question())
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var left strings.Builder
	left.WriteString(theme.Title.Render("Test your knowledge"))
	left.WriteString("\n\n")
	left.WriteString(s.renderInstructions())
	left.WriteString("\n\n")
	left.WriteString(theme.Subtitle.Render("Choose a difficulty"))
	left.WriteString("\n\n")
	left.WriteString(s.menu.View())

	if notice := s.ctrl.Notice(); notice != nil {
		left.WriteString("\n")
		left.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Render("Saved quiz data was unreadable and has been reset."))
		left.WriteString("\n")
	}

	switch {
	case s.loading():
		left.WriteString("\n")
		left.WriteString(s.spinner.View() + " " + theme.Body.Render(s.loadingText()))
	case s.err != nil:
		left.WriteString("\n")
		left.WriteString(s.renderError(cw))
	}

	scores := components.HighScores(s.ctrl.History(), "")

	if layout.IsCompactWidth(width) {
		body := left.String() + "\n\n" + scores
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "    ", components.Card(scores, 40))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *SetupScreen) loadingText() string {
	if s.ctrl.Offline() {
		return "Loading offline questions..."
	}
	return fmt.Sprintf("Fetching %s questions...", strings.ToLower(s.ctrl.Difficulty().DisplayName()))
}

func (s *SetupScreen) renderInstructions() string {
	lines := []string{
		fmt.Sprintf("• %d multiple-choice questions", s.opts.Questions),
		fmt.Sprintf("• %d seconds per question", s.ctrl.TimeLimit()),
		"• Pick an answer with 1-4 or A-D",
		"• Enter or Space moves to the next question",
		"• Unanswered questions count as wrong",
	}
	return theme.Body.Render(strings.Join(lines, "\n"))
}

func (s *SetupScreen) renderError(width int) string {
	var b strings.Builder
	b.WriteString(theme.Incorrect.Render("Could not start the quiz"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(Describe(s.err)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press R to retry"))
	if s.ctrl.HasFallback() {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press F to play with offline questions"))
	}
	return theme.ErrorCard.Width(min(width, 56)).Render(b.String())
}

// Describe turns a start failure into a message for the player.
func Describe(err error) string {
	var unavail *quiz.ErrProviderUnavailable
	var empty *quiz.ErrNoQuestionsForDifficulty
	switch {
	case err == nil:
		return ""
	case quiz.IsCanceled(err):
		return "The question service took too long to answer."
	case errors.As(err, &empty):
		return fmt.Sprintf("No %s questions are available right now.", strings.ToLower(empty.Difficulty.DisplayName()))
	case errors.As(err, &unavail):
		return fmt.Sprintf("The question service (%s) is unreachable. Check your connection.", unavail.Provider)
	default:
		return err.Error()
	}
}
