package app

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/quiz"
	"github.com/abhisek/quizmaster/internal/router"
	"github.com/abhisek/quizmaster/internal/screen"
	"github.com/abhisek/quizmaster/internal/screens/question"
	"github.com/abhisek/quizmaster/internal/screens/results"
	"github.com/abhisek/quizmaster/internal/screens/setup"
	"github.com/abhisek/quizmaster/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Controller *quiz.Controller
	Setup      setup.Options
	Logger     *slog.Logger

	// Start skips difficulty selection and starts a quiz right away.
	Start   quiz.Difficulty
	Offline bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// New creates the root model. A controller with a restored session opens
// on the question screen, otherwise on setup.
func New(opts Options) AppModel {
	ctrl := opts.Controller
	nav := &screen.Nav{}
	nav.Setup = func() screen.Screen { return setup.New(ctrl, nav, opts.Setup) }
	nav.Question = func() screen.Screen { return question.New(ctrl, nav) }
	nav.Results = func() screen.Screen { return results.New(ctrl, nav) }

	var initial screen.Screen
	switch ctrl.Phase() {
	case quiz.PhaseInProgress:
		initial = nav.Question()
	case quiz.PhaseCompleted:
		initial = nav.Results()
	default:
		first := opts.Setup
		first.AutoStart = opts.Start
		first.AutoOffline = opts.Offline
		initial = setup.New(ctrl, nav, first)
	}
	return AppModel{router: router.New(initial, opts.Logger)}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}
	if hints == nil {
		hints = []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run restores any saved session and runs the TUI until the player quits.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Setup.Logger == nil {
		opts.Setup.Logger = logger
	}

	resumed, err := opts.Controller.Restore(ctx)
	if err != nil {
		logger.Error("restoring saved quiz failed", "error", err)
	}
	if resumed {
		opts.Start = ""
	}

	p := tea.NewProgram(New(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited with error", "error", err)
		return err
	}
	return nil
}
