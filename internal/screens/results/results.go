package results

import (
	"fmt"
	"image/color"
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

const (
	actionPlayAgain = iota
	actionQuit
)

var actionLabels = []string{"Play again", "Quit"}

// ResultsScreen shows the outcome of a completed quiz.
type ResultsScreen struct {
	ctrl   *quiz.Controller
	nav    *screen.Nav
	result *quiz.Result
	offset int
	action int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the controller's latest result.
func New(ctrl *quiz.Controller, nav *screen.Nav) *ResultsScreen {
	return &ResultsScreen{ctrl: ctrl, nav: nav, result: ctrl.Result()}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) Status() string {
	if s.result == nil {
		return ""
	}
	return s.result.Difficulty.DisplayName()
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll review"},
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "R", Description: "Play again"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		s.offset = max(s.offset-1, 0)
	case key.Matches(kmsg, keys.Down):
		if s.result != nil && s.offset < len(s.result.Review)-1 {
			s.offset++
		}
	case key.Matches(kmsg, keys.Left):
		s.action = max(s.action-1, 0)
	case key.Matches(kmsg, keys.Right):
		s.action = min(s.action+1, len(actionLabels)-1)
	case key.Matches(kmsg, keys.Exit):
		return s, tea.Quit
	case key.Matches(kmsg, keys.Enter):
		if s.action == actionQuit {
			return s, tea.Quit
		}
		return s, s.restart()
	case key.Matches(kmsg, keys.Retry):
		return s, s.restart()
	}
	return s, nil
}

func (s *ResultsScreen) restart() tea.Cmd {
	s.ctrl.Reset()
	return router.Replace(s.nav.Setup())
}

func (s *ResultsScreen) View(width, height int) string {
	res := s.result
	if res == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var top strings.Builder
	top.WriteString(theme.Title.Width(cw).Render("Quiz complete!"))
	top.WriteString("\n")
	if res.HighScore {
		top.WriteString(theme.Highlight.Width(cw).Align(lipgloss.Center).Render("★ New high score! ★"))
		top.WriteString("\n")
	}
	top.WriteString("\n")
	score := lipgloss.NewStyle().
		Foreground(scoreColor(res.Percentage)).
		Bold(true).
		Render(fmt.Sprintf("%d / %d  (%d%%)", res.Score, res.TotalQuestions, res.Percentage))
	top.WriteString(layout.Center(score, cw))
	top.WriteString("\n")
	top.WriteString(theme.Subtitle.Width(cw).Render(res.Message()))
	top.WriteString("\n\n")
	top.WriteString(layout.Center(renderMetrics(res), cw))
	top.WriteString("\n\n")

	scores := components.HighScores(s.ctrl.History(), res.SessionID)
	buttons := layout.Center(components.ButtonRow(actionLabels, s.action), cw)

	used := lipgloss.Height(top.String()) + lipgloss.Height(scores) + lipgloss.Height(buttons) + 6
	review := renderReview(res.Review, s.offset, max(height-used, 3), cw)

	body := top.String() +
		layout.Center(scores, cw) + "\n\n" +
		layout.Divider(cw) + "\n" +
		review + "\n\n" +
		buttons
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(cw).Render(body))
}

func renderMetrics(res *quiz.Result) string {
	metric := func(label, value string) string {
		return theme.Hint.Render(label+" ") + theme.Body.Bold(true).Render(value)
	}
	parts := []string{
		metric("Time", layout.FormatDuration(res.DurationSeconds)),
		metric("Avg", fmt.Sprintf("%.1fs", res.AverageSeconds())),
		metric("Answered", fmt.Sprintf("%d/%d", res.Answered, res.TotalQuestions)),
		theme.DifficultyBadge(res.Difficulty),
	}
	if res.Offline {
		parts = append(parts, theme.Hint.Render("offline"))
	}
	return strings.Join(parts, "   ")
}

// renderReview lists the answer review starting at offset, showing as many
// questions as fit in height lines.
func renderReview(items []quiz.ReviewItem, offset, height, width int) string {
	if len(items) == 0 {
		return ""
	}
	offset = min(max(offset, 0), len(items)-1)

	var entries []string
	used := 0
	for i := offset; i < len(items); i++ {
		entry := reviewEntry(i, items[i], width)
		h := lipgloss.Height(entry)
		if len(entries) > 0 && used+h > height {
			break
		}
		entries = append(entries, entry)
		used += h
	}
	header := theme.Subtitle.Render(fmt.Sprintf("Answer review (%d-%d of %d)", offset+1, offset+len(entries), len(items)))
	return header + "\n" + strings.Join(entries, "\n")
}

func reviewEntry(i int, item quiz.ReviewItem, width int) string {
	var mark, detail string
	switch {
	case item.Correct:
		mark = theme.Correct.Render("✓")
		detail = theme.Correct.Render(item.Chosen)
	case item.TimedOut && !item.Answered:
		mark = theme.TimedOut.Render("⏱")
		detail = theme.TimedOut.Render("Time's up") + theme.Hint.Render("  correct: ") + theme.Body.Render(item.Question.CorrectAnswer)
	case !item.Answered:
		mark = theme.Incorrect.Render("✗")
		detail = theme.Hint.Render("Not answered  correct: ") + theme.Body.Render(item.Question.CorrectAnswer)
	default:
		mark = theme.Incorrect.Render("✗")
		detail = theme.Incorrect.Render(item.Chosen) + theme.Hint.Render("  correct: ") + theme.Body.Render(item.Question.CorrectAnswer)
	}
	q := lipgloss.NewStyle().Width(width - 6).Foreground(theme.Text).Render(fmt.Sprintf("%d. %s", i+1, item.Question.Text))
	return lipgloss.JoinHorizontal(lipgloss.Top, mark+" ", q) + "\n    " + detail
}

func scoreColor(pct int) color.Color {
	switch {
	case pct >= 70:
		return theme.Success
	case pct >= 50:
		return theme.Warning
	default:
		return theme.Error
	}
}
