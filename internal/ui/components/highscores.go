package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizmaster/internal/quiz"
	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// HighScores renders the top scores, highlighting the entry with
// highlightID.
func HighScores(entries []quiz.HistoryEntry, highlightID string) string {
	var b strings.Builder
	b.WriteString(theme.Highlight.Render("High Scores"))
	b.WriteString("\n\n")
	if len(entries) == 0 {
		b.WriteString(theme.Hint.Render("No scores yet. Be the first!"))
		return b.String()
	}
	for i, e := range entries {
		line := fmt.Sprintf("%d. %2d/%-2d %3d%%  %-6s %s",
			i+1, e.Score, e.TotalQuestions, e.Percentage,
			e.Difficulty.DisplayName(), e.Timestamp.Local().Format("Jan 02"))
		style := theme.Body
		if e.ID == highlightID {
			style = theme.Highlight
			line += " ◂"
		}
		b.WriteString(style.Render(line))
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
