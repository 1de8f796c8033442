package quiz

import (
	"math"
	"time"
)

// ComputeScore counts the questions whose recorded answer equals the correct
// answer. Unanswered and timed-out questions are not correct.
func ComputeScore(answers AnswerRecord, questions []Question) int {
	score := 0
	for i, q := range questions {
		if a, ok := answers.Get(i); ok && q.IsCorrect(a) {
			score++
		}
	}
	return score
}

// Percentage returns score/total as a rounded whole percentage.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// ReviewItem describes the outcome of one question for the results screen.
type ReviewItem struct {
	Question Question `json:"question"`
	Chosen   string   `json:"chosen,omitempty"`
	Answered bool     `json:"answered"`
	Correct  bool     `json:"correct"`
	TimedOut bool     `json:"timed_out,omitempty"`
}

// Result is the outcome of a completed session.
type Result struct {
	SessionID       string       `json:"session_id"`
	Score           int          `json:"score"`
	TotalQuestions  int          `json:"total_questions"`
	Percentage      int          `json:"percentage"`
	Difficulty      Difficulty   `json:"difficulty"`
	DurationSeconds int          `json:"duration_seconds"`
	TimePerQuestion int          `json:"time_per_question"`
	Answered        int          `json:"answered"`
	Offline         bool         `json:"offline,omitempty"`
	StartedAt       time.Time    `json:"started_at"`
	CompletedAt     time.Time    `json:"completed_at"`
	Review          []ReviewItem `json:"review"`
	HighScore       bool         `json:"high_score"`
}

// BuildResult scores a finished session.
func BuildResult(s *Session) *Result {
	score := ComputeScore(s.Answers, s.Questions)
	review := make([]ReviewItem, len(s.Questions))
	answered := 0
	for i, q := range s.Questions {
		chosen, ok := s.Answers.Get(i)
		if ok {
			answered++
		}
		review[i] = ReviewItem{
			Question: q,
			Chosen:   chosen,
			Answered: ok,
			Correct:  ok && q.IsCorrect(chosen),
			TimedOut: s.TimedOut[i],
		}
	}

	return &Result{
		SessionID:       s.ID,
		Score:           score,
		TotalQuestions:  s.Total(),
		Percentage:      Percentage(score, s.Total()),
		Difficulty:      s.Difficulty,
		DurationSeconds: int(s.Elapsed(s.EndedAt).Seconds()),
		TimePerQuestion: s.Timer.Limit,
		Answered:        answered,
		Offline:         s.Offline,
		StartedAt:       s.StartedAt,
		CompletedAt:     s.EndedAt,
		Review:          review,
	}
}

// AverageSeconds returns the mean time spent per question.
func (r *Result) AverageSeconds() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.DurationSeconds) / float64(r.TotalQuestions)
}

// Message returns a short performance message for the percentage band.
func (r *Result) Message() string {
	switch {
	case r.Percentage >= 90:
		return "Outstanding! You're a trivia master!"
	case r.Percentage >= 70:
		return "Great job! You really know your stuff."
	case r.Percentage >= 50:
		return "Not bad! Keep practicing."
	default:
		return "Keep learning. You'll do better next time!"
	}
}

// HistoryEntry returns the leaderboard entry for this result, keyed by the
// session ID.
func (r *Result) HistoryEntry() HistoryEntry {
	return HistoryEntry{
		ID:              r.SessionID,
		Score:           r.Score,
		TotalQuestions:  r.TotalQuestions,
		Percentage:      r.Percentage,
		Difficulty:      r.Difficulty,
		DurationSeconds: r.DurationSeconds,
		Timestamp:       r.CompletedAt,
	}
}
