package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/abhisek/quizmaster/internal/quiz"
)

const (
	DefaultOpenTDBURL = "https://opentdb.com/api.php"
	defaultTimeout    = 10 * time.Second
)

// OpenTDB response codes.
const (
	codeSuccess      = 0
	codeNoResults    = 1
	codeInvalidParam = 2
	codeRateLimit    = 5
)

// OpenTDB fetches multiple-choice questions from the Open Trivia Database.
type OpenTDB struct {
	baseURL  string
	client   *http.Client
	amount   int
	category int
}

// OpenTDBOption configures an OpenTDB provider.
type OpenTDBOption func(*OpenTDB)

// WithBaseURL points the provider at a different API endpoint.
func WithBaseURL(u string) OpenTDBOption {
	return func(p *OpenTDB) {
		if u != "" {
			p.baseURL = u
		}
	}
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) OpenTDBOption {
	return func(p *OpenTDB) { p.client = c }
}

// WithAmount sets the number of questions requested.
func WithAmount(n int) OpenTDBOption {
	return func(p *OpenTDB) {
		if n > 0 {
			p.amount = n
		}
	}
}

// WithCategory restricts questions to an OpenTDB category ID.
func WithCategory(id int) OpenTDBOption {
	return func(p *OpenTDB) { p.category = id }
}

func NewOpenTDB(opts ...OpenTDBOption) *OpenTDB {
	p := &OpenTDB{
		baseURL: DefaultOpenTDBURL,
		client:  &http.Client{Timeout: defaultTimeout},
		amount:  quiz.DefaultQuestionCount,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *OpenTDB) Name() string { return "opentdb" }

type openTDBResponse struct {
	ResponseCode int             `json:"response_code"`
	Results      []openTDBResult `json:"results"`
}

type openTDBResult struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Questions requests a question set for difficulty. Text fields arrive HTML
// encoded and are decoded here.
func (p *OpenTDB) Questions(ctx context.Context, difficulty quiz.Difficulty) ([]quiz.Question, error) {
	reqURL, err := p.requestURL(difficulty)
	if err != nil {
		return nil, p.unavailable(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, p.unavailable(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, p.unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, p.unavailable(fmt.Errorf("unexpected HTTP status %d", resp.StatusCode))
	}

	var body openTDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, p.unavailable(fmt.Errorf("decode response: %w", err))
	}

	switch body.ResponseCode {
	case codeSuccess:
	case codeNoResults:
		return nil, &quiz.ErrNoQuestionsForDifficulty{Provider: p.Name(), Difficulty: difficulty}
	case codeInvalidParam:
		return nil, p.unavailable(fmt.Errorf("invalid request parameters"))
	case codeRateLimit:
		return nil, p.unavailable(fmt.Errorf("rate limited, wait a few seconds"))
	default:
		return nil, p.unavailable(fmt.Errorf("response code %d", body.ResponseCode))
	}

	out := make([]quiz.Question, 0, len(body.Results))
	for _, r := range body.Results {
		out = append(out, r.toQuestion(difficulty))
	}
	if len(out) == 0 {
		return nil, &quiz.ErrNoQuestionsForDifficulty{Provider: p.Name(), Difficulty: difficulty}
	}
	return out, nil
}

func (p *OpenTDB) requestURL(difficulty quiz.Difficulty) (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	q := u.Query()
	q.Set("amount", strconv.Itoa(p.amount))
	q.Set("type", "multiple")
	if difficulty != "" {
		q.Set("difficulty", string(difficulty))
	}
	if p.category > 0 {
		q.Set("category", strconv.Itoa(p.category))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (p *OpenTDB) unavailable(err error) error {
	return &quiz.ErrProviderUnavailable{Provider: p.Name(), Err: err}
}

func (r openTDBResult) toQuestion(requested quiz.Difficulty) quiz.Question {
	distractors := make([]string, len(r.IncorrectAnswers))
	for i, a := range r.IncorrectAnswers {
		distractors[i] = html.UnescapeString(a)
	}
	d := quiz.Difficulty(r.Difficulty)
	if !d.Valid() {
		d = requested
	}
	return quiz.Question{
		Text:          html.UnescapeString(r.Question),
		CorrectAnswer: html.UnescapeString(r.CorrectAnswer),
		Distractors:   distractors,
		Difficulty:    d,
		Category:      html.UnescapeString(r.Category),
	}
}
