package quiz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Question is a multiple choice question owned by a Quiz.
type Question struct {
	id       string
	title    string
	text     string
	keywords []string
	score    int
	kind     QuestionType
	declared bool
	answers  []Answer
}

// QuestionParams holds the fields used to build a Question.
type QuestionParams struct {
	ID       string
	Title    string
	Text     string
	Keywords []string
	Score    int
	Type     QuestionType
	Answers  []Answer
}

// NewQuestion validates params and builds a Question.
// An empty ID is replaced by a generated one.
func NewQuestion(params QuestionParams) (*Question, error) {
	collector := &issueCollector{}
	if params.Score < 0 {
		collector.add("score", fmt.Sprintf("must be >= 0, got %d", params.Score))
	}
	kind := params.Type
	switch kind {
	case "":
		kind = inferType(params.Answers)
	case TypeSingle:
		if correct := countCorrect(params.Answers); correct != 1 {
			collector.add("answers", fmt.Sprintf("single choice question needs exactly one correct answer, got %d", correct))
		}
	case TypeMulti:
	default:
		collector.add("type", fmt.Sprintf("unknown question type %q", kind))
	}
	if err := collector.result(); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(params.ID)
	if id == "" {
		id = uuid.NewString()
	}
	answers := make([]Answer, len(params.Answers))
	copy(answers, params.Answers)
	return &Question{
		id:       id,
		title:    normalizeText(params.Title),
		text:     normalizeText(params.Text),
		keywords: normalizeKeywords(params.Keywords),
		score:    params.Score,
		kind:     kind,
		declared: params.Type != "",
		answers:  answers,
	}, nil
}

// ID returns the question unique id.
func (q *Question) ID() string { return q.id }

// Title returns the lowercase title.
func (q *Question) Title() string { return q.title }

// SetTitle stores the title in lowercase.
func (q *Question) SetTitle(title string) { q.title = normalizeText(title) }

// Text returns the lowercase question body.
func (q *Question) Text() string { return q.text }

// SetText stores the question body in lowercase.
func (q *Question) SetText(text string) { q.text = normalizeText(text) }

// Type returns whether the question is single or multi choice. A declared
// type is fixed; an inferred one follows the number of correct answers.
func (q *Question) Type() QuestionType { return q.kind }

// Score returns the value of the question.
func (q *Question) Score() int { return q.score }

// SetScore updates the value of the question. Negative scores are rejected
// and leave the current value unchanged.
func (q *Question) SetScore(score int) error {
	if score < 0 {
		return newValidationError("score", fmt.Sprintf("must be >= 0, got %d", score))
	}
	q.score = score
	return nil
}

// Keywords returns a copy of the sorted keyword list.
func (q *Question) Keywords() []string {
	out := make([]string, len(q.keywords))
	copy(out, q.keywords)
	return out
}

// SetKeywords replaces the keywords.
func (q *Question) SetKeywords(keywords []string) {
	q.keywords = normalizeKeywords(keywords)
}

// AddKeywords merges keywords into the existing set.
func (q *Question) AddKeywords(keywords []string) {
	q.keywords = normalizeKeywords(append(q.Keywords(), keywords...))
}

// DeleteKeywords removes keywords from the set. Unknown keywords are ignored.
func (q *Question) DeleteKeywords(keywords []string) {
	drop := make(map[string]struct{}, len(keywords))
	for _, keyword := range keywords {
		drop[normalizeText(strings.TrimSpace(keyword))] = struct{}{}
	}
	kept := q.keywords[:0]
	for _, keyword := range q.keywords {
		if _, ok := drop[keyword]; !ok {
			kept = append(kept, keyword)
		}
	}
	q.keywords = kept
}

// PurgeKeywords removes all keywords.
func (q *Question) PurgeKeywords() { q.keywords = []string{} }

// Answers returns a copy of the answers in authoring order.
func (q *Question) Answers() []Answer {
	out := make([]Answer, len(q.answers))
	copy(out, q.answers)
	return out
}

// CorrectCount returns the number of correct answers.
func (q *Question) CorrectCount() int { return countCorrect(q.answers) }

// AddAnswer appends an answer.
func (q *Question) AddAnswer(text string, correct bool) error {
	answers := append(q.Answers(), Answer{Text: text, Correct: correct})
	return q.applyAnswers(answers)
}

// UpdateAnswer changes the answer at index.
func (q *Question) UpdateAnswer(index int, update AnswerUpdate) error {
	if index < 0 || index >= len(q.answers) {
		return &IndexError{Kind: "answer", Index: index}
	}
	answers := q.Answers()
	if update.Text != nil {
		answers[index].Text = *update.Text
	}
	if update.Correct != nil {
		answers[index].Correct = *update.Correct
	}
	return q.applyAnswers(answers)
}

// DeleteAnswer removes the answer at index.
func (q *Question) DeleteAnswer(index int) error {
	if index < 0 || index >= len(q.answers) {
		return &IndexError{Kind: "answer", Index: index}
	}
	answers := make([]Answer, 0, len(q.answers)-1)
	answers = append(answers, q.answers[:index]...)
	answers = append(answers, q.answers[index+1:]...)
	return q.applyAnswers(answers)
}

// PurgeAnswers removes all answers.
func (q *Question) PurgeAnswers() error { return q.applyAnswers([]Answer{}) }

// SetAnswers replaces all answers.
func (q *Question) SetAnswers(answers []Answer) error {
	replaced := make([]Answer, len(answers))
	copy(replaced, answers)
	return q.applyAnswers(replaced)
}

// applyAnswers installs answers. A declared single question must keep exactly
// one correct answer; otherwise the change is rejected and nothing moves.
func (q *Question) applyAnswers(answers []Answer) error {
	if q.declared && q.kind == TypeSingle {
		if correct := countCorrect(answers); correct != 1 {
			return newValidationError("answers", fmt.Sprintf("single choice question needs exactly one correct answer, got %d", correct))
		}
	}
	q.answers = answers
	if !q.declared {
		q.kind = inferType(answers)
	}
	return nil
}

// Clone returns a deep copy of the question.
func (q *Question) Clone() *Question {
	clone := *q
	clone.keywords = q.Keywords()
	clone.answers = q.Answers()
	return &clone
}

func (q *Question) String() string { return q.text }

func normalizeText(value string) string {
	return strings.ToLower(value)
}

func normalizeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		normalized := normalizeText(strings.TrimSpace(keyword))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	sort.Strings(out)
	return out
}
