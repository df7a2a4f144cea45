package quiz

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Quiz is a titled bank of questions keyed by question id.
type Quiz struct {
	title       string
	description string
	author      string
	bank        map[string]*Question
}

// New builds a Quiz from already constructed questions.
// Duplicate question ids are rejected.
func New(title, description, author string, questions []*Question) (*Quiz, error) {
	q := &Quiz{
		title:       normalizeText(title),
		description: normalizeText(description),
		author:      author,
		bank:        make(map[string]*Question, len(questions)),
	}
	collector := &issueCollector{}
	for i, question := range questions {
		if question == nil {
			collector.add(fmt.Sprintf("questions[%d]", i), "is required")
			continue
		}
		if _, exists := q.bank[question.ID()]; exists {
			collector.add(fmt.Sprintf("questions[%d].uniqueId", i), fmt.Sprintf("duplicate id %q", question.ID()))
			continue
		}
		q.bank[question.ID()] = question
	}
	if err := collector.result(); err != nil {
		return nil, err
	}
	return q, nil
}

// Title returns the lowercase quiz title.
func (q *Quiz) Title() string { return q.title }

// SetTitle stores the title in lowercase.
func (q *Quiz) SetTitle(title string) { q.title = normalizeText(title) }

// Description returns the lowercase quiz description.
func (q *Quiz) Description() string { return q.description }

// SetDescription stores the description in lowercase.
func (q *Quiz) SetDescription(description string) { q.description = normalizeText(description) }

// Author returns the quiz author as written in the source.
func (q *Quiz) Author() string { return q.author }

// QuestionsCount returns the size of the question bank.
func (q *Quiz) QuestionsCount() int { return len(q.bank) }

// MaxScore returns the sum of all question scores.
func (q *Quiz) MaxScore() int {
	total := 0
	for _, question := range q.bank {
		total += question.Score()
	}
	return total
}

// Question looks up a question by id.
func (q *Quiz) Question(id string) (*Question, bool) {
	question, ok := q.bank[id]
	return question, ok
}

// Questions returns the bank ordered by id.
func (q *Quiz) Questions() []*Question {
	out := make([]*Question, 0, len(q.bank))
	for _, question := range q.bank {
		out = append(out, question)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// AddQuestion inserts a question into the bank.
func (q *Quiz) AddQuestion(question *Question) error {
	if question == nil {
		return newValidationError("question", "is required")
	}
	if _, exists := q.bank[question.ID()]; exists {
		return newValidationError("uniqueId", fmt.Sprintf("duplicate id %q", question.ID()))
	}
	q.bank[question.ID()] = question
	return nil
}

// DeleteQuestion removes a question from the bank.
func (q *Quiz) DeleteQuestion(id string) error {
	if _, exists := q.bank[id]; !exists {
		return &IndexError{Kind: "question", ID: id}
	}
	delete(q.bank, id)
	return nil
}

// GetQuestions samples count questions uniformly without replacement.
// A count below 1 or above the bank size selects the whole bank. The returned
// order is random and every question is an independent clone.
func (q *Quiz) GetQuestions(count int, rng *rand.Rand) []*Question {
	pool := q.Questions()
	if count < 1 || count > len(pool) {
		count = len(pool)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	selected := make([]*Question, count)
	for i := range selected {
		selected[i] = pool[i].Clone()
	}
	return selected
}

func (q *Quiz) String() string {
	return fmt.Sprintf("%s (%s)", q.title, q.description)
}
