package session

import (
	"errors"
	"math/rand"
	"time"

	"sdjquiz/internal/quiz"
)

// ErrSessionFinished is returned when submitting after the last question.
var ErrSessionFinished = errors.New("session already finished")

// Round is one selected question with its answers in display order.
type Round struct {
	Index    int
	Question *quiz.Question
	Answers  []quiz.Answer
	Correct  IndexSet
}

// View converts the round into what a presenter displays.
func (r Round) View(total int) QuestionView {
	answers := make([]string, len(r.Answers))
	for i, answer := range r.Answers {
		answers[i] = answer.Text
	}
	return QuestionView{
		Index:        r.Index,
		Total:        total,
		Title:        r.Question.Title(),
		Text:         r.Question.Text(),
		Answers:      answers,
		CorrectCount: len(r.Correct),
		Single:       r.Question.Type() == quiz.TypeSingle,
	}
}

// Session is one play-through: the selected questions, their display order,
// and the running score. It can be driven one question at a time.
type Session struct {
	id       string
	title    string
	rounds   []Round
	outcomes []Outcome
	current  int
	score    int
	maxScore int
}

// NewSession selects count questions from q (the whole bank when count is
// out of range) and snapshots a shuffled answer order for each of them.
func NewSession(q *quiz.Quiz, count int, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	selected := q.GetQuestions(count, rng)
	s := &Session{
		id:     newSessionID(),
		title:  q.Title(),
		rounds: make([]Round, 0, len(selected)),
	}
	for i, question := range selected {
		answers, correct := Shuffle(question.Answers(), rng)
		s.rounds = append(s.rounds, Round{
			Index:    i,
			Question: question,
			Answers:  answers,
			Correct:  correct,
		})
		s.maxScore += question.Score()
	}
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Len returns the number of selected questions.
func (s *Session) Len() int { return len(s.rounds) }

// Done reports whether every selected question has been answered.
func (s *Session) Done() bool { return s.current >= len(s.rounds) }

// Current returns the question awaiting an answer.
func (s *Session) Current() (Round, bool) {
	if s.Done() {
		return Round{}, false
	}
	return s.rounds[s.current], true
}

// Submit checks raw input against the current question. Malformed input
// returns an error wrapping ErrInvalidAnswer and leaves the session on the
// same question. Valid input is scored and the session advances.
func (s *Session) Submit(raw string) (Outcome, error) {
	round, ok := s.Current()
	if !ok {
		return Outcome{}, ErrSessionFinished
	}
	given, err := ParseAnswer(raw, len(round.Answers), len(round.Correct))
	if err != nil {
		return Outcome{}, err
	}
	outcome := Outcome{
		QuestionID: round.Question.ID(),
		Title:      round.Question.Title(),
		Score:      round.Question.Score(),
		Correct:    given.Equal(round.Correct),
		Expected:   round.Correct.Sorted(),
		Given:      given.Sorted(),
	}
	if outcome.Correct {
		outcome.Awarded = outcome.Score
		s.score += outcome.Score
	}
	s.outcomes = append(s.outcomes, outcome)
	s.current++
	return outcome, nil
}

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// MaxScore returns the sum of scores over the selected questions.
func (s *Session) MaxScore() int { return s.maxScore }

// Result reports the score so far.
func (s *Session) Result() Result {
	outcomes := make([]Outcome, len(s.outcomes))
	copy(outcomes, s.outcomes)
	return Result{
		Title:    s.title,
		Score:    s.score,
		MaxScore: s.maxScore,
		Outcomes: outcomes,
	}
}
