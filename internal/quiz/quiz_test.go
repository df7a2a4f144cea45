package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func newTestQuiz(t *testing.T, scores ...int) *Quiz {
	t.Helper()
	questions := make([]*Question, 0, len(scores))
	for i, score := range scores {
		question, err := NewQuestion(QuestionParams{
			ID:      fmt.Sprintf("q%d", i+1),
			Title:   fmt.Sprintf("Question %d", i+1),
			Text:    "Pick one",
			Score:   score,
			Answers: []Answer{{Text: "yes", Correct: true}, {Text: "no"}},
		})
		if err != nil {
			t.Fatalf("new question: %v", err)
		}
		questions = append(questions, question)
	}
	q, err := New("Test Quiz", "A Description", "Someone", questions)
	if err != nil {
		t.Fatalf("new quiz: %v", err)
	}
	return q
}

// TestQuizDerivedTotals verifies count and max score are derived from the bank.
func TestQuizDerivedTotals(t *testing.T) {
	q := newTestQuiz(t, 1, 2, 5)
	if q.QuestionsCount() != 3 {
		t.Fatalf("expected 3 questions, got %d", q.QuestionsCount())
	}
	if q.MaxScore() != 8 {
		t.Fatalf("expected max score 8, got %d", q.MaxScore())
	}
	if q.Title() != "test quiz" || q.Description() != "a description" {
		t.Fatalf("expected lowercase title/description, got %q/%q", q.Title(), q.Description())
	}
	if q.Author() != "Someone" {
		t.Fatalf("expected author kept verbatim, got %q", q.Author())
	}
	for _, question := range q.Questions() {
		stored, ok := q.Question(question.ID())
		if !ok || stored.ID() != question.ID() {
			t.Fatalf("bank key mismatch for %q", question.ID())
		}
	}
}

// TestGetQuestionsSamplesWithoutReplacement verifies in-range counts.
func TestGetQuestionsSamplesWithoutReplacement(t *testing.T) {
	q := newTestQuiz(t, 1, 1, 1, 1, 1)
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= q.QuestionsCount(); n++ {
		selected := q.GetQuestions(n, rng)
		if len(selected) != n {
			t.Fatalf("expected %d questions, got %d", n, len(selected))
		}
		seen := map[string]struct{}{}
		for _, question := range selected {
			if _, ok := q.Question(question.ID()); !ok {
				t.Fatalf("question %q not from bank", question.ID())
			}
			if _, dup := seen[question.ID()]; dup {
				t.Fatalf("question %q selected twice", question.ID())
			}
			seen[question.ID()] = struct{}{}
		}
	}
}

// TestGetQuestionsClampsCount verifies out-of-range counts return the whole bank.
func TestGetQuestionsClampsCount(t *testing.T) {
	q := newTestQuiz(t, 1, 2, 3)
	for _, count := range []int{-4, 0, 4, 100} {
		selected := q.GetQuestions(count, rand.New(rand.NewSource(int64(count))))
		if len(selected) != 3 {
			t.Fatalf("count %d: expected whole bank, got %d", count, len(selected))
		}
		seen := map[string]struct{}{}
		for _, question := range selected {
			seen[question.ID()] = struct{}{}
		}
		if len(seen) != 3 {
			t.Fatalf("count %d: expected every question once, got %v", count, seen)
		}
	}
}

// TestGetQuestionsRandomizesOrder verifies presentation order varies across seeds.
func TestGetQuestionsRandomizesOrder(t *testing.T) {
	q := newTestQuiz(t, 1, 1, 1, 1, 1, 1)
	firsts := map[string]struct{}{}
	for seed := int64(0); seed < 50; seed++ {
		selected := q.GetQuestions(0, rand.New(rand.NewSource(seed)))
		firsts[selected[0].ID()] = struct{}{}
	}
	if len(firsts) < 2 {
		t.Fatalf("expected varying first question, got %v", firsts)
	}
}

// TestGetQuestionsReturnsClones verifies callers cannot mutate the bank.
func TestGetQuestionsReturnsClones(t *testing.T) {
	q := newTestQuiz(t, 1)
	selected := q.GetQuestions(1, rand.New(rand.NewSource(1)))
	selected[0].PurgeAnswers()
	original, _ := q.Question(selected[0].ID())
	if len(original.Answers()) != 2 {
		t.Fatalf("expected bank question untouched")
	}
}

// TestQuestionBankOperations verifies add and delete by id.
func TestQuestionBankOperations(t *testing.T) {
	q := newTestQuiz(t, 1, 2)
	duplicate, err := NewQuestion(QuestionParams{ID: "q1", Score: 1})
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	var validationErr *ValidationError
	if err := q.AddQuestion(duplicate); !errors.As(err, &validationErr) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
	fresh, err := NewQuestion(QuestionParams{Score: 4})
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	if err := q.AddQuestion(fresh); err != nil {
		t.Fatalf("add question: %v", err)
	}
	if q.MaxScore() != 7 {
		t.Fatalf("expected max score 7, got %d", q.MaxScore())
	}
	var indexErr *IndexError
	if err := q.DeleteQuestion("nope"); !errors.As(err, &indexErr) {
		t.Fatalf("expected index error, got %v", err)
	}
	if err := q.DeleteQuestion("q1"); err != nil {
		t.Fatalf("delete question: %v", err)
	}
	if q.QuestionsCount() != 2 {
		t.Fatalf("expected 2 questions, got %d", q.QuestionsCount())
	}
}
