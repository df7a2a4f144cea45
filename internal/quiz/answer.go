package quiz

import "strings"

// Answer is one choice of a question.
type Answer struct {
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// AnswerUpdate carries the optional fields of an answer update.
// Nil fields are left unchanged.
type AnswerUpdate struct {
	Text    *string
	Correct *bool
}

// QuestionType distinguishes single from multiple answer questions.
type QuestionType string

const (
	// TypeSingle questions have exactly one correct answer.
	TypeSingle QuestionType = "single"
	// TypeMulti questions may have any number of correct answers.
	TypeMulti QuestionType = "multi"
)

// ParseQuestionType maps a record discriminator to a QuestionType.
func ParseQuestionType(value string) (QuestionType, bool) {
	switch QuestionType(normalizeText(strings.TrimSpace(value))) {
	case TypeSingle:
		return TypeSingle, true
	case TypeMulti:
		return TypeMulti, true
	default:
		return "", false
	}
}

func inferType(answers []Answer) QuestionType {
	if countCorrect(answers) == 1 {
		return TypeSingle
	}
	return TypeMulti
}

func countCorrect(answers []Answer) int {
	count := 0
	for _, answer := range answers {
		if answer.Correct {
			count++
		}
	}
	return count
}
