package session

import (
	"math/rand"

	"sdjquiz/internal/quiz"
)

// Shuffle returns a uniformly shuffled copy of answers (Fisher-Yates) and the
// positions of the correct ones in the shuffled order.
func Shuffle(answers []quiz.Answer, rng *rand.Rand) ([]quiz.Answer, IndexSet) {
	shuffled := make([]quiz.Answer, len(answers))
	copy(shuffled, answers)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled, correctIndexes(shuffled)
}

func correctIndexes(answers []quiz.Answer) IndexSet {
	set := IndexSet{}
	for i, answer := range answers {
		if answer.Correct {
			set[i] = struct{}{}
		}
	}
	return set
}
