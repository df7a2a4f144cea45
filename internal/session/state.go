package session

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when the engine is asked to move to a
// state that cannot follow the current one.
var ErrInvalidTransition = errors.New("invalid state transition")

// State is a step of a play-through.
type State int

const (
	StateNotStarted State = iota
	StateLoading
	StateAwaitingQuestionCount
	StatePresentingQuestion
	StateAwaitingAnswer
	StateFinished
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateLoading:
		return "loading"
	case StateAwaitingQuestionCount:
		return "awaiting_question_count"
	case StatePresentingQuestion:
		return "presenting_question"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateFinished:
		return "finished"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateFinished || s == StateAborted
}

var transitions = map[State][]State{
	StateNotStarted:            {StateLoading},
	StateLoading:               {StateAwaitingQuestionCount},
	StateAwaitingQuestionCount: {StatePresentingQuestion, StateFinished},
	StatePresentingQuestion:    {StateAwaitingAnswer},
	StateAwaitingAnswer:        {StatePresentingQuestion, StateFinished},
}

// canTransition reports whether next may follow current. Any non-terminal
// state may abort.
func canTransition(current, next State) bool {
	if current.Terminal() {
		return false
	}
	if next == StateAborted {
		return true
	}
	for _, allowed := range transitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}
