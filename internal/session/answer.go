package session

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidAnswer is returned when raw input is not an acceptable selection.
var ErrInvalidAnswer = errors.New("invalid answer")

// IndexSet is a set of 0-based answer positions.
type IndexSet map[int]struct{}

// NewIndexSet builds a set from positions.
func NewIndexSet(indexes ...int) IndexSet {
	set := make(IndexSet, len(indexes))
	for _, index := range indexes {
		set[index] = struct{}{}
	}
	return set
}

// Equal reports whether both sets hold exactly the same positions.
func (s IndexSet) Equal(other IndexSet) bool {
	if len(s) != len(other) {
		return false
	}
	for index := range s {
		if _, ok := other[index]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the positions in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for index := range s {
		out = append(out, index)
	}
	sort.Ints(out)
	return out
}

// answerToken matches one selected number, blanks allowed around it.
var answerToken = regexp.MustCompile(`^\s*\d+\s*$`)

// ValidateAnswer reports whether raw selects exactly required distinct
// answers among displayed ones, using 1-based numbers separated by commas.
func ValidateAnswer(raw string, displayed, required int) bool {
	_, err := ParseAnswer(raw, displayed, required)
	return err == nil
}

// ParseAnswer validates raw input and converts it to 0-based positions.
func ParseAnswer(raw string, displayed, required int) (IndexSet, error) {
	if required < 0 || required > displayed {
		return nil, fmt.Errorf("%w: cannot select %d of %d answers", ErrInvalidAnswer, required, displayed)
	}
	if required == 0 {
		if strings.TrimSpace(raw) != "" {
			return nil, fmt.Errorf("%w: no answer expected", ErrInvalidAnswer)
		}
		return IndexSet{}, nil
	}
	tokens := strings.Split(raw, ",")
	if len(tokens) != required {
		return nil, fmt.Errorf("%w: expected %d comma separated number(s)", ErrInvalidAnswer, required)
	}
	for _, token := range tokens {
		if !answerToken.MatchString(token) {
			return nil, fmt.Errorf("%w: expected %d comma separated number(s)", ErrInvalidAnswer, required)
		}
	}
	set := make(IndexSet, required)
	for _, token := range tokens {
		value, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || value < 1 || value > displayed {
			return nil, fmt.Errorf("%w: %q is not between 1 and %d", ErrInvalidAnswer, strings.TrimSpace(token), displayed)
		}
		if _, dup := set[value-1]; dup {
			return nil, fmt.Errorf("%w: %d selected twice", ErrInvalidAnswer, value)
		}
		set[value-1] = struct{}{}
	}
	return set, nil
}
