// Package ui holds text helpers shared by the terminal presenters.
package ui

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sdjquiz/internal/session"
)

var titleCaser = cases.Title(language.Und)

// TitleCase capitalizes each word of lowercase quiz text for display.
func TitleCase(text string) string {
	return titleCaser.String(text)
}

// QuestionHeader renders the "Q  1/10 : title" heading.
func QuestionHeader(view session.QuestionView) string {
	return fmt.Sprintf("Q%3d/%d : %s", view.Index+1, view.Total, view.Title)
}

// SelectHint tells the user how many answers to pick. Single choice
// questions say so; multi choice ones give the exact count.
func SelectHint(view session.QuestionView) string {
	if view.Single {
		return "Answers (select one):"
	}
	return fmt.Sprintf("Answers (select %d):", view.CorrectCount)
}

// ScoreLine renders the final score with its percentage.
func ScoreLine(result session.Result) string {
	return fmt.Sprintf("You achieved a score of %d/%d (%.2f%%)", result.Score, result.MaxScore, result.Percent())
}

// OutcomeMark renders a short verdict for one answered question.
func OutcomeMark(outcome session.Outcome) string {
	if outcome.Correct {
		return fmt.Sprintf("correct +%d", outcome.Awarded)
	}
	return "wrong +0"
}

// Positions renders 0-based positions as the 1-based list the user types.
func Positions(indexes []int) string {
	parts := make([]string, len(indexes))
	for i, index := range indexes {
		parts[i] = fmt.Sprintf("%d", index+1)
	}
	return strings.Join(parts, ",")
}
