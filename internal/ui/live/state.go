package live

import (
	"strconv"

	"sdjquiz/internal/session"
)

// Summary aggregates outcomes by verdict.
type Summary struct {
	Answered int
	Correct  int
	Wrong    int
}

// summarize counts outcomes for the footer line.
func summarize(outcomes []session.Outcome) Summary {
	var summary Summary
	for _, outcome := range outcomes {
		summary.Answered++
		if outcome.Correct {
			summary.Correct++
		} else {
			summary.Wrong++
		}
	}
	return summary
}

// renderSummary renders the verdict counts line.
func renderSummary(summary Summary, noColor bool) string {
	line := "Answered: " + fmtInt(summary.Answered) +
		" Correct: " + fmtInt(summary.Correct) +
		" Wrong: " + fmtInt(summary.Wrong)
	return stylize(line, noColor, colorMuted)
}

// formatIndex formats a question index.
func formatIndex(index int) string {
	return "Q" + pad2(index+1)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return fmtInt(value)
	}
	return "0" + fmtInt(value)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatQuestionText truncates question text for display.
func formatQuestionText(text string) string {
	runes := []rune(text)
	const limit = 40
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}
