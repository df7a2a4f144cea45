package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sdjquiz/internal/session"
	"sdjquiz/internal/ui"
)

const (
	colorTitle  = lipgloss.Color("33")
	colorLabel  = lipgloss.Color("39")
	colorMuted  = lipgloss.Color("244")
	colorError  = lipgloss.Color("196")
	colorGood   = lipgloss.Color("42")
	colorBad    = lipgloss.Color("220")
	colorBorder = lipgloss.Color("240")
)

// renderGreeting renders the quiz summary card.
func renderGreeting(greeting session.Greeting, width int, noColor bool) string {
	lines := []string{
		stylizeBold("Welcome to the quiz: "+ui.TitleCase(greeting.Title), noColor, colorTitle),
		ui.TitleCase(greeting.Description),
		"",
		stylize(fmt.Sprintf("Questions: %d  |  Maximum score: %d", greeting.QuestionsCount, greeting.MaxScore), noColor, colorMuted),
	}
	return box(strings.Join(lines, "\n"), width, noColor)
}

// renderQuestion renders the question card with numbered answers.
func renderQuestion(view session.QuestionView, width int, noColor bool) string {
	lines := []string{
		stylizeBold(ui.QuestionHeader(view), noColor, colorTitle),
		view.Text,
		"",
		stylize(ui.SelectHint(view), noColor, colorMuted),
	}
	for i, answer := range view.Answers {
		lines = append(lines, fmt.Sprintf("%s %s", stylize(fmt.Sprintf("%d)", i+1), noColor, colorLabel), answer))
	}
	return box(strings.Join(lines, "\n"), width, noColor)
}

// renderError renders an error line.
func renderError(err error, noColor bool) string {
	return stylize("ERROR: "+err.Error(), noColor, colorError)
}

// renderResult renders the final score line, colored by outcome.
func renderResult(result session.Result, noColor bool) string {
	color := colorBad
	if result.MaxScore > 0 && result.Score == result.MaxScore {
		color = colorGood
	}
	header := stylizeBold("Your result for quiz : "+ui.TitleCase(result.Title), noColor, colorTitle)
	return header + "\n\n" + stylize(ui.ScoreLine(result), noColor, color)
}

// box frames content with a rounded border when colors are enabled.
func box(content string, width int, noColor bool) string {
	if noColor {
		return content
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
	if width > 8 {
		style = style.Width(width - 4)
	}
	return style.Render(content)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeBold applies optional bold color styling.
func stylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(text)
}
