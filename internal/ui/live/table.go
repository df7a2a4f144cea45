package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"sdjquiz/internal/session"
	"sdjquiz/internal/ui"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	if noColor {
		styles.Header = lipgloss.NewStyle().Padding(0, 1)
		styles.Cell = lipgloss.NewStyle().Padding(0, 1)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// resultColumns returns the result table columns.
func resultColumns() []table.Column {
	return []table.Column{
		{Title: "Q", Width: 4},
		{Title: "Question", Width: 40},
		{Title: "Expected", Width: 9},
		{Title: "Given", Width: 9},
		{Title: "Points", Width: 12},
	}
}

// rowsForResult converts outcomes into table rows.
func rowsForResult(result session.Result) []table.Row {
	rows := make([]table.Row, 0, len(result.Outcomes))
	for i, outcome := range result.Outcomes {
		rows = append(rows, table.Row{
			formatIndex(i),
			formatQuestionText(outcome.Title),
			ui.Positions(outcome.Expected),
			ui.Positions(outcome.Given),
			ui.OutcomeMark(outcome),
		})
	}
	return rows
}

// renderResultTable renders a static table of per-question outcomes.
func renderResultTable(result session.Result, noColor bool) string {
	if len(result.Outcomes) == 0 {
		return ""
	}
	t := table.New(
		table.WithColumns(resultColumns()),
		table.WithRows(rowsForResult(result)),
		table.WithFocused(false),
		table.WithHeight(len(result.Outcomes)+3),
	)
	t.SetStyles(tableStyles(noColor))
	return t.View()
}
