package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SummaryRow is one line of a summary table. Count values are aligned to
// the right edge of the value column.
type SummaryRow struct {
	Label string
	Value string
	Count bool
}

// RenderSummary renders rows as a two-column table between rules. Widths are
// measured in terminal cells, so paths with wide characters stay aligned.
func RenderSummary(rows []SummaryRow) string {
	labelWidth, valueWidth := 0, 0
	for _, row := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.Label))
		valueWidth = max(valueWidth, lipgloss.Width(row.Value))
	}

	rule := dimStyle.Render(strings.Repeat("─", labelWidth+valueWidth+3))

	var b strings.Builder
	b.WriteString(rule)
	for _, row := range rows {
		labelGap := strings.Repeat(" ", labelWidth-lipgloss.Width(row.Label))
		valueGap := strings.Repeat(" ", valueWidth-lipgloss.Width(row.Value))

		value := row.Value + valueGap
		if row.Count {
			value = valueGap + row.Value
		}
		fmt.Fprintf(&b, "\n%s%s : %s", labelStyle.Render(row.Label), labelGap, valueStyle.Render(value))
	}
	b.WriteString("\n" + rule)
	return b.String()
}

// RenderMessage renders a titled dialog text. Failures use the error color.
func RenderMessage(title, body string, failed bool) string {
	style := successStyle
	if failed {
		style = errorStyle
	}
	return style.Render(title) + "\n" + body
}

var (
	valueStyle   = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)
