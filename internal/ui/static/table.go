// Package static provides non-interactive terminal output components.
//
// This package renders formatted output that does not require user
// interaction: the run table and the monthly breakdown.
package static

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/runlog/internal/analytics"
	"github.com/raphi011/runlog/internal/run"
)

// NoteWidth is the maximum rendered width of a note cell.
const NoteWidth = 40

// RunHeaders are the column headers for RunTableRow.
var RunHeaders = []string{"DATE", "TIME", "MILES", "NOTE"}

// MonthlyHeaders are the column headers for MonthlyTableRow.
var MonthlyHeaders = []string{"MONTH", "RUNS", "MILES", "AVG"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// RunTableRow formats a run as a row matching RunHeaders.
// Long notes are truncated to NoteWidth; a missing note shows as "-".
func RunTableRow(r run.Run) []string {
	note := "-"
	if r.HasNote() {
		note = ansi.Truncate(r.Note, NoteWidth, "…")
	}
	return []string{
		run.FormatDate(r.Date),
		run.FormatTime(r.TimeStarted),
		fmt.Sprintf("%.2f", r.DistanceMiles),
		note,
	}
}

// MonthlyTableRow formats one month of the breakdown matching MonthlyHeaders.
func MonthlyTableRow(m analytics.MonthlyData) []string {
	return []string{
		fmt.Sprintf("%s %d", time.Month(m.Month).String()[:3], m.Year),
		fmt.Sprintf("%d", m.RunCount),
		fmt.Sprintf("%.1f", m.TotalDistance),
		fmt.Sprintf("%.2f", m.AverageDistance),
	}
}

// RenderMonthly renders the most recent limit months of the breakdown,
// oldest first. limit <= 0 renders every month.
func RenderMonthly(months []analytics.MonthlyData, limit int) string {
	if limit > 0 && len(months) > limit {
		months = months[len(months)-limit:]
	}
	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, MonthlyTableRow(m))
	}
	return RenderTable(MonthlyHeaders, rows)
}
