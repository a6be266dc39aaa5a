// Package table builds bubble-table models for the history popup.
package table

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/nhath/quill/internal/config"
	"github.com/nhath/quill/internal/history"
)

// Column keys
const (
	ColWhen     = "when"
	ColQuestion = "question"
	ColStatus   = "status"
	ColTook     = "took"

	// MetaID holds the entry ID in each row's data
	MetaID = "id"
)

const pageSize = 12

// New creates a bubble-table with the theme's colors and no background
func New(cols []bbtable.Column, theme config.Theme) bbtable.Model {
	return bbtable.New(cols).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextPrimary))).
		HeaderStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Highlight)).
			Bold(true)).
		HighlightStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)).
			Bold(true)).
		Focused(true).
		BorderRounded()
}

// FromHistory builds the history table, newest entry first. width is the
// total width available for the table.
func FromHistory(entries []history.Entry, theme config.Theme, width int) bbtable.Model {
	questionWidth := width - 16 - 9 - 9 - 8 // other columns plus borders
	if questionWidth < 20 {
		questionWidth = 20
	}

	cols := []bbtable.Column{
		bbtable.NewColumn(ColWhen, "When", 16),
		bbtable.NewColumn(ColQuestion, "Question", questionWidth).WithFiltered(true),
		bbtable.NewColumn(ColStatus, "Status", 9),
		bbtable.NewColumn(ColTook, "Took", 9),
	}

	rows := make([]bbtable.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, bbtable.NewRow(bbtable.RowData{
			MetaID:      e.ID,
			ColWhen:     formatWhen(e.CreatedAt),
			ColQuestion: e.QuestionPreview(questionWidth - 2),
			ColStatus:   bbtable.NewStyledCell(e.Status, StatusStyle(e.Status, theme)),
			ColTook:     formatDuration(e.DurationMs),
		}))
	}

	t := New(cols, theme).
		WithRows(rows).
		WithPageSize(pageSize).
		Filtered(true)
	if len(rows) == 0 {
		return t.WithStaticFooter("No history yet")
	}
	return t.WithStaticFooter("enter restore · x delete · / filter · esc close")
}

// SelectedID returns the entry ID of the highlighted row
func SelectedID(t bbtable.Model) (int64, bool) {
	row := t.HighlightedRow()
	id, ok := row.Data[MetaID].(int64)
	return id, ok
}

// StatusStyle colors a history status
func StatusStyle(status string, theme config.Theme) lipgloss.Style {
	switch status {
	case history.StatusSuccess:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success))
	case history.StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning)).Italic(true)
	}
}

func formatWhen(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	s := fmt.Sprintf("%.1fs", float64(ms)/1000)
	return strings.Replace(s, ".0s", "s", 1)
}
