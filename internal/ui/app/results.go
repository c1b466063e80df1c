package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sqlpen/sqlpen/internal/db"
	"github.com/sqlpen/sqlpen/internal/history"
	"github.com/sqlpen/sqlpen/internal/sqltext"
	"github.com/sqlpen/sqlpen/internal/ui/styles"
)

// maxColumnWidth caps a single column so one wide value cannot push the
// rest off screen.
const maxColumnWidth = 40

// newResultsTable builds the empty results table with sqlpen styling.
func newResultsTable() table.Model {
	t := table.New()

	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(styles.TableHeaderColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.TableSelectedColor).
		Background(styles.TableSelectedBg).
		Bold(false)
	t.SetStyles(s)

	return t
}

// showResult loads a statement result into the table. Mutations have no
// rows; a single summary row keeps the pane from going blank.
func (m *Model) showResult(res *db.Result) {
	m.content = contentResults
	m.historyRows = nil
	m.tableNames = nil
	m.truncated = 0

	if res.Kind != sqltext.KindQuery {
		m.setTableData(
			[]string{"result"},
			[][]string{{fmt.Sprintf("%d row(s) affected", res.RowsAffected)}},
		)
		return
	}

	rows := res.Rows
	if pageSize := m.cfg.UI.ResultPageSize; pageSize > 0 && len(rows) > pageSize {
		m.truncated = len(rows) - pageSize
		rows = rows[:pageSize]
	}

	columns := res.Columns
	if m.cfg.UI.ShowRowNumbers {
		columns = append([]string{"#"}, columns...)
		numbered := make([][]string, len(rows))
		for i, row := range rows {
			numbered[i] = append([]string{fmt.Sprintf("%d", i+1)}, row...)
		}
		rows = numbered
	}

	m.setTableData(columns, rows)
}

// showHistory loads history entries into the table, newest first.
func (m *Model) showHistory(entries []history.Entry) {
	m.content = contentHistory
	m.historyRows = entries
	m.tableNames = nil
	m.truncated = 0

	rows := make([][]string, len(entries))
	for i, e := range entries {
		status := "ok"
		if !e.Succeeded() {
			status = "error"
		}
		rows[i] = []string{
			e.ExecutedAt.Format("2006-01-02 15:04:05"),
			e.Statement,
			fmt.Sprintf("%d", e.RowCount),
			fmt.Sprintf("%dms", e.DurationMs),
			status,
		}
	}
	m.setTableData([]string{"executed", "statement", "rows", "time", "status"}, rows)

	if m.focus == focusQuery {
		m.toggleFocus()
	}
}

// showTables loads the schema listing into the table.
func (m *Model) showTables(rows [][]string) {
	m.content = contentTables
	m.historyRows = nil
	m.truncated = 0

	m.tableNames = make([]string, len(rows))
	for i, row := range rows {
		m.tableNames[i] = row[0]
	}
	m.setTableData([]string{"table", "columns", "rows"}, rows)

	if m.focus == focusQuery {
		m.toggleFocus()
	}
}

// setTableData replaces the table columns and rows, sizing each column to
// its widest cell.
func (m *Model) setTableData(columns []string, rows [][]string) {
	cols := make([]table.Column, len(columns))
	for i, name := range columns {
		width := runewidth.StringWidth(name)
		for _, row := range rows {
			if i < len(row) {
				if w := runewidth.StringWidth(row[i]); w > width {
					width = w
				}
			}
		}
		cols[i] = table.Column{Title: name, Width: min(width, maxColumnWidth)}
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	// Rows must be cleared first so stale rows never render against the
	// new column set.
	m.results.SetRows(nil)
	m.results.SetColumns(cols)
	m.results.SetRows(tableRows)
	m.results.GotoTop()
}
