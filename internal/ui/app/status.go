package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/sqlpen/sqlpen/internal/editor"
	"github.com/sqlpen/sqlpen/internal/sqltext"
	"github.com/sqlpen/sqlpen/internal/ui/styles"
)

// statusView renders the one-line status bar: mode badge and pending keys
// on the left, connection in the middle, query outcome on the right.
func (m Model) statusView() string {
	if !m.cfg.UI.ShowStatusBar {
		return ""
	}

	left := m.modeBadge()
	if pending := m.pendingView(); pending != "" {
		left += " " + styles.PendingStyle.Render(pending)
	}
	row, col := m.query.Editor().Position()
	left += " " + styles.StatusInfoStyle.Render(fmt.Sprintf("%d:%d", row+1, col+1))

	middle := m.connectionView()
	right := m.outcomeView()

	gapWidth := m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gapWidth < 2 {
		middle = ""
		gapWidth = m.width - lipgloss.Width(left) - lipgloss.Width(right)
	}
	if gapWidth < 1 {
		gapWidth = 1
	}

	half := gapWidth / 2
	bar := left + strings.Repeat(" ", half) + middle + strings.Repeat(" ", gapWidth-half) + right
	return styles.StatusBarStyle.Render(bar)
}

func (m Model) modeBadge() string {
	mode := m.query.Mode()
	switch mode {
	case editor.ModeInsert:
		return styles.ModeInsertStyle.Render(mode.String())
	case editor.ModeVisual:
		return styles.ModeVisualStyle.Render(mode.String())
	case editor.ModeVisualLine:
		return styles.ModeVisualLineStyle.Render(mode.String())
	default:
		return styles.ModeNormalStyle.Render(mode.String())
	}
}

// pendingView shows the in-flight count and operator, vim showcmd style.
func (m Model) pendingView() string {
	ed := m.query.Editor()
	var b strings.Builder
	if count, ok := ed.PendingCount(); ok {
		fmt.Fprintf(&b, "%d", count)
	}
	if op, ok := ed.PendingOperator(); ok {
		b.WriteByte(byte(op))
	}
	return b.String()
}

func (m Model) connectionView() string {
	path := m.conn.Path()
	if path == "" {
		path = ":memory:"
	}
	path = truncate.StringWithTail(path, 40, "…")
	return styles.StatusInfoStyle.Render(path)
}

// outcomeView reports the state of the last execution.
func (m Model) outcomeView() string {
	switch {
	case m.running:
		return styles.StatusInfoStyle.Render("running...")

	case m.lastErr != nil:
		msg := truncate.StringWithTail(m.lastErr.Error(), uint(max(m.width/2, 20)), "…")
		return styles.StatusErrorStyle.Render(msg)

	case m.lastResult == nil:
		return ""

	case m.lastResult.Kind == sqltext.KindQuery:
		note := ""
		if m.truncated > 0 {
			note = fmt.Sprintf(" (showing %d)", len(m.lastResult.Rows)-m.truncated)
		}
		return styles.StatusInfoStyle.Render(fmt.Sprintf(
			"%d rows in %s%s", len(m.lastResult.Rows), fmtDuration(m.lastResult.Duration), note))

	default:
		return styles.StatusInfoStyle.Render(fmt.Sprintf(
			"%d row(s) affected in %s", m.lastResult.RowsAffected, fmtDuration(m.lastResult.Duration)))
	}
}

// fmtDuration keeps sub-millisecond timings readable instead of rounding
// them to zero.
func fmtDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}
