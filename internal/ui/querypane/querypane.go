// Package querypane hosts the modal SQL editor inside a Bubble Tea
// component. It translates terminal key events into editor key events,
// renders the buffer with cursor, selection, and syntax highlighting, and
// emits a SubmitMsg when the editor asks for the statement to be run.
package querypane

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sqlpen/sqlpen/internal/editor"
	"github.com/sqlpen/sqlpen/internal/sqltext"
	"github.com/sqlpen/sqlpen/internal/ui/styles"
)

var placeholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)

// SubmitMsg is sent when the user asks to execute the buffer content.
type SubmitMsg struct {
	Statement string
}

// Model holds the query pane state.
type Model struct {
	ed *editor.Editor

	width     int
	height    int
	focused   bool
	highlight bool

	// scroll is the first visible buffer line.
	scroll int

	placeholder string
}

// New creates an empty query pane with syntax highlighting enabled.
func New() Model {
	return Model{
		ed:          editor.New(),
		highlight:   true,
		placeholder: "-- type a query, ctrl+e to run",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Key events are only consumed while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	k, ok := translateKey(keyMsg)
	if !ok {
		return m, nil
	}

	event := m.ed.HandleKey(k)
	m.ensureCursorVisible()

	if event == editor.EventExecute {
		statement := m.ed.Value()
		return m, func() tea.Msg {
			return SubmitMsg{Statement: statement}
		}
	}
	return m, nil
}

// translateKey converts a tea.KeyMsg into an editor key event.
// Returns false for key types the editor has no mapping for.
func translateKey(msg tea.KeyMsg) (editor.Key, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		// Multi-rune input (bracketed paste) is not routed through the
		// modal engine.
		if msg.Alt || len(msg.Runes) != 1 {
			return editor.Key{}, false
		}
		return editor.RuneKey(msg.Runes[0]), true
	case tea.KeySpace:
		return editor.RuneKey(' '), true
	case tea.KeyEscape:
		return editor.Key{Kind: editor.KeyEscape}, true
	case tea.KeyEnter:
		return editor.Key{Kind: editor.KeyEnter}, true
	case tea.KeyTab:
		return editor.Key{Kind: editor.KeyTab}, true
	case tea.KeyBackspace:
		return editor.Key{Kind: editor.KeyBackspace}, true
	case tea.KeyDelete:
		return editor.Key{Kind: editor.KeyDelete}, true
	case tea.KeyLeft:
		return editor.Key{Kind: editor.KeyLeft}, true
	case tea.KeyRight:
		return editor.Key{Kind: editor.KeyRight}, true
	case tea.KeyUp:
		return editor.Key{Kind: editor.KeyUp}, true
	case tea.KeyDown:
		return editor.Key{Kind: editor.KeyDown}, true
	case tea.KeyHome:
		return editor.Key{Kind: editor.KeyHome}, true
	case tea.KeyEnd:
		return editor.Key{Kind: editor.KeyEnd}, true
	case tea.KeyCtrlE:
		return editor.CtrlKey('e'), true
	case tea.KeyCtrlR:
		return editor.CtrlKey('r'), true
	default:
		return editor.Key{}, false
	}
}

// Editor exposes the underlying modal editor for status bar rendering and
// direct state inspection.
func (m *Model) Editor() *editor.Editor {
	return m.ed
}

// Value returns the buffer content.
func (m Model) Value() string {
	return m.ed.Value()
}

// SetValue replaces the buffer content, resetting the editing session.
func (m *Model) SetValue(s string) {
	m.ed.SetValue(s)
	m.scroll = 0
}

// Mode returns the current editing mode.
func (m Model) Mode() editor.Mode {
	return m.ed.Mode()
}

// SetSize sets the viewport dimensions in terminal cells.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.ensureCursorVisible()
}

// Focus gives the pane keyboard input.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes keyboard input from the pane.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the pane has keyboard input.
func (m Model) Focused() bool {
	return m.focused
}

// SetHighlight toggles SQL syntax highlighting.
func (m *Model) SetHighlight(enabled bool) {
	m.highlight = enabled
}

// ensureCursorVisible adjusts the scroll offset so the cursor row stays
// inside the visible window.
func (m *Model) ensureCursorVisible() {
	if m.height <= 0 {
		m.scroll = 0
		return
	}
	row, _ := m.ed.Position()
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+m.height {
		m.scroll = row - m.height + 1
	}
}

// View renders the visible buffer lines.
func (m Model) View() string {
	text := m.ed.Value()
	if text == "" {
		return m.renderEmpty()
	}

	lines := strings.Split(text, "\n")
	cursor := m.ed.Cursor()
	selStart, selEnd, hasSel := m.ed.Selection()

	var visible []string
	offset := 0
	for i, line := range lines {
		inWindow := i >= m.scroll && (m.height <= 0 || i < m.scroll+m.height)
		if inWindow {
			visible = append(visible, m.renderLine(line, offset, cursor, selStart, selEnd, hasSel))
		}
		offset += len(line) + 1
	}
	return strings.Join(visible, "\n")
}

func (m Model) renderEmpty() string {
	if m.focused {
		return styles.CursorStyle.Render(" ")
	}
	if m.placeholder != "" {
		return placeholderStyle.Render(m.placeholder)
	}
	return ""
}

// renderLine renders one buffer line. Layer order: syntax highlighting as
// the base, selection background over it, cursor block on top. The cursor
// and selection positions are byte offsets into the full buffer; lineOff is
// the offset of the line's first byte.
func (m Model) renderLine(line string, lineOff, cursor, selStart, selEnd int, hasSel bool) string {
	cursorCol := -1
	if m.focused && cursor >= lineOff && cursor <= lineOff+len(line) {
		cursorCol = cursor - lineOff
	}
	selOverlaps := hasSel && selStart <= lineOff+len(line) && selEnd > lineOff

	if cursorCol < 0 && !selOverlaps {
		if m.highlight {
			return sqltext.Highlight(line)
		}
		return line
	}

	if line == "" {
		if cursorCol == 0 {
			return styles.CursorStyle.Render(" ")
		}
		return styles.SelectionStyle.Render(" ")
	}

	var tokenStyles map[int]lipgloss.Style
	if m.highlight {
		tokenStyles = sqltext.ByteStyles(line)
	}

	var b strings.Builder
	pos := 0
	for pos < len(line) {
		_, size := utf8.DecodeRuneInString(line[pos:])
		cluster := line[pos : pos+size]
		abs := lineOff + pos
		switch {
		case pos == cursorCol:
			b.WriteString(styles.CursorStyle.Render(cluster))
		case hasSel && abs >= selStart && abs < selEnd:
			b.WriteString(styles.SelectionStyle.Render(cluster))
		default:
			if style, ok := tokenStyles[pos]; ok {
				b.WriteString(style.Render(cluster))
			} else {
				b.WriteString(cluster)
			}
		}
		pos += size
	}

	// Insert mode allows the cursor one past the last character.
	if cursorCol == len(line) {
		b.WriteString(styles.CursorStyle.Render(" "))
	}
	return b.String()
}
