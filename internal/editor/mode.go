// Package editor implements the modal editing engine behind the query pane.
// It owns the text buffer, the single yank/delete register, the undo history,
// and the vim-style mode state machine. The package performs no I/O: it
// consumes abstract key events and exposes a read-only snapshot (content,
// cursor, mode, selection) that the rendering layer polls each frame.
package editor

// Mode represents the current editing mode.
type Mode int

const (
	// ModeNormal is the default mode for navigation and operators.
	ModeNormal Mode = iota
	// ModeInsert is the mode for inserting text.
	ModeInsert
	// ModeVisual is the mode for character-wise visual selection.
	ModeVisual
	// ModeVisualLine is the mode for line-wise visual selection.
	ModeVisualLine
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL LINE"
	default:
		return "UNKNOWN"
	}
}
