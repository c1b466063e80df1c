package editor

// Snapshot is one saved undo frame: the entire buffer content plus the
// cursor at save time. Frames are independent copies; mutating the live
// buffer never changes a stored frame.
type Snapshot struct {
	Content string
	Cursor  int
}

// History holds the undo and redo stacks. Both grow without bound for the
// life of the editing session; callers needing bounded memory impose their
// own cap.
type History struct {
	undo []Snapshot
	redo []Snapshot
}

// Save pushes the current state onto the undo stack. Saving also clears the
// redo stack: any edit after an undo discards the previously available redo
// history.
func (h *History) Save(content string, cursor int) {
	h.undo = append(h.undo, Snapshot{Content: content, Cursor: cursor})
	h.redo = h.redo[:0]
}

// Undo pops the most recent frame, pushing the caller's pre-undo state onto
// the redo stack. Returns false if there is nothing to undo.
func (h *History) Undo(current string, cursor int) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	frame := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, Snapshot{Content: current, Cursor: cursor})
	return frame, true
}

// Redo is the mirror of Undo.
func (h *History) Redo(current string, cursor int) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	frame := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, Snapshot{Content: current, Cursor: cursor})
	return frame, true
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Clear drops both stacks. Called when the host replaces the buffer content
// wholesale (loading a saved query, for example).
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}
