package editor

import (
	"strings"
	"unicode/utf8"
)

// Operator is a pending operator awaiting its target range. The zero value
// means no operator is pending. 'g' is carried through the same slot so the
// two-key gg jump shares the cancel-on-anything-else behavior.
type Operator byte

const (
	// OpNone means no operator is pending.
	OpNone Operator = 0
	// OpDelete is the d operator.
	OpDelete Operator = 'd'
	// OpChange is the c operator.
	OpChange Operator = 'c'
	// OpYank is the y operator.
	OpYank Operator = 'y'
	// OpGo is the g prefix (gg jumps to the first offset).
	OpGo Operator = 'g'
)

// Event is the outward signal produced by HandleKey. The editor itself
// mutates no external state; the host reacts to the event.
type Event int

const (
	// EventNone means the key was consumed (or ignored) internally.
	EventNone Event = iota
	// EventExecute asks the host to run the current buffer content as a
	// query. Triggered by enter in Normal mode or ctrl+e.
	EventExecute
)

// Editor is the modal editing engine. It exclusively owns the buffer, the
// register, and both undo stacks for the lifetime of one query-editing
// session. It processes one key event to completion before the next is
// read; there is no internal concurrency.
type Editor struct {
	buf     *Buffer
	reg     Register
	history History

	mode    Mode
	pending Operator
	count   int // accumulated count; 0 means unset
	anchor  int // visual selection anchor, valid only in visual modes
}

// New creates an empty editor in Normal mode.
func New() *Editor {
	return &Editor{buf: NewBuffer("")}
}

// NewWithContent creates an editor over the given content, cursor at 0.
func NewWithContent(s string) *Editor {
	return &Editor{buf: NewBuffer(s)}
}

// Value returns the full buffer content.
func (e *Editor) Value() string {
	return e.buf.String()
}

// Cursor returns the cursor offset.
func (e *Editor) Cursor() int {
	return e.buf.Cursor()
}

// Mode returns the current mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// PendingOperator returns the operator awaiting a target, if any.
func (e *Editor) PendingOperator() (Operator, bool) {
	return e.pending, e.pending != OpNone
}

// PendingCount returns the accumulated count, if any digits were typed.
func (e *Editor) PendingCount() (int, bool) {
	return e.count, e.count > 0
}

// Register returns the register content and its line-wise flag.
func (e *Editor) Register() (content string, linewise bool) {
	return e.reg.Get()
}

// CanUndo reports whether an undo frame is available.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether a redo frame is available.
func (e *Editor) CanRedo() bool {
	return e.history.CanRedo()
}

// Position returns the cursor as (row, col), both 0-indexed. Col is a byte
// offset within the line.
func (e *Editor) Position() (row, col int) {
	text := e.buf.String()
	cur := e.buf.Cursor()
	row = strings.Count(text[:cur], "\n")
	col = cur - lineStart(text, cur)
	return row, col
}

// SetValue replaces the buffer content, resetting cursor, history, and any
// in-progress selection or pending state.
func (e *Editor) SetValue(s string) {
	e.buf = NewBuffer(s)
	e.history.Clear()
	e.mode = ModeNormal
	e.pending = OpNone
	e.count = 0
}

// Selection returns the active selection as a [start, end) byte range for
// highlight rendering. Only valid in Visual and VisualLine modes. Line-wise
// selections span full lines but exclude the trailing newline.
func (e *Editor) Selection() (start, end int, ok bool) {
	if e.mode != ModeVisual && e.mode != ModeVisualLine {
		return 0, 0, false
	}
	text := e.buf.String()
	lo := min(e.anchor, e.buf.Cursor())
	hi := max(e.anchor, e.buf.Cursor())
	if e.mode == ModeVisualLine {
		return lineStart(text, lo), lineEnd(text, hi), true
	}
	return lo, min(nextBoundary(text, hi), len(text)), true
}

// HandleKey interprets one key event according to the current mode and
// pending state. Unrecognized keys are silently ignored.
func (e *Editor) HandleKey(k Key) Event {
	switch e.mode {
	case ModeNormal:
		return e.handleNormal(k)
	case ModeInsert:
		return e.handleInsert(k)
	case ModeVisual, ModeVisualLine:
		return e.handleVisual(k)
	}
	return EventNone
}

// takeCount consumes the pending count, defaulting to 1.
func (e *Editor) takeCount() int {
	n := e.count
	e.count = 0
	if n == 0 {
		return 1
	}
	return n
}

// saveUndo snapshots the buffer before a destructive mutation.
func (e *Editor) saveUndo() {
	e.history.Save(e.buf.String(), e.buf.Cursor())
}

// ============================================================================
// Normal mode
// ============================================================================

func (e *Editor) handleNormal(k Key) Event {
	if e.pending != OpNone {
		e.handlePendingOperator(k)
		return EventNone
	}

	switch k.Kind {
	case KeyRune:
		return e.handleNormalRune(k.Rune)
	case KeyCtrl:
		e.count = 0
		switch k.Rune {
		case 'r':
			e.redo()
		case 'e':
			return EventExecute
		}
	case KeyEnter:
		e.count = 0
		return EventExecute
	case KeyEscape:
		e.count = 0
	case KeyLeft:
		e.moveHorizontal(-e.takeCount())
	case KeyRight:
		e.moveHorizontal(e.takeCount())
	case KeyUp:
		e.moveVertical(-e.takeCount())
	case KeyDown:
		e.moveVertical(e.takeCount())
	case KeyHome:
		e.count = 0
		e.buf.SetCursor(lineStart(e.buf.String(), e.buf.Cursor()))
	case KeyEnd:
		e.count = 0
		e.moveToLineLastChar()
	default:
		e.count = 0
	}
	return EventNone
}

func (e *Editor) handleNormalRune(r rune) Event {
	// Digit accumulation: 1-9 always, 0 only once a count has started.
	// A bare 0 is the line-start motion instead.
	if r >= '1' && r <= '9' || (r == '0' && e.count > 0) {
		e.count = e.count*10 + int(r-'0')
		return EventNone
	}

	// Operators leave the accumulated count in place so it scales the
	// target (2dw deletes two words, 2dd two lines). gg ignores counts.
	switch r {
	case 'd':
		e.pending = OpDelete
		return EventNone
	case 'c':
		e.pending = OpChange
		return EventNone
	case 'y':
		e.pending = OpYank
		return EventNone
	case 'g':
		e.pending = OpGo
		e.count = 0
		return EventNone
	}

	text := e.buf.String()
	cur := e.buf.Cursor()
	count := e.takeCount()

	switch r {
	case 'i':
		e.saveUndo()
		e.mode = ModeInsert
	case 'a':
		e.saveUndo()
		if cur < e.buf.Len() {
			e.buf.SetCursor(nextBoundary(text, cur))
		}
		e.mode = ModeInsert
	case 'I':
		e.saveUndo()
		e.buf.SetCursor(firstNonBlank(text, cur))
		e.mode = ModeInsert
	case 'A':
		e.saveUndo()
		e.buf.SetCursor(lineEnd(text, cur))
		e.mode = ModeInsert
	case 'o':
		e.saveUndo()
		le := lineEnd(text, cur)
		_ = e.buf.Insert(le, "\n")
		e.buf.SetCursor(le + 1)
		e.mode = ModeInsert
	case 'O':
		e.saveUndo()
		ls := lineStart(text, cur)
		_ = e.buf.Insert(ls, "\n")
		e.buf.SetCursor(ls)
		e.mode = ModeInsert
	case 'h':
		e.moveHorizontal(-count)
	case 'l':
		e.moveHorizontal(count)
	case 'j':
		e.moveVertical(count)
	case 'k':
		e.moveVertical(-count)
	case 'w':
		pos := cur
		for range count {
			pos = wordForward(text, pos)
		}
		e.buf.SetCursor(clampToChar(text, pos))
	case 'b':
		pos := cur
		for range count {
			pos = wordBackward(text, pos)
		}
		e.buf.SetCursor(pos)
	case 'e':
		pos := cur
		for range count {
			pos = wordEnd(text, pos)
		}
		e.buf.SetCursor(pos)
	case '0':
		e.buf.SetCursor(lineStart(text, cur))
	case '$':
		e.moveToLineLastChar()
	case '^':
		e.buf.SetCursor(firstNonBlank(text, cur))
	case 'G':
		e.buf.SetCursor(clampToChar(text, e.buf.Len()))
	case 'x':
		e.deleteAtCursor(count)
	case 'X':
		e.deleteBeforeCursor(count)
	case 'D':
		e.deleteToLineEnd(false)
	case 'C':
		e.deleteToLineEnd(true)
	case 'Y':
		e.reg.Set(text[lineStart(text, cur):lineEnd(text, cur)], true)
	case 'p':
		e.paste(true, count)
	case 'P':
		e.paste(false, count)
	case 'v':
		e.anchor = cur
		e.mode = ModeVisual
	case 'V':
		e.anchor = cur
		e.mode = ModeVisualLine
	case 'u':
		e.undo()
	}
	return EventNone
}

// ============================================================================
// Operator-pending
// ============================================================================

// handlePendingOperator resolves the key following d, c, y, or g. Digits
// extend the count and keep the operator pending (d2w); any other key
// clears it, whether or not a target range was produced.
func (e *Editor) handlePendingOperator(k Key) {
	op := e.pending
	e.pending = OpNone

	if k.Kind != KeyRune {
		e.count = 0
		return
	}
	r := k.Rune

	if r >= '1' && r <= '9' || (r == '0' && e.count > 0) {
		e.count = e.count*10 + int(r-'0')
		e.pending = op
		return
	}
	count := e.takeCount()

	if op == OpGo {
		if r == 'g' {
			e.buf.SetCursor(0)
		}
		return
	}

	text := e.buf.String()
	cur := e.buf.Cursor()

	// A doubled operator (dd, cc, yy) targets count whole lines.
	if r == rune(op) {
		e.applyOperatorToLine(op, count)
		return
	}

	var start, end int
	switch r {
	case 'i', 'a':
		// Inner-word only: no second object character is read, so i and a
		// behave identically here.
		iw, ie, ok := innerWord(text, cur)
		if !ok {
			return
		}
		start, end = iw, ie
	case 'w':
		pos := cur
		for range count {
			pos = wordForward(text, pos)
		}
		start, end = cur, pos
	case 'b':
		pos := cur
		for range count {
			pos = wordBackward(text, pos)
		}
		start, end = pos, cur
	case 'e':
		pos := cur
		for range count {
			pos = wordEnd(text, pos)
		}
		start, end = cur, min(nextBoundary(text, pos), len(text))
	case '$':
		start, end = cur, lineEnd(text, cur)
	case '0':
		start, end = lineStart(text, cur), cur
	default:
		return
	}

	if start >= end {
		return
	}
	e.applyOperator(op, start, end, false)
}

// applyOperator yanks [start, end) and, for delete and change, removes it.
func (e *Editor) applyOperator(op Operator, start, end int, linewise bool) {
	text := e.buf.String()
	e.reg.Set(text[start:end], linewise)
	if op == OpYank {
		return
	}
	e.saveUndo()
	_, _ = e.buf.DeleteRange(start, end)
	if op == OpChange {
		// Insert mode may rest one past the last character.
		e.buf.SetCursor(start)
		e.mode = ModeInsert
	} else {
		e.buf.SetCursor(clampToChar(e.buf.String(), start))
	}
}

// applyOperatorToLine handles dd, cc, and yy over count lines starting at
// the cursor's. The yank excludes the final newline; the delete includes
// it so the lines are fully removed rather than left blank.
func (e *Editor) applyOperatorToLine(op Operator, count int) {
	text := e.buf.String()
	cur := e.buf.Cursor()
	ls := lineStart(text, cur)
	le := lineEnd(text, cur)
	for ; count > 1 && le < len(text); count-- {
		le = lineEnd(text, le+1)
	}

	e.reg.Set(text[ls:le], true)
	if op == OpYank {
		return
	}

	start, end := lineDeleteRange(text, ls, le)
	if start >= end {
		if op == OpChange {
			e.saveUndo()
			e.mode = ModeInsert
		}
		return
	}
	e.saveUndo()
	_, _ = e.buf.DeleteRange(start, end)
	if op == OpChange {
		e.buf.SetCursor(min(ls, e.buf.Len()))
		e.mode = ModeInsert
	} else {
		e.buf.SetCursor(clampToChar(e.buf.String(), ls))
	}
}

// lineDeleteRange widens a line's [start, end) to swallow a newline: the
// trailing one when present, otherwise the preceding one so deleting the
// last line does not leave a dangling blank.
func lineDeleteRange(text string, ls, le int) (int, int) {
	switch {
	case le < len(text):
		return ls, le + 1
	case ls > 0:
		return ls - 1, len(text)
	default:
		return 0, len(text)
	}
}

// ============================================================================
// Insert mode
// ============================================================================

func (e *Editor) handleInsert(k Key) Event {
	text := e.buf.String()
	cur := e.buf.Cursor()

	switch k.Kind {
	case KeyRune:
		e.insertText(string(k.Rune))
	case KeyEnter:
		e.insertText("\n")
	case KeyTab:
		e.insertText("\t")
	case KeyBackspace:
		if cur > 0 {
			prev := prevBoundary(text, cur)
			_, _ = e.buf.DeleteRange(prev, cur)
			e.buf.SetCursor(prev)
		}
	case KeyDelete:
		if cur < len(text) {
			_, _ = e.buf.DeleteRange(cur, nextBoundary(text, cur))
		}
	case KeyLeft:
		if cur > 0 {
			e.buf.SetCursor(prevBoundary(text, cur))
		}
	case KeyRight:
		if cur < len(text) {
			e.buf.SetCursor(nextBoundary(text, cur))
		}
	case KeyUp:
		e.moveVerticalInsert(-1)
	case KeyDown:
		e.moveVerticalInsert(1)
	case KeyHome:
		e.buf.SetCursor(lineStart(text, cur))
	case KeyEnd:
		e.buf.SetCursor(lineEnd(text, cur))
	case KeyCtrl:
		if k.Rune == 'e' {
			return EventExecute
		}
	case KeyEscape:
		e.mode = ModeNormal
		if cur > 0 {
			e.buf.SetCursor(prevBoundary(text, cur))
		}
	}
	return EventNone
}

func (e *Editor) insertText(s string) {
	cur := e.buf.Cursor()
	if err := e.buf.Insert(cur, s); err != nil {
		return
	}
	e.buf.SetCursor(cur + len(s))
}

// ============================================================================
// Visual modes
// ============================================================================

func (e *Editor) handleVisual(k Key) Event {
	switch k.Kind {
	case KeyEscape:
		e.mode = ModeNormal
		return EventNone
	case KeyLeft:
		e.moveHorizontal(-1)
		return EventNone
	case KeyRight:
		e.moveHorizontal(1)
		return EventNone
	case KeyUp:
		e.moveVertical(-1)
		return EventNone
	case KeyDown:
		e.moveVertical(1)
		return EventNone
	case KeyCtrl:
		if k.Rune == 'e' {
			e.mode = ModeNormal
			return EventExecute
		}
		return EventNone
	case KeyRune:
		// handled below
	default:
		return EventNone
	}

	text := e.buf.String()
	cur := e.buf.Cursor()

	switch k.Rune {
	case 'h':
		e.moveHorizontal(-1)
	case 'l':
		e.moveHorizontal(1)
	case 'j':
		e.moveVertical(1)
	case 'k':
		e.moveVertical(-1)
	case 'w':
		e.buf.SetCursor(clampToChar(text, wordForward(text, cur)))
	case 'b':
		e.buf.SetCursor(wordBackward(text, cur))
	case 'e':
		e.buf.SetCursor(wordEnd(text, cur))
	case '0':
		e.buf.SetCursor(lineStart(text, cur))
	case '$':
		e.moveToLineLastChar()
	case '^':
		e.buf.SetCursor(firstNonBlank(text, cur))
	case 'v':
		if e.mode == ModeVisual {
			e.mode = ModeNormal
		} else {
			e.mode = ModeVisual
		}
	case 'V':
		if e.mode == ModeVisualLine {
			e.mode = ModeNormal
		} else {
			e.mode = ModeVisualLine
		}
	case 'd', 'x':
		e.visualDelete(false)
	case 'c':
		e.visualDelete(true)
	case 'y':
		e.visualYank()
	}
	return EventNone
}

// visualRanges computes the yank and delete ranges for the active
// selection. Line-wise selections exclude the trailing newline from the
// yank but include it in the delete, mirroring dd.
func (e *Editor) visualRanges() (yankStart, yankEnd, delStart, delEnd int) {
	text := e.buf.String()
	lo := min(e.anchor, e.buf.Cursor())
	hi := max(e.anchor, e.buf.Cursor())
	if e.mode == ModeVisualLine {
		ls := lineStart(text, lo)
		le := lineEnd(text, hi)
		ds, de := lineDeleteRange(text, ls, le)
		return ls, le, ds, de
	}
	end := min(nextBoundary(text, hi), len(text))
	return lo, end, lo, end
}

func (e *Editor) visualYank() {
	text := e.buf.String()
	ys, ye, _, _ := e.visualRanges()
	content := text[ys:ye]
	linewise := e.mode == ModeVisualLine
	// A character-wise span that crosses a line boundary pastes more
	// naturally as lines; promote it.
	if !linewise && strings.Contains(content, "\n") {
		linewise = true
		// Line-wise register content excludes the trailing newline; the
		// paste path adds it back.
		content = strings.TrimSuffix(content, "\n")
	}
	if content != "" {
		e.reg.Set(content, linewise)
	}
	e.mode = ModeNormal
}

func (e *Editor) visualDelete(enterInsert bool) {
	text := e.buf.String()
	ys, ye, ds, de := e.visualRanges()
	if de > ds {
		e.reg.Set(text[ys:ye], e.mode == ModeVisualLine)
		e.saveUndo()
		_, _ = e.buf.DeleteRange(ds, de)
		if enterInsert {
			e.buf.SetCursor(min(ys, e.buf.Len()))
		} else {
			e.buf.SetCursor(clampToChar(e.buf.String(), min(ys, ds)))
		}
	}
	if enterInsert {
		e.mode = ModeInsert
	} else {
		e.mode = ModeNormal
	}
}

// ============================================================================
// Shared edit operations
// ============================================================================

// deleteAtCursor implements x: yank and remove count characters at the
// cursor.
func (e *Editor) deleteAtCursor(count int) {
	text := e.buf.String()
	cur := e.buf.Cursor()
	end := cur
	for range count {
		if end >= len(text) {
			break
		}
		end = nextBoundary(text, end)
	}
	if end == cur {
		return
	}
	e.reg.Set(text[cur:end], false)
	e.saveUndo()
	_, _ = e.buf.DeleteRange(cur, end)
	e.buf.SetCursor(clampToChar(e.buf.String(), cur))
}

// deleteBeforeCursor implements X: yank and remove count characters before
// the cursor.
func (e *Editor) deleteBeforeCursor(count int) {
	text := e.buf.String()
	cur := e.buf.Cursor()
	start := cur
	for range count {
		if start <= 0 {
			break
		}
		start = prevBoundary(text, start)
	}
	if start == cur {
		return
	}
	e.reg.Set(text[start:cur], false)
	e.saveUndo()
	_, _ = e.buf.DeleteRange(start, cur)
	e.buf.SetCursor(start)
}

// deleteToLineEnd implements D and C.
func (e *Editor) deleteToLineEnd(enterInsert bool) {
	text := e.buf.String()
	cur := e.buf.Cursor()
	le := lineEnd(text, cur)
	if le > cur {
		e.reg.Set(text[cur:le], false)
		e.saveUndo()
		_, _ = e.buf.DeleteRange(cur, le)
	}
	if enterInsert {
		e.mode = ModeInsert
	} else {
		e.buf.SetCursor(clampCursorToLine(e.buf.String(), e.buf.Cursor()))
	}
}

// paste inserts the register content count times, after the cursor for p
// and at the cursor for P. Line-wise content is inserted as whole lines.
func (e *Editor) paste(after bool, count int) {
	if e.reg.Empty() {
		return
	}
	content, linewise := e.reg.Get()
	text := e.buf.String()
	cur := e.buf.Cursor()

	if linewise {
		block := strings.Repeat(content+"\n", count)
		e.saveUndo()
		if after {
			le := lineEnd(text, cur)
			if le == len(text) {
				// Unterminated last line: terminate it so the paste lands on
				// its own line.
				_ = e.buf.Insert(le, "\n"+block)
				e.buf.SetCursor(le + 1)
			} else {
				_ = e.buf.Insert(le+1, block)
				e.buf.SetCursor(le + 1)
			}
		} else {
			ls := lineStart(text, cur)
			_ = e.buf.Insert(ls, block)
			e.buf.SetCursor(ls)
		}
		return
	}

	payload := strings.Repeat(content, count)
	pos := cur
	if after && e.buf.Len() > 0 {
		pos = nextBoundary(text, cur)
	}
	e.saveUndo()
	if err := e.buf.Insert(pos, payload); err != nil {
		return
	}
	// Cursor rests on the last inserted character.
	e.buf.SetCursor(prevBoundary(e.buf.String(), pos+len(payload)))
}

func (e *Editor) undo() {
	frame, ok := e.history.Undo(e.buf.String(), e.buf.Cursor())
	if !ok {
		return
	}
	e.buf.Replace(frame.Content, frame.Cursor)
	e.buf.SetCursor(clampToChar(frame.Content, e.buf.Cursor()))
}

func (e *Editor) redo() {
	frame, ok := e.history.Redo(e.buf.String(), e.buf.Cursor())
	if !ok {
		return
	}
	e.buf.Replace(frame.Content, frame.Cursor)
}

// ============================================================================
// Cursor movement helpers
// ============================================================================

// moveHorizontal moves the cursor by n characters, negative for left,
// clamped to buffer bounds. In Normal and Visual modes the cursor rests on
// a character, never past the last one.
func (e *Editor) moveHorizontal(n int) {
	text := e.buf.String()
	pos := e.buf.Cursor()
	for ; n < 0 && pos > 0; n++ {
		pos = prevBoundary(text, pos)
	}
	for ; n > 0; n-- {
		next := nextBoundary(text, pos)
		if next >= len(text) {
			break
		}
		pos = next
	}
	e.buf.SetCursor(clampToChar(text, pos))
}

// moveVertical moves the cursor n lines down (negative for up), preserving
// the column where the target line is long enough and clamping to the
// target line's last character otherwise.
func (e *Editor) moveVertical(n int) {
	e.buf.SetCursor(verticalTarget(e.buf.String(), e.buf.Cursor(), n, false))
}

// moveVerticalInsert is the Insert-mode variant: the cursor may rest at the
// line end, one past the last character.
func (e *Editor) moveVerticalInsert(n int) {
	e.buf.SetCursor(verticalTarget(e.buf.String(), e.buf.Cursor(), n, true))
}

// verticalTarget computes the offset n lines away from pos, preserving the
// column. allowLineEnd permits landing on the newline itself (Insert mode).
func verticalTarget(text string, pos, n int, allowLineEnd bool) int {
	col := pos - lineStart(text, pos)
	ls := lineStart(text, pos)
	for ; n > 0; n-- {
		le := lineEnd(text, ls)
		if le >= len(text) {
			break
		}
		ls = le + 1
	}
	for ; n < 0 && ls > 0; n++ {
		ls = lineStart(text, ls-1)
	}
	le := lineEnd(text, ls)
	target := min(ls+col, le)
	// A byte column carried over from a line of different content can
	// split a multibyte character on the target line.
	for target > ls && target < len(text) && !utf8.RuneStart(text[target]) {
		target--
	}
	if !allowLineEnd && target == le && target > ls {
		target = prevBoundary(text, target)
	}
	return target
}

// moveToLineLastChar implements $: the cursor lands on the line's last
// character, or the line start when the line is empty.
func (e *Editor) moveToLineLastChar() {
	text := e.buf.String()
	cur := e.buf.Cursor()
	le := lineEnd(text, cur)
	ls := lineStart(text, cur)
	if le > ls {
		e.buf.SetCursor(prevBoundary(text, le))
	} else {
		e.buf.SetCursor(ls)
	}
}

// clampToChar clamps pos so the cursor rests on a character: at most the
// last byte of non-empty content, 0 otherwise.
func clampToChar(text string, pos int) int {
	if len(text) == 0 {
		return 0
	}
	if pos >= len(text) {
		return prevBoundary(text, len(text))
	}
	return max(pos, 0)
}

// clampCursorToLine steps the cursor back one when it sits on a line's
// terminating newline (or one past the end), keeping it on a character.
func clampCursorToLine(text string, pos int) int {
	ls := lineStart(text, pos)
	if pos > ls && (pos >= len(text) || text[pos] == '\n') {
		return prevBoundary(text, pos)
	}
	return max(pos, 0)
}

// nextBoundary returns the offset one character after pos, respecting UTF-8
// boundaries.
func nextBoundary(text string, pos int) int {
	if pos >= len(text) {
		return len(text)
	}
	_, size := utf8.DecodeRuneInString(text[pos:])
	return pos + size
}

// prevBoundary returns the offset one character before pos.
func prevBoundary(text string, pos int) int {
	if pos <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(text[:pos])
	return pos - size
}
