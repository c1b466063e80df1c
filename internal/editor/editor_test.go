package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// press feeds each character of keys as a printable key event.
func press(e *Editor, keys string) {
	for _, r := range keys {
		e.HandleKey(RuneKey(r))
	}
}

func escape(e *Editor) {
	e.HandleKey(Key{Kind: KeyEscape})
}

func TestNew_InitialState(t *testing.T) {
	e := New()

	require.Equal(t, ModeNormal, e.Mode())
	require.Empty(t, e.Value())
	require.Equal(t, 0, e.Cursor())
	_, ok := e.PendingOperator()
	require.False(t, ok)
	_, ok = e.PendingCount()
	require.False(t, ok)
}

// ============================================================================
// Insert mode entry
// ============================================================================

func TestInsertEntry_I(t *testing.T) {
	e := NewWithContent("hello")
	press(e, "i")

	require.Equal(t, ModeInsert, e.Mode())
	require.Equal(t, 0, e.Cursor())
	require.True(t, e.CanUndo()) // frame saved on entry
}

func TestInsertEntry_Append(t *testing.T) {
	e := NewWithContent("ab")
	press(e, "l") // cursor on 'b'
	press(e, "a")

	require.Equal(t, ModeInsert, e.Mode())
	require.Equal(t, 2, e.Cursor()) // one past the last character
}

func TestInsertEntry_LineVariants(t *testing.T) {
	e := NewWithContent("  hi")
	press(e, "A")
	require.Equal(t, ModeInsert, e.Mode())
	require.Equal(t, 4, e.Cursor())

	e = NewWithContent("  hi")
	press(e, "$I")
	require.Equal(t, ModeInsert, e.Mode())
	require.Equal(t, 2, e.Cursor()) // first non-blank
}

func TestInsertEntry_OpenLine(t *testing.T) {
	e := NewWithContent("ab\ncd")
	press(e, "o")
	require.Equal(t, "ab\n\ncd", e.Value())
	require.Equal(t, 3, e.Cursor())
	require.Equal(t, ModeInsert, e.Mode())

	e = NewWithContent("ab\ncd")
	press(e, "j") // onto "cd"
	press(e, "O")
	require.Equal(t, "ab\n\ncd", e.Value())
	require.Equal(t, 3, e.Cursor())
	require.Equal(t, ModeInsert, e.Mode())
}

func TestInsert_TypeAndEscape(t *testing.T) {
	e := New()
	press(e, "i")
	press(e, "hi")
	require.Equal(t, "hi", e.Value())
	require.Equal(t, 2, e.Cursor())

	escape(e)
	require.Equal(t, ModeNormal, e.Mode())
	require.Equal(t, 1, e.Cursor()) // stepped back onto the last character
}

func TestInsert_EscapeAtStartStays(t *testing.T) {
	e := NewWithContent("ab")
	press(e, "i")
	escape(e)
	require.Equal(t, 0, e.Cursor())
}

func TestInsert_BackspaceDeleteEnter(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "i")

	e.HandleKey(Key{Kind: KeyRight})
	e.HandleKey(Key{Kind: KeyBackspace})
	require.Equal(t, "bc", e.Value())
	require.Equal(t, 0, e.Cursor())

	e.HandleKey(Key{Kind: KeyDelete})
	require.Equal(t, "c", e.Value())

	e.HandleKey(Key{Kind: KeyEnter})
	require.Equal(t, "\nc", e.Value())
	require.Equal(t, 1, e.Cursor())
}

func TestInsert_HomeEnd(t *testing.T) {
	e := NewWithContent("hello\nworld")
	press(e, "i")
	e.HandleKey(Key{Kind: KeyEnd})
	require.Equal(t, 5, e.Cursor())
	e.HandleKey(Key{Kind: KeyHome})
	require.Equal(t, 0, e.Cursor())
}

// ============================================================================
// Normal mode motions
// ============================================================================

func TestMotion_WordForwardScenario(t *testing.T) {
	e := NewWithContent("SELECT a FROM t")

	press(e, "w")
	require.Equal(t, 7, e.Cursor())
	press(e, "w")
	require.Equal(t, 9, e.Cursor())
	press(e, "w")
	require.Equal(t, 14, e.Cursor())
}

func TestMotion_HLClampToBuffer(t *testing.T) {
	e := NewWithContent("abc")

	press(e, "h")
	require.Equal(t, 0, e.Cursor())
	press(e, "lll")
	require.Equal(t, 2, e.Cursor()) // rests on last character
}

func TestMotion_VerticalPreservesColumn(t *testing.T) {
	e := NewWithContent("abcdef\nab\nabcdef")
	press(e, "llll") // col 4

	press(e, "j")
	require.Equal(t, 8, e.Cursor()) // clamped to last char of "ab"
	press(e, "j")
	require.Equal(t, 11, e.Cursor()) // col 1 carried from clamped position
	press(e, "k")
	require.Equal(t, 8, e.Cursor())
}

func TestMotion_VerticalSnapsToRuneBoundary(t *testing.T) {
	// The carried byte column lands inside the two-byte é on the target
	// line; the cursor must snap back to the rune start.
	e := NewWithContent("abc\naéx")
	press(e, "llj")

	require.Equal(t, 5, e.Cursor())
	row, col := e.Position()
	require.Equal(t, 1, row)
	require.Equal(t, 1, col)

	e = NewWithContent("aéx\nabcd")
	press(e, "jllk")
	require.Equal(t, 1, e.Cursor())
}

func TestMotion_LineJumps(t *testing.T) {
	e := NewWithContent("  abc def")

	press(e, "$")
	require.Equal(t, 8, e.Cursor())
	press(e, "0")
	require.Equal(t, 0, e.Cursor())
	press(e, "^")
	require.Equal(t, 2, e.Cursor())
}

func TestMotion_BufferJumps(t *testing.T) {
	e := NewWithContent("one\ntwo")

	press(e, "G")
	require.Equal(t, 6, e.Cursor())
	press(e, "gg")
	require.Equal(t, 0, e.Cursor())
}

func TestMotion_GCancelsOnOtherKey(t *testing.T) {
	e := NewWithContent("one\ntwo")
	press(e, "G")

	press(e, "gx") // g pending, x cancels it
	require.Equal(t, 6, e.Cursor())
	require.Equal(t, "one\ntwo", e.Value()) // x consumed by the pending g, no delete
	_, ok := e.PendingOperator()
	require.False(t, ok)
}

func TestCount_Accumulation(t *testing.T) {
	e := NewWithContent("aaaaaaaaaaaa")

	press(e, "3l")
	require.Equal(t, 3, e.Cursor())

	press(e, "10l") // multi-digit count; 0 is a digit once a count started
	require.Equal(t, 11, e.Cursor())

	_, ok := e.PendingCount()
	require.False(t, ok) // consumed
}

func TestCount_ScalesWordMotion(t *testing.T) {
	e := NewWithContent("SELECT a FROM t")
	press(e, "2w")
	require.Equal(t, 9, e.Cursor())
}

func TestCount_ScalesOperator(t *testing.T) {
	tests := []struct {
		name    string
		content string
		keys    string
		want    string
		wantReg string
	}{
		{"2dw before the operator", "one two three", "2dw", "three", "one two "},
		{"d2w after the operator", "one two three", "d2w", "three", "one two "},
		{"2dd spans two lines", "a\nb\nc", "2dd", "c", "a\nb"},
		{"d2d spans two lines", "a\nb\nc", "d2d", "c", "a\nb"},
		{"2yy leaves the buffer", "a\nb\nc", "2yy", "a\nb\nc", "a\nb"},
		{"count past the last line clamps", "a\nb", "9dd", "", "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewWithContent(tt.content)
			press(e, tt.keys)
			require.Equal(t, tt.want, e.Value())
			content, _ := e.Register()
			require.Equal(t, tt.wantReg, content)
		})
	}
}

func TestCount_DigitKeepsOperatorPending(t *testing.T) {
	e := NewWithContent("one two three")
	press(e, "d2")

	op, ok := e.PendingOperator()
	require.True(t, ok)
	require.Equal(t, OpDelete, op)
	count, ok := e.PendingCount()
	require.True(t, ok)
	require.Equal(t, 2, count)
}

// ============================================================================
// Delete / yank operations
// ============================================================================

func TestDeleteChar_Scenario(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "lx")

	require.Equal(t, "ac", e.Value())
	require.Equal(t, 1, e.Cursor())
	content, linewise := e.Register()
	require.Equal(t, "b", content)
	require.False(t, linewise)
}

func TestDeleteChar_Count(t *testing.T) {
	e := NewWithContent("abcd")
	press(e, "l2x")

	require.Equal(t, "ad", e.Value())
	content, _ := e.Register()
	require.Equal(t, "bc", content)
}

func TestDeleteCharBefore(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "llX")

	require.Equal(t, "ac", e.Value())
	require.Equal(t, 1, e.Cursor())
	content, _ := e.Register()
	require.Equal(t, "b", content)
}

func TestDeleteWord_Scenario(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "dw")

	require.Empty(t, e.Value())
	require.Equal(t, 0, e.Cursor())
	content, linewise := e.Register()
	require.Equal(t, "abc", content)
	require.False(t, linewise)
	_, ok := e.PendingOperator()
	require.False(t, ok)
}

func TestDeleteMotions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		setup   string // keys to position the cursor
		keys    string
		want    string
		wantReg string
	}{
		{"dw spans trailing space", "foo bar", "", "dw", "bar", "foo "},
		{"de stops at word end", "foo bar", "", "de", " bar", "foo"},
		{"db deletes back to word start", "foo bar", "$", "db", "foo r", "ba"},
		{"d$ to line end", "ab cd\nef", "l", "d$", "a\nef", "b cd"},
		{"d0 to line start", "ab cd\nef", "$", "d0", "d\nef", "ab c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewWithContent(tt.content)
			press(e, tt.setup)
			press(e, tt.keys)
			require.Equal(t, tt.want, e.Value())
			content, _ := e.Register()
			require.Equal(t, tt.wantReg, content)
		})
	}
}

func TestInnerWordObject(t *testing.T) {
	// i and a both resolve the inner word; no second object character is
	// consumed.
	for _, key := range []string{"di", "da"} {
		e := NewWithContent("foo bar")
		press(e, "w") // onto "bar"
		press(e, key)
		require.Equal(t, "foo ", e.Value(), "sequence %q", key)
		content, _ := e.Register()
		require.Equal(t, "bar", content)
	}
}

func TestInnerWordObject_OnNonWordCancels(t *testing.T) {
	e := NewWithContent("a + b")
	press(e, "ll") // onto '+'
	press(e, "di")

	require.Equal(t, "a + b", e.Value())
	_, ok := e.PendingOperator()
	require.False(t, ok)
}

func TestOperatorPending_CancelOnUnknownKey(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "dz")

	require.Equal(t, "abc", e.Value())
	_, ok := e.PendingOperator()
	require.False(t, ok)
}

func TestOperatorPending_CancelOnEscape(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "d")
	escape(e)

	require.Equal(t, "abc", e.Value())
	_, ok := e.PendingOperator()
	require.False(t, ok)
}

func TestDeleteLine_MiddleOfThree(t *testing.T) {
	e := NewWithContent("one\ntwo\nthree")
	press(e, "j") // onto "two"
	press(e, "dd")

	require.Equal(t, "one\nthree", e.Value())
	require.Equal(t, 4, e.Cursor())
	content, linewise := e.Register()
	require.Equal(t, "two", content)
	require.True(t, linewise)

	// yy right after leaves the buffer alone and re-fills the register.
	press(e, "yy")
	require.Equal(t, "one\nthree", e.Value())
	content, linewise = e.Register()
	require.Equal(t, "three", content)
	require.True(t, linewise)
}

func TestDeleteLine_LastLineRemovesPrecedingNewline(t *testing.T) {
	e := NewWithContent("ab\ncd")
	press(e, "j")
	press(e, "dd")

	require.Equal(t, "ab", e.Value())
	require.Equal(t, 1, e.Cursor())
}

func TestDeleteLine_SoleLine(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "dd")

	require.Empty(t, e.Value())
	require.Equal(t, 0, e.Cursor())
}

func TestChangeLine(t *testing.T) {
	e := NewWithContent("ab\ncd")
	press(e, "cc")

	require.Equal(t, "cd", e.Value())
	require.Equal(t, 0, e.Cursor())
	require.Equal(t, ModeInsert, e.Mode())
	content, linewise := e.Register()
	require.Equal(t, "ab", content)
	require.True(t, linewise)
}

func TestChangeWord(t *testing.T) {
	e := NewWithContent("foo bar")
	press(e, "cw")

	require.Equal(t, "bar", e.Value())
	require.Equal(t, ModeInsert, e.Mode())
	press(e, "go ")
	require.Equal(t, "go bar", e.Value())
}

func TestDeleteToLineEnd(t *testing.T) {
	e := NewWithContent("ab cd\nef")
	press(e, "lD")

	require.Equal(t, "a\nef", e.Value())
	require.Equal(t, 0, e.Cursor()) // clamped back onto the line
	content, linewise := e.Register()
	require.Equal(t, "b cd", content)
	require.False(t, linewise)
}

func TestChangeToLineEnd(t *testing.T) {
	e := NewWithContent("ab cd\nef")
	press(e, "lC")

	require.Equal(t, "a\nef", e.Value())
	require.Equal(t, 1, e.Cursor())
	require.Equal(t, ModeInsert, e.Mode())
}

func TestYankLine(t *testing.T) {
	e := NewWithContent("ab cd\nef")
	press(e, "lY")

	require.Equal(t, "ab cd\nef", e.Value())
	require.Equal(t, 1, e.Cursor()) // cursor unchanged
	content, linewise := e.Register()
	require.Equal(t, "ab cd", content)
	require.True(t, linewise)
}

// ============================================================================
// Paste
// ============================================================================

func TestPaste_CharwiseRoundTrip(t *testing.T) {
	// x then P restores the original buffer.
	e := NewWithContent("abc")
	press(e, "lxP")

	require.Equal(t, "abc", e.Value())
	require.Equal(t, 1, e.Cursor()) // on the pasted character
}

func TestPaste_After(t *testing.T) {
	e := NewWithContent("ab")
	e.reg.Set("X", false)
	press(e, "p")

	require.Equal(t, "aXb", e.Value())
	require.Equal(t, 1, e.Cursor())
}

func TestPaste_CountRepeats(t *testing.T) {
	e := NewWithContent("a")
	e.reg.Set("x", false)
	press(e, "3p")

	require.Equal(t, "axxx", e.Value())
	require.Equal(t, 3, e.Cursor())
}

func TestPaste_EmptyRegisterIsNoop(t *testing.T) {
	e := NewWithContent("ab")
	press(e, "p")

	require.Equal(t, "ab", e.Value())
	require.False(t, e.CanUndo()) // no undo frame for a no-op
}

func TestPaste_LinewiseScenario(t *testing.T) {
	e := NewWithContent("line1\nline2")
	press(e, "Y")  // yank "line1" line-wise
	press(e, "jp") // paste below line2

	require.Equal(t, "line1\nline2\nline1\n", e.Value())
	require.Equal(t, 12, e.Cursor()) // start of the pasted line
}

func TestPaste_LinewiseAfterTerminatedLine(t *testing.T) {
	e := NewWithContent("a\nb\n")
	e.reg.Set("Z", true)
	press(e, "p")

	require.Equal(t, "a\nZ\nb\n", e.Value())
	require.Equal(t, 2, e.Cursor())
}

func TestPaste_LinewiseBefore(t *testing.T) {
	e := NewWithContent("line1\nline2")
	e.reg.Set("X", true)
	press(e, "jP")

	require.Equal(t, "line1\nX\nline2", e.Value())
	require.Equal(t, 6, e.Cursor())
}

// ============================================================================
// Undo / redo
// ============================================================================

func TestUndoRedo_TwoInserts(t *testing.T) {
	e := New()
	press(e, "ix")
	escape(e)
	press(e, "ay")
	escape(e)
	require.Equal(t, "xy", e.Value())

	press(e, "u")
	require.Equal(t, "x", e.Value())
	press(e, "u")
	require.Empty(t, e.Value())
	require.Equal(t, 0, e.Cursor())

	e.HandleKey(CtrlKey('r'))
	require.Equal(t, "x", e.Value())
	e.HandleKey(CtrlKey('r'))
	require.Equal(t, "xy", e.Value())
}

func TestUndo_EmptyStackIsNoop(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "u")

	require.Equal(t, "abc", e.Value())
	require.Equal(t, 0, e.Cursor())
}

func TestUndo_RestoresCursor(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "x")
	require.Equal(t, "bc", e.Value())

	press(e, "u")
	require.Equal(t, "abc", e.Value())
	require.Equal(t, 0, e.Cursor())
}

func TestRedo_InvalidatedByNewEdit(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "x")
	press(e, "u")
	require.True(t, e.CanRedo())

	press(e, "x") // new edit discards redo history
	require.False(t, e.CanRedo())
}

// TestUndoRedoUndo_Idempotent: undo after redo after undo lands on the same
// state as after the first undo.
func TestUndoRedoUndo_Idempotent(t *testing.T) {
	e := NewWithContent("hello")
	press(e, "dw")

	press(e, "u")
	wantValue, wantCursor := e.Value(), e.Cursor()

	e.HandleKey(CtrlKey('r'))
	press(e, "u")
	require.Equal(t, wantValue, e.Value())
	require.Equal(t, wantCursor, e.Cursor())
}

// ============================================================================
// Visual modes
// ============================================================================

func TestVisual_SelectAndDelete(t *testing.T) {
	e := NewWithContent("hello world")
	press(e, "v")
	require.Equal(t, ModeVisual, e.Mode())

	start, end, ok := e.Selection()
	require.True(t, ok)
	require.Equal(t, 0, start)
	require.Equal(t, 1, end)

	press(e, "e")
	start, end, ok = e.Selection()
	require.True(t, ok)
	require.Equal(t, 0, start)
	require.Equal(t, 5, end)

	press(e, "d")
	require.Equal(t, " world", e.Value())
	require.Equal(t, 0, e.Cursor())
	require.Equal(t, ModeNormal, e.Mode())
	content, linewise := e.Register()
	require.Equal(t, "hello", content)
	require.False(t, linewise)
}

func TestVisual_XDeletesLikeD(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "vlx")

	require.Equal(t, "c", e.Value())
	content, _ := e.Register()
	require.Equal(t, "ab", content)
}

func TestVisual_ChangeEntersInsert(t *testing.T) {
	e := NewWithContent("hello")
	press(e, "vllc")

	require.Equal(t, "lo", e.Value())
	require.Equal(t, 0, e.Cursor())
	require.Equal(t, ModeInsert, e.Mode())
}

func TestVisual_ReversedAnchor(t *testing.T) {
	e := NewWithContent("hello")
	press(e, "$vbb")

	start, end, ok := e.Selection()
	require.True(t, ok)
	require.Equal(t, 0, start)
	require.Equal(t, 5, end)
}

func TestVisual_YankKeepsBuffer(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "vly")

	require.Equal(t, "abc", e.Value())
	require.Equal(t, ModeNormal, e.Mode())
	content, linewise := e.Register()
	require.Equal(t, "ab", content)
	require.False(t, linewise)
}

// TestVisual_YankAutoPromotesOnNewline: a character-wise yank spanning a
// line break is marked line-wise after the fact.
func TestVisual_YankAutoPromotesOnNewline(t *testing.T) {
	e := NewWithContent("ab\ncd")
	press(e, "vjy")

	content, linewise := e.Register()
	require.Equal(t, "ab\nc", content)
	require.True(t, linewise)
}

// TestVisual_YankEndingOnNewlineTrimsIt: when the selection's last
// character is the line break itself, the promoted line-wise register
// holds the bare line, so pasting does not introduce a blank line.
func TestVisual_YankEndingOnNewlineTrimsIt(t *testing.T) {
	e := NewWithContent("ab\ncd")
	press(e, "vlly")

	content, linewise := e.Register()
	require.Equal(t, "ab", content)
	require.True(t, linewise)

	press(e, "p")
	require.Equal(t, "ab\nab\ncd", e.Value())
}

func TestVisual_EscapeAborts(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "vl")
	escape(e)

	require.Equal(t, ModeNormal, e.Mode())
	require.Equal(t, "abc", e.Value())
	_, _, ok := e.Selection()
	require.False(t, ok)
}

func TestVisualLine_SelectionSpansLines(t *testing.T) {
	e := NewWithContent("ab\ncd")
	press(e, "V")
	require.Equal(t, ModeVisualLine, e.Mode())

	start, end, ok := e.Selection()
	require.True(t, ok)
	require.Equal(t, 0, start)
	require.Equal(t, 2, end) // trailing newline excluded from highlight

	press(e, "j")
	start, end, ok = e.Selection()
	require.True(t, ok)
	require.Equal(t, 0, start)
	require.Equal(t, 5, end)
}

func TestVisualLine_DeleteIncludesNewline(t *testing.T) {
	e := NewWithContent("one\ntwo\nthree")
	press(e, "jVjd")

	require.Equal(t, "one", e.Value())
	require.Equal(t, ModeNormal, e.Mode())
	content, linewise := e.Register()
	require.Equal(t, "two\nthree", content)
	require.True(t, linewise)
}

func TestVisualLine_YankExcludesNewline(t *testing.T) {
	e := NewWithContent("ab\ncd")
	press(e, "Vy")

	require.Equal(t, "ab\ncd", e.Value())
	content, linewise := e.Register()
	require.Equal(t, "ab", content)
	require.True(t, linewise)
}

func TestVisual_ToggleOff(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "vv")
	require.Equal(t, ModeNormal, e.Mode())

	press(e, "VV")
	require.Equal(t, ModeNormal, e.Mode())

	press(e, "vV")
	require.Equal(t, ModeVisualLine, e.Mode())
}

// ============================================================================
// Execute signal
// ============================================================================

func TestExecute_EnterInNormalMode(t *testing.T) {
	e := NewWithContent("SELECT 1")

	ev := e.HandleKey(Key{Kind: KeyEnter})
	require.Equal(t, EventExecute, ev)
	require.Equal(t, "SELECT 1", e.Value())
}

func TestExecute_CtrlE(t *testing.T) {
	e := NewWithContent("SELECT 1")
	require.Equal(t, EventExecute, e.HandleKey(CtrlKey('e')))

	press(e, "i")
	require.Equal(t, EventExecute, e.HandleKey(CtrlKey('e')))
}

func TestExecute_CtrlEInVisualModes(t *testing.T) {
	e := NewWithContent("SELECT 1")
	press(e, "vll")
	require.Equal(t, EventExecute, e.HandleKey(CtrlKey('e')))
	require.Equal(t, ModeNormal, e.Mode())

	press(e, "V")
	require.Equal(t, EventExecute, e.HandleKey(CtrlKey('e')))
	require.Equal(t, ModeNormal, e.Mode())
}

func TestExecute_EnterInInsertModeInsertsNewline(t *testing.T) {
	e := NewWithContent("ab")
	press(e, "i")

	ev := e.HandleKey(Key{Kind: KeyEnter})
	require.Equal(t, EventNone, ev)
	require.Equal(t, "\nab", e.Value())
}

// ============================================================================
// Snapshot accessors
// ============================================================================

func TestPosition(t *testing.T) {
	e := NewWithContent("ab\ncd")
	press(e, "jl")

	row, col := e.Position()
	require.Equal(t, 1, row)
	require.Equal(t, 1, col)
}

func TestPendingSnapshot(t *testing.T) {
	e := NewWithContent("abc")
	press(e, "12")

	count, ok := e.PendingCount()
	require.True(t, ok)
	require.Equal(t, 12, count)

	press(e, "x") // consumes the count
	press(e, "d")
	op, ok := e.PendingOperator()
	require.True(t, ok)
	require.Equal(t, OpDelete, op)
	escape(e)
}

func TestSetValue_ResetsSession(t *testing.T) {
	e := NewWithContent("old")
	press(e, "x")
	press(e, "v")

	e.SetValue("new")
	require.Equal(t, "new", e.Value())
	require.Equal(t, 0, e.Cursor())
	require.Equal(t, ModeNormal, e.Mode())
	require.False(t, e.CanUndo())
}
