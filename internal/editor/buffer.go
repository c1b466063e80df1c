package editor

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by buffer mutations whose offsets fall outside
// the current content.
var ErrOutOfRange = errors.New("editor: offset out of range")

// Buffer is an ordered, mutable sequence of bytes plus a single cursor
// offset into it. The cursor is always within [0, Len()]; the one-past-end
// position is valid so Insert mode can append at the end.
//
// Buffer holds no motion or operator logic. Mutations allocate the full
// replacement slice before touching the stored content, so a failed or
// panicking operation never leaves a partially applied edit behind.
type Buffer struct {
	content []byte
	cursor  int
}

// NewBuffer creates a buffer with the given initial content and the cursor
// at offset 0.
func NewBuffer(s string) *Buffer {
	return &Buffer{content: []byte(s)}
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	return len(b.content)
}

// String returns the full content.
func (b *Buffer) String() string {
	return string(b.content)
}

// Cursor returns the current cursor offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamping it into [0, Len()].
func (b *Buffer) SetCursor(off int) {
	b.cursor = min(max(off, 0), len(b.content))
}

// ByteAt returns the byte at the given offset, or false if the offset is
// past the end.
func (b *Buffer) ByteAt(off int) (byte, bool) {
	if off < 0 || off >= len(b.content) {
		return 0, false
	}
	return b.content[off], true
}

// Slice returns the content in [start, end), clamped to valid bounds.
func (b *Buffer) Slice(start, end int) string {
	start = min(max(start, 0), len(b.content))
	end = min(max(end, start), len(b.content))
	return string(b.content[start:end])
}

// Insert places s at the given offset. The cursor is not adjusted; callers
// position it explicitly.
func (b *Buffer) Insert(off int, s string) error {
	if off < 0 || off > len(b.content) {
		return fmt.Errorf("insert at %d in %d bytes: %w", off, len(b.content), ErrOutOfRange)
	}
	if s == "" {
		return nil
	}
	next := make([]byte, 0, len(b.content)+len(s))
	next = append(next, b.content[:off]...)
	next = append(next, s...)
	next = append(next, b.content[off:]...)
	b.content = next
	return nil
}

// DeleteRange removes [start, end) and returns the removed text.
func (b *Buffer) DeleteRange(start, end int) (string, error) {
	if start < 0 || end > len(b.content) || start > end {
		return "", fmt.Errorf("delete [%d,%d) in %d bytes: %w", start, end, len(b.content), ErrOutOfRange)
	}
	if start == end {
		return "", nil
	}
	removed := string(b.content[start:end])
	next := make([]byte, 0, len(b.content)-(end-start))
	next = append(next, b.content[:start]...)
	next = append(next, b.content[end:]...)
	b.content = next
	if b.cursor > len(b.content) {
		b.cursor = len(b.content)
	}
	return removed, nil
}

// Replace swaps the entire content and cursor in one step. Used by undo and
// redo to restore a snapshot; the cursor is clamped if the restored offset
// is past the new end.
func (b *Buffer) Replace(content string, cursor int) {
	b.content = []byte(content)
	b.cursor = min(max(cursor, 0), len(b.content))
}
