package editor

// Motion resolution: pure functions mapping (content, offset) to a target
// offset or range. Word classification is deliberately simple: ASCII
// alphanumerics and underscore form one word class, everything else
// (punctuation and whitespace alike) is a single non-word class. Runs of
// punctuation are not their own class the way traditional modal editors
// treat them; that is a documented design choice, not a bug.

// isWordChar reports whether c belongs to the word class.
func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// isBlank reports whether c is a space or tab.
func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// wordForward returns the offset of the next word start after pos: the
// current word run is skipped, then any non-word run, stopping at the next
// word character or end of buffer.
func wordForward(text string, pos int) int {
	n := len(text)
	if pos < 0 {
		pos = 0
	}
	for pos < n && isWordChar(text[pos]) {
		pos++
	}
	for pos < n && !isWordChar(text[pos]) {
		pos++
	}
	return pos
}

// wordBackward returns the offset of the previous word start before pos.
func wordBackward(text string, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && !isWordChar(text[pos]) {
		pos--
	}
	for pos > 0 && isWordChar(text[pos-1]) {
		pos--
	}
	return pos
}

// wordEnd returns the offset of the last character of the current or next
// word run after pos. The result sits on the run's final character, not one
// past it.
func wordEnd(text string, pos int) int {
	n := len(text)
	if n == 0 {
		return 0
	}
	pos++
	for pos < n && !isWordChar(text[pos]) {
		pos++
	}
	if pos >= n {
		return n - 1
	}
	for pos+1 < n && isWordChar(text[pos+1]) {
		pos++
	}
	return pos
}

// lineStart returns the offset just after the nearest newline at or before
// pos, or 0.
func lineStart(text string, pos int) int {
	pos = min(max(pos, 0), len(text))
	for pos > 0 && text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset of the newline terminating the line containing
// pos, or len(text) if the line is unterminated. The result is never past
// the newline itself.
func lineEnd(text string, pos int) int {
	pos = min(max(pos, 0), len(text))
	for pos < len(text) && text[pos] != '\n' {
		pos++
	}
	return pos
}

// firstNonBlank returns the offset of the first non-space, non-tab character
// of the line containing pos, bounded by the line end.
func firstNonBlank(text string, pos int) int {
	start := lineStart(text, pos)
	end := lineEnd(text, pos)
	for start < end && isBlank(text[start]) {
		start++
	}
	return start
}

// innerWord resolves the inner-word text object at pos. If the character
// under the cursor is a word character, the run is expanded in both
// directions and [start, end) is returned. On a non-word character there is
// no object and ok is false.
func innerWord(text string, pos int) (start, end int, ok bool) {
	if pos < 0 || pos >= len(text) || !isWordChar(text[pos]) {
		return 0, 0, false
	}
	start = pos
	for start > 0 && isWordChar(text[start-1]) {
		start--
	}
	end = pos + 1
	for end < len(text) && isWordChar(text[end]) {
		end++
	}
	return start, end, true
}
