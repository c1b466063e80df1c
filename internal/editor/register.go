package editor

// Register is the single slot holding the most recently yanked or deleted
// span. Every yank or delete overwrites it; there is no ring and no named
// register addressing. The linewise flag controls paste placement: line-wise
// content pastes as whole lines, character-wise content pastes at exact
// offsets.
type Register struct {
	content  string
	linewise bool
}

// Set overwrites the register.
func (r *Register) Set(content string, linewise bool) {
	r.content = content
	r.linewise = linewise
}

// Get returns the stored content and whether it is line-wise.
func (r *Register) Get() (content string, linewise bool) {
	return r.content, r.linewise
}

// Empty reports whether the register holds nothing. Paste is a no-op on an
// empty register.
func (r *Register) Empty() bool {
	return r.content == ""
}
