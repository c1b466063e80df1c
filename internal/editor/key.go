package editor

// KeyKind discriminates the key event union. The editor accepts exactly one
// input shape: a printable character, a control-modified character, or one of
// the named keys below. Anything else is silently ignored by HandleKey.
type KeyKind int

const (
	// KeyRune is a printable character.
	KeyRune KeyKind = iota
	// KeyCtrl is a control-modified character (ctrl+r, ctrl+e, ...).
	KeyCtrl
	// Named keys.
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Key is one abstract key event fed to the editor.
// Rune is only meaningful for KeyRune and KeyCtrl.
type Key struct {
	Kind KeyKind
	Rune rune
}

// RuneKey returns a printable-character key event.
func RuneKey(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

// CtrlKey returns a control-modified key event for the given character.
func CtrlKey(r rune) Key {
	return Key{Kind: KeyCtrl, Rune: r}
}
