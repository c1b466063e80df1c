package sqltext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Highlight applies syntax highlighting to a SQL string. Returns the input
// with ANSI color codes applied per token. Whitespace between tokens is
// preserved byte for byte, so the highlighted string renders at the same
// width as the raw one. Partial statements are highlighted for their valid
// portions.
func Highlight(query string) string {
	if query == "" {
		return ""
	}

	lexer := NewLexer(query)
	var result strings.Builder
	lastPos := 0

	for {
		tok := lexer.NextToken()
		if tok.Type == TokenEOF {
			break
		}

		if tok.Pos > lastPos {
			result.WriteString(query[lastPos:tok.Pos])
		}
		result.WriteString(styleToken(tok))
		lastPos = tok.Pos + len(tok.Literal)
	}

	if lastPos < len(query) {
		result.WriteString(query[lastPos:])
	}

	return result.String()
}

// ByteStyles tokenizes a single line and returns a style for each byte
// covered by a token, keyed by byte offset. Bytes between tokens are absent
// from the map. Callers that overlay a cursor or selection on top of the
// highlighted text use this instead of Highlight so they can style rune by
// rune.
func ByteStyles(line string) map[int]lipgloss.Style {
	if line == "" {
		return nil
	}

	lexer := NewLexer(line)
	byteStyles := make(map[int]lipgloss.Style)

	for {
		tok := lexer.NextToken()
		if tok.Type == TokenEOF {
			break
		}
		style := tokenStyle(tok.Type)
		for i := tok.Pos; i < tok.Pos+len(tok.Literal); i++ {
			byteStyles[i] = style
		}
	}

	return byteStyles
}

// styleToken returns the styled string for a token. Multi-line tokens
// (block comments) are styled line by line so the codes never cross a line
// break.
func styleToken(tok Token) string {
	style := tokenStyle(tok.Type)
	if !strings.Contains(tok.Literal, "\n") {
		return style.Render(tok.Literal)
	}
	lines := strings.Split(tok.Literal, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
