package sqltext

// Lexer tokenizes SQL input. It is tolerant by construction: partial and
// malformed statements still produce a usable token stream so that
// highlighting keeps working while the user types.
type Lexer struct {
	input string
	pos   int // offset of the character under examination
}

// NewLexer creates a new lexer for the input string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}
	}

	tok := Token{Pos: l.pos}
	ch := l.input[l.pos]

	switch ch {
	case '(':
		tok.Type = TokenLParen
	case ')':
		tok.Type = TokenRParen
	case ',':
		tok.Type = TokenComma
	case ';':
		tok.Type = TokenSemicolon
	case '=', '+', '%':
		tok.Type = TokenOperator
	case '*':
		tok.Type = TokenOperator
	case '!':
		if l.peek() == '=' {
			l.pos++
			tok.Type = TokenOperator
		} else {
			tok.Type = TokenIllegal
		}
	case '<':
		if l.peek() == '=' || l.peek() == '>' || l.peek() == '<' {
			l.pos++
		}
		tok.Type = TokenOperator
	case '>':
		if l.peek() == '=' || l.peek() == '>' {
			l.pos++
		}
		tok.Type = TokenOperator
	case '|':
		if l.peek() == '|' {
			l.pos++
		}
		tok.Type = TokenOperator
	case '-':
		if l.peek() == '-' {
			return l.readLineComment()
		}
		tok.Type = TokenOperator
	case '/':
		if l.peek() == '*' {
			return l.readBlockComment()
		}
		tok.Type = TokenOperator
	case '\'':
		return l.readString()
	case '"', '`':
		return l.readQuotedIdent(ch)
	case '[':
		return l.readBracketIdent()
	case '?':
		return l.readPlaceholder(false)
	case ':', '@', '$':
		return l.readPlaceholder(true)
	default:
		if isLetter(ch) {
			return l.readIdentifier()
		}
		if isDigit(ch) {
			return l.readNumber()
		}
		tok.Type = TokenIllegal
	}

	l.pos++
	tok.Literal = l.input[tok.Pos:l.pos]
	return tok
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() Token {
	start := l.pos
	for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos])) {
		l.pos++
	}
	lit := l.input[start:l.pos]
	return Token{Type: LookupKeyword(lit), Literal: lit, Pos: start}
}

// readNumber reads integers, decimals, exponents, and 0x hex literals.
func (l *Lexer) readNumber() Token {
	start := l.pos
	if l.input[l.pos] == '0' && (l.peek() == 'x' || l.peek() == 'X') {
		l.pos += 2
		for l.pos < len(l.input) && isHexDigit(l.input[l.pos]) {
			l.pos++
		}
		return Token{Type: TokenNumber, Literal: l.input[start:l.pos], Pos: start}
	}
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
		l.pos++
		if l.pos < len(l.input) && (l.input[l.pos] == '+' || l.input[l.pos] == '-') {
			l.pos++
		}
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	return Token{Type: TokenNumber, Literal: l.input[start:l.pos], Pos: start}
}

// readString reads a single-quoted string. A doubled quote ('') escapes a
// literal quote. Unterminated strings run to the end of input.
func (l *Lexer) readString() Token {
	start := l.pos
	l.pos++ // opening quote
	for l.pos < len(l.input) {
		if l.input[l.pos] == '\'' {
			if l.pos+1 < len(l.input) && l.input[l.pos+1] == '\'' {
				l.pos += 2
				continue
			}
			l.pos++
			break
		}
		l.pos++
	}
	return Token{Type: TokenString, Literal: l.input[start:l.pos], Pos: start}
}

func (l *Lexer) readQuotedIdent(quote byte) Token {
	start := l.pos
	l.pos++
	for l.pos < len(l.input) && l.input[l.pos] != quote {
		l.pos++
	}
	if l.pos < len(l.input) {
		l.pos++ // closing quote
	}
	return Token{Type: TokenQuotedIdent, Literal: l.input[start:l.pos], Pos: start}
}

func (l *Lexer) readBracketIdent() Token {
	start := l.pos
	l.pos++
	for l.pos < len(l.input) && l.input[l.pos] != ']' {
		l.pos++
	}
	if l.pos < len(l.input) {
		l.pos++
	}
	return Token{Type: TokenQuotedIdent, Literal: l.input[start:l.pos], Pos: start}
}

// readPlaceholder reads ? and ?N markers, or :name/@name/$name when named
// is true.
func (l *Lexer) readPlaceholder(named bool) Token {
	start := l.pos
	l.pos++
	if named {
		if l.pos >= len(l.input) || !isLetter(l.input[l.pos]) {
			// A bare : @ $ is not a placeholder.
			return Token{Type: TokenIllegal, Literal: l.input[start:l.pos], Pos: start}
		}
		for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos])) {
			l.pos++
		}
	} else {
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	return Token{Type: TokenPlaceholder, Literal: l.input[start:l.pos], Pos: start}
}

func (l *Lexer) readLineComment() Token {
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
	return Token{Type: TokenComment, Literal: l.input[start:l.pos], Pos: start}
}

func (l *Lexer) readBlockComment() Token {
	start := l.pos
	l.pos += 2
	for l.pos < len(l.input) {
		if l.input[l.pos] == '*' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '/' {
			l.pos += 2
			break
		}
		l.pos++
	}
	return Token{Type: TokenComment, Literal: l.input[start:l.pos], Pos: start}
}

// isLetter returns true if c is a letter or underscore.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isDigit returns true if c is a digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
