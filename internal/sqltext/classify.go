package sqltext

import "strings"

// StatementKind classifies a statement by how it should be executed.
type StatementKind int

const (
	// KindEmpty means the input holds no statement at all (blank or only
	// comments).
	KindEmpty StatementKind = iota
	// KindQuery means the statement returns rows and runs through Query.
	KindQuery
	// KindExec means the statement mutates and runs through Exec.
	KindExec
)

// String returns the string representation of the statement kind.
func (k StatementKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindQuery:
		return "query"
	case KindExec:
		return "exec"
	default:
		return "unknown"
	}
}

// rowReturning is the set of leading keywords whose statements produce a
// result set.
var rowReturning = map[string]struct{}{
	"select":  {},
	"values":  {},
	"with":    {},
	"pragma":  {},
	"explain": {},
}

// Classify inspects the first meaningful token of a statement and decides
// how it should be executed. Comments and whitespace are skipped; an
// INSERT/UPDATE/DELETE with a RETURNING clause still classifies as exec
// and relies on the driver reporting rows.
func Classify(input string) StatementKind {
	lexer := NewLexer(input)
	for {
		tok := lexer.NextToken()
		switch tok.Type {
		case TokenEOF:
			return KindEmpty
		case TokenComment, TokenSemicolon:
			continue
		case TokenKeyword:
			if _, ok := rowReturning[strings.ToLower(tok.Literal)]; ok {
				return KindQuery
			}
			return KindExec
		default:
			return KindExec
		}
	}
}
