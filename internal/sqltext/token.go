// Package sqltext implements SQL tokenization, syntax highlighting, and
// statement classification for the query pane.
package sqltext

import "strings"

// TokenType represents the type of lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals
	TokenIdent       // table and column names
	TokenQuotedIdent // "quoted", `quoted`, or [quoted] identifiers
	TokenString      // 'quoted'
	TokenNumber      // integers, decimals, hex

	// Delimiters
	TokenLParen    // (
	TokenRParen    // )
	TokenComma     // ,
	TokenSemicolon // ;

	// Operators: =, !=, <>, <, >, <=, >=, ||, +, -, *, /, %
	TokenOperator

	// Bound parameter markers: ?, ?1, :name, @name, $name
	TokenPlaceholder

	// Comments: -- line and /* block */
	TokenComment

	// Reserved words
	TokenKeyword
)

// String returns the string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIdent:
		return "IDENT"
	case TokenQuotedIdent:
		return "QUOTED_IDENT"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenComma:
		return ","
	case TokenSemicolon:
		return ";"
	case TokenOperator:
		return "OPERATOR"
	case TokenPlaceholder:
		return "PLACEHOLDER"
	case TokenComment:
		return "COMMENT"
	case TokenKeyword:
		return "KEYWORD"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token. Literal is the raw source text,
// including quotes and comment markers; Pos is the 0-indexed byte offset of
// its first character.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// keywords is the SQLite reserved word set, plus the handful of
// non-reserved words (pragma, explain, vacuum) users type at the start of
// statements.
var keywords = map[string]struct{}{
	"abort": {}, "add": {}, "all": {}, "alter": {}, "analyze": {},
	"and": {}, "as": {}, "asc": {}, "attach": {}, "autoincrement": {},
	"begin": {}, "between": {}, "by": {}, "cascade": {}, "case": {},
	"cast": {}, "check": {}, "collate": {}, "column": {}, "commit": {},
	"conflict": {}, "constraint": {}, "create": {}, "cross": {},
	"default": {}, "deferred": {}, "delete": {}, "desc": {}, "detach": {},
	"distinct": {}, "drop": {}, "else": {}, "end": {}, "escape": {},
	"except": {}, "exists": {}, "explain": {}, "false": {}, "foreign": {},
	"from": {}, "glob": {}, "group": {}, "having": {}, "if": {},
	"ignore": {}, "immediate": {}, "in": {}, "index": {}, "inner": {},
	"insert": {}, "intersect": {}, "into": {}, "is": {}, "isnull": {},
	"join": {}, "key": {}, "left": {}, "like": {}, "limit": {},
	"match": {}, "natural": {}, "not": {}, "notnull": {}, "null": {},
	"offset": {}, "on": {}, "or": {}, "order": {}, "outer": {},
	"pragma": {}, "primary": {}, "references": {}, "regexp": {},
	"reindex": {}, "replace": {}, "restrict": {}, "returning": {},
	"right": {}, "rollback": {}, "select": {}, "set": {}, "table": {},
	"temp": {}, "temporary": {}, "then": {}, "transaction": {},
	"trigger": {}, "true": {}, "union": {}, "unique": {}, "update": {},
	"using": {}, "vacuum": {}, "values": {}, "view": {}, "virtual": {},
	"when": {}, "where": {}, "with": {}, "without": {},
}

// LookupKeyword returns TokenKeyword when ident is a reserved word,
// TokenIdent otherwise. Matching is case-insensitive.
func LookupKeyword(ident string) TokenType {
	if _, ok := keywords[strings.ToLower(ident)]; ok {
		return TokenKeyword
	}
	return TokenIdent
}
