package sqltext

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sqlpen/sqlpen/internal/ui/styles"
)

// Token highlight styles for SQL syntax highlighting.
// Uses centralized color constants from the styles package.
var (
	// KeywordStyle for reserved words: select, from, where, join, ...
	KeywordStyle = lipgloss.NewStyle().
			Foreground(styles.SQLKeywordColor).
			Bold(true)

	// OperatorStyle for comparison and arithmetic operators
	OperatorStyle = lipgloss.NewStyle().
			Foreground(styles.SQLOperatorColor)

	// IdentStyle for table and column names
	IdentStyle = lipgloss.NewStyle().
			Foreground(styles.SQLIdentColor)

	// StringStyle for quoted string values
	StringStyle = lipgloss.NewStyle().
			Foreground(styles.SQLStringColor)

	// NumberStyle for numeric literals and bound parameters
	NumberStyle = lipgloss.NewStyle().
			Foreground(styles.SQLNumberColor)

	// ParenStyle for parentheses
	ParenStyle = lipgloss.NewStyle().
			Foreground(styles.SQLParenColor).
			Bold(true)

	// CommentStyle for line and block comments
	CommentStyle = lipgloss.NewStyle().
			Foreground(styles.SQLCommentColor).
			Italic(true)

	// DefaultStyle for everything else
	DefaultStyle = lipgloss.NewStyle()
)

// tokenStyle returns the appropriate style for a token type.
func tokenStyle(t TokenType) lipgloss.Style {
	switch t {
	case TokenKeyword:
		return KeywordStyle
	case TokenOperator:
		return OperatorStyle
	case TokenIdent, TokenQuotedIdent:
		return IdentStyle
	case TokenString:
		return StringStyle
	case TokenNumber, TokenPlaceholder:
		return NumberStyle
	case TokenLParen, TokenRParen:
		return ParenStyle
	case TokenComment:
		return CommentStyle
	default:
		return DefaultStyle
	}
}
