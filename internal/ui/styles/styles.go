// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Row counts, secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"} // Focused pane borders

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Mode indicator colors for the status bar
	ModeNormalColor     = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // blue
	ModeInsertColor     = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"} // green
	ModeVisualColor     = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"} // mauve
	ModeVisualLineColor = lipgloss.AdaptiveColor{Light: "#DD7878", Dark: "#F2CDCD"} // flamingo

	// SQL syntax highlighting colors (Catppuccin Mocha)
	SQLKeywordColor  = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"} // mauve
	SQLOperatorColor = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"} // red
	SQLIdentColor    = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"} // teal
	SQLStringColor   = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"} // yellow
	SQLNumberColor   = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"} // peach
	SQLParenColor    = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // blue
	SQLCommentColor  = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"} // overlay0

	// Selection highlight for visual mode
	SelectionBgColor = lipgloss.AdaptiveColor{Light: "#ACB0BE", Dark: "#45475A"} // surface1
	CursorBgColor    = lipgloss.AdaptiveColor{Light: "#DC8A78", Dark: "#F5E0DC"} // rosewater

	// Results table colors
	TableHeaderColor   = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	TableSelectedColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	TableSelectedBg    = lipgloss.AdaptiveColor{Light: "#7287FD", Dark: "#585B70"}
)

// Mode indicator styles, rendered as a colored badge in the status bar.
var (
	ModeNormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#11111B")).
			Background(ModeNormalColor).
			Bold(true).
			Padding(0, 1)

	ModeInsertStyle = ModeNormalStyle.Background(ModeInsertColor)

	ModeVisualStyle = ModeNormalStyle.Background(ModeVisualColor)

	ModeVisualLineStyle = ModeNormalStyle.Background(ModeVisualLineColor)
)

var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	// StatusErrorStyle renders query errors in the status bar.
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(StatusErrorColor).
				Bold(true)

	// StatusInfoStyle renders row counts and timings.
	StatusInfoStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	// PendingStyle renders the in-flight operator or count, vim showcmd
	// style.
	PendingStyle = lipgloss.NewStyle().
			Foreground(StatusWarningColor).
			Bold(true)

	// SelectionStyle highlights the visual selection inside the query pane.
	SelectionStyle = lipgloss.NewStyle().
			Background(SelectionBgColor)

	// CursorStyle renders the block cursor in Normal and Visual modes.
	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#11111B")).
			Background(CursorBgColor)

	// PaneBorderStyle frames the query pane.
	PaneBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderDefaultColor)

	// PaneBorderFocusStyle frames the query pane when it has focus.
	PaneBorderFocusStyle = PaneBorderStyle.
				BorderForeground(BorderFocusColor)
)
