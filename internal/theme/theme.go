package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading            *lipgloss.Style
	Error              *lipgloss.Style
	Header             *lipgloss.Style
	Footer             *lipgloss.Style
	ShelfTitle         *lipgloss.Style
	TileFill           *lipgloss.Style
	TileLabel          *lipgloss.Style
	TileBorder         *lipgloss.Style
	TileBorderSelected *lipgloss.Style
	SearchPrompt       *lipgloss.Style
	SearchInput        *lipgloss.Style
	SearchPlaceholder  *lipgloss.Style
	SearchMatch        *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ShelfTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	TileFill: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	TileLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	TileBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	TileBorderSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	SearchInput: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SearchPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	SearchMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
