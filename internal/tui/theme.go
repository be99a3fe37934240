package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors, as lipgloss color strings (ANSI index or hex).
type Theme struct {
	Armed  string
	Paired string
	Cursor string
}

// DefaultTheme matches the config defaults.
func DefaultTheme() Theme {
	return Theme{Armed: "205", Paired: "42", Cursor: "212"}
}

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	column   lipgloss.Style
	active   lipgloss.Style
	armed    lipgloss.Style
	paired   lipgloss.Style
	cursor   lipgloss.Style
	muted    lipgloss.Style
	errorMsg lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Underline(true),
		column:   lipgloss.NewStyle().Padding(0, 2, 0, 0),
		active:   lipgloss.NewStyle().Padding(0, 2, 0, 0).Bold(true),
		armed:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Armed)).Bold(true),
		paired:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Paired)),
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Cursor)),
		muted:    lipgloss.NewStyle().Faint(true),
		errorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
