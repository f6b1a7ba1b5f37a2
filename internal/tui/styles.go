package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ade80"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e4e4ec"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e05252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868")).
			MarginTop(1)
)
