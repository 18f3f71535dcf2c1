package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	styleContext = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	styleUrgent = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	styleOption = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleHint = lipgloss.NewStyle().
			Faint(true)
)
