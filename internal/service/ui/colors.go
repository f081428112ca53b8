package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (cyan) reads well on both dark and light terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (green) for arguments and usage lines
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (gray) keeps descriptions in the background
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)

	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(cardWidth)

	labelStyle = lipgloss.NewStyle().Bold(true)
)

const cardWidth = 72

// AccentStyle colors text with a personality's hex accent.
func AccentStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}
