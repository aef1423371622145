package bubbletea

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("39")
	muted  = lipgloss.Color("245")
	warn   = lipgloss.Color("208")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	subtitleStyle = lipgloss.NewStyle().Foreground(muted)
	itemStyle     = lipgloss.NewStyle()
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	quoteStyle    = lipgloss.NewStyle().Foreground(warn)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle   = lipgloss.NewStyle().Foreground(muted).Italic(true)
	helpStyle     = lipgloss.NewStyle().Foreground(muted)

	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(muted)
)
