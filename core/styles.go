package core

import "github.com/charmbracelet/lipgloss"

// Style table resolved once at init and treated as immutable afterwards.
var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface)
	footerStyle = lipgloss.NewStyle().Background(colorMantle)

	cursorRowStyle = lipgloss.NewStyle().
			Background(colorCursor).
			Foreground(colorText).
			Bold(true)

	searchTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	searchQueryStyle = lipgloss.NewStyle().Foreground(colorText)
	searchDimStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)
