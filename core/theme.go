package core

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorMantle  lipgloss.Color = "#181825"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorSurface lipgloss.Color = "#313244"
	colorCursor  lipgloss.Color = "#45475a"
)
