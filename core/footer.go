package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func RenderFooter(m Model) string {
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	return renderBar(footerStyle, maxInt(1, m.width), line, bg)
}

// RenderStatusBar shows the active view's filter summary and the cursor
// position within the row set.
func RenderStatusBar(m Model) string {
	view := m.stack.Top()
	if view == nil {
		return renderBar(statusBarStyle, maxInt(1, m.width), "", colorSurface)
	}
	left := view.FilterLine()
	if left == "" {
		left = "no filters"
	}
	pos := "empty"
	if view.Len() > 0 {
		pos = fmt.Sprintf("%d/%d", view.List().Cursor+1, view.Len())
	}
	return renderBar(statusBarStyle, maxInt(1, m.width), left+"  ·  "+pos, colorSurface)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
