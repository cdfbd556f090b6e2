package core

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/ismaell/regdel/core/widgets"
)

func (m Model) View() string {
	if m.quit {
		return ""
	}
	view := m.stack.Top()
	if view == nil {
		return ""
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := m.bodyHeight()

	width := maxInt(1, m.width)
	body := widgets.RenderRows(view.List(), view.Len(), width, bodyHeight,
		view.Row,
		func(line string) string {
			return cursorRowStyle.Width(width).MaxWidth(width).Render(padToWidth(line, width))
		},
	)
	if m.search != nil {
		body = m.search.Overlay(body, width, bodyHeight)
	}
	out := strings.Join([]string{header, status, body, footer}, "\n")
	return appStyle.Width(width).MaxWidth(width).Render(fitHeight(out, maxInt(1, m.height)))
}

// renderHeader shows the drill-down breadcrumb: every view on the stack from
// root to active.
func renderHeader(m Model) string {
	titles := make([]string, 0, m.stack.Len())
	for _, v := range m.stack.All() {
		titles = append(titles, v.Title())
	}
	left := headerAppStyle.Render("regdel")
	crumb := strings.Join(titles, " > ")
	line := left + headerBarStyle.Render("  "+crumb)
	width := maxInt(1, m.width)
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += headerBarStyle.Render(strings.Repeat(" ", width-lineW))
	}
	return headerBarStyle.Width(width).MaxWidth(width).Render(line)
}

func padToWidth(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
