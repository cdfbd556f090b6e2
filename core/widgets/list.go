package widgets

import "strings"

// ListState is the scrollable-list viewport shared by every view: a cursor
// index plus the offset of the first visible row. After Clamp the invariants
// hold: 0 <= Cursor <= total-1 (Cursor 0 when empty) and
// Offset <= Cursor <= Offset+visible-1.
type ListState struct {
	Cursor int
	Offset int
}

// Move shifts the cursor by delta rows.
func (s *ListState) Move(delta, total, visible int) {
	s.Cursor += delta
	s.Clamp(total, visible)
}

// Page shifts both cursor and offset by one viewport height.
func (s *ListState) Page(delta, total, visible int) {
	if visible < 1 {
		visible = 1
	}
	s.Cursor += delta * visible
	s.Offset += delta * visible
	s.Clamp(total, visible)
}

// Home moves to the first row and resets the viewport.
func (s *ListState) Home() {
	s.Cursor = 0
	s.Offset = 0
}

// End moves to the last valid row.
func (s *ListState) End(total, visible int) {
	s.Cursor = total - 1
	s.Clamp(total, visible)
}

// JumpTo places the cursor on the given row.
func (s *ListState) JumpTo(i, total, visible int) {
	s.Cursor = i
	s.Clamp(total, visible)
}

// Clamp restores the viewport invariants. It runs before every render pass
// and after every mutation.
func (s *ListState) Clamp(total, visible int) {
	if visible < 1 {
		visible = 1
	}
	if total <= 0 {
		s.Cursor = 0
		s.Offset = 0
		return
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= total {
		s.Cursor = total - 1
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
	maxOffset := total - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.Offset > maxOffset {
		s.Offset = maxOffset
	}
	if s.Cursor < s.Offset {
		s.Offset = s.Cursor
	}
	if s.Cursor >= s.Offset+visible {
		s.Offset = s.Cursor - visible + 1
	}
}

// RowRenderer produces the content of row i at the given width, without
// cursor styling.
type RowRenderer func(i, width int) string

// RenderRows renders the visible window of a list. Rows outside the set are
// left blank; the cursor row is emitted through highlight.
func RenderRows(s *ListState, total, width, height int, render RowRenderer, highlight func(string) string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s.Clamp(total, height)
	lines := make([]string, 0, height)
	for n := 0; n < height; n++ {
		i := s.Offset + n
		if i >= total {
			lines = append(lines, "")
			continue
		}
		line := render(i, width)
		if i == s.Cursor && highlight != nil {
			line = highlight(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
