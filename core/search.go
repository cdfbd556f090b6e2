package core

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ismaell/regdel/core/widgets"
)

const searchVisibleRows = 10

type searchMatch struct {
	index int
	label string
	score int
}

// searchScreen is the fuzzy account finder opened with "/". Selecting a
// match jumps the underlying view's cursor; it never mutates the row set.
type searchScreen struct {
	target  SearchTarget
	labels  []string
	query   string
	matches []searchMatch
	list    widgets.ListState
}

func newSearchScreen(target SearchTarget) *searchScreen {
	s := &searchScreen{
		target: target,
		labels: target.SearchLabels(),
	}
	s.rebuild()
	return s
}

// handleKey processes one key press and reports whether the screen is done.
func (s *searchScreen) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc":
		return true
	case "enter":
		if s.list.Cursor < len(s.matches) {
			s.target.JumpTo(s.matches[s.list.Cursor].index)
		}
		return true
	case "up":
		s.list.Move(-1, len(s.matches), searchVisibleRows)
		return false
	case "down":
		s.list.Move(1, len(s.matches), searchVisibleRows)
		return false
	case "backspace":
		if s.query != "" {
			s.query = s.query[:len(s.query)-1]
			s.rebuild()
		}
		return false
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		s.query += string(msg.Runes)
		s.rebuild()
	} else if msg.Type == tea.KeySpace {
		s.query += " "
		s.rebuild()
	}
	return false
}

// rebuild filters labels to subsequence matches of the query and ranks them
// by edit distance, closest first.
func (s *searchScreen) rebuild() {
	q := strings.ToLower(strings.TrimSpace(s.query))
	s.matches = s.matches[:0]
	for i, label := range s.labels {
		lower := strings.ToLower(label)
		if q != "" && !subsequenceMatch(lower, q) {
			continue
		}
		s.matches = append(s.matches, searchMatch{
			index: i,
			label: label,
			score: levenshtein.ComputeDistance(q, lower),
		})
	}
	sort.SliceStable(s.matches, func(a, b int) bool {
		return s.matches[a].score < s.matches[b].score
	})
	s.list.Home()
}

func subsequenceMatch(s, q string) bool {
	j := 0
	for i := 0; i < len(s) && j < len(q); i++ {
		if s[i] == q[j] {
			j++
		}
	}
	return j == len(q)
}

func (s *searchScreen) Overlay(base string, width, height int) string {
	inner := maxInt(20, width/2)
	lines := make([]string, 0, searchVisibleRows+2)
	lines = append(lines, searchTitleStyle.Render("Search accounts"))
	lines = append(lines, searchQueryStyle.Render("/ "+s.query+"▌"))
	s.list.Clamp(len(s.matches), searchVisibleRows)
	for n := 0; n < searchVisibleRows; n++ {
		i := s.list.Offset + n
		if i >= len(s.matches) {
			break
		}
		prefix := "  "
		style := searchDimStyle
		if i == s.list.Cursor {
			prefix = "> "
			style = searchQueryStyle
		}
		lines = append(lines, style.Render(prefix+truncateLabel(s.matches[i].label, inner-2)))
	}
	if len(s.matches) == 0 {
		lines = append(lines, searchDimStyle.Render("  no matches"))
	}
	return widgets.RenderPopup(base, strings.Join(lines, "\n"), width, height)
}

func truncateLabel(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	return s[:width]
}
