package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeSearchTarget struct {
	labels []string
	jumped int
}

func (f *fakeSearchTarget) SearchLabels() []string { return f.labels }
func (f *fakeSearchTarget) JumpTo(i int)           { f.jumped = i }

func TestSearchFiltersAndRanks(t *testing.T) {
	target := &fakeSearchTarget{labels: []string{
		"Assets:Bank:Checking",
		"Assets:Cash",
		"Expenses:Food",
	}}
	s := newSearchScreen(target)
	if len(s.matches) != 3 {
		t.Fatalf("empty query must keep all labels, got %d", len(s.matches))
	}
	for _, r := range "asc" {
		s.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	// "asc" is a subsequence of both Assets accounts but not of Expenses:Food.
	if len(s.matches) != 2 {
		t.Fatalf("expected both Assets accounts to match, got %d", len(s.matches))
	}
	if s.matches[0].label != "Assets:Cash" {
		t.Fatalf("closest edit distance must rank first, got %q", s.matches[0].label)
	}
}

func TestSearchEnterJumpsToMatch(t *testing.T) {
	target := &fakeSearchTarget{labels: []string{"Assets:Bank", "Expenses:Food"}, jumped: -1}
	s := newSearchScreen(target)
	for _, r := range "food" {
		s.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	done := s.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !done {
		t.Fatalf("enter must close the screen")
	}
	if target.jumped != 1 {
		t.Fatalf("expected jump to original index 1, got %d", target.jumped)
	}
}

func TestSearchEscCancelsWithoutJump(t *testing.T) {
	target := &fakeSearchTarget{labels: []string{"Assets:Bank"}, jumped: -1}
	s := newSearchScreen(target)
	if done := s.handleKey(tea.KeyMsg{Type: tea.KeyEsc}); !done {
		t.Fatalf("esc must close the screen")
	}
	if target.jumped != -1 {
		t.Fatalf("esc must not jump")
	}
}

func TestSearchBackspace(t *testing.T) {
	target := &fakeSearchTarget{labels: []string{"Assets:Bank"}}
	s := newSearchScreen(target)
	s.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if len(s.matches) != 0 {
		t.Fatalf("no label matches z")
	}
	s.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	if len(s.matches) != 1 {
		t.Fatalf("backspace must restore the match set")
	}
}

func TestSearchKeyOpensScreenOnlyForSearchTargets(t *testing.T) {
	plain := &fakeView{scope: "view:accounts", rows: []string{"a"}}
	m := newTestModel(plain)
	m = press(t, m, runeKey('/'))
	if m.ActiveScope() != "view:accounts" {
		t.Fatalf("non-searchable view must not open the search screen")
	}
}
