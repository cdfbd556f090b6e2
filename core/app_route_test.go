package core

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ismaell/regdel/core/widgets"
)

type fakeView struct {
	title   string
	scope   string
	rows    []string
	list    widgets.ListState
	child   View
	selErr  error
	target  string
	reals   int
	cycles  int
	reloads int
}

func (v *fakeView) Title() string            { return v.title }
func (v *fakeView) Scope() string            { return v.scope }
func (v *fakeView) FilterLine() string       { return "" }
func (v *fakeView) List() *widgets.ListState { return &v.list }
func (v *fakeView) Len() int                 { return len(v.rows) }
func (v *fakeView) Row(i, _ int) string      { return v.rows[i] }
func (v *fakeView) Reload() error            { v.reloads++; return nil }
func (v *fakeView) Select() (View, error)    { return v.child, v.selErr }
func (v *fakeView) BalanceTarget() (string, bool) {
	return v.target, v.target != ""
}
func (v *fakeView) ToggleReal() error     { v.reals++; return nil }
func (v *fakeView) CycleCommodity() error { v.cycles++; return nil }

func newTestModel(root View) Model {
	return NewModel(root, NewKeyRegistry(DefaultKeyBindings()), nil)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestCursorMovementClamped(t *testing.T) {
	v := &fakeView{scope: "view:test", rows: []string{"a", "b", "c"}}
	m := newTestModel(v)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if v.list.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", v.list.Cursor)
	}
	for i := 0; i < 10; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if v.list.Cursor != 2 {
		t.Fatalf("cursor must clamp at last row, got %d", v.list.Cursor)
	}
	m = press(t, m, runeKey('g'))
	if v.list.Cursor != 0 || v.list.Offset != 0 {
		t.Fatalf("first-line must reset cursor and offset")
	}
	m = press(t, m, runeKey('G'))
	if v.list.Cursor != 2 {
		t.Fatalf("last-line must land on the final index, got %d", v.list.Cursor)
	}
	_ = m
}

func TestQuitPopsAndRootPopTerminates(t *testing.T) {
	parent := &fakeView{scope: "view:parent"}
	child := &fakeView{scope: "view:child"}
	parent.child = child
	m := newTestModel(parent)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.StackLen() != 2 || m.ActiveView() != View(child) {
		t.Fatalf("select must push the child view")
	}
	m = press(t, m, runeKey('q'))
	if m.StackLen() != 1 || m.ActiveView() != View(parent) {
		t.Fatalf("quit must pop back to the parent")
	}
	if m.Quitting() {
		t.Fatalf("popping a non-root view must not terminate")
	}
	m = press(t, m, runeKey('q'))
	if !m.Quitting() {
		t.Fatalf("popping the root view must terminate")
	}
	if m.View() != "" {
		t.Fatalf("no rendering after termination")
	}
}

func TestSelectWithoutTargetIsNoop(t *testing.T) {
	v := &fakeView{scope: "view:test", rows: []string{"a"}}
	m := newTestModel(v)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.StackLen() != 1 {
		t.Fatalf("nil child must not be pushed")
	}
}

func TestFilterActionsDispatch(t *testing.T) {
	v := &fakeView{scope: "view:test"}
	m := newTestModel(v)
	m = press(t, m, runeKey('r'))
	m = press(t, m, runeKey('c'))
	m = press(t, m, runeKey('c'))
	if v.reals != 1 || v.cycles != 2 {
		t.Fatalf("expected 1 real toggle and 2 commodity cycles, got %d/%d", v.reals, v.cycles)
	}
	_ = m
}

func TestBalanceUsesFactory(t *testing.T) {
	v := &fakeView{scope: "view:accounts", target: "Assets:Bank"}
	bal := &fakeView{scope: "view:balance"}
	var gotAccount string
	m := NewModel(v, NewKeyRegistry(DefaultKeyBindings()), func(account string) (View, error) {
		gotAccount = account
		return bal, nil
	})
	m = press(t, m, runeKey('b'))
	if gotAccount != "Assets:Bank" {
		t.Fatalf("factory must receive the balance target, got %q", gotAccount)
	}
	if m.ActiveView() != View(bal) {
		t.Fatalf("balance view must be pushed")
	}
}

func TestBalanceNotApplicableIsNoop(t *testing.T) {
	v := &fakeView{scope: "view:accounts"}
	called := false
	m := NewModel(v, NewKeyRegistry(DefaultKeyBindings()), func(string) (View, error) {
		called = true
		return nil, nil
	})
	m = press(t, m, runeKey('b'))
	if called || m.StackLen() != 1 {
		t.Fatalf("balance without a target must be a no-op")
	}
}

func TestFetchErrorIsFatal(t *testing.T) {
	v := &fakeView{scope: "view:test", rows: []string{"a"}, selErr: errors.New("engine exploded")}
	m := newTestModel(v)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Quitting() {
		t.Fatalf("a failed fetch must terminate the session")
	}
	if m.Fatal() == nil || m.Fatal().Error() != "engine exploded" {
		t.Fatalf("fatal error must be preserved for reporting, got %v", m.Fatal())
	}
}

func TestUnmappedKeyIsSwallowed(t *testing.T) {
	v := &fakeView{scope: "view:test", rows: []string{"a", "b"}}
	m := newTestModel(v)
	before := v.list.Cursor
	m = press(t, m, runeKey('z'))
	if v.list.Cursor != before || m.StackLen() != 1 || m.Quitting() {
		t.Fatalf("unmapped key must change nothing")
	}
}
