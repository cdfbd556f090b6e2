package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
		if m.search != nil {
			return m.routeSearchKey(msg)
		}
		return m.routeViewKey(msg)
	}
	return m, nil
}

// routeViewKey maps a key press to an action symbol and applies the
// transition to the active view or the stack. Unmapped keys are swallowed.
func (m Model) routeViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.stack.Top()
	if view == nil {
		m.quit = true
		return m, tea.Quit
	}
	total := view.Len()
	visible := m.bodyHeight()

	switch m.keys.Action(msg, m.ActiveScope()) {
	case ActionQuit:
		m.stack.Pop()
		if m.stack.Len() == 0 {
			m.quit = true
			return m, tea.Quit
		}
	case ActionLineDown:
		view.List().Move(1, total, visible)
	case ActionLineUp:
		view.List().Move(-1, total, visible)
	case ActionPageDown:
		view.List().Page(1, total, visible)
	case ActionPageUp:
		view.List().Page(-1, total, visible)
	case ActionFirstLine:
		view.List().Home()
	case ActionLastLine:
		view.List().End(total, visible)
	case ActionToggleReal:
		if err := view.ToggleReal(); err != nil {
			return m.fail(err)
		}
	case ActionCycleCommodity:
		if err := view.CycleCommodity(); err != nil {
			return m.fail(err)
		}
	case ActionSelect:
		child, err := view.Select()
		if err != nil {
			return m.fail(err)
		}
		m.stack.Push(child)
	case ActionBalance:
		account, ok := view.BalanceTarget()
		if !ok || m.balance == nil {
			break
		}
		child, err := m.balance(account)
		if err != nil {
			return m.fail(err)
		}
		m.stack.Push(child)
	case ActionSearch:
		if target, ok := view.(SearchTarget); ok {
			m.search = newSearchScreen(target)
		}
	}
	return m, nil
}

func (m Model) routeSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if done := m.search.handleKey(msg); done {
		m.search = nil
	}
	return m, nil
}

// fail records a fatal engine error and quits; the terminal is restored by
// the runtime before the caller reports the diagnostics.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.fatal = err
	m.quit = true
	return m, tea.Quit
}
