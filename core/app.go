package core

// BalanceFactory builds a balance view for an account when the balance
// action fires. Injected so the controller does not depend on concrete view
// constructors.
type BalanceFactory func(account string) (View, error)

// Model is the navigation controller: it owns the view stack and maps action
// symbols to stack and view mutations. Everything runs synchronously on the
// event loop; fetches block until the engine subprocess exits.
type Model struct {
	width   int
	height  int
	stack   ViewStack
	keys    *KeyRegistry
	balance BalanceFactory
	search  *searchScreen
	fatal   error
	quit    bool
}

func NewModel(root View, keys *KeyRegistry, balance BalanceFactory) Model {
	m := Model{
		keys:    keys,
		balance: balance,
		width:   100,
		height:  32,
	}
	m.stack.Push(root)
	return m
}

// Fatal reports the error that terminated the session, if any. The caller
// prints it after the terminal has been restored.
func (m Model) Fatal() error { return m.fatal }

// Quitting reports whether the session has ended.
func (m Model) Quitting() bool { return m.quit }

func (m Model) StackLen() int { return m.stack.Len() }

func (m Model) ActiveView() View { return m.stack.Top() }

func (m Model) ActiveScope() string {
	if m.search != nil {
		return "screen:search"
	}
	if top := m.stack.Top(); top != nil {
		return top.Scope()
	}
	return "app"
}

// bodyHeight is the number of rows available to the active view: total
// height minus header, status bar and footer.
func (m Model) bodyHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}
