package core

import "github.com/ismaell/regdel/core/widgets"

// View is one navigable screen over a row set. Implementations own their rows
// and viewport state exclusively; the stack holds each view from push to pop.
type View interface {
	Title() string
	Scope() string
	// FilterLine summarizes the view's active filters for the status bar.
	FilterLine() string
	List() *widgets.ListState
	Len() int
	// Row renders row i at the given width, without cursor styling.
	Row(i, width int) string
	// Reload re-fetches the row set, replacing it wholesale.
	Reload() error
	// Select returns the child view for the cursor row, or nil when the row
	// has no drill-down target.
	Select() (View, error)
	// BalanceTarget returns the account to open a balance view for, or false
	// when the view has no notion of a current account.
	BalanceTarget() (string, bool)
	ToggleReal() error
	CycleCommodity() error
}

// SearchTarget is implemented by views that support jumping the cursor to a
// fuzzy-matched row.
type SearchTarget interface {
	SearchLabels() []string
	JumpTo(i int)
}
