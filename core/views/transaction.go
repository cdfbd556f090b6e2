package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/ismaell/regdel/core"
	"github.com/ismaell/regdel/core/widgets"
	"github.com/ismaell/regdel/internal/ledger"
)

// TransactionView shows the verbatim text of one transaction. Its rows are
// supplied at construction; it never re-fetches.
type TransactionView struct {
	client *ledger.Client
	title  string
	lines  []string
	list   widgets.ListState
}

func NewTransactionView(client *ledger.Client, title string, lines []string) *TransactionView {
	return &TransactionView{client: client, title: title, lines: lines}
}

func (v *TransactionView) Title() string            { return v.title }
func (v *TransactionView) Scope() string            { return "view:transaction" }
func (v *TransactionView) FilterLine() string       { return "" }
func (v *TransactionView) List() *widgets.ListState { return &v.list }
func (v *TransactionView) Len() int                 { return len(v.lines) }

// Reload is a no-op: the lines were captured when the view was pushed.
func (v *TransactionView) Reload() error { return nil }

func (v *TransactionView) Row(i, width int) string {
	if i < 0 || i >= len(v.lines) {
		return ""
	}
	return ansi.Truncate(v.lines[i], width, "")
}

// Select opens a register for the first token of the cursor line, which on a
// posting line is the account path.
func (v *TransactionView) Select() (core.View, error) {
	if v.list.Cursor >= len(v.lines) {
		return nil, nil
	}
	fields := strings.Fields(v.lines[v.list.Cursor])
	if len(fields) == 0 {
		return nil, nil
	}
	return NewRegView(v.client, fields[0])
}

// BalanceTarget is not applicable: the view has no current account.
func (v *TransactionView) BalanceTarget() (string, bool) {
	return "", false
}

// The filter toggles are not applicable here; the view holds static text.
func (v *TransactionView) ToggleReal() error     { return nil }
func (v *TransactionView) CycleCommodity() error { return nil }
