package views

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/ismaell/regdel/core"
	"github.com/ismaell/regdel/core/widgets"
	"github.com/ismaell/regdel/internal/ledger"
)

func balFormat() []ledger.FormatField {
	return []ledger.FormatField{
		{Name: "account", Expr: "account"},
		{Name: "total", Expr: "display_total"},
	}
}

// BalanceView shows the balances of every account under one subtree.
type BalanceView struct {
	client  *ledger.Client
	account string
	list    widgets.ListState
	filters filterState
	rows    ledger.RowSet
}

func NewBalanceView(client *ledger.Client, account string) (*BalanceView, error) {
	candidates, err := client.Commodities()
	if err != nil {
		return nil, err
	}
	v := &BalanceView{
		client:  client,
		account: account,
		filters: filterState{candidates: candidates},
	}
	if err := v.Reload(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *BalanceView) Title() string            { return "bal " + v.account }
func (v *BalanceView) Scope() string            { return "view:balance" }
func (v *BalanceView) FilterLine() string       { return v.filters.line() }
func (v *BalanceView) List() *widgets.ListState { return &v.list }
func (v *BalanceView) Len() int                 { return v.rows.Len() }

func (v *BalanceView) Reload() error {
	rs, err := v.client.Fetch(v.filters.apply(ledger.QuerySpec{
		Command: "bal",
		Query:   v.account,
		Format:  balFormat(),
	}))
	if err != nil {
		return err
	}
	v.rows = rs
	return nil
}

func (v *BalanceView) Row(i, width int) string {
	if i < 0 || i >= v.rows.Len() {
		return ""
	}
	row := v.rows.Rows[i]
	if row.Malformed {
		return ansi.Truncate(ErrSentinel+"  "+row.Text, width, "")
	}
	total := clipCell(row.Get(v.rows.Columns, "total"), amountColWidth)
	account := row.Get(v.rows.Columns, "account")
	line := fmt.Sprintf("%*s  %s", amountColWidth, total, account)
	return ansi.Truncate(line, width, "")
}

// Select drills from a balance row into that account's register.
func (v *BalanceView) Select() (core.View, error) {
	if v.list.Cursor >= v.rows.Len() {
		return nil, nil
	}
	row := v.rows.Rows[v.list.Cursor]
	if row.Malformed {
		return nil, nil
	}
	account := row.Get(v.rows.Columns, "account")
	if account == "" {
		return nil, nil
	}
	return NewRegView(v.client, account)
}

// BalanceTarget is not applicable: the view is already a balance drill-down.
func (v *BalanceView) BalanceTarget() (string, bool) {
	return "", false
}

func (v *BalanceView) ToggleReal() error {
	v.filters.toggleReal()
	return v.Reload()
}

func (v *BalanceView) CycleCommodity() error {
	v.filters.cycle()
	return v.Reload()
}
