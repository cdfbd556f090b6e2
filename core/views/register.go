package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/ismaell/regdel/core"
	"github.com/ismaell/regdel/core/widgets"
	"github.com/ismaell/regdel/internal/ledger"
)

// ErrSentinel is rendered in place of a field that cannot be resolved, such
// as a register total with no component in the row's commodity.
const ErrSentinel = "ERR"

func regFormat() []ledger.FormatField {
	return []ledger.FormatField{
		{Name: "date", Expr: `format_date(date, "%Y-%m-%d")`},
		{Name: "payee", Expr: "payee"},
		{Name: "account", Expr: "display_account"},
		{Name: "amount", Expr: "display_amount"},
		{Name: "total", Expr: "display_total"},
	}
}

// RegView shows the posting register of one account.
type RegView struct {
	client  *ledger.Client
	account string
	list    widgets.ListState
	filters filterState
	rows    ledger.RowSet
}

func NewRegView(client *ledger.Client, account string) (*RegView, error) {
	candidates, err := client.Commodities()
	if err != nil {
		return nil, err
	}
	v := &RegView{
		client:  client,
		account: account,
		filters: filterState{candidates: candidates},
	}
	if err := v.Reload(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *RegView) Title() string            { return v.account }
func (v *RegView) Scope() string            { return "view:register" }
func (v *RegView) FilterLine() string       { return v.filters.line() }
func (v *RegView) List() *widgets.ListState { return &v.list }
func (v *RegView) Len() int                 { return v.rows.Len() }

func (v *RegView) Reload() error {
	rs, err := v.client.Fetch(v.filters.apply(ledger.QuerySpec{
		Command: "reg",
		Query:   v.account,
		Format:  regFormat(),
	}))
	if err != nil {
		return err
	}
	v.rows = rs
	return nil
}

func (v *RegView) Row(i, width int) string {
	if i < 0 || i >= v.rows.Len() {
		return ""
	}
	row := v.rows.Rows[i]
	if row.Malformed {
		return ansi.Truncate(ErrSentinel+"  "+row.Text, width, "")
	}
	date := row.Get(v.rows.Columns, "date")
	payee := row.Get(v.rows.Columns, "payee")
	account := row.Get(v.rows.Columns, "account")
	amount := row.Get(v.rows.Columns, "amount")
	total := resolveTotal(amount, row.Get(v.rows.Columns, "total"))

	flex := width - 10 - 2*amountColWidth - 6
	if flex < 8 {
		flex = 8
	}
	payeeW := flex / 2
	accountW := flex - payeeW
	line := fmt.Sprintf("%-10s  %-*s  %-*s  %*s  %*s",
		date,
		payeeW, clipCell(payee, payeeW),
		accountW, clipCell(account, accountW),
		amountColWidth, clipCell(amount, amountColWidth),
		amountColWidth, clipCell(total, amountColWidth),
	)
	return ansi.Truncate(line, width, "")
}

const amountColWidth = 16

func clipCell(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", "; ")
	if width <= 0 {
		return ""
	}
	if len(s) > width {
		return s[:width]
	}
	return s
}

// Select opens the full transaction text of the cursor row, fetched from the
// engine's print command filtered to the row's date and payee.
func (v *RegView) Select() (core.View, error) {
	if v.list.Cursor >= v.rows.Len() {
		return nil, nil
	}
	row := v.rows.Rows[v.list.Cursor]
	if row.Malformed {
		return nil, nil
	}
	date := row.Get(v.rows.Columns, "date")
	payee := row.Get(v.rows.Columns, "payee")
	rs, err := v.client.Fetch(v.filters.apply(ledger.QuerySpec{
		Command: "print",
		Query:   "@" + payee,
		Options: []string{"--limit", fmt.Sprintf("date == [%s]", date)},
	}))
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, rs.Len())
	for _, r := range rs.Rows {
		lines = append(lines, r.Text)
	}
	return NewTransactionView(v.client, date+" "+payee, lines), nil
}

func (v *RegView) BalanceTarget() (string, bool) {
	return v.account, true
}

func (v *RegView) ToggleReal() error {
	v.filters.toggleReal()
	return v.Reload()
}

func (v *RegView) CycleCommodity() error {
	v.filters.cycle()
	return v.Reload()
}

// resolveTotal picks, among the total's semicolon- or line-separated
// components, the one in the amount's commodity. A total with no matching
// component renders as the sentinel rather than failing the row.
func resolveTotal(amount, total string) string {
	components := splitTotal(total)
	if len(components) == 0 {
		return ErrSentinel
	}
	want := commodityOf(amount)
	for _, c := range components {
		if commodityOf(c) == want {
			return c
		}
	}
	return ErrSentinel
}

func splitTotal(total string) []string {
	fields := strings.FieldsFunc(total, func(r rune) bool {
		return r == ';' || r == '\n'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
