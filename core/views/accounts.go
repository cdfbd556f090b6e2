package views

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/ismaell/regdel/core"
	"github.com/ismaell/regdel/core/widgets"
	"github.com/ismaell/regdel/internal/ledger"
)

// AccountsView is the root view: the account hierarchy, one row per unique
// prefix path so every level can be drilled into independently.
type AccountsView struct {
	client  *ledger.Client
	list    widgets.ListState
	filters filterState
	paths   []string
}

func NewAccountsView(client *ledger.Client) (*AccountsView, error) {
	candidates, err := client.Commodities()
	if err != nil {
		return nil, err
	}
	v := &AccountsView{
		client:  client,
		filters: filterState{candidates: candidates},
	}
	if err := v.Reload(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *AccountsView) Title() string            { return "Accounts" }
func (v *AccountsView) Scope() string            { return "view:accounts" }
func (v *AccountsView) FilterLine() string       { return v.filters.line() }
func (v *AccountsView) List() *widgets.ListState { return &v.list }
func (v *AccountsView) Len() int                 { return len(v.paths) }

func (v *AccountsView) Reload() error {
	rs, err := v.client.Fetch(v.filters.apply(ledger.QuerySpec{Command: "accounts"}))
	if err != nil {
		return err
	}
	leaves := make([]string, 0, rs.Len())
	for _, row := range rs.Rows {
		leaves = append(leaves, row.Text)
	}
	v.paths = expandAccountPaths(leaves)
	return nil
}

func (v *AccountsView) Row(i, width int) string {
	if i < 0 || i >= len(v.paths) {
		return ""
	}
	path := v.paths[i]
	segments := strings.Split(path, ":")
	depth := len(segments) - 1
	line := strings.Repeat("  ", depth) + segments[depth]
	return ansi.Truncate(line, width, "")
}

func (v *AccountsView) Select() (core.View, error) {
	if v.list.Cursor >= len(v.paths) {
		return nil, nil
	}
	return NewRegView(v.client, v.paths[v.list.Cursor])
}

func (v *AccountsView) BalanceTarget() (string, bool) {
	if v.list.Cursor >= len(v.paths) {
		return "", false
	}
	return v.paths[v.list.Cursor], true
}

func (v *AccountsView) ToggleReal() error {
	v.filters.toggleReal()
	return v.Reload()
}

func (v *AccountsView) CycleCommodity() error {
	v.filters.cycle()
	return v.Reload()
}

func (v *AccountsView) SearchLabels() []string { return v.paths }

func (v *AccountsView) JumpTo(i int) {
	v.list.JumpTo(i, len(v.paths), 1)
}

// expandAccountPaths widens the flat leaf list into every unique prefix, so
// "Assets:Bank:Checking" also yields "Assets" and "Assets:Bank".
func expandAccountPaths(leaves []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		leaf = strings.TrimSpace(leaf)
		if leaf == "" {
			continue
		}
		segments := strings.Split(leaf, ":")
		for i := range segments {
			prefix := strings.Join(segments[:i+1], ":")
			if !seen[prefix] {
				seen[prefix] = true
				out = append(out, prefix)
			}
		}
	}
	sort.Strings(out)
	return out
}
