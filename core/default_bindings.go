package core

// Action symbols dispatched by the controller.
const (
	ActionQuit           = "quit"
	ActionLineDown       = "line-down"
	ActionLineUp         = "line-up"
	ActionPageDown       = "page-down"
	ActionPageUp         = "page-up"
	ActionFirstLine      = "first-line"
	ActionLastLine       = "last-line"
	ActionToggleReal     = "toggle-real"
	ActionCycleCommodity = "cycle-commodity"
	ActionSelect         = "select"
	ActionBalance        = "balance"
	ActionSearch         = "search"
)

// DefaultKeyBindings is the fixed key table. The mapping is not
// reconfigurable.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "esc"}, Action: ActionQuit, Description: "back", Scopes: []string{"*"}},
		{Keys: []string{"j", "down"}, Action: ActionLineDown, Description: "down", Scopes: []string{"*"}},
		{Keys: []string{"k", "up"}, Action: ActionLineUp, Description: "up", Scopes: []string{"*"}},
		{Keys: []string{"pgdown", "ctrl+f"}, Action: ActionPageDown, Description: "page down", Scopes: []string{"*"}},
		{Keys: []string{"pgup", "ctrl+b"}, Action: ActionPageUp, Description: "page up", Scopes: []string{"*"}},
		{Keys: []string{"home", "g"}, Action: ActionFirstLine, Description: "first", Scopes: []string{"*"}},
		{Keys: []string{"end", "G"}, Action: ActionLastLine, Description: "last", Scopes: []string{"*"}},
		{Keys: []string{"r"}, Action: ActionToggleReal, Description: "real only", Scopes: []string{"*"}},
		{Keys: []string{"c"}, Action: ActionCycleCommodity, Description: "commodity", Scopes: []string{"*"}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "open", Scopes: []string{"*"}},
		{Keys: []string{"b"}, Action: ActionBalance, Description: "balance", Scopes: []string{"view:accounts", "view:register"}},
		{Keys: []string{"/"}, Action: ActionSearch, Description: "search", Scopes: []string{"view:accounts"}},
	}
}
