package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Key Map ---

type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	JumpTab     key.Binding
	Back        key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Enter       key.Binding
	Backspace   key.Binding
	Search      key.Binding
	NextFilter  key.Binding
	CycleFilter key.Binding
	ClearSearch key.Binding
	Reload      key.Binding
	Delete      key.Binding
	Status      key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit from the tab bar")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "this help")),
	JumpTab: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
		key.WithHelp("1-0", "jump to a tab"),
	),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search, close details, back to the tab bar")),
	Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "move up")),
	Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "move down, or focus the list")),
	Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous page or tab")),
	Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next page or tab")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open details")),
	Backspace: key.NewBinding(key.WithKeys("backspace")),
	// Help entry only. Typed text is read by typedText.
	Search:      key.NewBinding(key.WithKeys("a-z"), key.WithHelp("a-z", "search the list")),
	NextFilter:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "choose the filter to change")),
	CycleFilter: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "cycle the chosen filter")),
	ClearSearch: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear the search")),
	Reload:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
	Delete:      key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete the selected record")),
	Status:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "change order status")),
	Confirm:     key.NewBinding(key.WithKeys("y", "Y")),
	Cancel:      key.NewBinding(key.WithKeys("n", "N")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.ForceQuit}
}

// FullHelp implements help.KeyMap as a single column.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{
		k.JumpTab, k.Left, k.Right, k.Down, k.Up, k.Enter, k.Back,
		k.Search, k.NextFilter, k.CycleFilter, k.ClearSearch,
		k.Reload, k.Delete, k.Status, k.Help, k.Quit, k.ForceQuit,
	}}
}

// typedText returns the printable text of a key press, if any.
func typedText(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return "", false
		}
		return string(msg.Runes), true
	case tea.KeySpace:
		return " ", true
	}
	return "", false
}

// tabIndexForKey maps the number row onto tab positions: 1-9 then 0.
func tabIndexForKey(k string, count int) (int, bool) {
	if len(k) != 1 || k[0] < '0' || k[0] > '9' {
		return 0, false
	}
	idx := int(k[0] - '1')
	if k == "0" {
		idx = 9
	}
	if idx >= count {
		return 0, false
	}
	return idx, true
}
