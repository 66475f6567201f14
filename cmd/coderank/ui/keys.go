package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding of the leaderboard page. It satisfies
// help.KeyMap.
type keyMap struct {
	EnableSearch  key.Binding
	DisableSearch key.Binding
	FocusFilter   key.Binding
	Blur          key.Binding
	Left          key.Binding
	Right         key.Binding
	Sort          key.Binding
	Up            key.Binding
	Down          key.Binding
	NextPage      key.Binding
	PrevPage      key.Binding
	FirstPage     key.Binding
	LastPage      key.Binding
	BiggerPage    key.Binding
	SmallerPage   key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		EnableSearch:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "enable search")),
		DisableSearch: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "disable search")),
		FocusFilter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter handle")),
		Blur:          key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "leave filter")),
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "column")),
		Right:         key.NewBinding(key.WithKeys("right", "l")),
		Sort:          key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "sort column")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "row")),
		Down:          key.NewBinding(key.WithKeys("down", "j")),
		NextPage:      key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n/p", "page")),
		PrevPage:      key.NewBinding(key.WithKeys("p", "pgup")),
		FirstPage:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g/G", "first/last page")),
		LastPage:      key.NewBinding(key.WithKeys("G", "end")),
		BiggerPage:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "page size")),
		SmallerPage:   key.NewBinding(key.WithKeys("-")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Sort, k.NextPage, k.EnableSearch, k.Help, k.Quit}
}

// FullHelp returns the bindings shown when help is expanded.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.EnableSearch, k.DisableSearch, k.FocusFilter, k.Blur},
		{k.Left, k.Sort, k.Up},
		{k.NextPage, k.FirstPage, k.BiggerPage},
		{k.Help, k.Quit},
	}
}
