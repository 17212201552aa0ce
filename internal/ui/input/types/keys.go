package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the slider view
type KeyMap struct {
	Previous  key.Binding
	Next      key.Binding
	First     key.Binding
	Last      key.Binding
	Jump      key.Binding
	Pause     key.Binding
	Open      key.Binding
	Info      key.Binding
	Help      key.Binding
	HelpPager key.Binding
	Close     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap is the stock binding set
var DefaultKeyMap = KeyMap{
	Previous: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last"),
	),
	Jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "go to slide"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space/p", "pause/play"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter", "open slide"),
	),
	Info: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "info"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	HelpPager: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "help in pager"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "?", "q"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Pause, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.First, k.Last, k.Jump},
		{k.Pause, k.Open, k.Info},
		{k.Help, k.HelpPager, k.Quit},
	}
}
