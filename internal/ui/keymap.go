package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings shown by the help bubble.
type keyMap struct {
	Move     key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Skip     key.Binding
	Page     key.Binding
	Home     key.Binding
	End      key.Binding
	JumpBack key.Binding
	Goto     key.Binding
	Log      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"),
			key.WithHelp("←↓↑→/hjkl", "move"),
		),
		Grow: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "grow selection"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "shrink selection"),
		),
		Skip: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab/⇧tab", "skip by selection"),
		),
		Page: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "page"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "start of file"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "end of file"),
		),
		JumpBack: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "jump back"),
		),
		Goto: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to offset"),
		),
		Log: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "view session log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Grow, k.JumpBack, k.Goto, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Page, k.Home, k.End},
		{k.Grow, k.Shrink, k.Skip},
		{k.Goto, k.JumpBack, k.Log},
		{k.Help, k.Quit},
	}
}
