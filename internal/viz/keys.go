package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause   key.Binding
	Step    key.Binding
	Back    key.Binding
	Forward key.Binding
	First   key.Binding
	Last    key.Binding
	Release key.Binding
	Reset   key.Binding
	Rings   key.Binding
	Rainbow key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Theme   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Pause:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
	Step:    key.NewBinding(key.WithKeys(".", "n"), key.WithHelp("./n", "step")),
	Back:    key.NewBinding(key.WithKeys("[", "left"), key.WithHelp("[/←", "scrub back")),
	Forward: key.NewBinding(key.WithKeys("]", "right"), key.WithHelp("]/→", "scrub forward")),
	First:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first frame")),
	Last:    key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last frame")),
	Release: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "release scrub")),
	Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Rings:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "rings")),
	Rainbow: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "rainbow")),
	Faster:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
	Slower:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
	Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Back, k.Forward, k.Release, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step, k.Reset},
		{k.Back, k.Forward, k.First, k.Last, k.Release},
		{k.Rings, k.Rainbow, k.Faster, k.Slower},
		{k.Theme, k.Help, k.Quit},
	}
}
