// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// ShellKeyMap defines the keybindings for the shell view.
type ShellKeyMap struct {
	Save    key.Binding
	Preview key.Binding
	Ready   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// Shell holds the default shell keybindings.
var Shell = ShellKeyMap{
	Save: key.NewBinding(
		key.WithKeys("s", "ctrl+s"),
		key.WithHelp("s", "save page"),
	),
	Preview: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "preview"),
	),
	Ready: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "renderer ready"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns keybindings for the short help view.
func (k ShellKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Preview, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k ShellKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Preview}, // Toolbar
		{k.Ready},           // Simulator
		{k.Help, k.Quit},    // General
	}
}
