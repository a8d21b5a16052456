package tui

import "github.com/charmbracelet/bubbles/key"

// ReplayKeyMap defines the key bindings for the replay viewer.
type ReplayKeyMap struct {
	Pause   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Restart key.Binding
	Faster  key.Binding
	Slower  key.Binding
	NewPlay key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Next, k.Prev, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Next, k.Prev, k.Restart},
		{k.Faster, k.Slower, k.NewPlay},
		{k.Help, k.Quit},
	}
}

// DefaultReplayKeyMap returns default key bindings.
func DefaultReplayKeyMap() ReplayKeyMap {
	return ReplayKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play/pause"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "step"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		NewPlay: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new play"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
