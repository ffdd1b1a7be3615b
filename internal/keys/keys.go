package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Search
	Search key.Binding

	// Help toggle
	Help key.Binding

	// View switching
	GoFeed        key.Binding
	GoChecklist   key.Binding
	GoLeaderboard key.Binding
	GoInbox       key.Binding

	// Tab strip within a view
	NextTab key.Binding

	// Checklist actions
	AddTask    key.Binding
	ToggleTask key.Binding
	DeleteTask key.Binding

	// Feed actions
	Like    key.Binding
	Comment key.Binding

	// Leaderboard actions
	Follow key.Binding

	// Inbox actions
	MarkRead key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search feed"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		GoFeed: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "feed"),
		),
		GoChecklist: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "checklist"),
		),
		GoLeaderboard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "leaderboard"),
		),
		GoInbox: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "inbox"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		AddTask: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		ToggleTask: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle done"),
		),
		DeleteTask: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete task"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow/unfollow"),
		),
		MarkRead: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark all read"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help
// view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Back,
		k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Quit, k.Help},
		{k.GoFeed, k.GoChecklist, k.GoLeaderboard, k.GoInbox, k.NextTab},
		{k.AddTask, k.ToggleTask, k.DeleteTask},
		{k.Like, k.Comment, k.Follow, k.Search, k.MarkRead},
	}
}
