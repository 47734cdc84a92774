package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Movement
	Left  key.Binding
	Right key.Binding
	First key.Binding
	Last  key.Binding
	GoTo  key.Binding

	// Carousel control
	Autoplay key.Binding
	Lock     key.Binding

	// Display
	Events     key.Binding
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Prompt
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "0"),
			key.WithHelp("home", "First item"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "$"),
			key.WithHelp("end", "Last item"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("g", ":"),
			key.WithHelp("g", "Go to item"),
		),
		Autoplay: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "Toggle autoplay"),
		),
		Lock: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Lock/unlock"),
		),
		Events: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Event log"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "More keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Go"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.GoTo, k.Autoplay, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.First, k.Last, k.GoTo},
		{k.Autoplay, k.Lock},
		{k.Events, k.CycleTheme},
		{k.Help, k.Quit},
	}
}

// promptKeys are shown while the go-to prompt is open.
type promptKeys struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func (k promptKeys) ShortHelp() []key.Binding { return []key.Binding{k.Confirm, k.Cancel} }

func (k promptKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
