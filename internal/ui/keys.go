package ui

import "github.com/charmbracelet/bubbles/key"

// GState represents the state for "gg" navigation.
type GState int

const (
	GStateIdle GState = iota
	GStateFirstG
)

// KeyMap defines all keybindings.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	ActivityUp     key.Binding
	ActivityDown   key.Binding
	Toggle         key.Binding
	Collapse       key.Binding
	NextTab        key.Binding
	PrevTab        key.Binding
	ItineraryTab   key.Binding
	JourneyTab     key.Binding
	BudgetTab      key.Binding
	Currency       key.Binding
	OpenDirections key.Binding
	CopyDirections key.Binding
	Top            key.Binding
	Bottom         key.Binding
	Quit           key.Binding
	Help           key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "prev day"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next day"),
		),
		ActivityUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "prev activity"),
		),
		ActivityDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "next activity"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "expand/collapse"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "collapse"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "prev tab"),
		),
		ItineraryTab: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "itinerary"),
		),
		JourneyTab: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "journey"),
		),
		BudgetTab: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "budget"),
		),
		Currency: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "¥/₹"),
		),
		OpenDirections: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "directions"),
		),
		CopyDirections: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
