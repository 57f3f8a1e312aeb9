package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// LinkOpenedMsg is sent after a directions link was handed to the browser.
type LinkOpenedMsg struct {
	URL string
}

// LinkCopiedMsg is sent after a directions link was copied to the clipboard.
type LinkCopiedMsg struct {
	URL string
}

// Tab represents the top-level views of the app.
type Tab int

const (
	TabItinerary Tab = iota
	TabJourney
	TabBudget
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabItinerary, TabJourney, TabBudget}

func (t Tab) String() string {
	switch t {
	case TabItinerary:
		return "Itinerary"
	case TabJourney:
		return "Journey"
	case TabBudget:
		return "Budget"
	default:
		return "Unknown"
	}
}
