// Package session holds the transient display state of one run: which tab
// is showing, which day is expanded and which currency amounts are shown in.
// Nothing here outlives the process.
package session

import (
	"tabi/internal/currency"
	"tabi/internal/expand"
	"tabi/internal/model"
)

// State is owned by the root UI model. Methods with pointer receivers mutate
// it in place; the zero value shows the itinerary tab in the base currency
// with every day collapsed.
type State struct {
	Tab      model.Tab
	Currency currency.Currency
	Days     expand.Controller[int]
}

// New returns a state showing amounts in cur.
func New(cur currency.Currency) State {
	if cur == "" {
		cur = currency.Base
	}
	return State{Tab: model.TabItinerary, Currency: cur}
}

// SelectTab switches to t. Unknown tabs are ignored.
func (s *State) SelectTab(t model.Tab) {
	for _, known := range model.Tabs {
		if known == t {
			s.Tab = t
			return
		}
	}
}

// NextTab moves one tab to the right, wrapping at the end.
func (s *State) NextTab() {
	s.Tab = model.Tabs[(s.tabIndex()+1)%len(model.Tabs)]
}

// PrevTab moves one tab to the left, wrapping at the start.
func (s *State) PrevTab() {
	n := len(model.Tabs)
	s.Tab = model.Tabs[(s.tabIndex()-1+n)%n]
}

func (s State) tabIndex() int {
	for i, t := range model.Tabs {
		if t == s.Tab {
			return i
		}
	}
	return 0
}

// ToggleCurrency flips between the base and display currency.
func (s *State) ToggleCurrency() {
	if s.Currency == "" {
		s.Currency = currency.Base
	}
	s.Currency = s.Currency.Other()
}

// ToggleDay expands day id or collapses it if it is already expanded. The
// caller is responsible for only passing ids of existing days.
func (s *State) ToggleDay(id int) {
	s.Days.Toggle(id)
}

// ExpandedDay returns the expanded day id, if any.
func (s State) ExpandedDay() (int, bool) {
	return s.Days.Expanded()
}
