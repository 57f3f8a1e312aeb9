package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"tabi/internal/currency"
	"tabi/internal/directions"
	"tabi/internal/itinerary"
	"tabi/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestModel(t *testing.T, opts ...Option) Model {
	t.Helper()
	opts = append([]Option{
		WithURLOpener(func(string) error { t.Fatal("unexpected browser call"); return nil }),
		WithURLCopier(func(string) error { t.Fatal("unexpected clipboard call"); return nil }),
		WithClock(func() time.Time { return time.Date(2025, time.September, 20, 9, 0, 0, 0, time.UTC) }),
	}, opts...)
	m := New(itinerary.Default(), currency.NewConverter(currency.DefaultRates), currency.JPY, opts...)
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestEnterTogglesCursorDay(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, runes("j"), enterKey)
	if id, ok := m.state.ExpandedDay(); !ok || id != 2 {
		t.Fatalf("ExpandedDay() = %d, %v; want 2, true", id, ok)
	}

	m = send(t, m, runes("j"), enterKey)
	if id, _ := m.state.ExpandedDay(); id != 3 {
		t.Fatalf("expanding day 3 should collapse day 2, got %d", id)
	}

	m = send(t, m, enterKey)
	if _, ok := m.state.ExpandedDay(); ok {
		t.Fatal("second enter on the same day should collapse it")
	}

	m = send(t, m, runes(" "), escKey)
	if _, ok := m.state.ExpandedDay(); ok {
		t.Fatal("esc should collapse the expanded day")
	}
}

func TestCurrencyToggle(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), "¥18,000") {
		t.Fatal("expected day 1 total in yen")
	}

	m = send(t, m, runes("c"))
	if m.state.Currency != currency.INR {
		t.Fatalf("Currency = %s, want INR", m.state.Currency)
	}
	view := m.View()
	if !strings.Contains(view, "₹10,080") {
		t.Fatal("expected day 1 total converted to rupees")
	}
	if strings.Contains(view, "¥18,000") {
		t.Fatal("yen amount still shown after toggle")
	}

	m = send(t, m, runes("c"))
	if m.state.Currency != currency.JPY {
		t.Fatalf("Currency = %s, want JPY", m.state.Currency)
	}
}

func TestOpenDirectionsForSelectedActivity(t *testing.T) {
	var opened string
	m := newTestModel(t, WithURLOpener(func(url string) error {
		opened = url
		return nil
	}))

	// Day 1's first activity has no previous location.
	m = send(t, m, enterKey)
	next, cmd := m.Update(runes("o"))
	m = next.(Model)
	if cmd != nil {
		t.Fatal("expected no command for an activity without directions")
	}
	if m.info == "" {
		t.Fatal("expected an info line explaining why nothing opened")
	}

	m = send(t, m, runes("J"))
	next, cmd = m.Update(runes("o"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected a command to open directions")
	}

	msg := cmd()
	want := directions.Link("Haneda Airport, Tokyo, Japan", "Katsushika District, Tokyo, Japan")
	if got, ok := msg.(model.LinkOpenedMsg); !ok || got.URL != want {
		t.Fatalf("cmd() = %#v, want LinkOpenedMsg{%q}", msg, want)
	}
	if opened != want {
		t.Fatalf("opener got %q, want %q", opened, want)
	}

	m = send(t, m, msg)
	if !strings.Contains(m.View(), "Opened directions") {
		t.Fatal("expected confirmation after opening")
	}
}

func TestCopyDirections(t *testing.T) {
	var copied string
	m := newTestModel(t, WithURLCopier(func(url string) error {
		copied = url
		return nil
	}))

	m = send(t, m, runes("j"), enterKey)
	_, cmd := m.Update(runes("y"))
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	if _, ok := cmd().(model.LinkCopiedMsg); !ok {
		t.Fatal("expected LinkCopiedMsg")
	}
	want := directions.Link("Katsushika District, Tokyo, Japan", "Senso-ji Temple, Asakusa, Tokyo, Japan")
	if copied != want {
		t.Fatalf("copied %q, want %q", copied, want)
	}
}

func TestOpenWithoutExpandedDay(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runes("o"))
	if cmd != nil {
		t.Fatal("nothing should open when no day is expanded")
	}
	if next.(Model).info == "" {
		t.Fatal("expected an info line")
	}
}

func TestOpenerFailureShowsError(t *testing.T) {
	m := newTestModel(t, WithURLOpener(func(string) error {
		return errors.New("no browser")
	}))

	m = send(t, m, enterKey, runes("J"))
	_, cmd := m.Update(runes("o"))
	msg := cmd()
	if _, ok := msg.(model.ErrorMsg); !ok {
		t.Fatalf("cmd() = %#v, want ErrorMsg", msg)
	}
	m = send(t, m, msg)
	if !strings.Contains(m.View(), "no browser") {
		t.Fatal("expected error banner")
	}

	// The next key press clears it.
	m = send(t, m, runes("j"))
	if m.error != "" {
		t.Fatalf("error not cleared: %q", m.error)
	}
}

func TestActivityCursorStaysInBounds(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, enterKey)
	for i := 0; i < 10; i++ {
		m = send(t, m, runes("J"))
	}
	a, ok := m.itinerary.SelectedActivity(m.state)
	if !ok || a.Description != "Late dinner at halal restaurant" {
		t.Fatalf("SelectedActivity() = %q, %v", a.Description, ok)
	}
	for i := 0; i < 10; i++ {
		m = send(t, m, runes("K"))
	}
	if a, _ := m.itinerary.SelectedActivity(m.state); a.Time != "20:00" {
		t.Fatalf("expected first activity, got %q", a.Time)
	}
}

func TestSelectedActivityStaysVisible(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})
	m = send(t, m, runes("j"), runes("j"), runes("j"), runes("j"), enterKey)
	if id, _ := m.state.ExpandedDay(); id != 5 {
		t.Fatalf("ExpandedDay() = %d, want 5", id)
	}

	for i := 0; i < 4; i++ {
		m = send(t, m, runes("J"))
		a, ok := m.itinerary.SelectedActivity(m.state)
		if !ok {
			t.Fatal("no selected activity")
		}
		view := m.View()
		if !strings.Contains(view, a.Description) {
			t.Fatalf("after %d J presses %q is not on screen:\n%s", i+1, a.Description, view)
		}
	}
	if a, _ := m.itinerary.SelectedActivity(m.state); a.Description != "Halal dinner in Dotonbori" {
		t.Fatalf("SelectedActivity() = %q", a.Description)
	}

	// Past the last activity J scrolls through the rest of the card.
	for i := 0; i < 60; i++ {
		m = send(t, m, runes("J"))
	}
	view := m.View()
	for _, want := range []string{"Tips", "Harry Potter area and Nintendo World are must-visit attractions"} {
		if !strings.Contains(view, want) {
			t.Fatalf("%q is not reachable:\n%s", want, view)
		}
	}
	if a, _ := m.itinerary.SelectedActivity(m.state); a.Description != "Halal dinner in Dotonbori" {
		t.Fatalf("scrolling changed the selection to %q", a.Description)
	}

	// K scrolls straight back to the last activity.
	m = send(t, m, runes("K"))
	if view := m.View(); !strings.Contains(view, "Halal dinner in Dotonbori") {
		t.Fatalf("last activity not back on screen:\n%s", view)
	}
}

func TestTabSwitching(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, tabKey)
	if m.state.Tab != model.TabJourney {
		t.Fatalf("Tab = %v, want Journey", m.state.Tab)
	}
	if !strings.Contains(m.View(), "Hiroshima") {
		t.Fatal("journey view should list the cities")
	}

	m = send(t, m, shiftTabKey, shiftTabKey)
	if m.state.Tab != model.TabBudget {
		t.Fatalf("Tab = %v, want Budget", m.state.Tab)
	}
	if !strings.Contains(m.View(), "¥293,875") {
		t.Fatal("budget view should show the headline total")
	}

	m = send(t, m, runes("1"))
	if m.state.Tab != model.TabItinerary {
		t.Fatalf("Tab = %v, want Itinerary", m.state.Tab)
	}
	m = send(t, m, runes("2"))
	if m.state.Tab != model.TabJourney {
		t.Fatalf("Tab = %v, want Journey", m.state.Tab)
	}
}

func TestJumpTopAndBottom(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, runes("G"))
	if d, _ := m.itinerary.Selected(); d.ID != 8 {
		t.Fatalf("G selected day %d, want 8", d.ID)
	}

	m = send(t, m, runes("g"), runes("j"))
	if d, _ := m.itinerary.Selected(); d.ID != 8 {
		t.Fatalf("a lone g should not jump, selected %d", d.ID)
	}

	m = send(t, m, runes("g"), runes("g"))
	if d, _ := m.itinerary.Selected(); d.ID != 1 {
		t.Fatalf("gg selected day %d, want 1", d.ID)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("?"))
	if !m.showingHelp || !strings.Contains(m.View(), "Help") {
		t.Fatal("expected help screen")
	}

	// Keys other than esc and ? are swallowed while help is showing.
	m = send(t, m, runes("c"))
	if m.state.Currency != currency.JPY {
		t.Fatal("currency toggled behind the help screen")
	}

	m = send(t, m, escKey)
	if m.showingHelp {
		t.Fatal("esc should close help")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
