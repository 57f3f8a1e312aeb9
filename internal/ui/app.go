package ui

import (
	"log"
	"strings"
	"time"

	"tabi/internal/currency"
	"tabi/internal/directions"
	"tabi/internal/itinerary"
	"tabi/internal/model"
	"tabi/internal/session"
	"tabi/internal/util"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the root Bubble Tea model.
type Model struct {
	set    *itinerary.Set
	conv   *currency.Converter
	state  session.State
	gState GState

	width  int
	height int
	scroll int

	error       string
	info        string
	showingHelp bool

	itinerary *ItineraryModel

	keys    KeyMap
	openURL URLOpener
	copyURL URLCopier
	now     func() time.Time
}

// Option customizes a Model.
type Option func(*Model)

// WithURLOpener replaces the host browser used for directions links.
func WithURLOpener(open URLOpener) Option {
	return func(m *Model) { m.openURL = open }
}

// WithURLCopier replaces the system clipboard used for directions links.
func WithURLCopier(copyFn URLCopier) Option {
	return func(m *Model) { m.copyURL = copyFn }
}

// WithClock replaces the clock used for the trip countdown.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// New creates a new root model showing amounts in cur.
func New(set *itinerary.Set, conv *currency.Converter, cur currency.Currency, opts ...Option) Model {
	m := Model{
		set:       set,
		conv:      conv,
		state:     session.New(cur),
		gState:    GStateIdle,
		itinerary: NewItineraryModel(set.Days()),
		keys:      DefaultKeyMap(),
		openURL:   OpenInBrowser,
		copyURL:   CopyToClipboard,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if key.Matches(msg, m.keys.Help) {
			m.showingHelp = !m.showingHelp
			return m, nil
		}

		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}

		m.error = ""
		m.info = ""
		return m.handleKey(msg)

	case model.ErrorMsg:
		log.Printf("error: %v", msg.Err)
		m.error = msg.Err.Error()
		return m, nil

	case model.LinkOpenedMsg:
		log.Printf("opened %s", msg.URL)
		m.info = "Opened directions in browser"
		return m, nil

	case model.LinkCopiedMsg:
		m.info = "Copied directions link"
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle "gg" state machine
	if key.Matches(msg, m.keys.Top) {
		if m.gState == GStateIdle {
			m.gState = GStateFirstG
			return m, nil
		}
		m.gState = GStateIdle
		return m.handleJumpToTop()
	}
	m.gState = GStateIdle

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Currency):
		m.state.ToggleCurrency()
		m.info = "Showing amounts in " + string(m.state.Currency)
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.state.NextTab()
		m.scroll = 0
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.state.PrevTab()
		m.scroll = 0
		return m, nil
	case key.Matches(msg, m.keys.ItineraryTab):
		return m.selectTab(model.TabItinerary), nil
	case key.Matches(msg, m.keys.JourneyTab):
		return m.selectTab(model.TabJourney), nil
	case key.Matches(msg, m.keys.BudgetTab):
		return m.selectTab(model.TabBudget), nil
	}

	if m.state.Tab == model.TabItinerary {
		return m.handleItineraryNav(msg)
	}
	return m.handleOverviewNav(msg)
}

func (m Model) selectTab(t model.Tab) Model {
	if m.state.Tab != t {
		m.scroll = 0
	}
	m.state.SelectTab(t)
	return m
}

func (m Model) handleJumpToTop() (tea.Model, tea.Cmd) {
	if m.state.Tab == model.TabItinerary {
		m.itinerary.JumpToTop()
		return m, nil
	}
	m.scroll = 0
	return m, nil
}

func (m Model) handleItineraryNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.itinerary.MoveDown()
	case key.Matches(msg, m.keys.Up):
		m.itinerary.MoveUp()
	case key.Matches(msg, m.keys.Bottom):
		m.itinerary.JumpToBottom()
	case key.Matches(msg, m.keys.Toggle):
		if d, ok := m.itinerary.Selected(); ok {
			m.state.ToggleDay(d.ID)
			m.itinerary.ResetActivity()
		}
	case key.Matches(msg, m.keys.Collapse):
		if id, ok := m.state.ExpandedDay(); ok {
			m.state.ToggleDay(id)
			m.itinerary.ResetActivity()
		}
	case key.Matches(msg, m.keys.ActivityDown):
		m.itinerary.NextActivity(m.width, m.conv, m.state)
	case key.Matches(msg, m.keys.ActivityUp):
		m.itinerary.PrevActivity()
	case key.Matches(msg, m.keys.OpenDirections):
		link, ok := m.selectedLink()
		if !ok {
			return m, nil
		}
		return m, openURLCmd(m.openURL, link)
	case key.Matches(msg, m.keys.CopyDirections):
		link, ok := m.selectedLink()
		if !ok {
			return m, nil
		}
		return m, copyURLCmd(m.copyURL, link)
	}
	return m, nil
}

// selectedLink returns the directions link for the activity under the
// cursor, setting an info line when there is none to offer.
func (m *Model) selectedLink() (string, bool) {
	a, ok := m.itinerary.SelectedActivity(m.state)
	if !ok {
		m.info = "Expand a day to pick an activity"
		return "", false
	}
	link, ok := directions.ForActivity(a)
	if !ok {
		m.info = "No directions for this activity"
		return "", false
	}
	return link, true
}

func (m Model) handleOverviewNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.scroll++
	case key.Matches(msg, m.keys.Up):
		if m.scroll > 0 {
			m.scroll--
		}
	case key.Matches(msg, m.keys.Bottom):
		// Clamped to the last page when rendered.
		m.scroll = 1 << 20
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	// Header: 2 lines, tabs: 2 lines, footer: 2 lines
	contentHeight := m.height - 6
	if m.error != "" {
		contentHeight--
	}
	if m.info != "" {
		contentHeight--
	}

	var content string
	switch m.state.Tab {
	case model.TabItinerary:
		content = m.itinerary.View(m.width, contentHeight, m.conv, m.state)
	case model.TabJourney:
		content = scrollView(renderJourney(m.set, m.width, m.now()), m.scroll, contentHeight)
	case model.TabBudget:
		content = scrollView(renderBudget(m.set, m.width, m.conv, m.state.Currency), m.scroll, contentHeight)
	}

	_, expanded := m.state.ExpandedDay()
	header := m.renderHeader([]string{m.set.Trip().Name, m.state.Tab.String()})
	tabs := renderTabs(m.state.Tab, m.width)
	footer := RenderHelp(m.state.Tab, expanded, m.width)

	// Ensure content fills the available height to anchor footer at bottom
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Render(content)

	parts := []string{header, tabs}
	if m.error != "" {
		parts = append(parts, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		parts = append(parts, SuccessStyle.Width(m.width).Render(m.info))
	}
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func scrollView(s string, top, height int) string {
	return strings.Join(window(strings.Split(s, "\n"), top, height), "\n")
}

func renderTabs(active model.Tab, width int) string {
	var tabStrings []string
	for i, tab := range model.Tabs {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

		if active == tab {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}

		tabStrings = append(tabStrings, tabStyle.Render(string(rune('1'+i))+" "+tab.String()))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func (m Model) renderHeader(breadcrumbParts []string) string {
	// Left side: app name + breadcrumb
	title := HeaderStyle.Render("tabi")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	// Right side: display currency and today's date
	cur := m.state.Currency
	badge := BadgeStyle.Render(cur.Symbol() + " " + string(cur))
	right := badge + "  " + BreadcrumbStyle.Render(util.FormatDate(m.now().Format("2006-01-02"))) + "  "

	headerContent := spread(left, right, m.width-2)
	return TitleStyle.Width(m.width).Render(headerContent)
}
