package ui

import (
	"fmt"
	"strings"

	"tabi/internal/currency"
	"tabi/internal/directions"
	"tabi/internal/model"
	"tabi/internal/session"
	"tabi/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// ItineraryModel is the day-card list. It owns the day cursor and the
// activity cursor inside the expanded day; which day is expanded lives in
// the session.
type ItineraryModel struct {
	days     []model.Day
	cursor   int
	activity int
	tail     int // lines scrolled past the last activity
}

// NewItineraryModel creates a day list over days.
func NewItineraryModel(days []model.Day) *ItineraryModel {
	return &ItineraryModel{days: days}
}

// Selected returns the day under the cursor.
func (m *ItineraryModel) Selected() (model.Day, bool) {
	if m.cursor < 0 || m.cursor >= len(m.days) {
		return model.Day{}, false
	}
	return m.days[m.cursor], true
}

func (m *ItineraryModel) MoveDown() {
	if m.cursor < len(m.days)-1 {
		m.cursor++
	}
}

func (m *ItineraryModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *ItineraryModel) JumpToTop() {
	m.cursor = 0
}

func (m *ItineraryModel) JumpToBottom() {
	if len(m.days) > 0 {
		m.cursor = len(m.days) - 1
	}
}

// ResetActivity puts the activity cursor back on the first activity.
func (m *ItineraryModel) ResetActivity() {
	m.activity = 0
	m.tail = 0
}

// NextActivity advances the activity cursor within the expanded day. Past
// the last activity it scrolls line by line through the rest of the card.
func (m *ItineraryModel) NextActivity(width int, conv *currency.Converter, state session.State) {
	d, ok := m.expandedDay(state)
	if !ok {
		return
	}
	if m.activity < len(d.Activities)-1 {
		m.activity++
		return
	}
	l := m.layout(width, conv, state)
	if l.expanded && m.tail < l.cardEnd-l.focusEnd {
		m.tail++
	}
}

// PrevActivity moves the activity cursor back. When the card was scrolled
// past the last activity it first scrolls back to that activity.
func (m *ItineraryModel) PrevActivity() {
	if m.tail > 0 {
		m.tail = 0
		return
	}
	if m.activity > 0 {
		m.activity--
	}
}

// SelectedActivity returns the activity under the cursor of the expanded day.
func (m *ItineraryModel) SelectedActivity(state session.State) (model.Activity, bool) {
	d, ok := m.expandedDay(state)
	if !ok || m.activity < 0 || m.activity >= len(d.Activities) {
		return model.Activity{}, false
	}
	return d.Activities[m.activity], true
}

func (m *ItineraryModel) expandedDay(state session.State) (model.Day, bool) {
	id, ok := state.ExpandedDay()
	if !ok {
		return model.Day{}, false
	}
	for _, d := range m.days {
		if d.ID == id {
			return d, true
		}
	}
	return model.Day{}, false
}

// View renders every day card and scrolls so the cursor's card is visible.
// Inside an expanded card the selected activity is kept on screen instead.
func (m *ItineraryModel) View(width, height int, conv *currency.Converter, state session.State) string {
	if len(m.days) == 0 {
		return EmptyStateStyle.
			Width(width).
			Height(height).
			Render("No days in this itinerary.")
	}

	l := m.layout(width, conv, state)

	// Keep the focused lines on screen, preferring to show the card's top.
	focusStart, focusEnd := l.focusStart, l.focusEnd
	if m.tail > 0 && l.expanded {
		focusEnd = min(focusEnd+m.tail, l.cardEnd)
		focusStart = focusEnd - 1
	}
	top := l.cardStart
	if focusEnd > top+height {
		top = focusEnd - height
	}
	if top > focusStart {
		top = focusStart
	}
	return strings.Join(window(l.lines, top, height), "\n")
}

// cardLayout is the rendered day list with the line ranges of the cursor's
// card and of the part of it that must stay visible. Ranges are half-open.
type cardLayout struct {
	lines      []string
	cardStart  int
	cardEnd    int
	focusStart int
	focusEnd   int
	expanded   bool
}

func (m *ItineraryModel) layout(width int, conv *currency.Converter, state session.State) cardLayout {
	var l cardLayout
	for i, d := range m.days {
		card, actStart, actEnd := m.renderCard(d, i == m.cursor, width, conv, state)
		if i == m.cursor {
			l.cardStart = len(l.lines)
		}
		l.lines = append(l.lines, strings.Split(card, "\n")...)
		if i == m.cursor {
			l.cardEnd = len(l.lines)
			l.focusStart, l.focusEnd = l.cardStart, l.cardEnd
			if actEnd > actStart {
				l.focusStart, l.focusEnd = l.cardStart+actStart, l.cardStart+actEnd
				l.expanded = true
			}
		}
	}
	return l
}

// renderCard renders one day. When the day is expanded it also returns the
// line range of the selected activity within the card.
func (m *ItineraryModel) renderCard(d model.Day, selected bool, width int, conv *currency.Converter, state session.State) (string, int, int) {
	style := CardStyle
	if selected {
		style = ActiveCardStyle
	}
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	expanded := state.Days.IsExpanded(d.ID)
	marker := "▸"
	if expanded {
		marker = "▾"
	}

	title := LabelStyle.Render(fmt.Sprintf("%s Day %d", marker, d.ID)) + "  " + NormalRowStyle.Render(d.Title)
	cost := AmountStyle.Render(conv.Convert(d.TotalCost, currency.Base, state.Currency))
	if d.GroupCost {
		cost += HelpDescStyle.Render(" group total")
	}
	sub := HelpDescStyle.Render(fmt.Sprintf("%s · %s · %d activities", util.FormatDate(d.Date), d.Area, len(d.Activities)))

	lines := []string{
		spread(title, cost, inner-2),
		sub,
	}

	actStart, actEnd := 0, 0
	if expanded {
		lines = append(lines, "")
		body, start, end := m.renderExpanded(d, inner-2, conv, state)
		// One line for the top border.
		offset := 1 + lineCount(lines)
		actStart, actEnd = offset+start, offset+end
		lines = append(lines, body...)
	}

	return style.Width(width - 2).Render(strings.Join(lines, "\n")), actStart, actEnd
}

// lineCount counts physical lines in entries that may themselves be wrapped.
func lineCount(entries []string) int {
	n := 0
	for _, e := range entries {
		n += strings.Count(e, "\n") + 1
	}
	return n
}

func (m *ItineraryModel) renderExpanded(d model.Day, width int, conv *currency.Converter, state session.State) ([]string, int, int) {
	var lines []string
	wrap := lipgloss.NewStyle().Width(width)

	if d.Description != "" {
		lines = append(lines, wrap.Render(d.Description))
	}
	if len(d.Highlights) > 0 {
		tags := make([]string, len(d.Highlights))
		for i, h := range d.Highlights {
			tags[i] = TagStyle.Render(h)
		}
		lines = append(lines, wrap.Render(strings.Join(tags, " ")))
	}

	lines = append(lines, "", LabelStyle.Render("Schedule"))
	actStart, actEnd := 0, 0
	for i, a := range d.Activities {
		if i == m.activity {
			actStart = lineCount(lines)
		}
		lines = append(lines, renderActivity(a, i == m.activity, width, conv, state.Currency)...)
		if i == m.activity {
			actEnd = lineCount(lines)
		}
	}

	if t := d.Travel; t != nil {
		lines = append(lines, "", LabelStyle.Render("Getting around"))
		lines = append(lines, renderField("Route", t.Route))
		lines = append(lines, renderField("Method", t.Method+" · "+t.Duration))
		if t.Cost != "" {
			lines = append(lines, renderField("Cost", t.Cost))
		}
		if t.Instructions != "" {
			lines = append(lines, wrap.Foreground(ColorMuted).Render(t.Instructions))
		}
	}

	if acc := d.Accommodation; acc != nil {
		lines = append(lines, "", LabelStyle.Render("Stay"))
		lines = append(lines, NormalRowStyle.Bold(true).Render(acc.Name)+HelpDescStyle.Render(" · "+acc.Type))
		lines = append(lines,
			lipgloss.NewStyle().Foreground(ColorYellow).Render(util.FormatRatingStars(acc.Rating))+" "+
				HelpDescStyle.Render(util.FormatRating(acc.Rating))+"  "+
				AmountStyle.Render(conv.Convert(acc.Price, currency.Base, state.Currency))+
				HelpDescStyle.Render(" for "+util.FormatNights(acc.Nights)))
		if acc.Location != "" {
			lines = append(lines, renderField("Where", acc.Location))
		}
		if acc.CheckIn != "" || acc.CheckOut != "" {
			lines = append(lines, renderField("Check-in", acc.CheckIn)+"  "+renderField("Check-out", acc.CheckOut))
		}
		if len(acc.Features) > 0 {
			tags := make([]string, len(acc.Features))
			for i, f := range acc.Features {
				tags[i] = TagStyle.Render(f)
			}
			lines = append(lines, wrap.Render(strings.Join(tags, " ")))
		}
	}

	if len(d.Tips) > 0 {
		lines = append(lines, "", LabelStyle.Render("Tips"))
		for _, tip := range d.Tips {
			lines = append(lines, wrap.Render("• "+tip))
		}
	}
	return lines, actStart, actEnd
}

func renderActivity(a model.Activity, selected bool, width int, conv *currency.Converter, cur currency.Currency) []string {
	pointer := "  "
	desc := NormalRowStyle.Render(a.Description)
	if selected {
		pointer = LabelStyle.Render("› ")
		desc = SelectedRowStyle.Render(a.Description)
	}

	left := pointer + HelpDescStyle.Render(a.Time) + " " + renderCategoryIcon(a.Category) + " " + desc
	right := ""
	if a.Cost > 0 {
		right = AmountStyle.Render(conv.Convert(a.Cost, currency.Base, cur))
		if a.GroupCost {
			right += HelpDescStyle.Render(" group")
		}
	}
	lines := []string{spread(left, right, width)}

	indent := lipgloss.NewStyle().PaddingLeft(10).Width(width)
	if a.Location != "" {
		loc := "@ " + a.Location
		if _, ok := directions.ForActivity(a); ok {
			loc += "  " + LinkStyle.Render("↗ directions")
		}
		lines = append(lines, indent.Foreground(ColorMuted).Render(loc))
	}
	if selected && a.Details != "" {
		lines = append(lines, indent.Render(a.Details))
	}
	if a.Note != "" {
		lines = append(lines, indent.Inherit(NoteStyle).Render(a.Note))
	}
	return lines
}

func renderField(label, value string) string {
	if value == "" {
		value = "—"
	}
	return LabelStyle.Render(label+":") + " " + NormalRowStyle.Render(value)
}

// spread places left and right on one line of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// window returns at most height lines starting at top, clamped so the last
// page is always full.
func window(lines []string, top, height int) []string {
	if height <= 0 {
		return nil
	}
	if maxTop := len(lines) - height; top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	end := top + height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[top:end]
}
