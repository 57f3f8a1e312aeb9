package ui

import (
	"fmt"
	"strings"
	"time"

	"tabi/internal/itinerary"
	"tabi/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// renderJourney renders the trip overview: headline stats, the city route
// and the inter-city legs.
func renderJourney(set *itinerary.Set, width int, now time.Time) string {
	trip := set.Trip()
	days := set.Days()

	var sections []string

	heading := LabelStyle.Render(trip.Name)
	if trip.Tagline != "" {
		heading += "  " + HelpDescStyle.Render(trip.Tagline)
	}
	if len(days) > 0 {
		if start, err := util.ParseTripDate(days[0].Date); err == nil {
			heading = spread(heading, BadgeStyle.Render(util.FormatCountdown(start, len(days), now)), width-8)
		}
	}
	sections = append(sections, heading)

	stats := []struct {
		label string
		value string
	}{
		{"days", fmt.Sprintf("%d", set.Len())},
		{"cities", fmt.Sprintf("%d", len(trip.Cities))},
		{"travellers", fmt.Sprintf("%d", trip.GroupSize)},
		{"activities", fmt.Sprintf("%d", set.ActivityCount())},
		{"with directions", fmt.Sprintf("%d", set.NavigableActivities())},
	}
	boxes := make([]string, len(stats))
	for i, s := range stats {
		boxes[i] = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 2).
			Align(lipgloss.Center).
			Render(AmountStyle.Render(s.value) + "\n" + HelpDescStyle.Render(s.label))
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))

	if len(trip.Cities) > 0 {
		cities := make([]string, len(trip.Cities))
		for i, c := range trip.Cities {
			cities[i] = BadgeStyle.Render(c)
		}
		sections = append(sections, LabelStyle.Render("Route")+"\n"+strings.Join(cities, HelpDescStyle.Render(" → ")))
	}

	if areas := set.Areas(); len(areas) > 0 {
		sections = append(sections, renderField("Areas", strings.Join(areas, ", ")))
	}

	if legs := set.Routes(); len(legs) > 0 {
		rows := []string{LabelStyle.Render("Legs")}
		for _, leg := range legs {
			left := fmt.Sprintf("%-6s %s → %s", leg.Day, leg.From, leg.To)
			right := HelpDescStyle.Render(leg.Method + " · " + leg.Duration)
			rows = append(rows, spread(NormalRowStyle.Render(left), right, width-8))
		}
		sections = append(sections, strings.Join(rows, "\n"))
	}

	return PanelStyle.Width(width - 2).Render(strings.Join(sections, "\n\n"))
}
