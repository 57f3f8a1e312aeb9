package ui

import (
	"strings"

	"tabi/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders context-sensitive help footer.
func RenderHelp(tab model.Tab, dayExpanded bool, width int) string {
	switch tab {
	case model.TabItinerary:
		if dayExpanded {
			return renderExpandedDayHelp(width)
		}
		return renderItineraryHelp(width)
	default:
		return renderOverviewHelp(width)
	}
}

func renderItineraryHelp(width int) string {
	keys := []string{
		helpKey("j/k", "days"),
		helpKey("enter", "expand"),
		helpKey("tab", "next tab"),
		helpKey("c", "¥/₹"),
		helpKey("?", "help"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func renderExpandedDayHelp(width int) string {
	keys := []string{
		helpKey("j/k", "days"),
		helpKey("J/K", "activities"),
		helpKey("o", "directions"),
		helpKey("y", "copy link"),
		helpKey("enter/esc", "collapse"),
		helpKey("c", "¥/₹"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func renderOverviewHelp(width int) string {
	keys := []string{
		helpKey("j/k", "scroll"),
		helpKey("tab/shift+tab", "switch tab"),
		helpKey("1/2/3", "jump to tab"),
		helpKey("c", "¥/₹"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation"),
		helpSection([]helpItem{
			{"tab / → / l", "Next tab"},
			{"shift+tab / ← / h", "Previous tab"},
			{"1 / 2 / 3", "Itinerary / Journey / Budget"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"c", "Toggle ¥ JPY / ₹ INR"},
			{"q", "Quit"},
			{"?", "Toggle help"},
		}),
		titleSection("Itinerary"),
		helpSection([]helpItem{
			{"j / ↓", "Next day"},
			{"k / ↑", "Previous day"},
			{"enter / space", "Expand or collapse day"},
			{"esc", "Collapse expanded day"},
			{"J / K", "Next / previous activity, J scrolls on past the last"},
			{"o", "Open directions to activity"},
			{"y", "Copy directions link"},
		}),
		titleSection("Journey & Budget"),
		helpSection([]helpItem{
			{"j / k", "Scroll"},
		}),
		titleSection("Activity icons"),
		renderCategoryLegend(),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
