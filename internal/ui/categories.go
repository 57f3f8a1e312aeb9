package ui

import (
	"strings"

	"tabi/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// categoryStyle is how an activity category is drawn in a day card.
type categoryStyle struct {
	Icon  string
	Color lipgloss.Color
	Label string
}

var fallbackCategory = categoryStyle{Icon: "•", Color: ColorMuted, Label: "other"}

var categoryStyles = map[model.Category]categoryStyle{
	model.CategoryPhoto:       {Icon: "◎", Color: ColorYellow, Label: "photo"},
	model.CategoryCulture:     {Icon: "⛩", Color: ColorBlue, Label: "culture"},
	model.CategoryFood:        {Icon: "♨", Color: ColorPeach, Label: "food"},
	model.CategoryAttraction:  {Icon: "★", Color: ColorLavender, Label: "attraction"},
	model.CategoryTransport:   {Icon: "➜", Color: ColorSlate, Label: "transport"},
	model.CategoryHotel:       {Icon: "⌂", Color: ColorGreen, Label: "hotel"},
	model.CategoryNature:      {Icon: "❀", Color: ColorTeal, Label: "nature"},
	model.CategorySightseeing: {Icon: "◉", Color: ColorBlue, Label: "sightseeing"},
	model.CategoryStart:       {Icon: "▶", Color: ColorAccent, Label: "start"},
	model.CategoryDeparture:   {Icon: "✈", Color: ColorMuted, Label: "departure"},
}

// styleForCategory looks up a category, falling back to a neutral bullet for
// anything not in the table.
func styleForCategory(c model.Category) categoryStyle {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return fallbackCategory
}

// legendOrder is the order categories are listed in the help legend.
var legendOrder = []model.Category{
	model.CategoryStart,
	model.CategoryTransport,
	model.CategoryHotel,
	model.CategoryFood,
	model.CategoryCulture,
	model.CategorySightseeing,
	model.CategoryAttraction,
	model.CategoryNature,
	model.CategoryPhoto,
	model.CategoryDeparture,
}

// renderCategoryLegend lists every category icon with its label.
func renderCategoryLegend() string {
	var lines []string
	for _, c := range legendOrder {
		lines = append(lines, "  "+renderCategoryIcon(c)+" "+HelpDescStyle.Render(styleForCategory(c).Label))
	}
	return strings.Join(lines, "\n")
}

func renderCategoryIcon(c model.Category) string {
	s := styleForCategory(c)
	return lipgloss.NewStyle().Foreground(s.Color).Render(s.Icon)
}
