package ui

import (
	"fmt"
	"strings"

	"tabi/internal/currency"
	"tabi/internal/itinerary"
	"tabi/internal/model"
	"tabi/internal/util"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 30

// renderBudget renders the authored budget in the display currency.
func renderBudget(set *itinerary.Set, width int, conv *currency.Converter, cur currency.Currency) string {
	b := set.Budget()
	money := func(v float64) string {
		return conv.Convert(v, currency.Base, cur)
	}

	var sections []string

	headline := []string{
		AmountStyle.Render(money(b.Total)) + HelpDescStyle.Render(" total"),
		AmountStyle.Render(money(b.PerPerson)) + HelpDescStyle.Render(" per person"),
		AmountStyle.Render(money(b.PerDay)) + HelpDescStyle.Render(" per day"),
	}
	sections = append(sections, LabelStyle.Render("Budget")+"\n"+strings.Join(headline, "   "))

	if len(b.Breakdown) > 0 {
		rows := []string{LabelStyle.Render("Breakdown")}
		for _, line := range b.Breakdown {
			label := fmt.Sprintf("%-26s", util.TruncateString(line.Category, 26))
			rows = append(rows, NormalRowStyle.Render(label)+" "+
				renderBar(line.Percentage, ColorAccent)+" "+
				HelpDescStyle.Render(fmt.Sprintf("%3d%%", line.Percentage))+"  "+
				AmountStyle.Render(money(line.Amount)))
		}
		sections = append(sections, strings.Join(rows, "\n"))
	}

	sections = append(sections,
		renderField("Sum of daily estimates", money(set.TotalCost()))+"\n"+
			renderField("Exchange rate", exchangeRate(conv.Rates())))

	if stays := renderStays(set, conv, cur); stays != "" {
		sections = append(sections, stays)
	}

	if len(b.Paid) > 0 || len(b.Unpaid) > 0 {
		progress := LabelStyle.Render("Payments") + "\n" +
			renderBar(b.PaidPercentage, ColorGreen) + " " +
			HelpDescStyle.Render(fmt.Sprintf("%d%% paid", b.PaidPercentage)) + "\n" +
			lipgloss.NewStyle().Foreground(ColorGreen).Render("Paid: "+money(b.PaidTotal)) + "   " +
			lipgloss.NewStyle().Foreground(ColorYellow).Render("Remaining: "+money(b.UnpaidTotal))
		sections = append(sections, progress)
		sections = append(sections, renderPayments("Paid items", "✓", ColorGreen, b.Paid, width, money))
		sections = append(sections, renderPayments("Pending payments", "…", ColorYellow, b.Unpaid, width, money))
	}

	return PanelStyle.Width(width - 2).Render(strings.Join(sections, "\n\n"))
}

// exchangeRate shows both directions of the rate table, e.g. "¥1 = ₹0.56 · ₹1 = ¥1.79".
func exchangeRate(r currency.Rates) string {
	pair := func(from, to currency.Currency) string {
		return fmt.Sprintf("%s1 = %s%g", from.Symbol(), to.Symbol(), r.Rate(from, to))
	}
	return pair(currency.JPY, currency.INR) + " · " + pair(currency.INR, currency.JPY)
}

func renderStays(set *itinerary.Set, conv *currency.Converter, cur currency.Currency) string {
	var rows []string
	for _, d := range set.Days() {
		acc := d.Accommodation
		if acc == nil {
			continue
		}
		rows = append(rows, fmt.Sprintf("%s  %s  %s  %s",
			NormalRowStyle.Render(fmt.Sprintf("%-10s", d.Area)),
			HelpDescStyle.Render(fmt.Sprintf("%-9s", util.FormatNights(acc.Nights))),
			AmountStyle.Render(conv.Convert(acc.Price, currency.Base, cur)),
			lipgloss.NewStyle().Foreground(ColorYellow).Render(util.FormatRatingWithStar(acc.Rating))+
				HelpDescStyle.Render(" "+acc.Name)))
	}
	if len(rows) == 0 {
		return ""
	}
	return LabelStyle.Render("Accommodation") + "\n" + strings.Join(rows, "\n")
}

func renderPayments(title, mark string, color lipgloss.Color, items []model.PaymentItem, width int, money func(float64) string) string {
	if len(items) == 0 {
		return ""
	}
	markStyle := lipgloss.NewStyle().Foreground(color)
	rows := []string{LabelStyle.Render(title)}
	for _, item := range items {
		left := markStyle.Render(mark) + " " + NormalRowStyle.Render(item.Name) + HelpDescStyle.Render("  "+item.Status)
		rows = append(rows, spread(left, AmountStyle.Render(money(item.Amount)), width-8))
	}
	return strings.Join(rows, "\n")
}

func renderBar(percentage int, color lipgloss.Color) string {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	filled := percentage * barWidth / 100
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(ColorSurface).Render(strings.Repeat("░", barWidth-filled))
}
