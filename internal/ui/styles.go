package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorBase     = lipgloss.Color("#1D221E")
	ColorSurface  = lipgloss.Color("#2A332C")
	ColorMuted    = lipgloss.Color("#7E8C80")
	ColorText     = lipgloss.Color("#D6E0D3")
	ColorAccent   = lipgloss.Color("#8FA082")
	ColorGreen    = lipgloss.Color("#a6e3a1")
	ColorRed      = lipgloss.Color("#f38ba8")
	ColorYellow   = lipgloss.Color("#f9e2af")
	ColorBlue     = lipgloss.Color("#89b4fa")
	ColorPeach    = lipgloss.Color("#fab387")
	ColorLavender = lipgloss.Color("#b4befe")
	ColorTeal     = lipgloss.Color("#94e2d5")
	ColorSlate    = lipgloss.Color("#9aa5b1")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	NormalRowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorBase).
				Background(ColorAccent).
				Bold(false)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 2)

	// Day cards: a collapsed card is a single bordered row, the cursor's
	// card gets the accent border.
	CardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	ActiveCardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorBase).
			Background(ColorAccent).
			Bold(true).
			Padding(0, 1)

	TagStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorSurface).
			Padding(0, 1)

	AmountStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Underline(true)

	NoteStyle = lipgloss.NewStyle().
			Foreground(ColorPeach).
			Italic(true)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BreadcrumbActiveStyle = lipgloss.NewStyle().
				Foreground(ColorAccent)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			Padding(2, 4)
)
