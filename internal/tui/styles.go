package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#0969DA") // blue
	accentColor  = lipgloss.Color("#06B6D4") // cyan
	successColor = lipgloss.Color("#22C55E")
	warningColor = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#EF4444")
	fgColor      = lipgloss.Color("#CDD6F4")
	mutedColor   = lipgloss.Color("#6C7086")
	borderColor  = lipgloss.Color("#45475A")
	selectedBg   = lipgloss.Color("#313244")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(fgColor).
			Background(primaryColor).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	focusedLabelStyle = labelStyle.
				Background(selectedBg)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 2).
			MarginBottom(1)

	airlineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(fgColor)

	idStyle = lipgloss.NewStyle().
		Foreground(mutedColor).
		Border(lipgloss.NormalBorder(), false, true).
		BorderForeground(borderColor).
		Padding(0, 1)

	timeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(fgColor)

	cityStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true)

	priceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	countryStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	codeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(fgColor).
			Background(primaryColor).
			Padding(0, 1)

	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(1, 4).
			Align(lipgloss.Center)

	errorTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 4).
			Align(lipgloss.Center)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(fgColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	noticeStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			MarginTop(1)
)

// badge colours per status category
var (
	scheduledBadge = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	availableBadge = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	limitedBadge   = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	otherBadge     = lipgloss.NewStyle().Foreground(mutedColor).Bold(true)
)
