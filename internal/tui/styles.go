package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED")
	successColor = lipgloss.Color("#10B981")
	warningColor = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
	fgColor      = lipgloss.Color("#F9FAFB")
	goldColor    = lipgloss.Color("#FFD37F")
	mintColor    = lipgloss.Color("#90FF9C")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(goldColor).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B6F9D6")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(fgColor).
			Bold(true).
			Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	completedItemStyle = itemStyle.Copy().
				Foreground(mintColor)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	activePanelStyle = panelStyle.Copy().
				BorderForeground(primaryColor)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	infoStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.ThickBorder())
)

// outcomeColor picks the banner color for a round result.
func outcomeColor(outcome string) lipgloss.Color {
	switch outcome {
	case "win":
		return lipgloss.Color("#7EF0A0")
	case "lose":
		return lipgloss.Color("#FF8A8A")
	default:
		return goldColor
	}
}
