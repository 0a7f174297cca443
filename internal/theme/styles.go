package theme

import "github.com/charmbracelet/lipgloss"

// Common UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Results styles
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Background(ColorTabActive).
			Padding(0, 2)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Padding(0, 2)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorLabel)

	SubjectStyle = lipgloss.NewStyle().
			Foreground(ColorSubject).
			Italic(true)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// SuccessStyle renders transient confirmations such as "Copied!"
var SuccessStyle = lipgloss.NewStyle().
	Foreground(ColorSuccess).
	Bold(true)

// DimmedStyle renders content behind the loading overlay
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorDimmed)

// CreditsStyle returns the header style for the given remaining credits.
func CreditsStyle(remaining int) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch {
	case remaining <= 0:
		return style.Foreground(ColorCreditsOut)
	case remaining <= 2:
		return style.Foreground(ColorCreditsLow)
	default:
		return style.Foreground(ColorCreditsOk)
	}
}
