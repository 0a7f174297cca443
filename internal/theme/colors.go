package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Submission colors
const (
	ColorCreditsLow Color = "214" // Orange - two or fewer credits left
	ColorCreditsOk  Color = "2"   // Green
	ColorCreditsOut Color = "1"   // Red - no credits left
	ColorSuccess    Color = "42"  // Green - confirmations
)

// UI semantic colors
const (
	ColorBorder    Color = "238" // Card borders
	ColorDimmed    Color = "237"
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorLabel     Color = "212" // Pink - variant labels
	ColorSpinner   Color = "205" // Pink
	ColorSubject   Color = "221" // Yellow - email subjects
	ColorTabActive Color = "99"
)
