package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorPrimary   = lipgloss.Color("#00F19F") // CTA, highlights, primary stat scheme
	ColorSecondary = lipgloss.Color("#0093E7") // secondary stat scheme, links
	ColorMuted     = lipgloss.Color("#7BA1BB") // labels and helper text
	ColorSuccess   = lipgloss.Color("#16EC06")
	ColorWarning   = lipgloss.Color("#FFDE00")
	ColorError     = lipgloss.Color("#FF0026")
)

var (
	ColorBgDark  = lipgloss.Color("#101518") // Darker end of gradient
	ColorBgLight = lipgloss.Color("#283339") // Lighter end of gradient
)
