//go:build release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/landing/internal/tui/theme"
	"github.com/garrettladley/landing/internal/version"
)

var releaseVersionStyle = lipgloss.NewStyle().Foreground(theme.ColorMuted)

func (f Footer) leftContent() string {
	return releaseVersionStyle.Render("landing " + version.Get())
}
