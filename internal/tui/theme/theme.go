package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	background color.Color
	foreground color.Color
	primary    color.Color
	secondary  color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.primary = ColorPrimary
	t.secondary = ColorSecondary
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) TextAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.foreground)
}

func (t Theme) TextMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

func (t Theme) Highlight() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.primary).Bold(true)
}

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Foreground() color.Color {
	return t.foreground
}

func (t Theme) Primary() color.Color {
	return t.primary
}

func (t Theme) Secondary() color.Color {
	return t.secondary
}
