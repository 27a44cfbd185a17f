package status

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/landing/internal/tui/theme"
)

const statusDot = "●"

type Phase uint8

const (
	Idle Phase = iota
	Sending
	Sent
	Failed
)

// Indicator shows the outcome of the last subscribe attempt.
type Indicator struct {
	Phase   Phase
	Message string
}

func (i Indicator) Render() string {
	switch i.Phase {
	case Sending:
		return lipgloss.NewStyle().
			Foreground(theme.ColorBgLight).
			Render(statusDot + " sending...")
	case Sent:
		return lipgloss.NewStyle().
			Foreground(theme.ColorSuccess).
			Render(statusDot + " " + i.text("subscribed"))
	case Failed:
		return lipgloss.NewStyle().
			Foreground(theme.ColorError).
			Render(statusDot + " " + i.text("failed"))
	default:
		return ""
	}
}

func (i Indicator) text(fallback string) string {
	if i.Message != "" {
		return i.Message
	}
	return fallback
}
