package gauge

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/landing/internal/tui/theme"
)

const (
	// DefaultSize is the ring diameter in braille dots (2 per column, 4 per row).
	DefaultSize = 32

	defaultThickness = 3
	emptyBraille     = '⠀'
)

// Gauge is a progress ring with text in its hollow center and a label below.
type Gauge struct {
	Fill      float64 // fraction of the ring to fill, clamped to [0,1]
	Text      string
	Label     string
	Size      int
	Thickness int
	Color     color.Color // filled portion
	BgColor   color.Color // unfilled portion
	TextColor color.Color
}

type Option func(*Gauge)

func WithBgColor(c color.Color) Option {
	return func(g *Gauge) { g.BgColor = c }
}

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) { g.TextColor = c }
}

// WithSize sets the ring diameter in dots. It is rounded down to a multiple
// of 4 so the ring fills whole terminal rows.
func WithSize(dots int) Option {
	return func(g *Gauge) { g.Size = dots - dots%4 }
}

func New(fill float64, text, label string, c color.Color, opts ...Option) Gauge {
	g := Gauge{
		Fill:      fill,
		Text:      text,
		Label:     label,
		Size:      DefaultSize,
		Thickness: defaultThickness,
		Color:     c,
		BgColor:   theme.ColorBgLight,
		TextColor: theme.ColorWhite,
	}
	for _, opt := range opts {
		opt(&g)
	}
	if g.Size < 8 {
		g.Size = 8
	}
	return g
}

func (g Gauge) Render() string {
	var (
		canvas = drawille.NewCanvas()
		center = g.Size / 2
		radius = g.Size/2 - 1
		fill   = min(max(g.Fill, 0), 1)
	)

	drawArc(&canvas, center, center, radius, g.Thickness, arcStartAngle, arcSweep)
	track := canvasString(&canvas, g.Size)

	canvas.Clear()
	if fill > 0 {
		drawArc(&canvas, center, center, radius, g.Thickness, arcStartAngle, fill*arcSweep)
	}
	filled := canvasString(&canvas, g.Size)

	ring := colorArcs(track, filled, g.BgColor, g.Color)
	width, height := lipgloss.Width(ring), lipgloss.Height(ring)

	text := lipgloss.NewStyle().Foreground(g.TextColor).Bold(true).Render(g.Text)
	ring = overlay(ring, lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text))

	if g.Label == "" {
		return ring
	}
	label := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Width(width).
		Align(lipgloss.Center).
		Render(g.Label)
	return lipgloss.JoinVertical(lipgloss.Center, ring, label)
}

// canvasString renders a square canvas of the given size in dots as exactly
// size/4 rows of size/2 columns.
func canvasString(canvas *drawille.Canvas, size int) string {
	cols, rows := size/2, size/4
	frame := canvas.Rows(0, 0, size, size)

	lines := make([]string, rows)
	for i := range rows {
		var line []rune
		if i < len(frame) {
			line = []rune(frame[i])
		}
		if len(line) > cols {
			line = line[:cols]
		}
		lines[i] = string(line) + strings.Repeat(" ", cols-len(line))
	}
	return strings.Join(lines, "\n")
}

// colorArcs paints the track and the filled arc. Cells where both have dots
// are merged and take the fill color.
func colorArcs(track, filled string, trackColor, fillColor color.Color) string {
	var (
		trackLines  = strings.Split(track, "\n")
		filledLines = strings.Split(filled, "\n")
		trackStyle  = lipgloss.NewStyle().Foreground(trackColor)
		fillStyle   = lipgloss.NewStyle().Foreground(fillColor)
		out         = make([]string, len(trackLines))
	)

	for i, line := range trackLines {
		var fillRunes []rune
		if i < len(filledLines) {
			fillRunes = []rune(filledLines[i])
		}

		var b strings.Builder
		for j, t := range []rune(line) {
			f := ' '
			if j < len(fillRunes) {
				f = fillRunes[j]
			}
			fillHasDots := isBraille(f) && f != emptyBraille

			switch {
			case fillHasDots && isBraille(t):
				b.WriteString(fillStyle.Render(string(emptyBraille + ((t - emptyBraille) | (f - emptyBraille)))))
			case fillHasDots:
				b.WriteString(fillStyle.Render(string(f)))
			case isBraille(t):
				b.WriteString(trackStyle.Render(string(t)))
			default:
				b.WriteByte(' ')
			}
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}

func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// overlay writes the visible span of each foreground line over background,
// keeping the background on either side of it.
func overlay(background, foreground string) string {
	var (
		bgLines = strings.Split(background, "\n")
		fgLines = strings.Split(foreground, "\n")
		out     = make([]string, max(len(bgLines), len(fgLines)))
	)

	for i := range out {
		var bg, fg string
		if i < len(bgLines) {
			bg = bgLines[i]
		}
		if i < len(fgLines) {
			fg = fgLines[i]
		}

		plain := ansi.Strip(fg)
		trimmed := strings.TrimLeft(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			out[i] = bg
			continue
		}
		start := ansi.StringWidth(plain) - ansi.StringWidth(trimmed)
		end := start + ansi.StringWidth(strings.TrimRight(trimmed, " "))

		bgWidth := ansi.StringWidth(bg)
		var b strings.Builder
		b.WriteString(ansi.Cut(bg, 0, min(start, bgWidth)))
		if bgWidth < start {
			b.WriteString(strings.Repeat(" ", start-bgWidth))
		}
		b.WriteString(ansi.Cut(fg, start, end))
		if end < bgWidth {
			b.WriteString(ansi.Cut(bg, end, bgWidth))
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}
