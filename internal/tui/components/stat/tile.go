package stat

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/garrettladley/landing/internal/countup"
	"github.com/garrettladley/landing/internal/tui/components/gauge"
	"github.com/garrettladley/landing/internal/tui/theme"
)

const (
	TileWidth = 24
	tileGap   = 2

	// rows taken by a tile: a ring plus its label, or a bordered
	// value/label pair; each followed by one blank row.
	ringTileHeight  = gauge.DefaultSize/4 + 2
	plainTileHeight = 5
)

// TileHeight returns the rows one tile occupies.
func TileHeight(rings bool) int {
	if rings {
		return ringTileHeight
	}
	return plainTileHeight
}

// Columns returns how many tiles fit in width.
func Columns(width int) int {
	return max((width+tileGap)/(TileWidth+tileGap), 1)
}

// Palette resolves counter color schemes against a theme.
type Palette struct {
	Theme theme.Theme
}

// Color returns the solid color for cfg. Gradient schemes return the color at
// position t along the gradient.
func (p Palette) Color(cfg countup.Config, t float64) color.Color {
	switch cfg.Scheme {
	case countup.SchemePrimary:
		return p.Theme.Primary()
	case countup.SchemeSecondary:
		return p.Theme.Secondary()
	case countup.SchemeGradient:
		return blend(p.Theme.Primary(), p.Theme.Secondary(), t)
	case countup.SchemeCustom:
		if cfg.CustomColor != "" {
			return lipgloss.Color(cfg.CustomColor)
		}
	}
	return p.Theme.Foreground()
}

// Text renders s in the scheme of cfg. Gradient schemes color each rune.
func (p Palette) Text(cfg countup.Config, s string) string {
	if cfg.Scheme != countup.SchemeGradient {
		return lipgloss.NewStyle().Foreground(p.Color(cfg, 0)).Bold(true).Render(s)
	}

	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		var t float64
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(p.Color(cfg, t)).Bold(true).Render(string(r)))
	}
	return b.String()
}

func blend(from, to color.Color, t float64) color.Color {
	a, okA := colorful.MakeColor(from)
	b, okB := colorful.MakeColor(to)
	if !okA || !okB {
		return from
	}
	return a.BlendLab(b, min(max(t, 0), 1)).Clamped()
}

// Tile renders one counter.
func Tile(p Palette, c Counter, label string, rings bool) string {
	cfg := c.Config()
	text := c.Text()

	if rings {
		fill := c.Progress()
		if cfg.Target != 0 {
			fill = c.Value() / cfg.Target
		}
		g := gauge.New(
			fill,
			text,
			label,
			p.Color(cfg, fill),
			gauge.WithTextColor(p.Theme.Foreground()),
		)
		return lipgloss.NewStyle().Width(TileWidth).Align(lipgloss.Center).Render(g.Render())
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		p.Text(cfg, text),
		p.Theme.TextMuted().Render(label),
	)
	return lipgloss.NewStyle().
		Width(TileWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorBgLight).
		Render(body)
}

// View lays out every mounted counter in rows of Columns(width) tiles.
func (h *Host) View(p Palette, width int, rings bool) string {
	if len(h.nodes) == 0 {
		return ""
	}

	cols := Columns(width)
	gap := strings.Repeat(" ", tileGap)

	var rows []string
	for start := 0; start < len(h.nodes); start += cols {
		end := min(start+cols, len(h.nodes))
		cells := make([]string, 0, 2*(end-start))
		for i, n := range h.nodes[start:end] {
			if i > 0 {
				cells = append(cells, gap)
			}
			c, ok := n.el.(Counter)
			if !ok {
				cells = append(cells, n.el.Text())
				continue
			}
			cells = append(cells, Tile(p, c, n.label, rings))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		rows = append(rows, lipgloss.NewStyle().Height(TileHeight(rings)).Render(row))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, rows...))
}
