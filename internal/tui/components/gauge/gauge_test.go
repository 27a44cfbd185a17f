package gauge

import (
	"image/color"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

func TestOverlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		background string
		foreground string
		want       string
	}{
		{
			name:       "centered text",
			background: "AAAAA\nBBBBB\nCCCCC",
			foreground: "     \n  X  \n     ",
			want:       "AAAAA\nBBXBB\nCCCCC",
		},
		{
			name:       "foreground shorter than background",
			background: "AAAAA\nBBBBB\nCCCCC",
			foreground: " XY",
			want:       "AXYAA\nBBBBB\nCCCCC",
		},
		{
			name:       "blank foreground",
			background: "AAAAA\nBBBBB",
			foreground: "     \n     ",
			want:       "AAAAA\nBBBBB",
		},
		{
			name:       "inner spaces kept",
			background: "AAAAAAA",
			foreground: " X Y ",
			want:       "AX YAAA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ansi.Strip(overlay(tt.background, tt.foreground))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("overlay() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColorArcs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		track       string
		filled      string
		wantColors  int
		wantVisible string
	}{
		{"full fill", "⣿⣿⣿", "⣿⣿⣿", 1, "⣿⣿⣿"},
		{"no fill", "⣿⣿⣿", "   ", 1, "⣿⣿⣿"},
		{"partial fill", "⣿⣿⣿", "⣿  ", 2, "⣿⣿⣿"},
		{"empty braille fill", "⣿⣿⣿", "⠀⠀⠀", 1, "⣿⣿⣿"},
		{"merged dots", "⠁ ", "⠈ ", 1, "⠉ "},
	}

	trackColor := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	fillColor := color.RGBA{R: 255, A: 255}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := colorArcs(tt.track, tt.filled, trackColor, fillColor)

			if visible := ansi.Strip(got); visible != tt.wantVisible {
				t.Errorf("visible = %q, want %q", visible, tt.wantVisible)
			}

			codes := make(map[string]bool)
			for _, part := range strings.Split(got, "\x1b[")[1:] {
				if idx := strings.Index(part, "m"); idx > 0 && part[:idx] != "0" && part[:idx] != "" {
					codes[part[:idx]] = true
				}
			}
			if len(codes) != tt.wantColors {
				t.Errorf("distinct colors = %d, want %d (%q)", len(codes), tt.wantColors, got)
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		gauge      Gauge
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "default size with label",
			gauge:      New(0.5, "42%", "UPTIME", color.White),
			wantWidth:  DefaultSize / 2,
			wantHeight: DefaultSize/4 + 1,
		},
		{
			name:       "no label",
			gauge:      New(1, "42%", "", color.White),
			wantWidth:  DefaultSize / 2,
			wantHeight: DefaultSize / 4,
		},
		{
			name:       "size rounded to whole rows",
			gauge:      New(0, "42%", "", color.White, WithSize(27)),
			wantWidth:  12,
			wantHeight: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.gauge.Render()
			if w := lipgloss.Width(got); w != tt.wantWidth {
				t.Errorf("width = %d, want %d", w, tt.wantWidth)
			}
			if h := lipgloss.Height(got); h != tt.wantHeight {
				t.Errorf("height = %d, want %d", h, tt.wantHeight)
			}
			if !strings.Contains(ansi.Strip(got), "42%") {
				t.Errorf("render does not contain center text:\n%s", ansi.Strip(got))
			}
		})
	}
}

func TestRenderFillChangesColors(t *testing.T) {
	t.Parallel()

	empty := New(0, "0", "", color.White).Render()
	full := New(1, "0", "", color.White).Render()
	if empty == full {
		t.Error("empty and full rings rendered identically")
	}
	if ansi.Strip(empty) != ansi.Strip(full) {
		t.Error("fill changed the ring shape, want only colors to change")
	}
}
