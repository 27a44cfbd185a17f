package footer

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		right string
		width int
		fits  bool
	}{
		{"empty right", "", 60, true},
		{"hint", "tab: subscribe · q: quit", 60, true},
		{"narrow", "tab: subscribe · q: quit", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := New(tt.right, tt.width).Render()
			if h := lipgloss.Height(got); h != Height {
				t.Errorf("height = %d, want %d", h, Height)
			}
			first := ansi.Strip(strings.Split(got, "\n")[0])
			if !strings.HasSuffix(strings.TrimRight(first, " "), tt.right) {
				t.Errorf("first line %q does not end with %q", first, tt.right)
			}
			if w := lipgloss.Width(first); tt.fits && w != tt.width {
				t.Errorf("width = %d, want %d", w, tt.width)
			}
		})
	}
}
