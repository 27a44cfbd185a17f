package field

import (
	"strings"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/landing/internal/tui/theme"
)

// MaxLen is the longest address the field accepts.
const MaxLen = 254

// Field is the subscribe form's email input: a textinput in a rounded box
// that never accepts whitespace.
type Field struct {
	input textinput.Model
	width int
}

func New(t theme.Theme, placeholder string, width int) Field {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = MaxLen
	in.SetStyles(styles(t))

	f := Field{input: in}
	f.SetWidth(width)
	return f
}

func styles(t theme.Theme) textinput.Styles {
	s := textinput.DefaultStyles(true)
	s.Focused.Text = t.Base()
	s.Focused.Placeholder = t.TextMuted()
	s.Blurred.Text = t.Base()
	s.Blurred.Placeholder = t.TextMuted()
	s.Cursor.Color = theme.ColorPrimary
	return s
}

// SetWidth sets the width of the whole box. The text window leaves room for
// the border, the padding and a cursor past the last rune.
func (f *Field) SetWidth(width int) {
	f.width = width
	f.input.SetWidth(max(width-6, 1))
}

func (f Field) Width() int { return f.width }

// Focus starts the cursor blinking. The returned command drives the blink.
func (f *Field) Focus() tea.Cmd { return f.input.Focus() }

func (f *Field) Blur() { f.input.Blur() }

func (f Field) Focused() bool { return f.input.Focused() }

func (f Field) Value() string { return f.input.Value() }

// SetValue replaces the address and moves the cursor to its end.
func (f *Field) SetValue(s string) {
	f.input.SetValue(clean(s))
	f.input.CursorEnd()
}

func (f *Field) Reset() { f.input.Reset() }

// Update passes msg to the input once any whitespace is stripped from typed
// or pasted text. changed reports whether the value differs afterwards.
func (f *Field) Update(msg tea.Msg) (cmd tea.Cmd, changed bool) {
	switch m := msg.(type) {
	case tea.KeyPressMsg:
		if m.Text != "" {
			if m.Text = clean(m.Text); m.Text == "" {
				return nil, false
			}
			msg = m
		}
	case tea.PasteMsg:
		if m.Content = clean(m.Content); m.Content == "" {
			return nil, false
		}
		msg = m
	}

	before := f.input.Value()
	f.input, cmd = f.input.Update(msg)
	return cmd, f.input.Value() != before
}

// Render draws the input in a rounded box, with a primary border while it
// has focus.
func (f Field) Render() string {
	border := theme.ColorBgLight
	if f.input.Focused() {
		border = theme.ColorPrimary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(f.width).
		Render(f.input.View())
}

func clean(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
}
