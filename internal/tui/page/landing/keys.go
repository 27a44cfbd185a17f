package landing

import (
	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/landing/internal/tui/components/status"
)

// HandleKey applies a key press. quit is true when the page asks to exit.
func (s *State) HandleKey(msg tea.KeyPressMsg) (cmd tea.Cmd, quit bool) {
	if s.Focus == FocusEmail {
		return s.emailKey(msg), false
	}

	if cmd, ok := s.scrollKey(msg.String()); ok {
		return cmd, false
	}

	switch msg.String() {
	case "q":
		return nil, true
	case "j":
		return s.ScrollBy(1), false
	case "k":
		return s.ScrollBy(-1), false
	case "g":
		return s.ScrollTo(0), false
	case "G":
		return s.ScrollTo(s.MaxScroll()), false
	case "tab", "s":
		return s.focusEmail(), false
	}
	return nil, false
}

// Paste inserts pasted text into the email field when it has focus.
func (s *State) Paste(msg tea.PasteMsg) tea.Cmd {
	if s.Focus != FocusEmail {
		return nil
	}
	return s.editEmail(msg)
}

// UpdateInput hands messages the page has no use for, such as cursor
// blinks, to the email field.
func (s *State) UpdateInput(msg tea.Msg) tea.Cmd {
	cmd, _ := s.Email.Update(msg)
	return cmd
}

func (s *State) scrollKey(key string) (tea.Cmd, bool) {
	page := max(s.height-1, 1)
	switch key {
	case "up":
		return s.ScrollBy(-1), true
	case "down":
		return s.ScrollBy(1), true
	case "pgup":
		return s.ScrollBy(-page), true
	case "pgdown":
		return s.ScrollBy(page), true
	case "home":
		return s.ScrollTo(0), true
	case "end":
		return s.ScrollTo(s.MaxScroll()), true
	}
	return nil, false
}

// emailKey routes a key while the field has focus. Vertical scrolling still
// works; home, end and everything else belong to the input.
func (s *State) emailKey(msg tea.KeyPressMsg) tea.Cmd {
	switch k := msg.String(); k {
	case "esc":
		s.Focus = FocusPage
		s.Email.Blur()
		return nil
	case "tab":
		s.Kind = s.Kind.Next()
		return nil
	case "enter":
		return s.submit()
	case "up", "down", "pgup", "pgdown":
		cmd, _ := s.scrollKey(k)
		return cmd
	}
	return s.editEmail(msg)
}

func (s *State) editEmail(msg tea.Msg) tea.Cmd {
	cmd, changed := s.Email.Update(msg)
	if changed {
		s.resetStatus()
	}
	return cmd
}

func (s *State) focusEmail() tea.Cmd {
	s.Focus = FocusEmail
	return tea.Batch(s.Email.Focus(), s.ScrollTo(s.MaxScroll()))
}

// resetStatus clears a finished result once the user edits the address.
func (s *State) resetStatus() {
	if s.Status.Phase == status.Sent || s.Status.Phase == status.Failed {
		s.Status = status.Indicator{}
	}
}
