package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/landing/internal/tui/components/footer"
	"github.com/garrettladley/landing/internal/tui/components/stat"
	"github.com/garrettladley/landing/internal/tui/page/landing"
	"github.com/garrettladley/landing/internal/tui/page/splash"
	"github.com/garrettladley/landing/internal/tui/theme"
	"github.com/garrettladley/landing/internal/version"
	"github.com/garrettladley/landing/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	landingPage
)

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	landing        *landing.State
	notice         string
	deps           Deps
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = xslog.Discard()
	}
	return Model{
		page:  splashPage,
		theme: theme.New(),
		deps:  deps,
		landing: landing.New(
			deps.Content,
			landing.WithContext(deps.Ctx),
			landing.WithLogger(deps.Logger),
			landing.WithSubscriber(deps.Subscriber),
			landing.WithCounterOptions(deps.CounterOptions...),
		),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(splash.Duration, func(time.Time) tea.Msg {
			return splash.TickMsg{}
		}),
		checkReleaseCmd(m.deps.Ctx, m.deps.Releases, m.deps.Repo),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true
		return m, m.landing.Resize(m.viewportWidth, m.bodyHeight())

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		if m.page == splashPage {
			if msg.String() == "q" {
				return m, m.quit()
			}
			// any other key skips the splash
			return m, m.showLanding()
		}
		cmd, quit := m.landing.HandleKey(msg)
		if quit {
			return m, m.quit()
		}
		return m, cmd

	case tea.PasteMsg:
		if m.page == landingPage {
			return m, m.landing.Paste(msg)
		}

	// splash timer expired - transition to the landing page
	case splash.TickMsg:
		if m.page == splashPage {
			return m, m.showLanding()
		}

	case stat.FrameMsg:
		return m, m.landing.Update(msg)

	case landing.SubscribedMsg:
		m.landing.HandleSubscribed(msg)

	case ReleaseMsg:
		if msg.Err != nil {
			m.deps.Logger.DebugContext(m.deps.Ctx, "release check failed", xslog.Error(msg.Err))
			break
		}
		if version.IsNewer(version.Get(), msg.Tag) {
			m.notice = msg.Tag + " available · run landing upgrade"
		}

	default:
		// cursor blinks for the email field
		if m.page == landingPage {
			return m, m.landing.UpdateInput(msg)
		}
	}

	return m, nil
}

func (m *Model) showLanding() tea.Cmd {
	m.page = landingPage
	cmd, err := m.landing.Start()
	if err != nil {
		m.deps.Logger.ErrorContext(m.deps.Ctx, "failed to start stats", xslog.Error(err))
	}
	return cmd
}

// quit stops every running counter before the program exits.
func (m *Model) quit() tea.Cmd {
	m.landing.Destroy()
	return tea.Quit
}

func (m *Model) bodyHeight() int {
	return max(m.viewportHeight-footer.Height, 0)
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses default dark
	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = splash.View(m.theme, m.viewportWidth, m.viewportHeight)
	case landingPage:
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			m.landing.View(),
			footer.New(m.footerHint(), m.viewportWidth).Render(),
		)
	}

	view.SetContent(content)
	return view
}

func (m *Model) footerHint() string {
	if m.notice != "" {
		return lipgloss.NewStyle().Foreground(theme.ColorWarning).Render(m.notice)
	}
	if m.landing.Focus == landing.FocusEmail {
		return m.theme.TextMuted().Render("esc: back to page")
	}
	return m.theme.TextMuted().Render("↑/↓ scroll · tab subscribe · q quit")
}
