package landing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/landing/internal/content"
	"github.com/garrettladley/landing/internal/countup"
	"github.com/garrettladley/landing/internal/service/lead"
	"github.com/garrettladley/landing/internal/tui/components/field"
	"github.com/garrettladley/landing/internal/tui/components/stat"
	"github.com/garrettladley/landing/internal/tui/components/status"
	"github.com/garrettladley/landing/internal/tui/page/splash"
	"github.com/garrettladley/landing/internal/tui/theme"
	"github.com/garrettladley/landing/internal/xslog"
)

const fieldWidth = 40

type Focus uint8

const (
	FocusPage Focus = iota
	FocusEmail
)

// Subscriber sends a subscribe request to the lead server.
type Subscriber interface {
	Subscribe(ctx context.Context, req lead.SubscribeRequest) error
}

// State is the scrollable landing page: a hero, the stat grid and the
// subscribe form, stacked in one document.
type State struct {
	ctx        context.Context
	logger     *slog.Logger
	subscriber Subscriber
	counterOps []countup.CounterOption

	content  *content.Content
	theme    theme.Theme
	host     *stat.Host
	counters []*countup.Counter

	width   int
	height  int
	scroll  int
	started bool

	completed int

	Focus  Focus
	Email  field.Field
	Kind   lead.Kind
	Status status.Indicator
}

type Option func(*State)

func WithContext(ctx context.Context) Option {
	return func(s *State) { s.ctx = ctx }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *State) { s.logger = logger }
}

func WithSubscriber(sub Subscriber) Option {
	return func(s *State) { s.subscriber = sub }
}

// WithCounterOptions is applied to every counter Start creates.
func WithCounterOptions(opts ...countup.CounterOption) Option {
	return func(s *State) { s.counterOps = append(s.counterOps, opts...) }
}

func New(c *content.Content, opts ...Option) *State {
	th := theme.New()
	s := &State{
		ctx:     context.Background(),
		logger:  xslog.Discard(),
		content: c,
		theme:   th,
		host:    stat.NewHost(),
		Email:   field.New(th, "you@example.com", fieldWidth),
		Kind:    lead.KindDownload,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start mounts one counter per stat. Counters that wait for visibility
// begin once a layout shows them.
func (s *State) Start() (tea.Cmd, error) {
	if s.started {
		return nil, nil
	}
	s.started = true

	for _, st := range s.content.Stats {
		label := st.Label
		opts := append([]countup.CounterOption{
			countup.WithScheduler(s.host),
			countup.WithObserver(s.host),
		}, s.counterOps...)
		c := countup.New(st.Config(countup.WithOnComplete(func() { s.onComplete(label) })), opts...)
		if err := s.host.Mount(c, label); err != nil {
			return nil, fmt.Errorf("failed to mount %q: %w", label, err)
		}
		s.counters = append(s.counters, c)
	}

	s.layout()
	return s.host.Flush(), nil
}

// Destroy cancels every counter and detaches it from the page.
func (s *State) Destroy() {
	for _, c := range s.counters {
		c.Destroy()
	}
	s.counters = nil
}

// Update runs pending animation frames.
func (s *State) Update(msg tea.Msg) tea.Cmd {
	return s.host.Update(msg)
}

// Resize sets the body size and re-lays the page out.
func (s *State) Resize(width, height int) tea.Cmd {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.Email.SetWidth(min(fieldWidth, max(s.width-4, 8)))
	s.layout()
	return s.host.Flush()
}

func (s *State) ScrollBy(delta int) tea.Cmd {
	return s.ScrollTo(s.scroll + delta)
}

// ScrollTo moves the viewport so row is the first visible row, clamped to
// the document.
func (s *State) ScrollTo(row int) tea.Cmd {
	s.scroll = row
	s.layout()
	return s.host.Flush()
}

func (s *State) Scroll() int { return s.scroll }

func (s *State) MaxScroll() int {
	return max(lipgloss.Height(s.document())-s.height, 0)
}

// Completed returns how many counters finished their sweep.
func (s *State) Completed() int { return s.completed }

func (s *State) Counters() []*countup.Counter { return s.counters }

func (s *State) layout() {
	if s.width == 0 {
		return
	}
	s.host.SetGrid(stat.Grid{
		Top:       lipgloss.Height(s.hero()),
		Columns:   stat.Columns(s.width),
		RowHeight: stat.TileHeight(s.content.Rings),
	})
	s.scroll = min(max(s.scroll, 0), s.MaxScroll())
	if s.started {
		s.host.Layout(s.scroll, s.height)
	}
}

func (s *State) onComplete(label string) {
	s.completed++
	s.logger.DebugContext(s.ctx, "stat finished", xslog.Label(label))
}

// View renders the visible window of the page, exactly height rows tall.
func (s *State) View() string {
	lines := strings.Split(s.document(), "\n")
	start := min(s.scroll, len(lines))
	end := min(start+s.height, len(lines))

	visible := make([]string, s.height)
	copy(visible, lines[start:end])
	return strings.Join(visible, "\n")
}

func (s *State) document() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.hero(),
		s.host.View(stat.Palette{Theme: s.theme}, s.width, s.content.Rings),
		s.subscribeView(),
	)
}

// hero fills at least one screen so the stats start below the fold.
func (s *State) hero() string {
	t := s.theme
	block := lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		t.Highlight().Render(s.content.Headline),
		t.TextMuted().Render(s.content.Tagline),
		"",
		t.TextMuted().Render("↓"),
	)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, block)
}

func (s *State) subscribeView() string {
	t := s.theme

	kinds := make([]string, 0, len(lead.Kinds))
	for _, k := range lead.Kinds {
		if k == s.Kind {
			kinds = append(kinds, t.Highlight().Render("["+k.String()+"]"))
			continue
		}
		kinds = append(kinds, t.TextMuted().Render(" "+k.String()+" "))
	}

	hint := "tab: enter your email"
	if s.Focus == FocusEmail {
		hint = "tab: switch list · enter: subscribe · esc: back"
	}

	block := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		t.TextAccent().Bold(true).Render(s.content.Subscribe.Heading),
		t.TextMuted().Render(s.content.Subscribe.Prompt),
		"",
		s.Email.Render(),
		strings.Join(kinds, "  "),
		"",
		s.Status.Render(),
		t.TextMuted().Render(hint),
		"",
	)
	return lipgloss.PlaceHorizontal(s.width, lipgloss.Center, block)
}
