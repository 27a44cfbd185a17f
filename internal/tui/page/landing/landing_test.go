package landing

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/landing/internal/client/leads"
	"github.com/garrettladley/landing/internal/content"
	"github.com/garrettladley/landing/internal/countup"
	"github.com/garrettladley/landing/internal/service/lead"
	"github.com/garrettladley/landing/internal/tui/components/status"
)

const testContent = `
headline: Numbers
tagline: They count.
stats:
  - label: USERS
    value: 1200
    duration: 0s
  - label: UPTIME
    value: 99.5
    decimals: 1
    suffix: "%"
    duration: 0s
subscribe:
  heading: Stay in the loop
  prompt: Pick a list.
`

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type fakeSubscriber struct {
	mu   sync.Mutex
	reqs []lead.SubscribeRequest
	err  error
}

func (f *fakeSubscriber) Subscribe(_ context.Context, req lead.SubscribeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.err
}

func newTestState(t *testing.T, doc string, opts ...Option) *State {
	t.Helper()
	c, err := content.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	clock := &fixedClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithCounterOptions(countup.WithClock(clock))}, opts...)
	return New(c, opts...)
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, drain(c)...)
	}
	return msgs
}

func states(s *State) []countup.State {
	out := make([]countup.State, 0, len(s.Counters()))
	for _, c := range s.Counters() {
		out = append(out, c.State())
	}
	return out
}

func key(text string) tea.KeyPressMsg {
	r := []rune(text)[0]
	return tea.KeyPressMsg{Code: r, Text: text}
}

func TestStatsWaitUntilScrolledIntoView(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testContent)
	s.Resize(80, 20)
	cmd, err := s.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if cmd != nil {
		t.Error("Start() returned frames while every stat is below the fold")
	}
	if diff := cmp.Diff([]countup.State{countup.StateWaiting, countup.StateWaiting}, states(s)); diff != "" {
		t.Errorf("states after Start (-want +got):\n%s", diff)
	}

	cmd = s.ScrollTo(s.MaxScroll())
	if cmd == nil {
		t.Fatal("ScrollTo() returned no frames after revealing the stats")
	}
	if diff := cmp.Diff([]countup.State{countup.StateRunning, countup.StateRunning}, states(s)); diff != "" {
		t.Errorf("states after scrolling (-want +got):\n%s", diff)
	}

	for _, msg := range drain(cmd) {
		s.Update(msg)
	}
	if got := s.Completed(); got != 2 {
		t.Errorf("Completed() = %d, want 2", got)
	}
	for i, want := range []string{"1,200", "99.5%"} {
		if got := s.Counters()[i].Text(); got != want {
			t.Errorf("counter %d text = %q, want %q", i, got, want)
		}
	}
}

func TestStatsWithoutTriggerStartImmediately(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(testContent, "    duration: 0s\n", "    duration: 0s\n    trigger_on_visible: false\n", 1)
	s := newTestState(t, doc)
	s.Resize(80, 20)
	cmd, err := s.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if cmd == nil {
		t.Fatal("Start() returned no frames for an untriggered stat")
	}
	if diff := cmp.Diff([]countup.State{countup.StateRunning, countup.StateWaiting}, states(s)); diff != "" {
		t.Errorf("states (-want +got):\n%s", diff)
	}
}

func TestStartBeforeResizeWaitsForLayout(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testContent)
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if diff := cmp.Diff([]countup.State{countup.StateWaiting, countup.StateWaiting}, states(s)); diff != "" {
		t.Errorf("states before layout (-want +got):\n%s", diff)
	}

	if cmd := s.Resize(80, 20); cmd != nil {
		t.Error("Resize() returned frames while the stats are below the fold")
	}
	if cmd := s.ScrollTo(s.MaxScroll()); cmd == nil {
		t.Error("ScrollTo() returned no frames after revealing the stats")
	}

	if cmd, err := s.Start(); cmd != nil || err != nil {
		t.Errorf("second Start() = (%v, %v), want (nil, nil)", cmd, err)
	}
	if got := len(s.Counters()); got != 2 {
		t.Errorf("counters = %d, want 2", got)
	}
}

func TestDestroy(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testContent)
	s.Resize(80, 200)
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	counters := s.Counters()
	s.Destroy()
	for i, c := range counters {
		if c.State() != countup.StateDestroyed {
			t.Errorf("counter %d state = %v, want destroyed", i, c.State())
		}
	}
	if len(s.Counters()) != 0 {
		t.Error("Counters() not empty after Destroy")
	}
	s.Destroy()
}

func TestScrollClamps(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testContent)
	s.Resize(80, 20)

	s.ScrollBy(-5)
	if s.Scroll() != 0 {
		t.Errorf("Scroll() = %d, want 0", s.Scroll())
	}
	s.ScrollTo(10_000)
	if s.Scroll() != s.MaxScroll() {
		t.Errorf("Scroll() = %d, want %d", s.Scroll(), s.MaxScroll())
	}
	if got := len(strings.Split(s.View(), "\n")); got != 20 {
		t.Errorf("View() has %d rows, want 20", got)
	}
}

func TestPageKeys(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testContent)
	s.Resize(80, 20)

	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyDown})
	s.HandleKey(key("j"))
	if s.Scroll() != 2 {
		t.Errorf("Scroll() after down, j = %d, want 2", s.Scroll())
	}
	s.HandleKey(key("k"))
	if s.Scroll() != 1 {
		t.Errorf("Scroll() after k = %d, want 1", s.Scroll())
	}
	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyEnd})
	if s.Scroll() != s.MaxScroll() {
		t.Errorf("Scroll() after end = %d, want %d", s.Scroll(), s.MaxScroll())
	}
	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyHome})
	if s.Scroll() != 0 {
		t.Errorf("Scroll() after home = %d, want 0", s.Scroll())
	}

	if _, quit := s.HandleKey(key("q")); !quit {
		t.Error("q did not quit from the page")
	}

	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.Focus != FocusEmail || !s.Email.Focused() {
		t.Fatal("tab did not focus the email field")
	}
	if s.Scroll() != s.MaxScroll() {
		t.Errorf("focusing the field should scroll to the form, Scroll() = %d", s.Scroll())
	}

	if _, quit := s.HandleKey(key("q")); quit {
		t.Error("q quit while typing an address")
	}
	if got := s.Email.Value(); got != "q" {
		t.Errorf("Email = %q, want %q", got, "q")
	}

	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.Focus != FocusPage || s.Email.Focused() {
		t.Error("esc did not return focus to the page")
	}
}

func TestEmailFocusKeys(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testContent)
	s.Resize(80, 20)
	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Paste(tea.PasteMsg{Content: "ada@example.com"})

	// home moves the cursor, so the next rune lands in front
	bottom := s.Scroll()
	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyHome})
	if s.Scroll() != bottom {
		t.Errorf("home scrolled the page to %d while typing", s.Scroll())
	}
	s.HandleKey(key("x"))
	if got := s.Email.Value(); got != "xada@example.com" {
		t.Errorf("Email = %q, want %q", got, "xada@example.com")
	}

	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.Scroll() != bottom-1 {
		t.Errorf("Scroll() after up = %d, want %d", s.Scroll(), bottom-1)
	}

	s.HandleKey(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyEnd})
	s.HandleKey(tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl})
	if got := s.Email.Value(); got != "" {
		t.Errorf("Email after ctrl+u = %q, want empty", got)
	}
}

func TestSubscribeFlow(t *testing.T) {
	t.Parallel()

	sub := &fakeSubscriber{}
	s := newTestState(t, testContent, WithSubscriber(sub))
	s.Resize(80, 20)
	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyTab})

	for _, r := range "ada@" {
		s.HandleKey(key(string(r)))
	}
	s.Paste(tea.PasteMsg{Content: "example.com"})
	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.Kind != lead.KindHelper {
		t.Errorf("Kind = %v, want HELPER", s.Kind)
	}

	cmd, _ := s.HandleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	if s.Status.Phase != status.Sending {
		t.Errorf("Phase = %v, want Sending", s.Status.Phase)
	}
	if again, _ := s.HandleKey(tea.KeyPressMsg{Code: tea.KeyEnter}); again != nil {
		t.Error("enter while sending returned another command")
	}

	msg, ok := cmd().(SubscribedMsg)
	if !ok {
		t.Fatalf("command produced %T, want SubscribedMsg", msg)
	}
	s.HandleSubscribed(msg)

	want := []lead.SubscribeRequest{{Email: "ada@example.com", Kind: lead.KindHelper}}
	if diff := cmp.Diff(want, sub.reqs); diff != "" {
		t.Errorf("requests (-want +got):\n%s", diff)
	}
	if s.Status.Phase != status.Sent {
		t.Errorf("Phase = %v, want Sent", s.Status.Phase)
	}
	if s.Email.Value() != "" {
		t.Errorf("Email = %q, want cleared", s.Email.Value())
	}

	s.HandleKey(key("x"))
	if s.Status.Phase != status.Idle {
		t.Errorf("editing after a result should reset the status, Phase = %v", s.Status.Phase)
	}
}

func TestSubmitValidatesLocally(t *testing.T) {
	t.Parallel()

	sub := &fakeSubscriber{}
	s := newTestState(t, testContent, WithSubscriber(sub))
	s.Resize(80, 20)
	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Paste(tea.PasteMsg{Content: "not-an-email"})

	if cmd, _ := s.HandleKey(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("enter with an invalid address returned a command")
	}
	want := status.Indicator{Phase: status.Failed, Message: "email address is not valid"}
	if diff := cmp.Diff(want, s.Status); diff != "" {
		t.Errorf("Status (-want +got):\n%s", diff)
	}
	if len(sub.reqs) != 0 {
		t.Errorf("requests = %d, want 0", len(sub.reqs))
	}
}

func TestSubmitWithoutSubscriber(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testContent)
	s.Resize(80, 20)
	s.HandleKey(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Paste(tea.PasteMsg{Content: "ada@example.com"})

	if cmd, _ := s.HandleKey(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("enter without a subscriber returned a command")
	}
	if s.Status.Phase != status.Failed || s.Status.Message != msgUnavailable {
		t.Errorf("Status = %+v, want unavailable failure", s.Status)
	}
}

func TestHandleSubscribedErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "rate limited",
			err:  &leads.APIError{StatusCode: http.StatusTooManyRequests, Message: "rate limit exceeded", RetryAfter: 3 * time.Second},
			want: "too many requests, try again in 3s",
		},
		{
			name: "rate limited without retry",
			err:  &leads.APIError{StatusCode: http.StatusTooManyRequests},
			want: "too many requests, try again shortly",
		},
		{
			name: "upgrade required",
			err:  &leads.APIError{StatusCode: http.StatusUpgradeRequired},
			want: msgOutdated,
		},
		{
			name: "field errors",
			err: &leads.APIError{
				StatusCode: http.StatusBadRequest,
				Message:    "validation failed",
				Fields:     map[string]string{"kind": "kind must be DOWNLOAD or HELPER", "email": "email address is not valid"},
			},
			want: "email address is not valid",
		},
		{
			name: "server message",
			err:  &leads.APIError{StatusCode: http.StatusInternalServerError, Message: "failed to save"},
			want: "failed to save",
		},
		{
			name: "network",
			err:  errors.New("dial tcp: connection refused"),
			want: msgUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestState(t, testContent)
			s.Email.SetValue("ada@example.com")
			s.HandleSubscribed(SubscribedMsg{Kind: lead.KindDownload, Err: tt.err})

			want := status.Indicator{Phase: status.Failed, Message: tt.want}
			if diff := cmp.Diff(want, s.Status); diff != "" {
				t.Errorf("Status (-want +got):\n%s", diff)
			}
			if s.Email.Value() != "ada@example.com" {
				t.Error("a failed request should keep the address for a retry")
			}
		})
	}
}
