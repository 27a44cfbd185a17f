package landing

import (
	"context"
	"errors"
	"fmt"
	"math"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/landing/internal/client/leads"
	"github.com/garrettladley/landing/internal/service/lead"
	"github.com/garrettladley/landing/internal/tui/components/status"
	"github.com/garrettladley/landing/internal/xslog"
)

const (
	msgUnavailable = "subscriptions are unavailable offline"
	msgUnreachable = "could not reach the server"
	msgOutdated    = "this client is outdated, run landing upgrade"
)

// SubscribedMsg carries the outcome of a subscribe request.
type SubscribedMsg struct {
	Kind lead.Kind
	Err  error
}

func subscribeCmd(ctx context.Context, sub Subscriber, req lead.SubscribeRequest) tea.Cmd {
	return func() tea.Msg {
		return SubscribedMsg{Kind: req.Kind, Err: sub.Subscribe(ctx, req)}
	}
}

// submit validates the form locally and, when it passes, returns the
// command that sends it. A request already in flight is not repeated.
func (s *State) submit() tea.Cmd {
	if s.Status.Phase == status.Sending {
		return nil
	}

	req := lead.SubscribeRequest{Email: s.Email.Value(), Kind: s.Kind}
	if errs := req.Validate(); len(errs) > 0 {
		s.Status = status.Indicator{Phase: status.Failed, Message: firstFieldError(errs)}
		return nil
	}
	if s.subscriber == nil {
		s.Status = status.Indicator{Phase: status.Failed, Message: msgUnavailable}
		return nil
	}

	s.Status = status.Indicator{Phase: status.Sending}
	return subscribeCmd(s.ctx, s.subscriber, req)
}

// HandleSubscribed records the result of a subscribe request.
func (s *State) HandleSubscribed(msg SubscribedMsg) {
	if msg.Err == nil {
		s.Status = status.Indicator{Phase: status.Sent, Message: fmt.Sprintf("subscribed to %s updates", msg.Kind)}
		s.Email.Reset()
		return
	}

	s.logger.WarnContext(s.ctx, "subscribe failed", xslog.Error(msg.Err), xslog.LeadKind(msg.Kind.String()))
	s.Status = status.Indicator{Phase: status.Failed, Message: describe(msg.Err)}
}

func describe(err error) string {
	var apiErr *leads.APIError
	switch {
	case errors.Is(err, leads.ErrRateLimited):
		if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
			return fmt.Sprintf("too many requests, try again in %ds", int(math.Ceil(apiErr.RetryAfter.Seconds())))
		}
		return "too many requests, try again shortly"
	case errors.Is(err, leads.ErrUpgradeRequired):
		return msgOutdated
	case errors.As(err, &apiErr):
		if len(apiErr.Fields) > 0 {
			return firstFieldError(apiErr.Fields)
		}
		return apiErr.Error()
	default:
		return msgUnreachable
	}
}

// firstFieldError picks the message to show for a field error map, email
// before kind.
func firstFieldError(errs map[string]string) string {
	for _, name := range []string{"email", "kind"} {
		if msg, ok := errs[name]; ok {
			return msg
		}
	}
	for _, msg := range errs {
		return msg
	}
	return ""
}
