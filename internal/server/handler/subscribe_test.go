package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garrettladley/landing/internal/service/lead"
	"github.com/garrettladley/landing/internal/xcontext"
)

type countingService struct {
	calls int
}

func (s *countingService) Subscribe(context.Context, lead.SubscribeRequest) (*lead.SubscribeResult, error) {
	s.calls++
	return &lead.SubscribeResult{Created: true}, nil
}

func TestHandleSubscribeDuringShutdown(t *testing.T) {
	t.Parallel()

	svc := &countingService{}
	h := NewSubscribe(svc)

	ctx := xcontext.SetShutdownInProgress(t.Context(), true)
	req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/api/subscribe", strings.NewReader(`{"email":"a@b.co","kind":"HELPER"}`))
	rec := httptest.NewRecorder()
	h.HandleSubscribe(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if svc.calls != 0 {
		t.Errorf("service called %d times, want 0", svc.calls)
	}
}

func TestHandleSubscribeRejectsOversizedBody(t *testing.T) {
	t.Parallel()

	svc := &countingService{}
	h := NewSubscribe(svc)

	body := `{"email":"` + strings.Repeat("a", maxSubscribeBody) + `@b.co","kind":"HELPER"}`
	req := httptest.NewRequestWithContext(t.Context(), http.MethodPost, "/api/subscribe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleSubscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if svc.calls != 0 {
		t.Errorf("service called %d times, want 0", svc.calls)
	}
}
