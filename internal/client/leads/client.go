package leads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/garrettladley/landing/internal/service/lead"
	"github.com/garrettladley/landing/internal/xhttp"
)

const (
	subscribePath  = "/api/subscribe"
	defaultTimeout = 10 * time.Second
)

var (
	ErrRateLimited     = errors.New("too many requests")
	ErrUpgradeRequired = errors.New("client version too old")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	sessionID  string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) { client.httpClient = c }
}

func WithSessionID(id string) Option {
	return func(client *Client) { client.sessionID = id }
}

// NewClient talks to the lead server at baseURL. Every request from one
// Client carries the same session id.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: xhttp.NewHTTPClient(xhttp.WithTimeout(defaultTimeout)),
		baseURL:    strings.TrimRight(baseURL, "/"),
		sessionID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) SessionID() string { return c.sessionID }

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int               `json:"-"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"`
	MinVersion string            `json:"min_version,omitempty"`
	RetryAfter time.Duration     `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return e.Message
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrUpgradeRequired:
		return e.StatusCode == http.StatusUpgradeRequired
	}
	return false
}

// Subscribe posts req to the server. Duplicates succeed.
func (c *Client) Subscribe(ctx context.Context, req lead.SubscribeRequest) error {
	body, err := go_json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+subscribePath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set(xhttp.ContentType, xhttp.ApplicationJSON)
	httpReq.Header.Set(xhttp.Accept, xhttp.ApplicationJSON)
	xhttp.SetRequestHeaderSessionID(httpReq, c.sessionID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return decodeError(resp)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	// a body that is not JSON still yields an APIError with the status
	_ = go_json.NewDecoder(resp.Body).Decode(apiErr)

	if secs, err := strconv.Atoi(resp.Header.Get(xhttp.RetryAfter)); err == nil && secs > 0 {
		apiErr.RetryAfter = time.Duration(secs) * time.Second
	}
	return apiErr
}
