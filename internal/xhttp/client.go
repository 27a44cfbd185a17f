package xhttp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/garrettladley/landing/internal/version"
)

type clientConfig struct {
	timeout time.Duration
	base    http.RoundTripper
}

type ClientOption func(*clientConfig)

func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) { c.timeout = d }
}

// WithBaseTransport replaces http.DefaultTransport underneath the version
// stamping transport.
func WithBaseTransport(rt http.RoundTripper) ClientOption {
	return func(c *clientConfig) { c.base = rt }
}

// NewHTTPClient returns a client whose requests carry the landing user agent
// and client version header.
func NewHTTPClient(opts ...ClientOption) *http.Client {
	cfg := clientConfig{base: http.DefaultTransport}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &http.Client{
		Timeout:   cfg.timeout,
		Transport: &versionTransport{base: cfg.base},
	}
}

type versionTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*versionTransport)(nil)

func (t *versionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(UserAgent, "landing/"+version.Get())
	req.Header.Set(version.Header, version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}
