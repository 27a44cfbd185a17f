package github

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLatestRelease(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/garrettladley/landing/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v1.2.0","html_url":"https://example.com/v1.2.0","draft":false}`))
		case "/repos/garrettladley/empty/releases/latest":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient(WithBaseURL(srv.URL))

	got, err := c.LatestRelease(t.Context(), Repo{Owner: "garrettladley", Name: "landing"})
	if err != nil {
		t.Fatalf("LatestRelease() error = %v", err)
	}
	want := &Release{TagName: "v1.2.0", HTMLURL: "https://example.com/v1.2.0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LatestRelease() mismatch (-want +got):\n%s", diff)
	}

	if _, err := c.LatestRelease(t.Context(), Repo{Owner: "garrettladley", Name: "empty"}); !errors.Is(err, ErrNoRelease) {
		t.Errorf("LatestRelease() error = %v, want ErrNoRelease", err)
	}

	if _, err := c.LatestRelease(t.Context(), Repo{Owner: "garrettladley", Name: "broken"}); err == nil {
		t.Error("LatestRelease() should fail on a 500")
	}
}
