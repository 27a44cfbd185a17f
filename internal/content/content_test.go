package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/garrettladley/landing/internal/countup"
)

func TestLoadDefault(t *testing.T) {
	t.Parallel()

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c.Stats) == 0 {
		t.Fatal("default content has no stats")
	}
	for _, s := range c.Stats {
		if s.Label == "" {
			t.Errorf("stat %+v has no label", s)
		}
		cfg := s.Config()
		if !cfg.Easing.Valid() || !cfg.Style.Valid() || !cfg.Scheme.Valid() {
			t.Errorf("stat %q produced invalid config %+v", s.Label, cfg)
		}
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := "headline: hi\nstats:\n  - label: A\n    value: 3\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Headline != "hi" || c.Title != "landing" || c.Subscribe.Heading != "Subscribe" {
		t.Errorf("Load() = %+v, want headline and filled defaults", c)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file returned nil error")
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"no stats", "headline: x\n", ErrNoStats},
		{"missing label", "stats:\n  - value: 1\n", nil},
		{"malformed", "stats: [", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStatConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want countup.Config
	}{
		{
			name: "defaults",
			doc:  "stats:\n  - label: A\n    value: 10\n",
			want: countup.NewConfig(10),
		},
		{
			name: "every field",
			doc: `stats:
  - label: A
    value: 1234.5
    decimals: 1
    prefix: "$"
    suffix: "+"
    separator: "."
    duration: 1500ms
    easing: easeOutExpo
    style: gentle
    scheme: custom
    custom_color: "#123456"
    trigger_on_visible: false
`,
			want: countup.NewConfig(1234.5,
				countup.WithDecimals(1),
				countup.WithPrefix("$"),
				countup.WithSuffix("+"),
				countup.WithSeparator("."),
				countup.WithDuration(1500*time.Millisecond),
				countup.WithEasing(countup.EaseOutExpo),
				countup.WithStyle(countup.StyleGentle),
				countup.WithColor(countup.SchemeCustom, "#123456"),
				countup.WithTriggerOnVisible(false),
			),
		},
		{
			name: "explicit zero duration",
			doc:  "stats:\n  - label: A\n    value: 100\n    duration: 0s\n",
			want: countup.NewConfig(100, countup.WithDuration(0)),
		},
		{
			name: "unknown names fall back",
			doc:  "stats:\n  - label: A\n    value: 1\n    easing: wobble\n    style: jelly\n    scheme: neon\n",
			want: countup.NewConfig(1, countup.WithEasing(countup.EaseOutSlow)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got := c.Stats[0].Config()
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(countup.Config{}, "OnComplete")); diff != "" {
				t.Errorf("Config() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStatConfigOptionsApplyLast(t *testing.T) {
	t.Parallel()

	s := Stat{Label: "A", Value: 5, Duration: new(time.Duration)}
	var called bool
	cfg := s.Config(countup.WithDuration(time.Second), countup.WithOnComplete(func() { called = true }))
	if cfg.Duration != time.Second {
		t.Errorf("Duration = %v, want %v", cfg.Duration, time.Second)
	}
	cfg.OnComplete()
	if !called {
		t.Error("OnComplete was not wired")
	}
}
