package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/garrettladley/landing/internal/countup"
)

//go:embed default.yaml
var defaultDocument []byte

var ErrNoStats = errors.New("content has no stats")

type Content struct {
	Title     string    `yaml:"title"`
	Headline  string    `yaml:"headline"`
	Tagline   string    `yaml:"tagline"`
	Rings     bool      `yaml:"rings"`
	Stats     []Stat    `yaml:"stats"`
	Subscribe Subscribe `yaml:"subscribe"`
}

type Subscribe struct {
	Heading string `yaml:"heading"`
	Prompt  string `yaml:"prompt"`
}

// Stat is one animated figure. Duration and TriggerOnVisible are pointers so
// that an explicit zero or false survives default filling.
type Stat struct {
	Label            string         `yaml:"label"`
	Value            float64        `yaml:"value"`
	Decimals         int            `yaml:"decimals"`
	Prefix           string         `yaml:"prefix"`
	Suffix           string         `yaml:"suffix"`
	Separator        string         `yaml:"separator"`
	Duration         *time.Duration `yaml:"duration"`
	Easing           string         `yaml:"easing"`
	Style            string         `yaml:"style"`
	Scheme           string         `yaml:"scheme"`
	CustomColor      string         `yaml:"custom_color"`
	TriggerOnVisible *bool          `yaml:"trigger_on_visible"`
}

// Load reads content from path, or the embedded default when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Parse(defaultDocument)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if len(c.Stats) == 0 {
		return nil, ErrNoStats
	}
	for i, s := range c.Stats {
		if s.Label == "" {
			return nil, fmt.Errorf("stat %d: missing label", i)
		}
	}

	if c.Title == "" {
		c.Title = "landing"
	}
	if c.Subscribe.Heading == "" {
		c.Subscribe.Heading = "Subscribe"
	}
	for i := range c.Stats {
		if c.Stats[i].Separator == "" {
			c.Stats[i].Separator = countup.DefaultSeparator
		}
	}
	return &c, nil
}

// Config builds the counter configuration for s. opts are applied last.
func (s Stat) Config(opts ...countup.Option) countup.Config {
	base := []countup.Option{
		countup.WithDecimals(s.Decimals),
		countup.WithPrefix(s.Prefix),
		countup.WithSuffix(s.Suffix),
		countup.WithSeparator(s.Separator),
		countup.WithStyle(countup.ParseAnimationStyle(s.Style)),
		countup.WithColor(countup.ParseColorScheme(s.Scheme), s.CustomColor),
	}
	if s.Duration != nil {
		base = append(base, countup.WithDuration(*s.Duration))
	}
	if s.Easing != "" {
		base = append(base, countup.WithEasing(countup.ParseEasing(s.Easing)))
	}
	if s.TriggerOnVisible != nil {
		base = append(base, countup.WithTriggerOnVisible(*s.TriggerOnVisible))
	}
	return countup.NewConfig(s.Value, append(base, opts...)...)
}
