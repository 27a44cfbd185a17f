package countup

import "time"

const (
	DefaultDuration  = 4000 * time.Millisecond
	DefaultSeparator = ","

	// VisibilityThreshold is the fraction of the element that must be in view
	// before a visibility-triggered sweep starts.
	VisibilityThreshold = 0.1
)

// Config describes one sweep. Build it with NewConfig to get defaults; a
// Counter copies it at construction, so later changes have no effect on a
// running counter.
type Config struct {
	Target           float64
	Duration         time.Duration
	Decimals         int
	Prefix           string
	Suffix           string
	Easing           Easing
	Separator        string
	TriggerOnVisible bool
	OnComplete       func()

	Style       AnimationStyle
	Scheme      ColorScheme
	CustomColor string
}

type Option func(*Config)

func WithDuration(d time.Duration) Option {
	return func(c *Config) { c.Duration = d }
}

func WithDecimals(n int) Option {
	return func(c *Config) { c.Decimals = n }
}

func WithPrefix(prefix string) Option {
	return func(c *Config) { c.Prefix = prefix }
}

func WithSuffix(suffix string) Option {
	return func(c *Config) { c.Suffix = suffix }
}

func WithEasing(e Easing) Option {
	return func(c *Config) { c.Easing = e }
}

func WithSeparator(sep string) Option {
	return func(c *Config) { c.Separator = sep }
}

func WithTriggerOnVisible(enabled bool) Option {
	return func(c *Config) { c.TriggerOnVisible = enabled }
}

func WithOnComplete(fn func()) Option {
	return func(c *Config) { c.OnComplete = fn }
}

func WithStyle(s AnimationStyle) Option {
	return func(c *Config) { c.Style = s }
}

// WithColor sets the color scheme. custom is only read for SchemeCustom.
func WithColor(scheme ColorScheme, custom string) Option {
	return func(c *Config) {
		c.Scheme = scheme
		c.CustomColor = custom
	}
}

func NewConfig(target float64, opts ...Option) Config {
	c := Config{
		Target:           target,
		Duration:         DefaultDuration,
		Easing:           DefaultEasing,
		Separator:        DefaultSeparator,
		TriggerOnVisible: true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c.normalize()
}

// normalize replaces malformed fields with defaults. It never fails.
func (c Config) normalize() Config {
	if c.Duration < 0 {
		c.Duration = DefaultDuration
	}
	if c.Decimals < 0 {
		c.Decimals = 0
	}
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if !c.Easing.Valid() {
		c.Easing = FallbackEasing
	}
	if !c.Style.Valid() {
		c.Style = StyleDefault
	}
	if !c.Scheme.Valid() {
		c.Scheme = SchemeDefault
	}
	return c
}

// Curve returns the progress curve for the configured style and easing.
func (c Config) Curve() func(float64) float64 {
	return c.Style.Curve(c.Easing)
}

// Format renders v with the configured precision, separator and affixes.
func (c Config) Format(v float64) string {
	return c.Prefix + FormatNumber(v, c.Decimals, c.Separator) + c.Suffix
}
