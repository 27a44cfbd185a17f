package countup

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrAlreadyMounted = errors.New("counter already mounted")
	ErrDestroyed      = errors.New("counter destroyed")
	ErrNilContainer   = errors.New("nil container")
	ErrNoScheduler    = errors.New("no frame scheduler")
)

// State is the lifecycle position of a Counter.
//
//	Idle ──Mount──► Waiting ──visible──► Running ──progress=1──► Done
//	  │                │                    │
//	  │                └──── TriggerOnVisible=false skips Waiting
//	  │
//	Destroy moves any mounted state to Destroyed.
type State uint8

const (
	StateIdle State = iota
	StateWaiting
	StateRunning
	StateDone
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaiting:
		return "waiting"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Counter is a single count-up widget. It is not safe for concurrent use:
// Mount, Destroy and every scheduler or observer callback must run on the
// same goroutine.
type Counter struct {
	cfg       Config
	curve     func(float64) float64
	scheduler FrameScheduler
	observer  VisibilityObserver
	clock     Clock

	state     State
	container Container
	watch     Subscription
	frame     FrameHandle
	startedAt time.Time
	completed bool

	progress float64
	value    float64
	text     string
}

var _ Element = (*Counter)(nil)

type CounterOption func(*Counter)

func WithScheduler(s FrameScheduler) CounterOption {
	return func(c *Counter) { c.scheduler = s }
}

// WithObserver sets the visibility source. Without one, a counter configured
// with TriggerOnVisible starts as soon as it is mounted.
func WithObserver(o VisibilityObserver) CounterOption {
	return func(c *Counter) { c.observer = o }
}

func WithClock(clock Clock) CounterOption {
	return func(c *Counter) { c.clock = clock }
}

func New(cfg Config, opts ...CounterOption) *Counter {
	cfg = cfg.normalize()
	c := &Counter{
		cfg:   cfg,
		curve: cfg.Curve(),
		clock: SystemClock,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.text = cfg.Format(0)
	return c
}

// Mount attaches the counter to container with a zero snapshot and starts
// the sweep, either immediately or on first visibility.
func (c *Counter) Mount(container Container) error {
	switch c.state {
	case StateIdle:
	case StateDestroyed:
		return ErrDestroyed
	default:
		return ErrAlreadyMounted
	}
	if container == nil {
		return ErrNilContainer
	}
	if c.scheduler == nil {
		return ErrNoScheduler
	}

	c.container = container
	c.render(0, 0)
	container.Append(c)

	if !c.cfg.TriggerOnVisible || c.observer == nil {
		c.begin()
		return nil
	}

	c.state = StateWaiting
	sub := c.observer.Observe(c, VisibilityThreshold, c.onVisibility)
	if c.state != StateWaiting {
		// the observer reported visibility synchronously and the sweep
		// already started (or the callback destroyed us)
		sub.Unsubscribe()
		return nil
	}
	c.watch = sub
	return nil
}

func (c *Counter) onVisibility(entry VisibilityEntry) {
	if c.state != StateWaiting || c.completed || !entry.Intersecting {
		return
	}
	c.begin()
}

func (c *Counter) begin() {
	c.unwatch()
	c.state = StateRunning
	c.startedAt = c.clock.Now()
	c.frame = c.scheduler.RequestFrame(c.step)
}

func (c *Counter) step(now time.Time) {
	if c.state != StateRunning {
		return
	}
	c.frame = 0

	progress := 1.0
	if c.cfg.Duration > 0 {
		elapsed := max(now.Sub(c.startedAt), 0)
		progress = min(float64(elapsed)/float64(c.cfg.Duration), 1)
	}
	c.render(progress, c.curve(progress)*c.cfg.Target)

	if progress < 1 {
		c.frame = c.scheduler.RequestFrame(c.step)
		return
	}

	c.state = StateDone
	c.completed = true
	if c.cfg.OnComplete != nil {
		c.cfg.OnComplete()
	}
}

func (c *Counter) render(progress, value float64) {
	c.progress = progress
	c.value = value
	c.text = c.cfg.Format(value)
}

// Destroy cancels any pending frame, drops the visibility watch and detaches
// the element. It is idempotent and a no-op on a counter that was never
// mounted. OnComplete never fires after Destroy.
func (c *Counter) Destroy() {
	if c.state == StateIdle || c.state == StateDestroyed {
		return
	}
	if c.frame != 0 {
		c.scheduler.CancelFrame(c.frame)
		c.frame = 0
	}
	c.unwatch()
	if c.container != nil {
		c.container.Remove(c)
		c.container = nil
	}
	c.state = StateDestroyed
}

func (c *Counter) unwatch() {
	if c.watch != nil {
		c.watch.Unsubscribe()
		c.watch = nil
	}
}

// Text returns the current formatted snapshot, prefix and suffix included.
func (c *Counter) Text() string { return c.text }

// Value returns the raw eased value of the latest frame.
func (c *Counter) Value() float64 { return c.value }

// Progress returns the un-eased fraction of the sweep in [0,1].
func (c *Counter) Progress() float64 { return c.progress }

func (c *Counter) State() State { return c.state }

func (c *Counter) HasCompleted() bool { return c.completed }

func (c *Counter) Config() Config { return c.cfg }
