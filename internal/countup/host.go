package countup

import "time"

// Element is what a Counter attaches to its container. Hosts read Text when
// they paint.
type Element interface {
	Text() string
}

// Container accepts the rendered element on mount and releases it on destroy.
type Container interface {
	Append(el Element)
	Remove(el Element)
}

// FrameHandle identifies a pending frame request. The zero handle means none.
type FrameHandle uint64

// FrameScheduler runs a callback once before the host's next repaint.
// CancelFrame must tolerate handles that already ran or were never issued.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time)) FrameHandle
	CancelFrame(h FrameHandle)
}

// VisibilityEntry reports how much of an observed element is in view.
// Intersecting is true once Ratio has crossed the observed threshold.
type VisibilityEntry struct {
	Intersecting bool
	Ratio        float64
}

// Subscription is an active visibility watch. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

// VisibilityObserver notifies fn whenever el crosses threshold. Observers may
// deliver the first entry synchronously from inside Observe.
type VisibilityObserver interface {
	Observe(el Element, threshold float64, fn func(VisibilityEntry)) Subscription
}
