package countup

import (
	"slices"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeScheduler queues frame requests until the test flushes them.
type fakeScheduler struct {
	clock     *fakeClock
	next      FrameHandle
	pending   map[FrameHandle]func(time.Time)
	requested int
	cancelled int
}

func newFakeScheduler(clock *fakeClock) *fakeScheduler {
	return &fakeScheduler{clock: clock, pending: make(map[FrameHandle]func(time.Time))}
}

func (s *fakeScheduler) RequestFrame(fn func(time.Time)) FrameHandle {
	s.next++
	s.requested++
	s.pending[s.next] = fn
	return s.next
}

func (s *fakeScheduler) CancelFrame(h FrameHandle) {
	if _, ok := s.pending[h]; ok {
		s.cancelled++
	}
	delete(s.pending, h)
}

// tick advances the clock by d and runs every frame pending at that moment.
func (s *fakeScheduler) tick(d time.Duration) int {
	s.clock.Advance(d)
	handles := make([]FrameHandle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	slices.Sort(handles)
	for _, h := range handles {
		fn := s.pending[h]
		delete(s.pending, h)
		fn(s.clock.Now())
	}
	return len(handles)
}

type fakeSubscription struct {
	observer     *fakeObserver
	fn           func(VisibilityEntry)
	unsubscribed int
}

func (s *fakeSubscription) Unsubscribe() {
	s.unsubscribed++
	s.observer.subs = slices.DeleteFunc(s.observer.subs, func(o *fakeSubscription) bool { return o == s })
}

type fakeObserver struct {
	subs      []*fakeSubscription
	all       []*fakeSubscription
	threshold float64
	// immediate, when set, is delivered from inside Observe.
	immediate *VisibilityEntry
}

func (o *fakeObserver) Observe(_ Element, threshold float64, fn func(VisibilityEntry)) Subscription {
	o.threshold = threshold
	sub := &fakeSubscription{observer: o, fn: fn}
	o.subs = append(o.subs, sub)
	o.all = append(o.all, sub)
	if o.immediate != nil {
		fn(*o.immediate)
	}
	return sub
}

func (o *fakeObserver) emit(entry VisibilityEntry) {
	for _, sub := range slices.Clone(o.subs) {
		sub.fn(entry)
	}
}

type fakeContainer struct {
	elements []Element
	appended int
	removed  int
}

func (c *fakeContainer) Append(el Element) {
	c.appended++
	c.elements = append(c.elements, el)
}

func (c *fakeContainer) Remove(el Element) {
	c.removed++
	c.elements = slices.DeleteFunc(c.elements, func(e Element) bool { return e == el })
}
