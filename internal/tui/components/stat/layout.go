package stat

import (
	"slices"

	"github.com/garrettladley/landing/internal/countup"
)

// Grid positions tiles in document rows: tile i sits in row Top +
// (i/Columns)*RowHeight and spans RowHeight rows.
type Grid struct {
	Top       int
	Columns   int
	RowHeight int
}

// Viewport is the visible window of document rows.
type Viewport struct {
	Top    int
	Height int
}

type subscription struct {
	host      *Host
	el        countup.Element
	threshold float64
	fn        func(countup.VisibilityEntry)
	// last is the intersecting state last delivered; nil before the first delivery.
	last *bool
}

func (s *subscription) Unsubscribe() {
	s.host.subs = slices.DeleteFunc(s.host.subs, func(o *subscription) bool { return o == s })
}

// Observe registers fn for el. Once the host has been laid out, the current
// state is delivered immediately; after that fn is called whenever el
// crosses threshold.
func (h *Host) Observe(el countup.Element, threshold float64, fn func(countup.VisibilityEntry)) countup.Subscription {
	s := &subscription{host: h, el: el, threshold: threshold, fn: fn}
	h.subs = append(h.subs, s)
	if h.laidOut {
		h.notify(s)
	}
	return s
}

// SetGrid updates tile placement without notifying observers; call Layout
// afterwards.
func (h *Host) SetGrid(g Grid) {
	g.Columns = max(g.Columns, 1)
	g.RowHeight = max(g.RowHeight, 1)
	h.grid = g
	h.place()
}

// Layout sets the visible window and notifies every observer whose element
// crossed its threshold.
func (h *Host) Layout(viewportTop, viewportHeight int) {
	h.viewport = Viewport{Top: viewportTop, Height: max(viewportHeight, 0)}
	h.laidOut = true

	// callbacks may unsubscribe
	for _, s := range slices.Clone(h.subs) {
		if slices.Contains(h.subs, s) {
			h.notify(s)
		}
	}
}

// Ratio returns the visible fraction of the i-th element.
func (h *Host) Ratio(i int) float64 {
	return h.ratio(h.nodes[i])
}

func (h *Host) place() {
	for i, n := range h.nodes {
		n.top = h.grid.Top + (i/h.grid.Columns)*h.grid.RowHeight
		n.height = h.grid.RowHeight
	}
}

func (h *Host) ratio(n *node) float64 {
	if n.height <= 0 {
		return 0
	}
	top := max(n.top, h.viewport.Top)
	bottom := min(n.top+n.height, h.viewport.Top+h.viewport.Height)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(n.height)
}

func (h *Host) notify(s *subscription) {
	n := h.find(s.el)
	if n == nil {
		return
	}
	ratio := h.ratio(n)
	intersecting := ratio > 0 && ratio >= s.threshold
	if s.last != nil && *s.last == intersecting {
		return
	}
	s.last = &intersecting
	s.fn(countup.VisibilityEntry{Intersecting: intersecting, Ratio: ratio})
}
