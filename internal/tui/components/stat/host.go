package stat

import (
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/landing/internal/countup"
)

const (
	FPS           = 60
	frameInterval = time.Second / FPS
)

// FrameMsg is delivered when a requested frame is due.
type FrameMsg struct {
	ID countup.FrameHandle
	At time.Time
}

// Counter is what the host needs from a mounted element to paint it.
type Counter interface {
	countup.Element
	Value() float64
	Progress() float64
	Config() countup.Config
}

type node struct {
	el     countup.Element
	label  string
	top    int
	height int
}

// Host runs counters inside a Bubble Tea program. It schedules frames as
// tea.Tick commands, reports visibility from the scroll position and keeps
// mounted counters in insertion order.
//
// Host is not safe for concurrent use; call it from Update only.
type Host struct {
	nextFrame countup.FrameHandle
	frames    map[countup.FrameHandle]func(time.Time)
	cmds      []tea.Cmd

	nodes  []*node
	labels map[countup.Element]string
	subs   []*subscription

	grid     Grid
	viewport Viewport
	laidOut  bool
}

var (
	_ countup.FrameScheduler     = (*Host)(nil)
	_ countup.VisibilityObserver = (*Host)(nil)
	_ countup.Container          = (*Host)(nil)
)

func NewHost() *Host {
	return &Host{
		frames: make(map[countup.FrameHandle]func(time.Time)),
		labels: make(map[countup.Element]string),
		grid:   Grid{Columns: 1, RowHeight: 1},
	}
}

// Mount attaches c under label.
func (h *Host) Mount(c *countup.Counter, label string) error {
	h.labels[c] = label
	if err := c.Mount(h); err != nil {
		delete(h.labels, c)
		return err
	}
	return nil
}

func (h *Host) RequestFrame(fn func(now time.Time)) countup.FrameHandle {
	h.nextFrame++
	id := h.nextFrame
	h.frames[id] = fn
	h.cmds = append(h.cmds, tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, At: t}
	}))
	return id
}

func (h *Host) CancelFrame(id countup.FrameHandle) {
	delete(h.frames, id)
}

// Update runs the frame callback for msg, if it is still pending, and
// returns any commands it produced.
func (h *Host) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok {
		return nil
	}
	fn, ok := h.frames[frame.ID]
	if !ok {
		return nil
	}
	delete(h.frames, frame.ID)
	fn(frame.At)
	return h.Flush()
}

// Flush returns the frame commands requested since the last call.
func (h *Host) Flush() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	cmds := h.cmds
	h.cmds = nil
	return tea.Batch(cmds...)
}

// Pending reports the number of frames waiting to run.
func (h *Host) Pending() int {
	return len(h.frames)
}

func (h *Host) Append(el countup.Element) {
	h.nodes = append(h.nodes, &node{el: el, label: h.labels[el]})
	h.place()
}

func (h *Host) Remove(el countup.Element) {
	h.nodes = slices.DeleteFunc(h.nodes, func(n *node) bool { return n.el == el })
	h.subs = slices.DeleteFunc(h.subs, func(s *subscription) bool { return s.el == el })
	delete(h.labels, el)
	h.place()
}

// Len returns the number of mounted elements.
func (h *Host) Len() int {
	return len(h.nodes)
}

// Text returns the current text of the i-th mounted element.
func (h *Host) Text(i int) string {
	return h.nodes[i].el.Text()
}

func (h *Host) find(el countup.Element) *node {
	for _, n := range h.nodes {
		if n.el == el {
			return n
		}
	}
	return nil
}
