// Package countup animates a number from zero to a target value.
//
// A [Counter] owns a [Config] and drives a single sweep: it renders a zero
// snapshot when mounted, waits for its element to become visible (unless
// TriggerOnVisible is false), then recomputes the eased value once per frame
// until progress reaches 1.
//
// The package does no I/O and spawns no goroutines. Frames, visibility and the
// container are provided by the host through [FrameScheduler],
// [VisibilityObserver] and [Container], and every callback is expected to run
// on the host's single event loop.
//
//	cfg := countup.NewConfig(1234.5,
//	    countup.WithDecimals(1),
//	    countup.WithEasing(countup.EaseOutExpo),
//	)
//	c := countup.New(cfg, countup.WithScheduler(host), countup.WithObserver(host))
//	if err := c.Mount(host); err != nil {
//	    return err
//	}
//	defer c.Destroy()
package countup
