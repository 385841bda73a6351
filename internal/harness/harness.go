// Package harness drives the four rotation fixtures from a single
// periodic ticker. Rotation starts, animation advancement, completion
// callbacks, and drift checks all run on one goroutine, so the fixtures
// need no locking.
package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/sjrankin/RotationTest/internal/drift"
	"github.com/sjrankin/RotationTest/internal/scene"
	"github.com/sjrankin/RotationTest/internal/strategy"
)

// frameInterval is how often in-flight animations advance and the render
// callback fires.
const frameInterval = 50 * time.Millisecond

// Config controls one harness run.
type Config struct {
	Interval   time.Duration      // time between rotation starts
	Duration   time.Duration      // length of each rotation animation
	Threshold  float64            // drift tolerance in degrees
	ResetAfter int                // rebuild count for the reset fixture; 0 disables rebuilding
	Direction  strategy.Direction // spin direction for all fixtures
	Steps      int                // stop after this many rotations per fixture; 0 runs until cancelled
}

// Validate checks the configuration for values the run loop cannot work
// with.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.Duration >= c.Interval {
		return fmt.Errorf("animation duration %v must be shorter than the interval %v", c.Duration, c.Interval)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %v", c.Threshold)
	}
	if c.ResetAfter < 0 {
		return fmt.Errorf("reset count cannot be negative, got %d", c.ResetAfter)
	}
	return nil
}

// Harness owns the four fixtures and their animators.
type Harness struct {
	cfg      Config
	fixtures []*strategy.Fixture
	anims    []scene.Animator
	onReport func(drift.Report)
	started  int
}

// New builds a harness with the standard four fixtures: relative,
// absolute, table, and relative-with-reset. onReport is invoked after
// every completed rotation, on the run loop's goroutine; it may be nil.
func New(cfg Config, onReport func(drift.Report)) *Harness {
	fixtures := []*strategy.Fixture{
		strategy.NewFixture(strategy.Relative{Dir: cfg.Direction}, cfg.Threshold, 0),
		strategy.NewFixture(strategy.Absolute{Dir: cfg.Direction}, cfg.Threshold, 0),
		strategy.NewFixture(strategy.Table{Dir: cfg.Direction}, cfg.Threshold, 0),
		strategy.NewFixture(strategy.Reset{Dir: cfg.Direction}, cfg.Threshold, cfg.ResetAfter),
	}
	return &Harness{
		cfg:      cfg,
		fixtures: fixtures,
		anims:    make([]scene.Animator, len(fixtures)),
		onReport: onReport,
	}
}

// Fixtures exposes the fixtures for rendering. Index order matches the
// viewport order: relative, absolute, table, reset.
func (h *Harness) Fixtures() []*strategy.Fixture {
	return h.fixtures
}

// Tick starts one 90-degree rotation on every fixture, in order. Each
// fixture's completion callback fires from Advance once its animation has
// run for the configured duration.
func (h *Harness) Tick() {
	if h.cfg.Steps > 0 && h.started >= h.cfg.Steps {
		return
	}
	h.started++
	for i, f := range h.fixtures {
		f := f
		target := f.Begin()
		h.anims[i].Start(f.Node, target, h.cfg.Duration, func() {
			rep := f.Complete()
			if h.onReport != nil {
				h.onReport(rep)
			}
		})
	}
}

// Advance moves all in-flight animations forward by dt, firing completion
// callbacks for any that finish.
func (h *Harness) Advance(dt time.Duration) {
	for i := range h.anims {
		h.anims[i].Advance(dt)
	}
}

// Done reports whether a bounded run has started and completed all of its
// rotations.
func (h *Harness) Done() bool {
	if h.cfg.Steps <= 0 {
		return false
	}
	if h.started < h.cfg.Steps {
		return false
	}
	for i := range h.anims {
		if h.anims[i].Active() {
			return false
		}
	}
	return true
}

// Run executes the periodic loop until the context is cancelled or a
// bounded run finishes. render, if non-nil, is called after every
// animation frame and may repaint the viewports; it runs on the loop's
// goroutine like everything else.
func (h *Harness) Run(ctx context.Context, render func()) error {
	if err := h.cfg.Validate(); err != nil {
		return err
	}

	ticker := time.NewTicker(h.cfg.Interval)
	defer ticker.Stop()
	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	// First rotation starts immediately rather than one interval in.
	h.Tick()
	if render != nil {
		render()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			h.Tick()
		case <-frames.C:
			h.Advance(frameInterval)
			if render != nil {
				render()
			}
			if h.Done() {
				return nil
			}
		}
	}
}
