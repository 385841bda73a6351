package scene

import "time"

// Animator advances a node's displayed angle toward a target over a fixed
// duration and fires a completion callback exactly once when the target is
// reached. Advance is called from the harness tick loop, so completions
// run on the caller's goroutine.
type Animator struct {
	node     *Node
	from, to float32
	elapsed  time.Duration
	duration time.Duration
	done     func()
	active   bool
}

// Start begins animating node.Display from its current value to the target
// angle. A zero or negative duration completes on the next Advance. Any
// in-flight animation is completed immediately first so its callback is
// never lost.
func (a *Animator) Start(node *Node, target float32, duration time.Duration, done func()) {
	if a.active {
		a.finish()
	}
	a.node = node
	a.from = node.Display
	a.to = target
	a.elapsed = 0
	a.duration = duration
	a.done = done
	a.active = true
}

// Advance moves the animation forward by dt, updating the node's displayed
// angle and invoking the completion callback when the duration elapses.
func (a *Animator) Advance(dt time.Duration) {
	if !a.active {
		return
	}
	a.elapsed += dt
	if a.elapsed >= a.duration {
		a.finish()
		return
	}
	t := float32(a.elapsed) / float32(a.duration)
	a.node.Display = a.from + (a.to-a.from)*t
}

// Active reports whether an animation is in flight.
func (a *Animator) Active() bool {
	return a.active
}

func (a *Animator) finish() {
	a.node.Display = a.to
	a.active = false
	if a.done != nil {
		done := a.done
		a.done = nil
		done()
	}
}
