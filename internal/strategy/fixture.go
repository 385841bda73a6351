package strategy

import (
	"github.com/sjrankin/RotationTest/internal/drift"
	"github.com/sjrankin/RotationTest/internal/scene"
)

// Fixture pairs one strategy with the node it drives and the bookkeeping
// that runs after every completed rotation: the rotation counter, the
// drift check, and the periodic rebuild.
type Fixture struct {
	Strategy Strategy
	Node     *scene.Node

	// Count is the number of completed rotations since the node was last
	// built; Steps counts completed rotations overall.
	Count int
	Steps int

	// ResetAfter rebuilds the node once Count reaches it. Zero disables
	// rebuilding.
	ResetAfter int

	// Threshold is the drift tolerance in degrees.
	Threshold float64

	// Last is the report from the most recent completed rotation.
	Last drift.Report
}

// NewFixture builds a fixture around a fresh copy of the standard demo
// rig.
func NewFixture(s Strategy, threshold float64, resetAfter int) *Fixture {
	return &Fixture{
		Strategy:   s,
		Node:       scene.NewDemoNode(s.Name()),
		ResetAfter: resetAfter,
		Threshold:  threshold,
	}
}

// Begin starts the next rotation and returns the target angle the node is
// heading for.
func (f *Fixture) Begin() float32 {
	return f.Strategy.Step(f.Node, f.Count+1)
}

// Complete records a finished rotation: it increments the counters, reads
// the node's orientation back and checks it for drift, and rebuilds the
// node when the reset count is reached. The counter must reach ResetAfter
// before a rebuild triggers, and returns to zero immediately after.
func (f *Fixture) Complete() drift.Report {
	f.Count++
	f.Steps++

	delta, bad := drift.Check(float64(f.Node.Rotation()), f.Threshold)
	f.Last = drift.Report{
		Strategy: f.Strategy.Name(),
		Step:     f.Steps,
		Angle:    float64(f.Node.Rotation()),
		Delta:    delta,
		Bad:      bad,
	}

	if f.ResetAfter > 0 && f.Count >= f.ResetAfter {
		f.Node = f.Node.Rebuild()
		f.Count = 0
	}

	return f.Last
}
