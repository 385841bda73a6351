// Package strategy implements the four 90-degree rotation strategies the
// demo compares, and the per-fixture bookkeeping that detects drift and
// periodically rebuilds the rotating geometry.
package strategy

import (
	"github.com/sjrankin/RotationTest/internal/geometry"
	"github.com/sjrankin/RotationTest/internal/scene"
)

// Direction selects which way the rig spins.
type Direction int

const (
	Clockwise Direction = iota
	Counterclockwise
)

// Sign returns the angular sign of the direction about the Y axis.
// Clockwise viewed from above is a negative rotation.
func (d Direction) Sign() float32 {
	if d == Counterclockwise {
		return 1
	}
	return -1
}

func (d Direction) String() string {
	if d == Counterclockwise {
		return "counterclockwise"
	}
	return "clockwise"
}

// Strategy computes and applies the next 90-degree rotation target for a
// node. step is the 1-based number of the rotation being started since
// the node was last built.
type Strategy interface {
	Name() string
	Step(node *scene.Node, step int) (target float32)
}

// Relative rotates by adding 90 degrees to the node's orientation each
// step. The increment and the accumulator are float32, so rounding error
// piles up. This is the strategy the demo expects to drift.
type Relative struct {
	Dir Direction
}

func (r Relative) Name() string { return "relative" }

func (r Relative) Step(node *scene.Node, step int) float32 {
	node.RotateBy(r.Dir.Sign() * geometry.HalfPi)
	return node.Rotation()
}

// Absolute sets the orientation to step×90 degrees, recomputed from the
// step count each time. Error does not accumulate, though the product
// itself is still rounded to float32.
type Absolute struct {
	Dir Direction
}

func (a Absolute) Name() string { return "absolute" }

func (a Absolute) Step(node *scene.Node, step int) float32 {
	target := a.Dir.Sign() * float32(step) * geometry.HalfPi
	node.SetRotation(target)
	return target
}

// quarterTurns holds the four quarter-turn angles, each rounded to
// float32 exactly once.
var quarterTurns = [4]float32{
	0,
	geometry.HalfPi,
	2 * geometry.HalfPi,
	3 * geometry.HalfPi,
}

// Table sets the orientation from a precomputed table of quarter-turn
// angles indexed by step modulo 4. No arithmetic happens per step, so the
// orientation can never wander.
type Table struct {
	Dir Direction
}

func (t Table) Name() string { return "table" }

func (t Table) Step(node *scene.Node, step int) float32 {
	target := t.Dir.Sign() * quarterTurns[step%4]
	node.SetRotation(target)
	return target
}

// Reset behaves exactly like Relative; the fixture carrying it rebuilds
// the node after a configured number of rotations, discarding whatever
// error the accumulator has gathered.
type Reset struct {
	Dir Direction
}

func (r Reset) Name() string { return "reset" }

func (r Reset) Step(node *scene.Node, step int) float32 {
	node.RotateBy(r.Dir.Sign() * geometry.HalfPi)
	return node.Rotation()
}
