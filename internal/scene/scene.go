// Package scene holds the rotating demo geometry: a wireframe grid of
// line-boxes with a solid-looking block at its center, rotated as one rig
// around the Y axis.
package scene

import "github.com/sjrankin/RotationTest/internal/geometry"

// EdgeKind distinguishes grid lines from block lines so the viewport can
// draw them differently.
type EdgeKind int

const (
	KindGrid EdgeKind = iota
	KindBlock
)

// Edge is a line segment in model space.
type Edge struct {
	A, B geometry.Vec3
	Kind EdgeKind
}

// Node is a rotating element of the scene. Rotation holds the logical
// orientation the strategies write; Display is the angle the viewport
// draws, advanced toward Rotation by the Animator. Both are float32, the
// width whose accumulated rounding the demo observes.
type Node struct {
	Name    string
	Edges   []Edge
	Display float32

	rotation float32
}

// NewNode creates a node at identity orientation.
func NewNode(name string, edges []Edge) *Node {
	return &Node{Name: name, Edges: edges}
}

// RotateBy applies a relative rotation, accumulating in float32.
func (n *Node) RotateBy(delta float32) {
	n.rotation += delta
}

// SetRotation replaces the orientation with an absolute angle.
func (n *Node) SetRotation(angle float32) {
	n.rotation = angle
}

// Rotation returns the logical orientation in radians.
func (n *Node) Rotation() float32 {
	return n.rotation
}

// Rebuild discards the node's accumulated orientation and returns a fresh
// node with the same name and geometry at identity. This is the
// drift-clearing reconstruction the reset strategy relies on.
func (n *Node) Rebuild() *Node {
	edges := make([]Edge, len(n.Edges))
	copy(edges, n.Edges)
	return &Node{Name: n.Name, Edges: edges}
}

// GridEdges builds a flat square grid of cells×cells line-boxes in the XZ
// plane, centered on the origin, spanning ±extent on both axes.
func GridEdges(extent float32, cells int) []Edge {
	if cells < 1 {
		cells = 1
	}
	step := 2 * extent / float32(cells)
	var edges []Edge
	for i := 0; i <= cells; i++ {
		p := -extent + float32(i)*step
		edges = append(edges,
			Edge{A: geometry.Vec3{X: -extent, Z: p}, B: geometry.Vec3{X: extent, Z: p}, Kind: KindGrid},
			Edge{A: geometry.Vec3{X: p, Z: -extent}, B: geometry.Vec3{X: p, Z: extent}, Kind: KindGrid},
		)
	}
	return edges
}

// BlockEdges builds the 12 edges of a cube of the given half-size centered
// on the origin.
func BlockEdges(half float32) []Edge {
	corner := func(i int) geometry.Vec3 {
		v := geometry.Vec3{X: -half, Y: -half, Z: -half}
		if i&1 != 0 {
			v.X = half
		}
		if i&2 != 0 {
			v.Y = half
		}
		if i&4 != 0 {
			v.Z = half
		}
		return v
	}
	pairs := [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7}, // X-aligned
		{0, 2}, {1, 3}, {4, 6}, {5, 7}, // Y-aligned
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // Z-aligned
	}
	edges := make([]Edge, 0, 12)
	for _, p := range pairs {
		edges = append(edges, Edge{A: corner(p[0]), B: corner(p[1]), Kind: KindBlock})
	}
	return edges
}

// NewDemoNode builds the standard demo rig: the grid plus the center
// block, sized so the block sits inside one central cell.
func NewDemoNode(name string) *Node {
	edges := GridEdges(4, 8)
	edges = append(edges, BlockEdges(1.2)...)
	return NewNode(name, edges)
}
