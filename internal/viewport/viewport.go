// Package viewport projects a node's wireframe edges into a fixed-size
// text cell buffer. It is deliberately minimal: rotate about Y, tilt the
// ground plane into view, drop depth, draw lines. The demo is about the
// rotation numbers, not the picture.
package viewport

import (
	"strings"

	"github.com/sjrankin/RotationTest/internal/geometry"
	"github.com/sjrankin/RotationTest/internal/scene"
)

// Viewport renders nodes into a Width×Height cell grid.
type Viewport struct {
	Width  int
	Height int

	// Scale maps one model unit to this many columns. Rows use half the
	// value since terminal cells are roughly twice as tall as wide.
	Scale float32

	// Tilt is how much of the Z extent leaks into the vertical screen
	// axis, pitching the ground plane toward the viewer.
	Tilt float32
}

// New returns a viewport with the demo's standard projection settings.
func New(width, height int) *Viewport {
	return &Viewport{Width: width, Height: height, Scale: 2.2, Tilt: 0.55}
}

// Render draws the node's edges at its displayed orientation and returns
// the result as Height lines of exactly Width runes.
func (v *Viewport) Render(n *scene.Node) string {
	cells := make([][]rune, v.Height)
	for i := range cells {
		cells[i] = make([]rune, v.Width)
		for j := range cells[i] {
			cells[i][j] = ' '
		}
	}

	rot := geometry.RotationY(n.Display)
	for _, e := range n.Edges {
		glyph := '·'
		if e.Kind == scene.KindBlock {
			glyph = '█'
		}
		ax, ay := v.project(rot.Apply(e.A))
		bx, by := v.project(rot.Apply(e.B))
		v.line(cells, ax, ay, bx, by, glyph)
	}

	var b strings.Builder
	for i, row := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// project maps a rotated model-space point to cell coordinates.
func (v *Viewport) project(p geometry.Vec3) (int, int) {
	cx := float32(v.Width) / 2
	cy := float32(v.Height) / 2
	x := cx + p.X*v.Scale
	y := cy + (p.Z*v.Tilt-p.Y)*v.Scale/2
	return int(x + 0.5), int(y + 0.5)
}

// line draws with Bresenham, clipping to the buffer.
func (v *Viewport) line(cells [][]rune, x0, y0, x1, y1 int, glyph rune) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		v.plot(cells, x0, y0, glyph)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (v *Viewport) plot(cells [][]rune, x, y int, glyph rune) {
	if x < 0 || x >= v.Width || y < 0 || y >= v.Height {
		return
	}
	// Block edges win over grid lines where they overlap.
	if cells[y][x] == '█' && glyph == '·' {
		return
	}
	cells[y][x] = glyph
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
