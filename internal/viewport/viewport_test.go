package viewport

import (
	"strings"
	"testing"

	"github.com/sjrankin/RotationTest/internal/geometry"
	"github.com/sjrankin/RotationTest/internal/scene"
)

func TestRender_Dimensions(t *testing.T) {
	v := New(30, 12)
	out := v.Render(scene.NewDemoNode("rig"))

	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 30 {
			t.Errorf("line %d has %d runes, want 30", i, n)
		}
	}
}

func TestRender_EmptyNodeIsBlank(t *testing.T) {
	v := New(20, 8)
	out := v.Render(scene.NewNode("empty", nil))

	if strings.TrimSpace(out) != "" {
		t.Errorf("empty node rendered visible content:\n%s", out)
	}
}

func TestRender_DrawsGridAndBlock(t *testing.T) {
	v := New(40, 16)
	out := v.Render(scene.NewDemoNode("rig"))

	if !strings.ContainsRune(out, '·') {
		t.Error("grid glyph missing from render")
	}
	if !strings.ContainsRune(out, '█') {
		t.Error("block glyph missing from render")
	}
}

func TestRender_RotationChangesPicture(t *testing.T) {
	v := New(40, 16)
	n := scene.NewDemoNode("rig")

	before := v.Render(n)
	n.Display = geometry.Radians(45)
	after := v.Render(n)

	if before == after {
		t.Error("45° rotation produced an identical render")
	}
}

func TestRender_QuarterTurnOfGridIsStable(t *testing.T) {
	// The demo grid is square and axis-aligned, so a quarter turn maps it
	// onto itself up to projection rounding.
	v := New(40, 16)

	n := scene.NewNode("grid", scene.GridEdges(4, 8))
	at0 := v.Render(n)
	n.Display = geometry.Radians(90)
	at90 := v.Render(n)

	if at0 != at90 {
		t.Error("square grid render changed across an exact quarter turn")
	}
}

func TestRender_ClipsOutOfBoundsGeometry(t *testing.T) {
	v := New(10, 6)
	n := scene.NewNode("huge", []scene.Edge{{
		A:    geometry.Vec3{X: -100, Z: -100},
		B:    geometry.Vec3{X: 100, Z: 100},
		Kind: scene.KindGrid,
	}})

	// Must not panic, and must still produce a full-size buffer.
	out := v.Render(n)
	if len(strings.Split(out, "\n")) != 6 {
		t.Errorf("clipped render has wrong height")
	}
}
