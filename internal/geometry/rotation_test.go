package geometry

import (
	"math"
	"testing"
)

func TestRotationY_Identity(t *testing.T) {
	m := RotationY(0)
	want := Identity()

	for i := range m {
		if math.Abs(float64(m[i]-want[i])) > 1e-7 {
			t.Errorf("RotationY(0)[%d] = %v, want %v", i, m[i], want[i])
		}
	}
}

func TestRotationY_90Degrees(t *testing.T) {
	m := RotationY(Radians(90))
	v := m.Apply(Vec3{X: 1, Y: 0, Z: 0})

	// +X rotates to -Z when viewed from +Y
	if math.Abs(float64(v.X)) > 1e-6 {
		t.Errorf("X = %v, want ≈0", v.X)
	}
	if math.Abs(float64(v.Z+1)) > 1e-6 {
		t.Errorf("Z = %v, want ≈-1", v.Z)
	}
	if v.Y != 0 {
		t.Errorf("Y = %v, want 0", v.Y)
	}
}

func TestRotationY_PreservesY(t *testing.T) {
	m := RotationY(Radians(37.5))
	v := m.Apply(Vec3{X: 2, Y: 3, Z: -1})

	if v.Y != 3 {
		t.Errorf("Y rotation changed Y component: got %v, want 3", v.Y)
	}
}

func TestMul_ComposesRotations(t *testing.T) {
	a := RotationY(Radians(30))
	b := RotationY(Radians(60))
	got := a.Mul(b)
	want := RotationY(Radians(90))

	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("composed[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestYAngle_RoundTrip(t *testing.T) {
	angles := []float32{0, 0.25, 1, -1, Radians(89), Radians(-135)}

	for _, a := range angles {
		got := YAngle(RotationY(a))
		if math.Abs(float64(got-a)) > 1e-6 {
			t.Errorf("YAngle(RotationY(%v)) = %v", a, got)
		}
	}
}

func TestDegreesRadians(t *testing.T) {
	if d := Degrees(Radians(90)); math.Abs(float64(d-90)) > 1e-4 {
		t.Errorf("Degrees(Radians(90)) = %v", d)
	}
	if r := Radians(180); math.Abs(float64(r)-math.Pi) > 1e-6 {
		t.Errorf("Radians(180) = %v, want pi", r)
	}
}
