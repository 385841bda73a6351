package geometry

import (
	"math"

	"github.com/chewxy/math32"
)

// Everything in this package works in float32; the drift checker is the
// only consumer that widens to float64.

// Vec3 is a point or direction in model space.
type Vec3 struct {
	X, Y, Z float32
}

// Mat3 is a row-major 3x3 rotation matrix.
type Mat3 [9]float32

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotationY builds a rotation of angle radians around the Y axis.
// Positive angles rotate counterclockwise when viewed from +Y.
func RotationY(angle float32) Mat3 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// Mul returns m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[i*3]*n[j] + m[i*3+1]*n[3+j] + m[i*3+2]*n[6+j]
		}
	}
	return r
}

// Apply transforms v by m.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// YAngle extracts the Y rotation angle in radians from a matrix produced
// by RotationY. The result is in (-pi, pi].
func YAngle(m Mat3) float32 {
	return math32.Atan2(m[2], m[0])
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// HalfPi is pi/2 rounded to float32, the 90-degree step every rotation
// strategy in the demo works in.
const HalfPi = float32(math.Pi / 2)
