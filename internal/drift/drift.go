// Package drift measures how far a rotation has strayed from an exact
// 90-degree multiple. Repeated 90-degree rotations in float arithmetic
// accumulate rounding error; this package quantifies it.
package drift

import "math"

// Check reports the angular deviation of angle (radians) from the nearest
// multiple of 90 degrees. delta is the deviation in degrees; bad is true
// when delta exceeds threshold (degrees). The function is total over all
// finite inputs and has no error conditions.
func Check(angle, threshold float64) (delta float64, bad bool) {
	deg := math.Abs(angle * 180 / math.Pi)
	delta = math.Mod(deg, 90)
	// Fold to the distance from the nearest multiple: an angle just below
	// a multiple (remainder near 90) is a tiny deviation, not a huge one.
	if delta > 45 {
		delta = 90 - delta
	}
	return delta, delta > threshold
}

// Report is the outcome of inspecting one completed rotation.
type Report struct {
	Strategy string  // name of the strategy that produced the rotation
	Step     int     // completed rotations overall, 1-based
	Angle    float64 // orientation read back from the node, radians
	Delta    float64 // degrees from the nearest 90-degree multiple
	Bad      bool    // Delta exceeded the configured threshold
}
