// Package angle converts between the angle units callers like to write hues in
// and the radians used internally by the color package.
package angle

import "math"

// Turns converts full rotations to radians. One turn is 2π.
func Turns(n float64) float64 {
	return 2 * math.Pi * n
}

// Degrees converts degrees to radians.
func Degrees(n float64) float64 {
	return n * math.Pi / 180
}

// Radians returns n unchanged. It exists so hue arguments read the same
// whatever unit they are written in.
func Radians(n float64) float64 {
	return n
}

// ToDegrees converts radians back to degrees for display.
func ToDegrees(r float64) float64 {
	return r * 180 / math.Pi
}
