// Package color converts the floating-point channels stored on a canvas
// into 8-bit image channels.
//
// Canvas colors are linear and unbounded: a ray tracer routinely produces
// channels below 0 or above 1. Everything here clamps to [0, 1] first.
package color

// Quantize clamps v to [0, 1] and maps it to [0, 255] with rounding.
// NaN maps to 0.
func Quantize(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
