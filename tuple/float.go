package tuple

import "math"

// Epsilon is the tolerance used by FloatEqual and Tuple.Equal.
// Two components are considered equal when they differ by less than Epsilon.
const Epsilon = 1e-5

// FloatEqual reports whether a and b differ by less than Epsilon.
// NaN is never equal to anything, including itself.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
