package color

import "math"

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// LinearToSRGB8Slow clamps l to [0, 1], applies the sRGB transfer function
// and quantizes the result.
//
// This is the reference implementation for LinearToSRGB8.
func LinearToSRGB8Slow(l float64) uint8 {
	if !(l > 0) {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	return Quantize(LinearToSRGB(l))
}
