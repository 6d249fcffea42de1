package color

// linearToSRGBLUT provides O(1) Linear to sRGB conversion.
// Uses 4096 entries for 12-bit precision (sufficient for 8-bit sRGB).
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range linearToSRGBLUT {
		linearToSRGBLUT[i] = LinearToSRGB8Slow(float64(i) / 4095.0)
	}
}

// LinearToSRGB8 converts a linear channel to an sRGB byte using a lookup
// table. Input is clamped to [0.0, 1.0]; NaN maps to 0.
//
// Example:
//
//	s := LinearToSRGB8(0.5) // 188 (not 128!)
func LinearToSRGB8(l float64) uint8 {
	if !(l > 0) {
		return linearToSRGBLUT[0]
	}
	if l >= 1 {
		return linearToSRGBLUT[4095]
	}
	return linearToSRGBLUT[int(l*4095.0+0.5)]
}
