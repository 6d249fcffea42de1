package canvas

import (
	"fmt"
	"math"
)

// Canvas size limits.
const (
	// DefaultMaxDimension is the largest width or height New accepts unless
	// WithMaxDimension says otherwise.
	DefaultMaxDimension = 16384

	// DefaultMaxPixels is the largest width*height New accepts unless
	// WithMaxPixels says otherwise. 1<<23 pixels hold a 3840x2160 frame
	// and cost about 335 MB.
	DefaultMaxPixels = 1 << 23

	// maxPixelsLimit caps WithMaxPixels so the pixel count always fits the
	// buffer length, on 32-bit platforms too.
	maxPixelsLimit = math.MaxInt32
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := canvas.New(40000, 100, canvas.WithMaxDimension(65536))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	maxDimension int
	maxPixels    int
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		maxDimension: DefaultMaxDimension,
		maxPixels:    DefaultMaxPixels,
	}
}

// checkDimensions reports an error wrapping ErrInvalidDimensions unless both
// sides are in [1, maxDimension] and their product is at most maxPixels.
// The product is checked by division so it cannot overflow.
func (o options) checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > o.maxDimension || height > o.maxDimension {
		return fmt.Errorf("%w: width=%d, height=%d (both must be in [1, %d])",
			ErrInvalidDimensions, width, height, o.maxDimension)
	}
	if width > math.MaxInt/height || width > o.maxPixels/height {
		return fmt.Errorf("%w: width=%d, height=%d (at most %d pixels)",
			ErrInvalidDimensions, width, height, o.maxPixels)
	}
	return nil
}

// WithMaxDimension sets the largest width or height New accepts.
// Non-positive values keep the default.
func WithMaxDimension(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDimension = n
		}
	}
}

// WithMaxPixels sets the largest width*height New accepts.
// Non-positive values keep the default; values above math.MaxInt32 are clamped.
func WithMaxPixels(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPixels = min(n, maxPixelsLimit)
		}
	}
}

// ImageOption configures conversion of a Canvas to an 8-bit image.
type ImageOption func(*imageOptions)

// imageOptions holds optional configuration for ToImage and the encoders
// built on it.
type imageOptions struct {
	srgb bool
}

// WithSRGB encodes channels with the sRGB transfer function before
// quantization. Without it channels are clamped to [0, 1] and scaled
// linearly, matching the PPM encoder.
func WithSRGB() ImageOption {
	return func(o *imageOptions) {
		o.srgb = true
	}
}
