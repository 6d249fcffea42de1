// Package canvas provides a fixed-size grid of colors and encoders that turn
// it into images.
//
// A Canvas stores one tuple.Tuple per pixel in a single row-major slice:
// pixel (x, y) lives at index y*Width()+x. Every pixel starts out black.
// Pixels are written one at a time with SetPixel and read back with Pixel.
//
// The primary output is the plain-text PPM (P3) format produced by PPM and
// WritePPM. The canvas also implements image.Image and can be converted to
// an *image.NRGBA or encoded as BMP or TIFF.
//
// A Canvas is not safe for concurrent use. Callers that write disjoint
// regions from several goroutines must synchronize externally.
package canvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/raytracer"
	"github.com/gogpu/raytracer/tuple"
)

// Canvas errors.
var (
	// ErrInvalidDimensions is returned by New when a dimension is not
	// positive, exceeds the configured maximum, or the pixel count exceeds
	// the configured limit.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

	// ErrOutOfBounds is returned when a pixel address lies outside the grid.
	ErrOutOfBounds = errors.New("canvas: pixel out of bounds")
)

// Canvas is a width×height grid of colors.
type Canvas struct {
	width  int
	height int
	pix    []tuple.Tuple // row-major, len = width*height
}

// New creates a canvas with the given dimensions, every pixel set to
// tuple.NewColor(0, 0, 0).
//
// Both dimensions must be in [1, DefaultMaxDimension] and width*height must
// not exceed DefaultMaxPixels; use WithMaxDimension and WithMaxPixels to
// change the limits. On error no canvas is returned.
func New(width, height int, opts ...Option) (*Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.checkDimensions(width, height); err != nil {
		raytracer.Logger().Debug("canvas: rejected dimensions",
			"width", width, "height", height,
			"maxDimension", o.maxDimension, "maxPixels", o.maxPixels)
		return nil, err
	}

	pix := make([]tuple.Tuple, width*height)
	black := tuple.NewColor(0, 0, 0)
	for i := range pix {
		pix[i] = black
	}

	raytracer.Logger().Debug("canvas: created", "width", width, "height", height)
	return &Canvas{width: width, height: height, pix: pix}, nil
}

// Width returns the number of columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of rows.
func (c *Canvas) Height() int {
	return c.height
}

// Pixels returns the underlying pixel buffer in row-major order.
// Pixel (x, y) is at index y*Width()+x. The slice aliases the canvas.
func (c *Canvas) Pixels() []tuple.Tuple {
	return c.pix
}

// index returns the buffer offset of (x, y), or an error wrapping
// ErrOutOfBounds.
func (c *Canvas) index(x, y int) (int, error) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return y*c.width + x, nil
}

// Pixel returns the color at column x, row y.
func (c *Canvas) Pixel(x, y int) (tuple.Tuple, error) {
	i, err := c.index(x, y)
	if err != nil {
		return tuple.Tuple{}, err
	}
	return c.pix[i], nil
}

// SetPixel stores col at column x, row y.
// An address outside the grid returns an error wrapping ErrOutOfBounds
// and leaves the canvas unchanged.
func (c *Canvas) SetPixel(x, y int, col tuple.Tuple) error {
	i, err := c.index(x, y)
	if err != nil {
		raytracer.Logger().Debug("canvas: write rejected", "x", x, "y", y, "err", err)
		return err
	}
	c.pix[i] = col
	return nil
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col tuple.Tuple) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// MaxChannelValues returns the largest red, green and blue values on the
// canvas, each channel scanned independently. The maxima start at 0, so
// negative channels never show up in the result.
func (c *Canvas) MaxChannelValues() (r, g, b float64) {
	for _, p := range c.pix {
		if p.X > r {
			r = p.X
		}
		if p.Y > g {
			g = p.Y
		}
		if p.Z > b {
			b = p.Z
		}
	}
	return r, g, b
}
