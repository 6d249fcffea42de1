package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	icolor "github.com/gogpu/raytracer/internal/color"
	"github.com/gogpu/raytracer/tuple"
)

// At implements the image.Image interface.
// Channels are clamped to [0, 1] and scaled linearly; alpha is always opaque.
// Coordinates outside the canvas return transparent black.
func (c *Canvas) At(x, y int) color.Color {
	i, err := c.index(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return toNRGBA(c.pix[i], icolor.Quantize)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the canvas to an opaque 8-bit image.
func (c *Canvas) ToImage(opts ...ImageOption) *image.NRGBA {
	var o imageOptions
	for _, opt := range opts {
		opt(&o)
	}
	quantize := icolor.Quantize
	if o.srgb {
		quantize = icolor.LinearToSRGB8
	}

	img := image.NewNRGBA(c.Bounds())
	for i, p := range c.pix {
		px := toNRGBA(p, quantize)
		j := i * 4
		img.Pix[j+0] = px.R
		img.Pix[j+1] = px.G
		img.Pix[j+2] = px.B
		img.Pix[j+3] = px.A
	}
	return img
}

// toNRGBA quantizes the color channels of p.
func toNRGBA(p tuple.Tuple, quantize func(float64) uint8) color.NRGBA {
	return color.NRGBA{
		R: quantize(p.Red()),
		G: quantize(p.Green()),
		B: quantize(p.Blue()),
		A: 255,
	}
}

// Resample returns the canvas scaled to width×height with Catmull-Rom
// interpolation, for previews at another resolution. The target size is
// subject to the default limits of New.
func (c *Canvas) Resample(width, height int, opts ...ImageOption) (*image.NRGBA, error) {
	if err := defaultOptions().checkDimensions(width, height); err != nil {
		return nil, err
	}
	src := c.ToImage(opts...)
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// EncodeBMP writes the canvas to w as a BMP image.
func (c *Canvas) EncodeBMP(w io.Writer, opts ...ImageOption) error {
	if err := bmp.Encode(w, c.ToImage(opts...)); err != nil {
		return fmt.Errorf("canvas: encode bmp: %w", err)
	}
	return nil
}

// EncodeTIFF writes the canvas to w as a Deflate-compressed TIFF image.
func (c *Canvas) EncodeTIFF(w io.Writer, opts ...ImageOption) error {
	img := c.ToImage(opts...)
	if err := tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		return fmt.Errorf("canvas: encode tiff: %w", err)
	}
	return nil
}
