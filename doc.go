// Package raytracer provides the numeric and raster building blocks of a
// 3D ray tracer.
//
// # Overview
//
// The library is split into small packages that depend on each other in one
// direction only:
//   - tuple: homogeneous (x, y, z, w) values used for points, vectors and colors
//   - canvas: a fixed-size grid of colors with a plain-text PPM (P3) encoder
//
// The root package holds what the subpackages share, currently the logger.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/raytracer/canvas"
//	    "github.com/gogpu/raytracer/tuple"
//	)
//
//	c, err := canvas.New(5, 3)
//	if err != nil {
//	    return err
//	}
//	if err := c.SetPixel(0, 0, tuple.NewColor(1.5, 0, 0)); err != nil {
//	    return err
//	}
//	ppm, err := c.PPM(canvas.DefaultMaxValue)
//
// # Coordinate System
//
// Canvas coordinates follow image conventions:
//   - Origin (0,0) at top-left
//   - X selects the column and increases right
//   - Y selects the row and increases down
//
// # Persistence
//
// Nothing in this module opens files. Encoders return strings or write to an
// io.Writer supplied by the caller.
package raytracer

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
