package canvas

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/raytracer"
)

// PPM format parameters.
const (
	// Magic is the first line of a plain-text PPM image.
	Magic = "P3"

	// DefaultMaxValue is the customary maximum channel value.
	DefaultMaxValue = 255

	// MaxLineLength is the longest line the pixel data block may contain.
	MaxLineLength = 70

	// maxPPMValue is the largest maximum value the PPM format allows.
	maxPPMValue = 65535
)

// ErrInvalidMaxValue is returned when the maximum channel value is outside
// [1, 65535].
var ErrInvalidMaxValue = errors.New("canvas: invalid max value")

// Header returns the PPM header for the canvas without a trailing newline:
// the magic number, the dimensions and maxValue on three lines.
func (c *Canvas) Header(maxValue int) string {
	return fmt.Sprintf("%s\n%d %d\n%d", Magic, c.width, c.height, maxValue)
}

// PPM returns the canvas as a plain-text PPM image with channels scaled to
// maxValue. See WritePPM for the encoding rules.
func (c *Canvas) PPM(maxValue int) (string, error) {
	var b strings.Builder
	if _, err := c.WritePPM(&b, maxValue); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WritePPM writes the canvas to w as a plain-text PPM image and returns the
// number of bytes written.
//
// The header is followed by the pixel data: pixels in row-major order, each
// as red, green and blue. A channel v is written as maxValue if v > 1, as 0
// if v <= 0 or NaN, and as v*maxValue otherwise, without rounding
// (0.5 at 255 is written as 127.5).
//
// Values are separated by single spaces. A value that would make the current
// line longer than MaxLineLength starts a new line instead. Lines run on
// across pixel and row boundaries. The data block ends with a newline.
func (c *Canvas) WritePPM(w io.Writer, maxValue int) (int64, error) {
	if maxValue < 1 || maxValue > maxPPMValue {
		return 0, fmt.Errorf("%w: %d (must be in [1, %d])", ErrInvalidMaxValue, maxValue, maxPPMValue)
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	_, _ = bw.WriteString(c.Header(maxValue))
	_ = bw.WriteByte('\n')

	enc := tokenWriter{w: bw, first: true}
	scale := float64(maxValue)
	for _, p := range c.pix {
		enc.write(channelValue(p.X, scale))
		enc.write(channelValue(p.Y, scale))
		enc.write(channelValue(p.Z, scale))
	}
	_ = bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("canvas: write ppm: %w", err)
	}

	raytracer.Logger().Debug("canvas: ppm written",
		"width", c.width, "height", c.height, "bytes", cw.n)
	return cw.n, nil
}

// channelValue maps a raw channel to the number written to the PPM stream.
// Values above 1 are not scaled, they are replaced by scale itself.
func channelValue(v, scale float64) float64 {
	switch {
	case v > 1:
		return scale
	case v > 0:
		return v * scale
	default:
		return 0
	}
}

// tokenWriter lays out decimal tokens on lines of at most MaxLineLength
// characters.
type tokenWriter struct {
	w     *bufio.Writer
	buf   []byte
	col   int  // characters on the current line, separators included
	first bool // no separator before the first token
}

// write appends v in shortest decimal form, preceded by a space or, when the
// line would grow past MaxLineLength, by a newline.
func (t *tokenWriter) write(v float64) {
	t.buf = strconv.AppendFloat(t.buf[:0], v, 'f', -1, 64)
	n := len(t.buf)

	sep := byte(' ')
	if t.col+n+1 > MaxLineLength {
		sep = '\n'
		t.col = n
	} else {
		t.col += n + 1
	}

	if t.first {
		t.first = false
	} else {
		_ = t.w.WriteByte(sep)
	}
	_, _ = t.w.Write(t.buf)
}

// countingWriter counts the bytes passed through to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
