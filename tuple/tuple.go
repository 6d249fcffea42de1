// Package tuple implements the homogeneous 4-component values used for
// points, vectors and colors throughout the ray tracer.
//
// A Tuple stores (X, Y, Z, W). Points carry W = 1, vectors and colors carry
// W = 0, so that subtracting two points cancels W and yields a vector.
// Colors reuse X, Y, Z as red, green and blue.
//
// All arithmetic is carried out over the four components exactly as the
// homogeneous model prescribes. In addition every Tuple carries a Kind tag,
// derived from the constructor and propagated through the operations, which
// lets callers check that a combination was meaningful:
//
//	p := tuple.NewPoint(3, 2, 1)
//	q := tuple.NewPoint(5, 6, 7)
//	v := p.Sub(q) // vector(-2, -4, -6)
//	_ = p.Add(q)  // W = 2, Kind() == tuple.Invalid
//
// Tuples are immutable values; every operation returns a new Tuple.
package tuple

import (
	"errors"
	"fmt"
	"math"
)

// Tuple errors.
var (
	// ErrZeroMagnitude is returned by Normalize for a zero-length tuple.
	ErrZeroMagnitude = errors.New("tuple: zero magnitude")

	// ErrIllegalCombination is returned by the checked operations when the
	// operands have no meaningful combination (for example point + point).
	ErrIllegalCombination = errors.New("tuple: illegal combination")
)

// Tuple is a homogeneous 4-component value.
// The zero value is the Raw tuple (0, 0, 0, 0).
type Tuple struct {
	X, Y, Z, W float64

	kind Kind
}

// NewPoint returns the point (x, y, z) with W = 1.
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1, kind: Point}
}

// NewVector returns the vector (x, y, z) with W = 0.
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0, kind: Vector}
}

// NewColor returns the color (r, g, b) with W = 0.
// Channels are nominally in [0, 1] but any value is accepted;
// the canvas encoder clamps on output.
func NewColor(r, g, b float64) Tuple {
	return Tuple{X: r, Y: g, Z: b, W: 0, kind: Color}
}

// Kind returns the variant tag of t.
func (t Tuple) Kind() Kind { return t.kind }

// IsPoint reports whether t is tagged as a point.
func (t Tuple) IsPoint() bool { return t.kind == Point }

// IsVector reports whether t is tagged as a vector.
func (t Tuple) IsVector() bool { return t.kind == Vector }

// IsColor reports whether t is tagged as a color.
func (t Tuple) IsColor() bool { return t.kind == Color }

// Red returns the red channel of a color (X).
func (t Tuple) Red() float64 { return t.X }

// Green returns the green channel of a color (Y).
func (t Tuple) Green() float64 { return t.Y }

// Blue returns the blue channel of a color (Z).
func (t Tuple) Blue() float64 { return t.Z }

// Add returns the componentwise sum of t and u, W included.
func (t Tuple) Add(u Tuple) Tuple {
	return Tuple{
		X:    t.X + u.X,
		Y:    t.Y + u.Y,
		Z:    t.Z + u.Z,
		W:    t.W + u.W,
		kind: addKind(t.kind, u.kind),
	}
}

// Sub returns the componentwise difference t - u, W included.
func (t Tuple) Sub(u Tuple) Tuple {
	return Tuple{
		X:    t.X - u.X,
		Y:    t.Y - u.Y,
		Z:    t.Z - u.Z,
		W:    t.W - u.W,
		kind: subKind(t.kind, u.kind),
	}
}

// CheckedAdd is like Add but fails with ErrIllegalCombination when the
// operand kinds do not combine (point + point, vector + color, ...).
// Raw operands are always accepted.
func (t Tuple) CheckedAdd(u Tuple) (Tuple, error) {
	r := t.Add(u)
	if r.kind == Invalid {
		return r, fmt.Errorf("%w: %v + %v", ErrIllegalCombination, t.kind, u.kind)
	}
	return r, nil
}

// CheckedSub is like Sub but fails with ErrIllegalCombination when the
// operand kinds do not combine (vector - point, color - point, ...).
// Raw operands are always accepted.
func (t Tuple) CheckedSub(u Tuple) (Tuple, error) {
	r := t.Sub(u)
	if r.kind == Invalid {
		return r, fmt.Errorf("%w: %v - %v", ErrIllegalCombination, t.kind, u.kind)
	}
	return r, nil
}

// Neg returns t with the sign of all four components flipped.
func (t Tuple) Neg() Tuple {
	return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z, W: -t.W, kind: scaleKind(t.kind)}
}

// Scale returns t with all four components multiplied by s.
func (t Tuple) Scale(s float64) Tuple {
	return Tuple{X: t.X * s, Y: t.Y * s, Z: t.Z * s, W: t.W * s, kind: scaleKind(t.kind)}
}

// Hadamard returns the componentwise product of t and u.
// For colors this is the usual way of blending a surface color with a light.
func (t Tuple) Hadamard(u Tuple) Tuple {
	return Tuple{
		X:    t.X * u.X,
		Y:    t.Y * u.Y,
		Z:    t.Z * u.Z,
		W:    t.W * u.W,
		kind: hadamardKind(t.kind, u.kind),
	}
}

// Magnitude returns the Euclidean norm over all four components.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns t divided by its magnitude.
// Returns ErrZeroMagnitude if t has zero length; t is never divided by zero.
// A tuple with NaN components yields NaN components and no error.
func (t Tuple) Normalize() (Tuple, error) {
	m := t.Magnitude()
	if m == 0 {
		return Tuple{}, fmt.Errorf("%w: cannot normalize %v", ErrZeroMagnitude, t)
	}
	return Tuple{
		X:    t.X / m,
		Y:    t.Y / m,
		Z:    t.Z / m,
		W:    t.W / m,
		kind: scaleKind(t.kind),
	}, nil
}

// Dot returns the sum of the componentwise products over all four components.
func (t Tuple) Dot(u Tuple) float64 {
	return t.X*u.X + t.Y*u.Y + t.Z*u.Z + t.W*u.W
}

// Cross returns the 3D cross product of t and u.
// Only X, Y, Z take part; the result always has W = 0.
func (t Tuple) Cross(u Tuple) Tuple {
	return Tuple{
		X:    t.Y*u.Z - t.Z*u.Y,
		Y:    t.Z*u.X - t.X*u.Z,
		Z:    t.X*u.Y - t.Y*u.X,
		W:    0,
		kind: crossKind(t.kind, u.kind),
	}
}

// Equal reports whether every component of t and u differs by less than
// Epsilon. The Kind tags are not compared.
func (t Tuple) Equal(u Tuple) bool {
	return FloatEqual(t.X, u.X) &&
		FloatEqual(t.Y, u.Y) &&
		FloatEqual(t.Z, u.Z) &&
		FloatEqual(t.W, u.W)
}

// String returns a compact description such as "point(1, 2, 3)".
// Raw and Invalid tuples print all four components.
func (t Tuple) String() string {
	switch t.kind {
	case Point, Vector, Color:
		return fmt.Sprintf("%v(%g, %g, %g)", t.kind, t.X, t.Y, t.Z)
	default:
		return fmt.Sprintf("%v(%g, %g, %g, %g)", t.kind, t.X, t.Y, t.Z, t.W)
	}
}
