package tuple

// Kind tags a Tuple with its geometric meaning.
//
// The homogeneous W component alone cannot tell a vector from a color, both
// carry W = 0. Kind records the intent explicitly so that callers can detect
// combinations such as point + point, whose arithmetic result is
// representable but has no geometric meaning.
type Kind uint8

const (
	// Raw is the zero Kind, carried by tuples built from a struct literal.
	// Operations involving a Raw operand produce Raw results.
	Raw Kind = iota

	// Point is a position in space (W = 1).
	Point

	// Vector is a displacement (W = 0).
	Vector

	// Color is an RGB triple stored in X, Y, Z (W = 0).
	Color

	// Invalid marks the result of a combination with no geometric meaning.
	Invalid
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Raw:
		return "tuple"
	case Point:
		return "point"
	case Vector:
		return "vector"
	case Color:
		return "color"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// untagged handles the operand kinds that short-circuit every table below.
func untagged(a, b Kind) (Kind, bool) {
	switch {
	case a == Invalid || b == Invalid:
		return Invalid, true
	case a == Raw || b == Raw:
		return Raw, true
	}
	return 0, false
}

// addKind returns the kind of a + b.
func addKind(a, b Kind) Kind {
	if k, ok := untagged(a, b); ok {
		return k
	}
	switch {
	case a == Point && b == Vector, a == Vector && b == Point:
		return Point
	case a == Vector && b == Vector:
		return Vector
	case a == Color && b == Color:
		return Color
	}
	return Invalid
}

// subKind returns the kind of a - b.
func subKind(a, b Kind) Kind {
	if k, ok := untagged(a, b); ok {
		return k
	}
	switch {
	case a == Point && b == Point:
		return Vector
	case a == Point && b == Vector:
		return Point
	case a == Vector && b == Vector:
		return Vector
	case a == Color && b == Color:
		return Color
	}
	return Invalid
}

// scaleKind returns the kind of a tuple after negation or scaling.
// Scaling a position is meaningless, vectors and colors keep their kind.
func scaleKind(k Kind) Kind {
	if k == Point {
		return Invalid
	}
	return k
}

// crossKind returns the kind of a × b.
func crossKind(a, b Kind) Kind {
	if k, ok := untagged(a, b); ok {
		return k
	}
	if a == Vector && b == Vector {
		return Vector
	}
	return Invalid
}

// hadamardKind returns the kind of the componentwise product a ∘ b.
func hadamardKind(a, b Kind) Kind {
	if k, ok := untagged(a, b); ok {
		return k
	}
	if a == Color && b == Color {
		return Color
	}
	return Invalid
}
