package core

import "math"

// Epsilon is the machine epsilon for float64 (2^-52). Two components are
// considered equal when they differ by strictly less than Epsilon.
const Epsilon = 0x1p-52

// Tuple is the capability set shared by Point and Vector.
// W is the homogeneous coordinate: 1 for locations, 0 for displacements.
type Tuple interface {
	X() float64
	Y() float64
	Z() float64
	W() float64
}

// Tuples lists the concrete tuple types usable with the generic helpers.
type Tuples interface {
	Point | Vector
}

// New creates a Point or Vector from its coordinates
func New[T Tuples](x, y, z float64) T {
	return T{x, y, z}
}

// Zero returns the origin point or the zero vector
func Zero[T Tuples]() T {
	var t T
	return t
}

// Equal reports whether two tuples match component-wise within Epsilon,
// including the homogeneous coordinate.
func Equal(a, b Tuple) bool {
	return approxEqual(a.X(), b.X()) &&
		approxEqual(a.Y(), b.Y()) &&
		approxEqual(a.Z(), b.Z()) &&
		a.W() == b.W()
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
