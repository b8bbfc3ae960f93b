package core

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Vector is a free displacement with magnitude and direction but no
// location. Its homogeneous coordinate is 0.
type Vector struct {
	x, y, z float64
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// VectorFromR3 converts an r3.Vector into a Vector
func VectorFromR3(v r3.Vector) Vector {
	return Vector{v.X, v.Y, v.Z}
}

func (v Vector) X() float64 { return v.x }
func (v Vector) Y() float64 { return v.y }
func (v Vector) Z() float64 { return v.z }

// W always returns 0 for vectors
func (v Vector) W() float64 { return 0 }

// Add composes two displacements
func (v Vector) Add(other Vector) Vector {
	return Vector{v.x + other.x, v.y + other.y, v.z + other.z}
}

// AddPoint displaces p by the vector
func (v Vector) AddPoint(p Point) Point {
	return Point{v.x + p.x, v.y + p.y, v.z + p.z}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.x - other.x, v.y - other.y, v.z - other.z}
}

// Negate reverses the direction of the vector
func (v Vector) Negate() Vector {
	return Vector{-v.x, -v.y, -v.z}
}

// Scale returns the vector multiplied by a scalar
func (v Vector) Scale(k float64) Vector {
	return Vector{v.x * k, v.y * k, v.z * k}
}

// Divide returns the vector divided by a scalar. It panics if k is zero.
func (v Vector) Divide(k float64) Vector {
	if k == 0 {
		panic("core: vector divided by zero")
	}
	return Vector{v.x / k, v.y / k, v.z / k}
}

// Magnitude returns the Euclidean length of the vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
}

// Normalize returns a unit vector in the same direction.
// It panics on the zero vector; callers must guard against it.
func (v Vector) Normalize() Vector {
	length := v.Magnitude()
	if length == 0 {
		panic("core: normalize of zero vector")
	}
	return Vector{v.x / length, v.y / length, v.z / length}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.x*other.x + v.y*other.y + v.z*other.z
}

// Cross returns the right-handed cross product v × other
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		x: v.y*other.z - v.z*other.y,
		y: v.z*other.x - v.x*other.z,
		z: v.x*other.y - v.y*other.x,
	}
}

// Equal reports whether both vectors match within Epsilon on every axis
func (v Vector) Equal(other Vector) bool {
	return approxEqual(v.x, other.x) && approxEqual(v.y, other.y) && approxEqual(v.z, other.z)
}

// R3 converts the vector to an r3.Vector
func (v Vector) R3() r3.Vector {
	return r3.Vector{X: v.x, Y: v.y, Z: v.z}
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%g, %g, %g)", v.x, v.y, v.z)
}
