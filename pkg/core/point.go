package core

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Point is a fixed location in 3D space. Its homogeneous coordinate is 1.
type Point struct {
	x, y, z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{x, y, z}
}

// PointFromR3 converts an r3.Vector into a Point
func PointFromR3(v r3.Vector) Point {
	return Point{v.X, v.Y, v.Z}
}

func (p Point) X() float64 { return p.x }
func (p Point) Y() float64 { return p.y }
func (p Point) Z() float64 { return p.z }

// W always returns 1 for points
func (p Point) W() float64 { return 1 }

// Add displaces the point by a vector
func (p Point) Add(v Vector) Point {
	return Point{p.x + v.x, p.y + v.y, p.z + v.z}
}

// Subtract returns the displacement from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector{p.x - other.x, p.y - other.y, p.z - other.z}
}

// SubtractVector subtracts a vector from the point's coordinates.
// The result is a Vector, not a Point.
func (p Point) SubtractVector(v Vector) Vector {
	return Vector{p.x - v.x, p.y - v.y, p.z - v.z}
}

// Negate reflects the point through the origin
func (p Point) Negate() Point {
	return Point{-p.x, -p.y, -p.z}
}

// Equal reports whether both points match within Epsilon on every axis
func (p Point) Equal(other Point) bool {
	return approxEqual(p.x, other.x) && approxEqual(p.y, other.y) && approxEqual(p.z, other.z)
}

// R3 converts the point to an r3.Vector holding its coordinates
func (p Point) R3() r3.Vector {
	return r3.Vector{X: p.x, Y: p.y, Z: p.z}
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g, %g)", p.x, p.y, p.z)
}
