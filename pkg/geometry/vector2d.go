package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for float64 comparisons and for deciding
// when a vector is too short to carry a direction.
const (
	Epsilon = 1e-9
)

// Vector2D represents a 2D vector or point in cartesian space.
// Fields are public so literals like Vector2D{X: 1, Y: 2} stay readable.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zero is the null vector.
var Zero = Vector2D{}

// NewVector creates a new Vector2D.
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// NewVectorPolar creates a new Vector2D from polar coordinates, theta in radians.
// Components closer to zero than Epsilon are snapped to zero.
func NewVectorPolar(radius, theta float64) Vector2D {
	x := radius * math.Cos(theta)
	y := radius * math.Sin(theta)

	if math.Abs(x) < Epsilon {
		x = 0
	}
	if math.Abs(y) < Epsilon {
		y = 0
	}

	return Vector2D{X: x, Y: y}
}

// String implements the fmt.Stringer interface.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// ---------------------------------------------------------------------
// Arithmetic
// Value receivers, new values returned: vectors are never mutated in place.
// ---------------------------------------------------------------------

// Add returns v + other.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar value.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// Dot calculates the dot product of two vectors.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// ---------------------------------------------------------------------
// Magnitude and Normalization
// ---------------------------------------------------------------------

// LenSqr is the squared magnitude, use it for comparisons.
func (v Vector2D) LenSqr() float64 {
	return v.Dot(v)
}

// Len calculates the magnitude (length) of the vector.
func (v Vector2D) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether the vector is too short to have a direction.
// Call it before Normalize whenever the direction matters.
func (v Vector2D) IsZero() bool {
	return v.Len() < Epsilon
}

// Normalize returns a unit vector in the same direction.
// A vector shorter than Epsilon has no direction: the zero vector is returned.
func (v Vector2D) Normalize() Vector2D {
	l := v.Len()
	if l < Epsilon {
		return Zero
	}
	return v.Mul(1 / l)
}

// ---------------------------------------------------------------------
// Geometric Utilities
// ---------------------------------------------------------------------

// DistanceTo calculates the Euclidean distance to another point.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return v.Sub(other).Len()
}

// DistanceSquaredTo calculates the squared Euclidean distance to another point.
func (v Vector2D) DistanceSquaredTo(other Vector2D) float64 {
	return v.Sub(other).LenSqr()
}

// Angle returns the angle (in radians) of the vector relative to the X-axis.
// Range: [-Pi, Pi]
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates the vector by angle (in radians) around the origin.
func (v Vector2D) Rotate(angle float64) Vector2D {
	sin, cos := math.Sincos(angle)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Lerp linearly interpolates componentwise between v (t=0) and target (t=1).
func (v Vector2D) Lerp(target Vector2D, t float64) Vector2D {
	return Vector2D{
		X: v.X + (target.X-v.X)*t,
		Y: v.Y + (target.Y-v.Y)*t,
	}
}

// Eq checks if two vectors are approximately equal using Epsilon.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}
