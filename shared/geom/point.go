package geom

import (
	"fmt"
	"math"
)

// Point2 is a 2D point or vector.
type Point2 struct {
	X, Y float64
}

// Pt is shorthand for Point2{X: x, Y: y}.
func Pt(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

func (p Point2) Add(o Point2) Point2 {
	return Point2{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point2) Sub(o Point2) Point2 {
	return Point2{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point2) Scale(s float64) Point2 {
	return Point2{X: p.X * s, Y: p.Y * s}
}

// Mul multiplies component-wise.
func (p Point2) Mul(o Point2) Point2 {
	return Point2{X: p.X * o.X, Y: p.Y * o.Y}
}

func (p Point2) Dot(o Point2) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Perp returns (Y, -X). For an edge of a clockwise outline this is the
// outward normal.
func (p Point2) Perp() Point2 {
	return Point2{X: p.Y, Y: -p.X}
}

func (p Point2) Neg() Point2 {
	return Point2{X: -p.X, Y: -p.Y}
}

func (p Point2) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns the unit vector of p. A zero-length vector has no
// direction and yields ErrInvalidGeometry.
func (p Point2) Normalize() (Point2, error) {
	l := p.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Point2{}, fmt.Errorf("normalize %v: %w", p, ErrInvalidGeometry)
	}
	return Point2{X: p.X / l, Y: p.Y / l}, nil
}

// Rotate rotates p around the origin by angle radians. With Y pointing down
// a positive angle turns clockwise on screen.
func (p Point2) Rotate(angle float64) Point2 {
	if angle == 0 {
		return p
	}
	sin, cos := math.Sincos(angle)
	return Point2{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

func (p Point2) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func (p Point2) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Lerp moves a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
