package geom

import (
	"fmt"
	"math"
)

// Polygon is an immutable closed outline in its owner's local space.
// The closing edge runs from the last point back to the first.
type Polygon struct {
	points []Point2
}

// NewPolygon validates and copies points into a Polygon.
func NewPolygon(points []Point2) (Polygon, error) {
	if err := ValidateOutline(points); err != nil {
		return Polygon{}, err
	}
	cp := make([]Point2, len(points))
	copy(cp, points)
	return Polygon{points: cp}, nil
}

// MakeBox returns the rectangle whose local top-left corner is
// (offsetX, offsetY). Winding is clockwise on screen: top-left, top-right,
// bottom-right, bottom-left.
func MakeBox(offsetX, offsetY, width, height float64) (Polygon, error) {
	if !(width > 0) || !(height > 0) || !isFinite(width) || !isFinite(height) {
		return Polygon{}, fmt.Errorf("box %gx%g: %w", width, height, ErrInvalidGeometry)
	}
	return NewPolygon([]Point2{
		{X: offsetX, Y: offsetY},
		{X: offsetX + width, Y: offsetY},
		{X: offsetX + width, Y: offsetY + height},
		{X: offsetX, Y: offsetY + height},
	})
}

// ValidateOutline reports ErrInvalidGeometry for outlines that cannot yield
// a normalizable edge normal.
func ValidateOutline(points []Point2) error {
	if len(points) < 3 {
		return fmt.Errorf("outline has %d points, need at least 3: %w", len(points), ErrInvalidGeometry)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("point %d is %v: %w", i, p, ErrInvalidGeometry)
		}
		next := points[(i+1)%len(points)]
		if p == next {
			return fmt.Errorf("edge %d has zero length: %w", i, ErrInvalidGeometry)
		}
	}
	return nil
}

// Points returns a copy of the outline.
func (p Polygon) Points() []Point2 {
	cp := make([]Point2, len(p.points))
	copy(cp, p.points)
	return cp
}

func (p Polygon) Len() int {
	return len(p.points)
}

// At returns the i-th point.
func (p Polygon) At(i int) Point2 {
	return p.points[i]
}

// Bounds returns the local axis-aligned bounding box.
func (p Polygon) Bounds() Rect {
	return BoundsOf(p.points)
}

// SignedArea is positive for clockwise outlines in screen coordinates.
func (p Polygon) SignedArea() float64 {
	var sum float64
	for i, a := range p.points {
		b := p.points[(i+1)%len(p.points)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// BoundsOf returns the AABB of pts. An empty slice gives an inverted rect
// that overlaps nothing.
func BoundsOf(pts []Point2) Rect {
	r := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, pt := range pts {
		r.MinX = math.Min(r.MinX, pt.X)
		r.MinY = math.Min(r.MinY, pt.Y)
		r.MaxX = math.Max(r.MaxX, pt.X)
		r.MaxY = math.Max(r.MaxY, pt.Y)
	}
	return r
}
