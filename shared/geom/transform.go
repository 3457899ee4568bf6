package geom

import "fmt"

// Transform is a node's cumulative placement: scale, then rotate (radians),
// then translate.
type Transform struct {
	Position Point2
	Scale    Point2
	Rotation float64
}

// Identity is the transform that leaves points unchanged.
var Identity = Transform{Scale: Point2{X: 1, Y: 1}}

// Translation returns an unscaled, unrotated transform at (x, y).
func Translation(x, y float64) Transform {
	return Transform{Position: Point2{X: x, Y: y}, Scale: Point2{X: 1, Y: 1}}
}

// Apply maps a local point into the transform's parent space.
func (t Transform) Apply(p Point2) Point2 {
	return p.Mul(t.Scale).Rotate(t.Rotation).Add(t.Position)
}

// Compose returns the transform of a child placed with local transform c
// under parent t.
func (t Transform) Compose(c Transform) Transform {
	return Transform{
		Position: t.Apply(c.Position),
		Scale:    t.Scale.Mul(c.Scale),
		Rotation: t.Rotation + c.Rotation,
	}
}

// Validate reports ErrOutOfRangeTransform for NaN or infinite components.
func (t Transform) Validate() error {
	if !t.Position.IsFinite() || !t.Scale.IsFinite() || !isFinite(t.Rotation) {
		return fmt.Errorf("transform pos=%v scale=%v rot=%g: %w",
			t.Position, t.Scale, t.Rotation, ErrOutOfRangeTransform)
	}
	return nil
}
