package collision

import (
	"fmt"
	"math"

	"github.com/automoto/construct/shared/geom"
)

// axisTieEpsilon is the overlap difference under which two axes are
// considered equally good.
const axisTieEpsilon = 1e-9

// Result is the outcome of a SAT test. Overlap and Normal are only
// meaningful when Colliding is true and are zero otherwise.
type Result struct {
	Colliding bool

	// Overlap is the penetration depth along the axis of least overlap.
	Overlap float64

	// Normal is a unit vector pointing from the first hitbox toward the
	// second. Translating the second hitbox by Normal*Overlap separates them.
	Normal geom.Point2
}

// MTV returns the minimum translation vector Normal*Overlap.
func (r Result) MTV() geom.Point2 {
	return r.Normal.Scale(r.Overlap)
}

// Test runs the Separating Axis Theorem between a and b.
//
// Candidate axes are the edge normals of both outlines. The first axis on
// which the projections do not overlap proves separation. Projections that
// only touch (overlap of exactly 0) count as separated.
//
// Axes are canonicalized to point right (or down when vertical). Among
// axes with equal overlap the one with the smallest canonical angle wins,
// so Test(a, b) and Test(b, a) agree on the axis and report opposite
// normals. When both push directions along the chosen axis are equally
// deep the normal follows the centroid difference, falling back to the
// canonical axis for concentric shapes.
//
// Outlines are assumed convex; concave outlines are tested against their
// edge normals as-is, which may report overlap inside a concavity.
func Test(a, b *Hitbox) (Result, error) {
	return TestOffset(a, geom.Point2{}, b)
}

// TestOffset is Test with a displaced by offset, without moving its owner.
func TestOffset(a *Hitbox, offset geom.Point2, b *Hitbox) (Result, error) {
	if a == nil || b == nil {
		return Result{}, ErrMissingCollider
	}
	va, err := a.WorldVertices()
	if err != nil {
		return Result{}, fmt.Errorf("hitbox %q: %w", a.Name, err)
	}
	vb, err := b.WorldVertices()
	if err != nil {
		return Result{}, fmt.Errorf("hitbox %q: %w", b.Name, err)
	}
	if offset != (geom.Point2{}) {
		for i := range va {
			va[i] = va[i].Add(offset)
		}
	}
	return TestVertices(va, vb)
}

// Overlaps reports whether a and b collide.
func Overlaps(a, b *Hitbox) (bool, error) {
	r, err := Test(a, b)
	return r.Colliding, err
}

// TestVertices runs the SAT on two world-space outlines.
func TestVertices(va, vb []geom.Point2) (Result, error) {
	if len(va) < 3 || len(vb) < 3 {
		return Result{}, fmt.Errorf("sat on %d and %d points: %w", len(va), len(vb), geom.ErrInvalidGeometry)
	}

	var (
		best    Result
		bestKey float64
		found   bool
	)
	for _, poly := range [2][]geom.Point2{va, vb} {
		for i := range poly {
			edge := poly[(i+1)%len(poly)].Sub(poly[i])
			axis, err := edge.Perp().Normalize()
			if err != nil {
				return Result{}, fmt.Errorf("edge %d: %w", i, err)
			}
			axis = canonicalAxis(axis)

			minA, maxA := project(va, axis)
			minB, maxB := project(vb, axis)

			// Distances B has to travel along +axis or -axis to clear A.
			pushPos := maxA - minB
			pushNeg := maxB - minA
			if pushPos <= 0 || pushNeg <= 0 {
				return Result{}, nil
			}

			depth, dir := pushPos, axis
			switch {
			case pushNeg < pushPos:
				depth, dir = pushNeg, axis.Neg()
			case pushNeg == pushPos:
				if centroid(vb).Sub(centroid(va)).Dot(axis) < 0 {
					dir = axis.Neg()
				}
			}

			key := math.Atan2(axis.Y, axis.X)
			if !found ||
				depth < best.Overlap-axisTieEpsilon ||
				(math.Abs(depth-best.Overlap) <= axisTieEpsilon && key < bestKey) {
				best = Result{Colliding: true, Overlap: depth, Normal: dir}
				bestKey = key
				found = true
			}
		}
	}
	return best, nil
}

func canonicalAxis(axis geom.Point2) geom.Point2 {
	if axis.X < 0 || (axis.X == 0 && axis.Y < 0) {
		return axis.Neg()
	}
	return axis
}

func project(pts []geom.Point2, axis geom.Point2) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		d := p.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

func centroid(pts []geom.Point2) geom.Point2 {
	var sum geom.Point2
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}
