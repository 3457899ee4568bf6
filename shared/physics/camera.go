package physics

import "github.com/automoto/construct/shared/geom"

// Camera eases the level container's offset toward the negated actor
// position. The smoothing factor is applied once per tick, so tracking
// speed depends on frame rate.
type Camera struct {
	Offset geom.Point2
	Lerp   float64
}

func NewCamera(lerp float64) *Camera {
	return &Camera{Lerp: lerp}
}

// Follow moves the offset one step toward -target. Non-finite targets are
// ignored and reported as false.
func (c *Camera) Follow(target geom.Point2) bool {
	if !target.IsFinite() {
		return false
	}
	goal := target.Neg()
	next := geom.Point2{
		X: geom.Lerp(c.Offset.X, goal.X, c.Lerp),
		Y: geom.Lerp(c.Offset.Y, goal.Y, c.Lerp),
	}
	if !next.IsFinite() {
		return false
	}
	c.Offset = next
	return true
}

// Snap jumps straight to -target, used when a level is first shown.
func (c *Camera) Snap(target geom.Point2) {
	if target.IsFinite() {
		c.Offset = target.Neg()
	}
}
