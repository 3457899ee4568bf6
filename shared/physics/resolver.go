package physics

import (
	"fmt"
	"math"

	"github.com/automoto/construct/shared/collision"
	"github.com/automoto/construct/shared/geom"
	"go.uber.org/zap"
)

// State is the actor's movement state, derived fresh every tick.
type State int

const (
	Idle State = iota
	Grounded
	Airborne
	// Moving is the top-view state for an actor under directional input.
	Moving
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	case Moving:
		return "moving"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Outcome describes what one tick did to the actor.
type Outcome struct {
	State    State
	Grounded bool
	Jumped   bool

	// BlockedX is set when a wall reverted the horizontal move.
	BlockedX bool

	// Reverted is set when the top-down move was undone on both axes.
	Reverted bool

	// Skipped is set when the actor could not be resolved this tick and
	// nothing moved.
	Skipped bool
}

// Resolver runs the per-tick movement algorithm. It is not safe for
// concurrent use; one resolver serves one actor on the update goroutine.
type Resolver struct {
	Camera *Camera

	cfg    Config
	report *Reporter
}

func NewResolver(cfg Config, logger *zap.Logger) *Resolver {
	return &Resolver{
		Camera: NewCamera(cfg.CameraLerp),
		cfg:    cfg,
		report: NewReporter(logger),
	}
}

// UseReporter replaces the resolver's reporter. A nil rep is ignored.
func (r *Resolver) UseReporter(rep *Reporter) {
	if rep != nil {
		r.report = rep
	}
}

// Reporter returns the reporter the resolver logs through.
func (r *Resolver) Reporter() *Reporter {
	return r.report
}

func (r *Resolver) Config() Config {
	return r.cfg
}

// Step dispatches to the algorithm for mode.
func (r *Resolver) Step(mode Mode, a *Actor, lvl *Level, keys Keys, delta float64) Outcome {
	if mode == TopView {
		return r.StepTopView(a, lvl, keys, delta)
	}
	return r.StepSideView(a, lvl, keys, delta)
}

// StepSideView moves a under gravity. Horizontal movement is undone in
// full by the first wall it runs into. Floors only count as ground while
// the actor is not moving up, so a jump can pass up through a platform.
func (r *Resolver) StepSideView(a *Actor, lvl *Level, keys Keys, delta float64) Outcome {
	steps, ok := r.begin(a, lvl, delta)
	if !ok {
		return Outcome{Skipped: true}
	}
	var out Outcome
	start := a.Body.LocalPosition()
	pos := start

	dir := 0.0
	if keys.IsDown(KeyLeft) {
		dir = -1
	} else if keys.IsDown(KeyRight) {
		dir = 1
	}
	a.Velocity.VX = dir * r.cfg.MoveSpeed
	if dir != 0 {
		pos.X += a.Velocity.VX * steps
		a.Body.SetLocalPosition(pos)
		if r.hitsWall(a, lvl) {
			pos.X = start.X
			a.Body.SetLocalPosition(pos)
			out.BlockedX = true
		}
	}

	// Only the jump key launches; up merely keeps the snap from pulling
	// the actor back onto a floor.
	snapHeld := keys.IsDown(KeyJump) || keys.IsDown(KeyUp)
	grounded := r.onGround(a, lvl)
	if grounded {
		pos.Y = start.Y
		a.Velocity.VY = 0
		if keys.IsDown(KeyJump) {
			a.Velocity.VY = r.cfg.JumpSpeed
			out.Jumped = true
		}
	} else {
		a.Velocity.VY += r.cfg.Gravity * steps
	}

	before, err := a.Hitbox.WorldBounds()
	pos.Y += a.Velocity.VY * steps
	a.Body.SetLocalPosition(pos)

	if !snapHeld && err == nil && r.snap(a, lvl, before) {
		grounded = true
	}

	out.Grounded = grounded
	switch {
	case !grounded || out.Jumped:
		out.State = Airborne
	case dir == 0:
		out.State = Idle
	default:
		out.State = Grounded
	}
	r.follow(a)
	return out
}

// StepTopView applies both input axes at once and reverts both together
// when the actor ends up inside any wall. There is no gravity and no
// ground.
func (r *Resolver) StepTopView(a *Actor, lvl *Level, keys Keys, delta float64) Outcome {
	steps, ok := r.begin(a, lvl, delta)
	if !ok {
		return Outcome{Skipped: true}
	}
	var out Outcome
	start := a.Body.LocalPosition()

	var dir geom.Point2
	switch {
	case keys.IsDown(KeyRight):
		dir.X = 1
	case keys.IsDown(KeyLeft):
		dir.X = -1
	}
	switch {
	case keys.IsDown(KeyDown):
		dir.Y = 1
	case keys.IsDown(KeyUp):
		dir.Y = -1
	}
	a.Velocity = Velocity{VX: dir.X * r.cfg.MoveSpeed, VY: dir.Y * r.cfg.MoveSpeed}

	if dir != (geom.Point2{}) {
		a.Body.SetLocalPosition(start.Add(dir.Scale(r.cfg.MoveSpeed * steps)))
		if r.hitsWall(a, lvl) {
			a.Body.SetLocalPosition(start)
			out.Reverted = true
		}
		out.State = Moving
	}
	r.follow(a)
	return out
}

// begin checks the actor and the tick length, returning the number of
// nominal steps the tick covers.
func (r *Resolver) begin(a *Actor, lvl *Level, delta float64) (float64, bool) {
	if a == nil {
		r.report.once("actor", "physics skipped: nil actor", collision.ErrMissingCollider)
		return 0, false
	}
	if a.Body == nil {
		r.report.once(a.key(), "physics skipped: actor has no body", collision.ErrNoOwner)
		return 0, false
	}
	if a.Hitbox == nil {
		r.report.once(a.key(), "physics skipped: actor has no hitbox", collision.ErrMissingCollider)
		return 0, false
	}
	if _, err := a.Hitbox.WorldVertices(); err != nil {
		r.report.once(a.key(), "physics skipped: actor transform unusable", err)
		return 0, false
	}
	if lvl == nil {
		r.report.once(a.key()+"/level", "physics skipped: no level", collision.ErrMissingCollider)
		return 0, false
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		r.report.once(a.key()+"/delta", "physics skipped: bad delta", fmt.Errorf("delta %v", delta))
		return 0, false
	}
	return delta / r.cfg.StepScale, true
}

// hitsWall reports whether the actor's hitbox, where it stands now,
// collides with any wall. Walls are tried in insertion order and the
// first hit ends the search.
func (r *Resolver) hitsWall(a *Actor, lvl *Level) bool {
	va, err := a.Hitbox.WorldVertices()
	if err != nil {
		r.report.once(a.key(), "actor transform unusable", err)
		return false
	}
	for _, c := range lvl.Candidates(KindWall, geom.BoundsOf(va)) {
		if res, ok := r.test(va, c); ok && res.Colliding {
			return true
		}
	}
	return false
}

// onGround probes the actor GroundProbe units down against every floor.
func (r *Resolver) onGround(a *Actor, lvl *Level) bool {
	if a.Velocity.VY < 0 {
		return false
	}
	va, err := a.Hitbox.WorldVertices()
	if err != nil {
		r.report.once(a.key(), "actor transform unusable", err)
		return false
	}
	probe := geom.Point2{Y: r.cfg.GroundProbe}
	for i := range va {
		va[i] = va[i].Add(probe)
	}
	for _, c := range lvl.Candidates(KindFloor, geom.BoundsOf(va)) {
		if res, ok := r.test(va, c); ok && res.Colliding {
			return true
		}
	}
	return false
}

// snap places the actor's bottom onto the top of the first floor it
// overlaps horizontally and whose top it reached or crossed this tick,
// within SnapTolerance.
func (r *Resolver) snap(a *Actor, lvl *Level, before geom.Rect) bool {
	if a.Velocity.VY < 0 {
		return false
	}
	after, err := a.Hitbox.WorldBounds()
	if err != nil {
		r.report.once(a.key(), "actor transform unusable", err)
		return false
	}
	tol := r.cfg.SnapTolerance
	swept := before.Union(after)
	swept.MinY -= tol
	swept.MaxY += tol

	for _, c := range lvl.Candidates(KindFloor, swept) {
		fb, ok := r.bounds(c)
		if !ok || !after.OverlapsX(fb) {
			continue
		}
		top := fb.MinY
		if before.MaxY > top+tol || after.MaxY < top-tol {
			continue
		}
		pos := a.Body.LocalPosition()
		pos.Y += top - after.MaxY
		a.Body.SetLocalPosition(pos)
		a.Velocity.VY = 0
		return true
	}
	return false
}

func (r *Resolver) follow(a *Actor) {
	if r.Camera == nil {
		return
	}
	if !r.Camera.Follow(a.Body.LocalPosition()) {
		r.report.once(a.key()+"/camera", "camera ignored non-finite target", geom.ErrOutOfRangeTransform)
	}
}

// test runs SAT between the actor's vertices and c. Colliders that cannot
// be resolved are reported once and skipped.
func (r *Resolver) test(va []geom.Point2, c *Collider) (collision.Result, bool) {
	if c.Hitbox == nil {
		r.report.once(c.key(), "collider excluded: no hitbox", collision.ErrMissingCollider)
		return collision.Result{}, false
	}
	vb, err := c.Hitbox.WorldVertices()
	if err != nil {
		r.report.once(c.key(), "collider excluded", err)
		return collision.Result{}, false
	}
	res, err := collision.TestVertices(va, vb)
	if err != nil {
		r.report.once(c.key(), "collider excluded", err)
		return collision.Result{}, false
	}
	return res, true
}

func (r *Resolver) bounds(c *Collider) (geom.Rect, bool) {
	if c.Hitbox == nil {
		r.report.once(c.key(), "collider excluded: no hitbox", collision.ErrMissingCollider)
		return geom.Rect{}, false
	}
	b, err := c.Hitbox.WorldBounds()
	if err != nil {
		r.report.once(c.key(), "collider excluded", err)
		return geom.Rect{}, false
	}
	return b, true
}
