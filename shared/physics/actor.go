package physics

import (
	"github.com/automoto/construct/shared/collision"
	"github.com/automoto/construct/shared/geom"
)

// Body is the node the resolver moves. Its local frame must be a pure
// translation of the level frame: the resolver moves it by world-space
// distances.
type Body interface {
	collision.TransformProvider
	LocalPosition() geom.Point2
	SetLocalPosition(geom.Point2)
}

type Velocity struct {
	VX, VY float64
}

// Actor is the player-controlled body. Grounded state is not stored; it is
// derived every tick and returned in Outcome.
type Actor struct {
	Name     string
	Body     Body
	Hitbox   *collision.Hitbox
	Velocity Velocity
}

func (a *Actor) key() string {
	if a.Name == "" {
		return "actor"
	}
	return a.Name
}
