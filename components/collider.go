package components

import (
	"github.com/automoto/construct/shared/collision"
	"github.com/automoto/construct/shared/leveldata"
	"github.com/automoto/construct/shared/physics"
	"github.com/yohamta/donburi"
)

// ColliderData attaches a hitbox to a floor or building entity.
type ColliderData struct {
	Kind   physics.Kind
	Name   string
	Hitbox *collision.Hitbox
}

var Collider = donburi.NewComponentType[ColliderData]()

// EntityData is the placed entity as it came from the level file.
type EntityData struct {
	leveldata.Entity
}

var Entity = donburi.NewComponentType[EntityData]()
