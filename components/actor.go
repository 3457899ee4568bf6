package components

import (
	"github.com/automoto/construct/shared/physics"
	"github.com/yohamta/donburi"
)

type ActorData struct {
	*physics.Actor
}

var Actor = donburi.NewComponentType[ActorData]()
