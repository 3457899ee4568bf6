package components

import (
	"github.com/automoto/construct/shared/leveldata"
	"github.com/automoto/construct/shared/physics"
	"github.com/yohamta/donburi"
)

// LevelData is the level container. Every placed entity is a transform
// child of the entry holding it, and the camera moves the container.
type LevelData struct {
	Source   *leveldata.Level
	Mode     physics.Mode
	Physics  *physics.Level
	Resolver *physics.Resolver

	// Keys is the held-key snapshot for the current tick.
	Keys physics.KeySet

	// Last is the outcome of the most recent physics tick.
	Last physics.Outcome

	ShowHitboxes bool
}

var Level = donburi.NewComponentType[LevelData]()
