package systems

import (
	"github.com/automoto/construct/components"
	cfg "github.com/automoto/construct/config"
	"github.com/automoto/construct/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// frameDelta is the length of one ebiten tick in milliseconds, the unit
// the resolver's StepScale is expressed in.
func frameDelta() float64 {
	return 1000 / float64(ebiten.TPS())
}

// UpdatePhysics runs one resolver pass for the player.
func UpdatePhysics(ecs *ecs.ECS) {
	stepPhysics(ecs, frameDelta())
}

func stepPhysics(ecs *ecs.ECS, delta float64) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	actor := components.Actor.Get(playerEntry)

	// The camera moved the container since the last tick, so the
	// broad-phase snapshot is rebuilt before resolving.
	level.Physics.BuildIndex(cfg.Level.IndexCellSize)
	level.Last = level.Resolver.Step(level.Mode, actor.Actor, level.Physics, level.Keys, delta)
}
