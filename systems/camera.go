package systems

import (
	"github.com/automoto/construct/components"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera moves the level container to the resolver's camera offset.
// Must run after UpdatePhysics.
func UpdateCamera(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	camera := components.Camera.Get(levelEntry)

	off := level.Resolver.Camera.Offset
	camera.Offset = math.NewVec2(off.X, off.Y)
	transform.Transform.Get(levelEntry).LocalPosition = camera.Offset
}
