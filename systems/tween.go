package systems

import (
	"github.com/automoto/construct/components"
	"github.com/automoto/construct/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// UpdateTweens advances every flag's bob by one frame, looping forever.
func UpdateTweens(ecs *ecs.ECS) {
	tags.Flag.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		if tw.Sequence == nil {
			return
		}
		dy, _, done := tw.Sequence.Update(1)
		if done {
			tw.Sequence.Reset()
		}
		transform.Transform.Get(e).LocalPosition.Y = tw.BaseY + float64(dy)
	})
}
