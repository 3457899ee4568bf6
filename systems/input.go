package systems

import (
	"github.com/automoto/construct/components"
	cfg "github.com/automoto/construct/config"
	"github.com/automoto/construct/shared/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput samples the held keys once for the tick. Must run before
// UpdatePhysics so the whole resolution pass sees one snapshot.
func UpdateInput(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	level.Keys = sampleKeys(cfg.Input.Bindings, ebiten.IsKeyPressed, func(btn ebiten.StandardGamepadButton) bool {
		for _, id := range gamepadIDs {
			if ebiten.IsStandardGamepadLayoutAvailable(id) && ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
		return false
	})

	if inpututil.IsKeyJustPressed(cfg.Input.ToggleHitboxes) {
		level.ShowHitboxes = !level.ShowHitboxes
		setHitboxDebug(ecs, level.ShowHitboxes)
	}
}

// sampleKeys builds the held-key set from the bindings. A logical key is
// down when any of its keys or buttons is.
func sampleKeys(bindings map[physics.Key]cfg.InputBinding, key func(ebiten.Key) bool, button func(ebiten.StandardGamepadButton) bool) physics.KeySet {
	var set physics.KeySet
	for k, binding := range bindings {
		down := false
		for _, ek := range binding.Keys {
			if key(ek) {
				down = true
				break
			}
		}
		for _, btn := range binding.StandardGamepadButtons {
			if down {
				break
			}
			down = button(btn)
		}
		set.Set(k, down)
	}
	return set
}

// setHitboxDebug flips the outline flag on every hitbox in the world.
func setHitboxDebug(ecs *ecs.ECS, on bool) {
	donburi.NewQuery(filter.Contains(components.Collider)).Each(ecs.World, func(e *donburi.Entry) {
		if hb := components.Collider.Get(e).Hitbox; hb != nil {
			hb.Debug = on
		}
	})
	donburi.NewQuery(filter.Contains(components.Actor)).Each(ecs.World, func(e *donburi.Entry) {
		if hb := components.Actor.Get(e).Hitbox; hb != nil {
			hb.Debug = on
		}
	})
}
