package archetypes

import (
	"github.com/automoto/construct/components"
	cfg "github.com/automoto/construct/config"
	"github.com/automoto/construct/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

var (
	Level = newArchetype(
		components.Level,
		components.Camera,
		transform.Transform,
	)
	Floor = newArchetype(
		tags.Floor,
		transform.Transform,
		components.Entity,
		components.Collider,
	)
	Building = newArchetype(
		tags.Building,
		transform.Transform,
		components.Entity,
		components.Collider,
	)
	Player = newArchetype(
		tags.Player,
		transform.Transform,
		components.Entity,
		components.Actor,
	)
	Flag = newArchetype(
		tags.Flag,
		transform.Transform,
		components.Entity,
		components.Tween,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
