package factory

import (
	"fmt"

	"github.com/automoto/construct/archetypes"
	"github.com/automoto/construct/components"
	cfg "github.com/automoto/construct/config"
	"github.com/automoto/construct/shared/collision"
	"github.com/automoto/construct/shared/leveldata"
	"github.com/automoto/construct/shared/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"go.uber.org/zap"
)

func CreateFloor(ecs *ecs.ECS, root *donburi.Entry, lvl *physics.Level, index int, e leveldata.Entity, logger *zap.Logger) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)
	place(root, floor, e)
	attachCollider(floor, lvl, physics.KindFloor, fmt.Sprintf("floor-%d", index), e, logger)
	return floor
}

// CreateBuilding spawns a building. Buildings are the walls of the level.
func CreateBuilding(ecs *ecs.ECS, root *donburi.Entry, lvl *physics.Level, index int, e leveldata.Entity, logger *zap.Logger) *donburi.Entry {
	building := archetypes.Building.Spawn(ecs)
	place(root, building, e)
	attachCollider(building, lvl, physics.KindWall, fmt.Sprintf("building-%d", index), e, logger)
	return building
}

func CreatePlayer(ecs *ecs.ECS, root *donburi.Entry, e leveldata.Entity, logger *zap.Logger) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	place(root, player, e)

	node := components.NewEntryNode(player)
	actor := &physics.Actor{Name: "player", Body: node}
	hb, err := newHitbox(node, e)
	if err != nil {
		// The resolver skips an actor without a hitbox and says so once.
		logger.Warn("player has no hitbox", zap.Error(err))
	} else {
		hb.Name = actor.Name
		actor.Hitbox = hb
	}
	components.Actor.SetValue(player, components.ActorData{Actor: actor})
	return player
}

// CreateFlag spawns a flag that bobs in place.
func CreateFlag(ecs *ecs.ECS, root *donburi.Entry, e leveldata.Entity) *donburi.Entry {
	flag := archetypes.Flag.Spawn(ecs)
	place(root, flag, e)

	// The flag moves using a *gween.Sequence of tweens, up and back down.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, -cfg.Flag.BobHeight, cfg.Flag.BobFrames, ease.InOutSine),
		gween.New(-cfg.Flag.BobHeight, 0, cfg.Flag.BobFrames, ease.InOutSine),
	)
	components.Tween.SetValue(flag, components.TweenData{Sequence: tw, BaseY: e.Y})
	return flag
}

// place sets the entity data and parents entry under root at the entity's
// center.
func place(root, entry *donburi.Entry, e leveldata.Entity) {
	components.Entity.SetValue(entry, components.EntityData{Entity: e})
	t := transform.Transform.Get(entry)
	t.LocalPosition = math.NewVec2(e.X, e.Y)
	t.LocalScale = math.NewVec2(1, 1)
	transform.AppendChild(root, entry, false)
}

func attachCollider(entry *donburi.Entry, lvl *physics.Level, kind physics.Kind, name string, e leveldata.Entity, logger *zap.Logger) {
	hb, err := newHitbox(components.NewEntryNode(entry), e)
	if err != nil {
		// Registered anyway; the resolver reports and skips it.
		logger.Warn("collider has no hitbox", zap.String("collider", name), zap.Error(err))
	} else {
		hb.Name = name
	}
	components.Collider.SetValue(entry, components.ColliderData{Kind: kind, Name: name, Hitbox: hb})
	lvl.Add(kind, name, hb)
}

func newHitbox(owner collision.TransformProvider, e leveldata.Entity) (*collision.Hitbox, error) {
	ox, oy, w, h := cfg.Hitboxes[e.Type].Box(e.Width, e.Height)
	hb, err := collision.NewBox(owner, ox, oy, w, h)
	if err != nil {
		return nil, fmt.Errorf("%s at (%g, %g): %w", e.Type, e.X, e.Y, err)
	}
	hb.Debug = cfg.Debug.Hitboxes
	return hb, nil
}
