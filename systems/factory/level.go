package factory

import (
	"github.com/automoto/construct/archetypes"
	"github.com/automoto/construct/components"
	cfg "github.com/automoto/construct/config"
	"github.com/automoto/construct/shared/leveldata"
	"github.com/automoto/construct/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"go.uber.org/zap"
)

// CreateLevel spawns the level container and every entity of level under
// it. A nil level plays the fallback dataset. The container also carries
// the camera and the physics state for mode.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, mode physics.Mode, logger *zap.Logger) *donburi.Entry {
	if logger == nil {
		logger = zap.NewNop()
	}
	level = leveldata.OrFallback(level)

	root := archetypes.Level.Spawn(ecs)
	t := transform.Transform.Get(root)
	t.LocalScale = math.NewVec2(1, 1)

	levelData := &components.LevelData{
		Source:       level,
		Mode:         mode,
		Physics:      physics.NewLevel(),
		Resolver:     physics.NewResolver(cfg.Physics.Config, logger.Named("physics")),
		ShowHitboxes: cfg.Debug.Hitboxes,
	}
	components.Level.Set(root, levelData)
	components.Camera.SetValue(root, components.CameraData{Zoom: cfg.Physics.CameraZoom})

	var player *donburi.Entry
	for i, e := range level.Entities {
		switch e.Type {
		case leveldata.TypeFloor:
			CreateFloor(ecs, root, levelData.Physics, i, e, logger)
		case leveldata.TypeBuilding:
			CreateBuilding(ecs, root, levelData.Physics, i, e, logger)
		case leveldata.TypeFlag:
			CreateFlag(ecs, root, e)
		case leveldata.TypePlayer:
			if player != nil {
				logger.Warn("extra player entity ignored", zap.Int("index", i))
				continue
			}
			player = CreatePlayer(ecs, root, e, logger)
		}
	}
	if player == nil {
		def, _ := level.FindPlayer()
		player = CreatePlayer(ecs, root, def, logger)
	}

	levelData.Physics.BuildIndex(cfg.Level.IndexCellSize)
	actor := components.Actor.Get(player)
	if actor.Body != nil {
		levelData.Resolver.Camera.Snap(actor.Body.LocalPosition())
	}

	logger.Info("level created",
		zap.String("level", level.Name),
		zap.Stringer("mode", mode),
		zap.Int("entities", len(level.Entities)),
		zap.Int("colliders", levelData.Physics.Len()),
	)
	return root
}
