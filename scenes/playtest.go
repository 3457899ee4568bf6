package scenes

import (
	"sync"

	"github.com/automoto/construct/components"
	cfg "github.com/automoto/construct/config"
	"github.com/automoto/construct/shared/leveldata"
	"github.com/automoto/construct/shared/physics"
	"github.com/automoto/construct/systems"
	factory2 "github.com/automoto/construct/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// PlaytestScene runs one level under the physics resolver. The level is
// handed in at construction; nil plays the fallback dataset.
type PlaytestScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *leveldata.Level
	mode         physics.Mode
	logger       *zap.Logger
	reports      *physics.Reporter
	once         sync.Once
}

// NewSideScrollerScene plays level with gravity, floors and jumping.
func NewSideScrollerScene(sc SceneChanger, level *leveldata.Level) *PlaytestScene {
	return NewPlaytestScene(sc, level, physics.SideView)
}

// NewTopDownScene plays level seen from above: no gravity, buildings block
// movement on both axes.
func NewTopDownScene(sc SceneChanger, level *leveldata.Level) *PlaytestScene {
	return NewPlaytestScene(sc, level, physics.TopView)
}

func NewPlaytestScene(sc SceneChanger, level *leveldata.Level, mode physics.Mode) *PlaytestScene {
	return &PlaytestScene{
		sceneChanger: sc,
		level:        leveldata.OrFallback(level),
		mode:         mode,
		logger:       zap.NewNop(),
		reports:      physics.NewReporter(nil),
	}
}

// WithLogger sets the logger handed to the level's resolver.
func (ps *PlaytestScene) WithLogger(l *zap.Logger) *PlaytestScene {
	if l != nil {
		ps.logger = l
		ps.reports = physics.NewReporter(l.Named("physics"))
	}
	return ps
}

// switched returns a fresh scene for the same level in the other mode.
func (ps *PlaytestScene) switched() *PlaytestScene {
	next := physics.TopView
	if ps.mode == physics.TopView {
		next = physics.SideView
	}
	return NewPlaytestScene(ps.sceneChanger, ps.level, next).
		WithLogger(ps.logger).
		withReports(ps.reports)
}

// withReports carries rep over from the scene being replaced.
func (ps *PlaytestScene) withReports(rep *physics.Reporter) *PlaytestScene {
	if rep != nil {
		ps.reports = rep
	}
	return ps
}

func (ps *PlaytestScene) Mode() physics.Mode {
	return ps.mode
}

func (ps *PlaytestScene) Update() {
	ps.once.Do(ps.configure)

	if inpututil.IsKeyJustPressed(cfg.Input.SwitchMode) {
		ps.sceneChanger.ChangeScene(ps.switched())
		return
	}
	ps.ecs.Update()
}

func (ps *PlaytestScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlaytestScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input is sampled once before physics so the tick sees one snapshot.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateTweens)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ps.ecs = ecs
	root := factory2.CreateLevel(ps.ecs, ps.level, ps.mode, ps.logger)
	components.Level.Get(root).Resolver.UseReporter(ps.reports)
}
