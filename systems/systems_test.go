package systems

import (
	"testing"

	"github.com/automoto/construct/components"
	cfg "github.com/automoto/construct/config"
	"github.com/automoto/construct/shared/geom"
	"github.com/automoto/construct/shared/leveldata"
	"github.com/automoto/construct/shared/physics"
	"github.com/automoto/construct/systems/factory"
	"github.com/automoto/construct/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

// memStore is an in-memory ItemStore.
type memStore map[string][]byte

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = append([]byte(nil), data...)
	return nil
}

func (m memStore) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func useStore(t *testing.T, s ItemStore) {
	t.Helper()
	prev := store
	SetStore(s)
	t.Cleanup(func() { SetStore(prev) })
}

func TestSaveAndLoadLevel(t *testing.T) {
	mem := memStore{}
	useStore(t, mem)

	names, err := SavedLevels()
	require.NoError(t, err)
	assert.Empty(t, names)

	fb := leveldata.Fallback()
	require.NoError(t, SaveLevel("zeta", fb.Entities))
	require.NoError(t, SaveLevel("alpha", fb.Entities[:2]))
	require.NoError(t, SaveLevel("zeta", fb.Entities), "saving again does not duplicate the index entry")

	names, err = SavedLevels()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	l, err := LoadLevel("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", l.Name)
	assert.Equal(t, fb.Entities[:2], l.Entities)
}

func TestLoadLevelErrors(t *testing.T) {
	useStore(t, memStore{})

	_, err := LoadLevel("missing")
	assert.Error(t, err)

	_, err = LoadLevel("../escape")
	assert.Error(t, err)

	assert.Error(t, SaveLevel("", nil))
	assert.Error(t, SaveLevel("bad", []leveldata.Entity{{Type: "lava", Width: 1, Height: 1}}))
}

func TestPersistenceWithoutStore(t *testing.T) {
	useStore(t, nil)

	_, err := SavedLevels()
	assert.ErrorIs(t, err, ErrNoStore)
	assert.ErrorIs(t, SaveLevel("a", nil), ErrNoStore)
	_, err = LoadLevel("a")
	assert.ErrorIs(t, err, ErrNoStore)
}

func TestSampleKeys(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeySpace: true}
	buttons := map[ebiten.StandardGamepadButton]bool{ebiten.StandardGamepadButtonLeftBottom: true}

	set := sampleKeys(cfg.Input.Bindings,
		func(k ebiten.Key) bool { return held[k] },
		func(b ebiten.StandardGamepadButton) bool { return buttons[b] },
	)
	assert.True(t, set.IsDown(physics.KeyLeft))
	assert.True(t, set.IsDown(physics.KeyJump))
	assert.True(t, set.IsDown(physics.KeyDown))
	assert.False(t, set.IsDown(physics.KeyRight))
	assert.False(t, set.IsDown(physics.KeyUp))
}

func newTestWorld(t *testing.T, level *leveldata.Level, mode physics.Mode) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	root := factory.CreateLevel(e, level, mode, nil)
	return e, root
}

func TestCreateLevelFromFallback(t *testing.T) {
	e, root := newTestWorld(t, nil, physics.SideView)
	level := components.Level.Get(root)
	fb := leveldata.Fallback()

	assert.Equal(t, leveldata.FallbackName, level.Source.Name)
	assert.Equal(t, fb.Count(leveldata.TypeFloor), len(level.Physics.Colliders(physics.KindFloor)))
	assert.Equal(t, fb.Count(leveldata.TypeBuilding), len(level.Physics.Colliders(physics.KindWall)))
	assert.Equal(t, 1, donburi.NewQuery(filter.Contains(tags.Player)).Count(e.World))
	assert.Equal(t, fb.Count(leveldata.TypeFlag), donburi.NewQuery(filter.Contains(tags.Flag)).Count(e.World))
	assert.True(t, level.Physics.Indexed())
}

func TestCreateLevelAddsDefaultPlayer(t *testing.T) {
	lvl := &leveldata.Level{Name: "bare", Entities: []leveldata.Entity{
		{Type: leveldata.TypeFloor, X: 200, Y: 160, Width: 400, Height: 20},
	}}
	e, _ := newTestWorld(t, lvl, physics.SideView)

	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	actor := components.Actor.Get(player)
	assert.Equal(t, geom.Pt(leveldata.DefaultPlayerX, leveldata.DefaultPlayerY), actor.Body.LocalPosition())
	require.NotNil(t, actor.Hitbox)
}

// The end-to-end side-view scenario, run through the ECS with the camera
// moving the container every tick.
func TestPhysicsThroughECSLandsOnFloor(t *testing.T) {
	lvl := &leveldata.Level{Name: "drop", Entities: []leveldata.Entity{
		{Type: leveldata.TypeFloor, X: 200, Y: 160, Width: 400, Height: 20},
		{Type: leveldata.TypePlayer, X: 100, Y: 100, Width: 50, Height: 50},
	}}
	e, root := newTestWorld(t, lvl, physics.SideView)
	level := components.Level.Get(root)

	stepPhysics(e, 50)
	UpdateCamera(e)
	player, _ := tags.Player.First(e.World)
	actor := components.Actor.Get(player)
	assert.InDelta(t, 0.5, actor.Velocity.VY, 1e-12)
	assert.InDelta(t, 100.5, actor.Body.LocalPosition().Y, 1e-12)

	for i := 0; i < 40; i++ {
		stepPhysics(e, 50)
		UpdateCamera(e)
	}
	// World coordinates carry the fractional camera offset, so the snap is
	// exact only up to rounding.
	assert.InDelta(t, 125.0, actor.Body.LocalPosition().Y, 1e-9)
	assert.Equal(t, 0.0, actor.Velocity.VY)
	assert.True(t, level.Last.Grounded)

	// The container follows the negated actor position.
	off := transform.Transform.Get(root).LocalPosition
	assert.Less(t, off.Y, 0.0)
	assert.Equal(t, level.Resolver.Camera.Offset.Y, off.Y)
}

func TestTopDownThroughECSRevertsIntoBuilding(t *testing.T) {
	lvl := &leveldata.Level{Name: "box", Entities: []leveldata.Entity{
		{Type: leveldata.TypeBuilding, X: 35, Y: 15, Width: 50, Height: 50},
		{Type: leveldata.TypePlayer, X: 0, Y: 0, Width: 20, Height: 20},
	}}
	prev := cfg.Hitboxes
	cfg.Hitboxes = nil
	t.Cleanup(func() { cfg.Hitboxes = prev })

	e, root := newTestWorld(t, lvl, physics.TopView)
	level := components.Level.Get(root)
	level.Keys = physics.NewKeySet(physics.KeyRight)

	stepPhysics(e, 50)
	player, _ := tags.Player.First(e.World)
	assert.Equal(t, geom.Pt(0, 0), components.Actor.Get(player).Body.LocalPosition())
	assert.True(t, level.Last.Reverted)
	assert.Equal(t, "box  top  moving", hudStatus(level))
}

func TestHitboxToggle(t *testing.T) {
	e, _ := newTestWorld(t, nil, physics.SideView)

	setHitboxDebug(e, true)
	player, _ := tags.Player.First(e.World)
	assert.True(t, components.Actor.Get(player).Hitbox.Debug)

	setHitboxDebug(e, false)
	assert.False(t, components.Actor.Get(player).Hitbox.Debug)
}

func TestUpdateTweensBobsFlags(t *testing.T) {
	e, _ := newTestWorld(t, nil, physics.SideView)
	flag, ok := tags.Flag.First(e.World)
	require.True(t, ok)
	base := components.Tween.Get(flag).BaseY

	for i := 0; i < int(cfg.Flag.BobFrames); i++ {
		UpdateTweens(e)
	}
	y := transform.Transform.Get(flag).LocalPosition.Y
	assert.InDelta(t, base-float64(cfg.Flag.BobHeight), y, 0.01)

	for i := 0; i < 10*int(cfg.Flag.BobFrames); i++ {
		UpdateTweens(e)
	}
	y = transform.Transform.Get(flag).LocalPosition.Y
	assert.GreaterOrEqual(t, y, base-float64(cfg.Flag.BobHeight)-0.01)
	assert.LessOrEqual(t, y, base+0.01)
}
