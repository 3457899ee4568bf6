package config

import (
	"strings"
	"testing"

	"github.com/automoto/construct/shared/leveldata"
	"github.com/automoto/construct/shared/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keep restores the package globals after a test mutates them.
func keep(t *testing.T) {
	t.Helper()
	p, h := Physics, Hitboxes
	t.Cleanup(func() { Physics, Hitboxes = p, h })
}

func TestDefaults(t *testing.T) {
	require.NoError(t, Physics.Validate())
	assert.Equal(t, 0.5, Physics.Gravity)
	assert.Equal(t, 50.0, Physics.StepScale)
	assert.Equal(t, 2.0, Physics.CameraZoom)
	assert.Contains(t, Input.Bindings, physics.KeyJump)
}

func TestLoadPhysicsYAMLOverlays(t *testing.T) {
	keep(t)
	doc := `
physics:
  gravity: 0.8
  cameraZoom: 1.5
hitboxes:
  building: {width: 30}
`
	require.NoError(t, LoadPhysicsYAML(strings.NewReader(doc)))

	assert.Equal(t, 0.8, Physics.Gravity)
	assert.Equal(t, 1.5, Physics.CameraZoom)
	assert.Equal(t, 5.0, Physics.MoveSpeed, "unset fields keep their value")
	assert.Equal(t, 30.0, Hitboxes[leveldata.TypeBuilding].Width)
	assert.Equal(t, 40.0, Hitboxes[leveldata.TypePlayer].Width)
}

func TestLoadPhysicsYAMLEmptyDocument(t *testing.T) {
	keep(t)
	before := Physics
	require.NoError(t, LoadPhysicsYAML(strings.NewReader("")))
	assert.Equal(t, before, Physics)
}

func TestLoadPhysicsYAMLRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"step scale", "physics: {stepScale: 0}"},
		{"lerp", "physics: {cameraLerp: 2}"},
		{"zoom", "physics: {cameraZoom: -1}"},
		{"tolerance", "physics: {snapTolerance: -0.1}"},
		{"entity type", "hitboxes: {lava: {width: 3}}"},
		{"hitbox size", "hitboxes: {player: {height: -3}}"},
		{"hitbox offset", "hitboxes: {player: {offsetX: .nan}}"},
		{"syntax", "physics: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep(t)
			before := Physics
			assert.Error(t, LoadPhysicsYAML(strings.NewReader(tt.doc)))
			assert.Equal(t, before, Physics, "failed load leaves config untouched")
		})
	}
}

func TestHitboxBox(t *testing.T) {
	ox, oy, w, h := HitboxConfig{}.Box(50, 20)
	assert.Equal(t, [4]float64{-25, -10, 50, 20}, [4]float64{ox, oy, w, h})

	ox, oy, w, h = HitboxConfig{Width: 40}.Box(50, 50)
	assert.Equal(t, [4]float64{-20, -25, 40, 50}, [4]float64{ox, oy, w, h})

	ox, oy, w, h = HitboxConfig{OffsetY: ptr(-5), Height: 10}.Box(50, 50)
	assert.Equal(t, [4]float64{-25, -5, 50, 10}, [4]float64{ox, oy, w, h})

	ox, oy, w, h = HitboxConfig{OffsetX: ptr(0), OffsetY: ptr(0), Width: 10, Height: 10}.Box(50, 50)
	assert.Equal(t, [4]float64{0, 0, 10, 10}, [4]float64{ox, oy, w, h})
}

func TestLoadPhysicsYAMLZeroOffsetIsExplicit(t *testing.T) {
	keep(t)
	doc := `
hitboxes:
  flag: {offsetX: 0, offsetY: 0, width: 10, height: 20}
`
	require.NoError(t, LoadPhysicsYAML(strings.NewReader(doc)))

	ox, oy, w, h := Hitboxes[leveldata.TypeFlag].Box(30, 60)
	assert.Equal(t, [4]float64{0, 0, 10, 20}, [4]float64{ox, oy, w, h})
}

func ptr(v float64) *float64 { return &v }
