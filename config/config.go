package config

import (
	"image/color"

	"github.com/automoto/construct/shared/leveldata"
	"github.com/automoto/construct/shared/physics"
	"github.com/yohamta/donburi/ecs"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PhysicsConfig is the resolver tuning plus how the camera scales the view.
type PhysicsConfig struct {
	physics.Config `yaml:",inline"`

	// CameraZoom scales the level when drawn; physics never sees it.
	CameraZoom float64 `yaml:"cameraZoom"`
}

// HitboxConfig sizes an entity type's hitbox relative to its node. Zero
// width or height means "same as the entity". Offsets are from the node
// origin, which sits at the entity center; an unset offset centers the box
// on that axis.
type HitboxConfig struct {
	OffsetX *float64 `yaml:"offsetX"`
	OffsetY *float64 `yaml:"offsetY"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// Box resolves the override against an entity of size w×h.
func (h HitboxConfig) Box(w, hgt float64) (ox, oy, bw, bh float64) {
	bw, bh = w, hgt
	if h.Width > 0 {
		bw = h.Width
	}
	if h.Height > 0 {
		bh = h.Height
	}
	ox, oy = -bw/2, -bh/2
	if h.OffsetX != nil {
		ox = *h.OffsetX
	}
	if h.OffsetY != nil {
		oy = *h.OffsetY
	}
	return ox, oy, bw, bh
}

// UIConfig contains HUD and debug drawing values
type UIConfig struct {
	HUDMargin     float64
	HUDLineHeight float64

	EntityColors      map[leveldata.EntityType]color.RGBA
	DebugHitboxColors map[physics.Kind]color.RGBA
	ActorHitboxColor  color.RGBA
	BackgroundColor   color.RGBA
}

// FlagConfig controls the idle bob of flag entities.
type FlagConfig struct {
	BobHeight float32
	BobFrames float32
}

// LevelConfig points at where levels are found and saved.
type LevelConfig struct {
	SaveAppName   string
	IndexCellSize int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Hitboxes bool // Outline every hitbox
	Verbose  bool // Development logger
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Hitboxes map[leveldata.EntityType]HitboxConfig
var UI UIConfig
var Flag FlagConfig
var Level LevelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Slate        = color.RGBA{R: 90, G: 100, B: 120, A: 255}
	Brick        = color.RGBA{R: 150, G: 80, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Sky          = color.RGBA{R: 30, G: 34, B: 48, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "construct playtest",
	}

	Physics = PhysicsConfig{
		Config:     physics.DefaultConfig(),
		CameraZoom: 2,
	}

	// Entity-sized boxes everywhere; the player's is a touch narrower so it
	// fits through gaps its sprite only just clears.
	Hitboxes = map[leveldata.EntityType]HitboxConfig{
		leveldata.TypeFloor:    {},
		leveldata.TypeBuilding: {},
		leveldata.TypePlayer:   {Width: 40},
	}

	UI = UIConfig{
		HUDMargin:     6,
		HUDLineHeight: 16,
		EntityColors: map[leveldata.EntityType]color.RGBA{
			leveldata.TypeFloor:    Slate,
			leveldata.TypeBuilding: Brick,
			leveldata.TypePlayer:   LightBlue,
			leveldata.TypeFlag:     Yellow,
		},
		DebugHitboxColors: map[physics.Kind]color.RGBA{
			physics.KindFloor: Green,
			physics.KindWall:  Red,
		},
		ActorHitboxColor: Magenta,
		BackgroundColor:  Sky,
	}

	Flag = FlagConfig{
		BobHeight: 4,
		BobFrames: 45,
	}

	Level = LevelConfig{
		SaveAppName:   "construct",
		IndexCellSize: 64,
	}
}

// Default is the single render layer every entity lives on.
const Default ecs.LayerID = 0
