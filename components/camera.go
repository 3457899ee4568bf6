package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	// Offset mirrors the resolver camera; the level container sits here.
	Offset math.Vec2
	Zoom   float64
}

var Camera = donburi.NewComponentType[CameraData]()
