package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a vertical bob around BaseY.
type TweenData struct {
	Sequence *gween.Sequence
	BaseY    float64
}

var Tween = donburi.NewComponentType[TweenData]()
