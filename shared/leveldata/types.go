// Package leveldata models the editor's saved entity list and loads it from
// JSON exports or Tiled TMX maps. It has no dependencies on ebitengine,
// donburi or resolv.
package leveldata

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownEntityType = errors.New("unknown entity type")
	ErrInvalidEntity     = errors.New("invalid entity")
	ErrUnknownLevel      = errors.New("unknown level")
)

// EntityType names what an entity is in the level.
type EntityType string

const (
	TypeFloor    EntityType = "floor"
	TypeBuilding EntityType = "building"
	TypePlayer   EntityType = "player"
	TypeFlag     EntityType = "flag"
)

// Valid reports whether t is one of the known entity types.
func (t EntityType) Valid() bool {
	switch t {
	case TypeFloor, TypeBuilding, TypePlayer, TypeFlag:
		return true
	}
	return false
}

// Default player placement used when a level has no player entity.
const (
	DefaultPlayerX      = 100.0
	DefaultPlayerY      = 100.0
	DefaultPlayerWidth  = 50.0
	DefaultPlayerHeight = 50.0
)

// Entity is one placed object. X and Y are the center of the entity, since
// editor sprites are centered on their anchor. Texture is opaque to the
// collision core.
type Entity struct {
	Type    EntityType `json:"type"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
	Width   float64    `json:"width"`
	Height  float64    `json:"height"`
	Texture string     `json:"texture,omitempty"`
}

// Validate checks the fields the collision core relies on.
func (e Entity) Validate() error {
	if !e.Type.Valid() {
		return fmt.Errorf("%q: %w", e.Type, ErrUnknownEntityType)
	}
	for _, v := range [...]float64{e.X, e.Y, e.Width, e.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s at (%g, %g) has non-finite fields: %w", e.Type, e.X, e.Y, ErrInvalidEntity)
		}
	}
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Errorf("%s at (%g, %g) is %gx%g: %w", e.Type, e.X, e.Y, e.Width, e.Height, ErrInvalidEntity)
	}
	return nil
}

// Level is a named entity list.
type Level struct {
	Name     string
	Entities []Entity
}

// FindPlayer returns the first player entity, or the default player when
// the level has none. The bool reports whether the level had one.
func (l *Level) FindPlayer() (Entity, bool) {
	for _, e := range l.Entities {
		if e.Type == TypePlayer {
			return e, true
		}
	}
	return Entity{
		Type:    TypePlayer,
		X:       DefaultPlayerX,
		Y:       DefaultPlayerY,
		Width:   DefaultPlayerWidth,
		Height:  DefaultPlayerHeight,
		Texture: "player",
	}, false
}

// Count returns how many entities of type t the level holds.
func (l *Level) Count(t EntityType) int {
	n := 0
	for _, e := range l.Entities {
		if e.Type == t {
			n++
		}
	}
	return n
}
