package leveldata

import (
	"bytes"
	_ "embed"
	"fmt"
)

// FallbackName is the name of the built-in level used when a scene is
// created without one.
const FallbackName = "fallback"

//go:embed levels/fallback.json
var fallbackJSON []byte

// Fallback returns a fresh copy of the built-in level.
func Fallback() *Level {
	entities, err := Decode(bytes.NewReader(fallbackJSON))
	if err != nil {
		panic(fmt.Sprintf("embedded fallback level is invalid: %v", err))
	}
	return &Level{Name: FallbackName, Entities: entities}
}

// OrFallback returns l, or the fallback level when l is nil.
func OrFallback(l *Level) *Level {
	if l == nil {
		return Fallback()
	}
	return l
}
