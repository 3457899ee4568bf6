// Package physics steps an actor through a level of floor and wall
// hitboxes: horizontal move with wall revert, gravity, ground detection,
// jump, ground snap and a smoothed follow camera. The top-down mode drops
// gravity and reverts both axes together.
package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig wraps every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid physics config")

// Config holds the tunables of one resolver. Rates are per nominal step;
// a tick of length delta advances delta/StepScale steps.
type Config struct {
	Gravity   float64 `yaml:"gravity"`
	MoveSpeed float64 `yaml:"moveSpeed"`
	JumpSpeed float64 `yaml:"jumpSpeed"`
	StepScale float64 `yaml:"stepScale"`

	// SnapTolerance is how far the actor's bottom may sit from a floor top
	// and still be snapped onto it.
	SnapTolerance float64 `yaml:"snapTolerance"`

	// GroundProbe is how far below the actor the ground test looks.
	GroundProbe float64 `yaml:"groundProbe"`

	// CameraLerp is the fraction of the remaining distance the camera
	// covers each tick, regardless of delta.
	CameraLerp float64 `yaml:"cameraLerp"`
}

// DefaultConfig returns the tuning the editor's playtest shipped with.
func DefaultConfig() Config {
	return Config{
		Gravity:       0.5,
		MoveSpeed:     5,
		JumpSpeed:     -10,
		StepScale:     50,
		SnapTolerance: 1,
		GroundProbe:   1,
		CameraLerp:    0.1,
	}
}

func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"gravity", c.Gravity},
		{"moveSpeed", c.MoveSpeed},
		{"jumpSpeed", c.JumpSpeed},
		{"stepScale", c.StepScale},
		{"snapTolerance", c.SnapTolerance},
		{"groundProbe", c.GroundProbe},
		{"cameraLerp", c.CameraLerp},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s is %v: %w", f.name, f.v, ErrInvalidConfig)
		}
	}
	switch {
	case c.StepScale <= 0:
		return fmt.Errorf("stepScale must be positive, got %v: %w", c.StepScale, ErrInvalidConfig)
	case c.CameraLerp <= 0 || c.CameraLerp > 1:
		return fmt.Errorf("cameraLerp must be in (0, 1], got %v: %w", c.CameraLerp, ErrInvalidConfig)
	case c.SnapTolerance < 0:
		return fmt.Errorf("snapTolerance must not be negative, got %v: %w", c.SnapTolerance, ErrInvalidConfig)
	case c.GroundProbe < 0:
		return fmt.Errorf("groundProbe must not be negative, got %v: %w", c.GroundProbe, ErrInvalidConfig)
	case c.MoveSpeed < 0:
		return fmt.Errorf("moveSpeed must not be negative, got %v: %w", c.MoveSpeed, ErrInvalidConfig)
	}
	return nil
}

// Mode selects the per-tick algorithm.
type Mode int

const (
	SideView Mode = iota
	TopView
)

func (m Mode) String() string {
	switch m {
	case SideView:
		return "side"
	case TopView:
		return "top"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "side" or "top".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "side", "sidescroller", "side-view":
		return SideView, nil
	case "top", "topdown", "top-view":
		return TopView, nil
	}
	return SideView, fmt.Errorf("unknown mode %q", s)
}
