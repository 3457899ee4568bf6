package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/automoto/construct/shared/leveldata"
	"gopkg.in/yaml.v3"
)

// overrides is the YAML document LoadPhysicsYAML accepts:
//
//	physics:
//	  gravity: 0.6
//	  cameraZoom: 1.5
//	hitboxes:
//	  player: {width: 36, height: 48}
type overrides struct {
	Physics  PhysicsConfig                          `yaml:"physics"`
	Hitboxes map[leveldata.EntityType]HitboxConfig `yaml:"hitboxes"`
}

// LoadPhysicsYAML overlays r onto Physics and Hitboxes. Fields the document
// leaves out keep their current value. Nothing is changed when the document
// fails to parse or validate.
func LoadPhysicsYAML(r io.Reader) error {
	doc := overrides{
		Physics:  Physics,
		Hitboxes: make(map[leveldata.EntityType]HitboxConfig, len(Hitboxes)),
	}
	for k, v := range Hitboxes {
		doc.Hitboxes[k] = v
	}

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode physics config: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}

	Physics = doc.Physics
	Hitboxes = doc.Hitboxes
	return nil
}

// LoadPhysicsFile is LoadPhysicsYAML over a file on disk.
func LoadPhysicsFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open physics config: %w", err)
	}
	defer f.Close()
	return LoadPhysicsYAML(f)
}

func (o overrides) validate() error {
	if err := o.Physics.Validate(); err != nil {
		return err
	}
	if !(o.Physics.CameraZoom > 0) {
		return fmt.Errorf("cameraZoom must be positive, got %v", o.Physics.CameraZoom)
	}
	for typ, h := range o.Hitboxes {
		if !typ.Valid() {
			return fmt.Errorf("hitboxes: %q: %w", typ, leveldata.ErrUnknownEntityType)
		}
		if h.Width < 0 || h.Height < 0 {
			return fmt.Errorf("hitboxes: %s has negative size", typ)
		}
		for _, off := range []*float64{h.OffsetX, h.OffsetY} {
			if off != nil && (math.IsNaN(*off) || math.IsInf(*off, 0)) {
				return fmt.Errorf("hitboxes: %s offset %v is not finite", typ, *off)
			}
		}
	}
	return nil
}
