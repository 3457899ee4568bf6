// Package collision implements polygon hitboxes and the Separating Axis
// Theorem test between them.
package collision

import (
	"fmt"

	"github.com/automoto/construct/shared/geom"
)

// TransformProvider is the scene node a hitbox is attached to. The hitbox
// holds it by reference and asks for the world transform on every query.
type TransformProvider interface {
	WorldTransform() geom.Transform
}

// Hitbox binds a local-space polygon to its owner's transform. A hitbox is
// never shared between owners.
type Hitbox struct {
	Name string

	// Debug asks the renderer to outline this hitbox. Collision ignores it.
	Debug bool

	poly  geom.Polygon
	owner TransformProvider
}

// NewHitbox validates poly and attaches it to owner.
func NewHitbox(poly geom.Polygon, owner TransformProvider) (*Hitbox, error) {
	if owner == nil {
		return nil, ErrNoOwner
	}
	if err := geom.ValidateOutline(poly.Points()); err != nil {
		return nil, fmt.Errorf("hitbox polygon: %w", err)
	}
	return &Hitbox{poly: poly, owner: owner}, nil
}

// NewBox is NewHitbox over geom.MakeBox.
func NewBox(owner TransformProvider, offsetX, offsetY, width, height float64) (*Hitbox, error) {
	poly, err := geom.MakeBox(offsetX, offsetY, width, height)
	if err != nil {
		return nil, fmt.Errorf("hitbox box: %w", err)
	}
	return NewHitbox(poly, owner)
}

func (h *Hitbox) Polygon() geom.Polygon {
	return h.poly
}

func (h *Hitbox) Owner() TransformProvider {
	return h.owner
}

// WorldVertices resolves the outline through the owner's current transform.
// Nothing is cached: an owner moved between two calls in the same tick is
// seen at its new place by the second call.
func (h *Hitbox) WorldVertices() ([]geom.Point2, error) {
	t := h.owner.WorldTransform()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	out := make([]geom.Point2, h.poly.Len())
	for i := range out {
		p := t.Apply(h.poly.At(i))
		if !p.IsFinite() {
			return nil, fmt.Errorf("vertex %d resolved to %v: %w", i, p, geom.ErrOutOfRangeTransform)
		}
		out[i] = p
	}
	return out, nil
}

// WorldBounds returns the AABB of WorldVertices.
func (h *Hitbox) WorldBounds() (geom.Rect, error) {
	v, err := h.WorldVertices()
	if err != nil {
		return geom.Rect{}, err
	}
	return geom.BoundsOf(v), nil
}
