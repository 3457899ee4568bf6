package components

import (
	stdmath "math"

	"github.com/automoto/construct/shared/geom"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// EntryNode exposes an entry's donburi transform to the collision core.
// It is what hitboxes and the physics actor hold as their owner.
type EntryNode struct {
	Entry *donburi.Entry
}

func NewEntryNode(e *donburi.Entry) *EntryNode {
	return &EntryNode{Entry: e}
}

// WorldTransform folds the entry's transform ancestry. donburi keeps
// rotation in degrees.
func (n *EntryNode) WorldTransform() geom.Transform {
	p := transform.WorldPosition(n.Entry)
	s := transform.WorldScale(n.Entry)
	return geom.Transform{
		Position: geom.Point2{X: p.X, Y: p.Y},
		Scale:    geom.Point2{X: s.X, Y: s.Y},
		Rotation: transform.WorldRotation(n.Entry) * stdmath.Pi / 180,
	}
}

func (n *EntryNode) LocalPosition() geom.Point2 {
	p := transform.Transform.Get(n.Entry).LocalPosition
	return geom.Point2{X: p.X, Y: p.Y}
}

func (n *EntryNode) SetLocalPosition(p geom.Point2) {
	transform.Transform.Get(n.Entry).LocalPosition = math.NewVec2(p.X, p.Y)
}
