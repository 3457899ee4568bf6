// Package scene provides a minimal transform tree. It stands in for the
// rendering engine's scene graph wherever the collision core runs without
// one, such as tests and headless tools.
package scene

import "github.com/automoto/construct/shared/geom"

// Node is a transform-bearing scene node with an optional parent.
// The zero value is not usable; create nodes with NewNode.
type Node struct {
	Name     string
	Position geom.Point2
	Scale    geom.Point2
	Rotation float64

	parent   *Node
	children []*Node
}

// NewNode returns a node at (x, y) with unit scale.
func NewNode(name string, x, y float64) *Node {
	return &Node{
		Name:     name,
		Position: geom.Point2{X: x, Y: y},
		Scale:    geom.Point2{X: 1, Y: 1},
	}
}

// AddChild re-parents child under n, keeping child's local placement.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child if it belongs to n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildByName returns the first direct child with the given name.
func (n *Node) ChildByName(name string) (*Node, bool) {
	for _, c := range n.children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// LocalTransform returns the node's placement relative to its parent.
func (n *Node) LocalTransform() geom.Transform {
	return geom.Transform{Position: n.Position, Scale: n.Scale, Rotation: n.Rotation}
}

// WorldTransform walks up the parent chain every call, so the result always
// reflects the current positions of the node and its ancestors.
func (n *Node) WorldTransform() geom.Transform {
	local := n.LocalTransform()
	if n.parent == nil {
		return local
	}
	return n.parent.WorldTransform().Compose(local)
}

// LocalPosition and SetLocalPosition address the position in the parent's
// space, which is where the physics resolver moves actors.
func (n *Node) LocalPosition() geom.Point2 {
	return n.Position
}

func (n *Node) SetLocalPosition(p geom.Point2) {
	n.Position = p
}
