package physics

import (
	"fmt"
	"math"
	"sort"

	"github.com/automoto/construct/shared/collision"
	"github.com/automoto/construct/shared/geom"
	"github.com/solarlune/resolv"
)

// Kind is the role a collider plays for the resolver. It doubles as the
// resolv tag of the collider's index object.
type Kind string

const (
	KindFloor Kind = "floor"
	KindWall  Kind = "wall"
)

// DefaultCellSize is the broad-phase cell edge used when BuildIndex is
// given a non-positive size.
const DefaultCellSize = 32

// Collider is one level hitbox. Hitbox may be nil; such a collider is
// reported and skipped when queried.
type Collider struct {
	Kind   Kind
	Name   string
	Hitbox *collision.Hitbox

	order int
}

func (c *Collider) key() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%s#%d", c.Kind, c.order)
}

// Level is the ordered collider list the resolver reads during a tick.
// Add and BuildIndex must only run between ticks.
type Level struct {
	colliders []*Collider

	space     *resolv.Space
	origin    geom.Point2
	bounds    geom.Rect
	unindexed []*Collider
}

func NewLevel() *Level {
	return &Level{}
}

// Add appends a collider. Any existing index is dropped.
func (l *Level) Add(kind Kind, name string, hitbox *collision.Hitbox) *Collider {
	c := &Collider{Kind: kind, Name: name, Hitbox: hitbox, order: len(l.colliders)}
	l.colliders = append(l.colliders, c)
	l.space = nil
	l.unindexed = nil
	return c
}

func (l *Level) Len() int {
	return len(l.colliders)
}

// Colliders returns the colliders of kind in insertion order.
func (l *Level) Colliders(kind Kind) []*Collider {
	var out []*Collider
	for _, c := range l.colliders {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Indexed reports whether a broad-phase index is current.
func (l *Level) Indexed() bool {
	return l.space != nil
}

// BuildIndex snapshots the colliders' world bounds into a resolv space
// covering all of them. Colliders whose bounds cannot be resolved stay out
// of the space and are always returned by Candidates, so the resolver still
// sees and reports them.
func (l *Level) BuildIndex(cellSize int) {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	l.space = nil
	l.unindexed = nil

	type placed struct {
		c *Collider
		r geom.Rect
	}
	var (
		items  []placed
		bounds geom.Rect
	)
	for _, c := range l.colliders {
		if c.Hitbox == nil {
			l.unindexed = append(l.unindexed, c)
			continue
		}
		r, err := c.Hitbox.WorldBounds()
		if err != nil {
			l.unindexed = append(l.unindexed, c)
			continue
		}
		if len(items) == 0 {
			bounds = r
		} else {
			bounds = bounds.Union(r)
		}
		items = append(items, placed{c, r})
	}
	if len(items) == 0 {
		return
	}

	// One spare cell on every side keeps edge colliders inside the grid.
	pad := float64(cellSize)
	l.origin = geom.Point2{X: math.Floor(bounds.MinX - pad), Y: math.Floor(bounds.MinY - pad)}
	l.bounds = geom.Rect{
		MinX: l.origin.X,
		MinY: l.origin.Y,
		MaxX: math.Ceil(bounds.MaxX + pad),
		MaxY: math.Ceil(bounds.MaxY + pad),
	}
	space := resolv.NewSpace(int(l.bounds.Width()), int(l.bounds.Height()), cellSize, cellSize)
	for _, it := range items {
		obj := l.object(it.r, string(it.c.Kind))
		obj.Data = it.c
		space.Add(obj)
	}
	l.space = space
}

// Candidates returns the colliders of kind whose indexed bounds may touch
// r, in insertion order. Without an index, or when r reaches outside the
// indexed region, every collider of kind is returned.
func (l *Level) Candidates(kind Kind, r geom.Rect) []*Collider {
	if l.space == nil || !l.bounds.Contains(r) {
		return l.Colliders(kind)
	}

	// resolv cells are inclusive of the object's last pixel only, so grow
	// the probe a unit to catch neighbours that merely touch r.
	probe := l.object(geom.Rect{MinX: r.MinX - 1, MinY: r.MinY - 1, MaxX: r.MaxX + 1, MaxY: r.MaxY + 1}, "probe")
	l.space.Add(probe)
	check := probe.Check(0, 0, string(kind))
	l.space.Remove(probe)

	var out []*Collider
	if check != nil {
		for _, obj := range check.ObjectsByTags(string(kind)) {
			if c, ok := obj.Data.(*Collider); ok {
				out = append(out, c)
			}
		}
	}
	for _, c := range l.unindexed {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].order < out[j].order })
	return out
}

func (l *Level) object(r geom.Rect, tag string) *resolv.Object {
	x, y := r.MinX-l.origin.X, r.MinY-l.origin.Y
	w, h := math.Max(r.Width(), 1), math.Max(r.Height(), 1)
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}
