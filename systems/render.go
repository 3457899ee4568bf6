package systems

import (
	"image/color"

	"github.com/automoto/construct/components"
	cfg "github.com/automoto/construct/config"
	"github.com/automoto/construct/shared/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/features/transform"
)

var entityQuery = donburi.NewQuery(filter.Contains(components.Entity, transform.Transform))

// view maps world coordinates to the screen: the container already carries
// the camera offset, so world origin lands on the screen center.
type view struct {
	zoom   float64
	cx, cy float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return view{}, false
	}
	zoom := components.Camera.Get(levelEntry).Zoom
	// Safety check for zero zoom
	if zoom <= 0 {
		zoom = 1
	}
	b := screen.Bounds()
	return view{zoom: zoom, cx: float64(b.Dx()) / 2, cy: float64(b.Dy()) / 2}, true
}

func (v view) point(p geom.Point2) (float32, float32) {
	return float32(p.X*v.zoom + v.cx), float32(p.Y*v.zoom + v.cy)
}

// DrawLevel fills every entity's rectangle in its type color.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	entityQuery.Each(ecs.World, func(e *donburi.Entry) {
		ent := components.Entity.Get(e)
		c := transform.WorldPosition(e)
		x, y := v.point(geom.Point2{X: c.X - ent.Width/2, Y: c.Y - ent.Height/2})
		clr, ok := cfg.UI.EntityColors[ent.Type]
		if !ok {
			clr = cfg.White
		}
		vector.DrawFilledRect(screen, x, y, float32(ent.Width*v.zoom), float32(ent.Height*v.zoom), clr, false)
	})
}

// DrawHitboxes outlines every hitbox whose Debug flag is set.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	donburi.NewQuery(filter.Contains(components.Collider)).Each(ecs.World, func(e *donburi.Entry) {
		col := components.Collider.Get(e)
		if col.Hitbox == nil || !col.Hitbox.Debug {
			return
		}
		strokeOutline(screen, v, col.Hitbox.WorldVertices, cfg.UI.DebugHitboxColors[col.Kind])
	})
	donburi.NewQuery(filter.Contains(components.Actor)).Each(ecs.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		if actor.Hitbox == nil || !actor.Hitbox.Debug {
			return
		}
		strokeOutline(screen, v, actor.Hitbox.WorldVertices, cfg.UI.ActorHitboxColor)
	})
}

func strokeOutline(screen *ebiten.Image, v view, vertices func() ([]geom.Point2, error), clr color.Color) {
	pts, err := vertices()
	if err != nil {
		return
	}
	for i := range pts {
		x0, y0 := v.point(pts[i])
		x1, y1 := v.point(pts[(i+1)%len(pts)])
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, false)
	}
}
