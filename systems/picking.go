package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sandbox/components"
	"github.com/pthm-cable/sandbox/geom"
)

// View is the camera surface the selection passes need.
type View interface {
	PickRay(vx, vy float32) geom.Ray
	WorldToViewport(p geom.Vec3) (geom.Vec2, bool)
}

// PickNearest returns the particle whose sphere the ray passes through
// closest to its origin. Particles behind the origin are ignored.
func PickNearest(p *Particles, ray geom.Ray) (ecs.Entity, bool) {
	var best ecs.Entity
	bestT := float32(0)
	found := false

	query := p.filter.Query()
	for query.Next() {
		pos, _, part, _ := query.Get()
		t, d2 := ray.ClosestApproach(pos.Vec())
		if t < 0 || d2 >= part.Radius*part.Radius {
			continue
		}
		if !found || t < bestT {
			best, bestT, found = query.Entity(), t, true
		}
	}
	return best, found
}

// PickResult describes a toggled particle.
type PickResult struct {
	Entity   ecs.Entity
	Selected bool // Membership after the toggle
}

// PickAt casts a ray from a physical-pixel cursor through the view and
// toggles the nearest hit. Cursors outside the viewport are rejected before
// the ray is built. Membership and tint change together.
func PickAt(p *Particles, sel *Selection, view View, viewport geom.Rect, cursor geom.Vec2) (PickResult, bool) {
	if viewport.Empty() || !viewport.ContainsPixel(cursor) {
		return PickResult{}, false
	}
	local := cursor.Sub(viewport.Origin())
	e, ok := PickNearest(p, view.PickRay(local.X, local.Y))
	if !ok {
		return PickResult{}, false
	}
	selected := sel.Toggle(e)
	if selected {
		p.SetTint(e, components.TintPicked)
	} else {
		p.SetTint(e, components.TintNone)
	}
	return PickResult{Entity: e, Selected: selected}, true
}
