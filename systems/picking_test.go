package systems

import (
	"testing"

	"github.com/pthm-cable/sandbox/components"
	"github.com/pthm-cable/sandbox/geom"
)

func TestPickNearestSingleHit(t *testing.T) {
	p, _ := newScene()
	cam := frontCamera(t)
	target := spawnAt(p, geom.Vec3{})
	spawnAt(p, geom.V3(3, 0, 0))

	ray := cam.PickRay(400, 300)
	got, ok := PickNearest(p, ray)
	if !ok || got != target {
		t.Errorf("PickNearest = %v, %v, want %v", got, ok, target)
	}
}

func TestPickNearestPrefersCloser(t *testing.T) {
	p, _ := newScene()
	cam := frontCamera(t)
	far := spawnAt(p, geom.Vec3{})
	closer := spawnAt(p, geom.V3(0, 0, 5))

	got, ok := PickNearest(p, cam.PickRay(400, 300))
	if !ok || got != closer {
		t.Errorf("expected closer particle %v, got %v (far %v)", closer, got, far)
	}
}

func TestPickNearestIgnoresBehind(t *testing.T) {
	p, _ := newScene()
	cam := frontCamera(t)
	spawnAt(p, geom.V3(0, 0, 20)) // Behind the eye at z=15

	if _, ok := PickNearest(p, cam.PickRay(400, 300)); ok {
		t.Error("particle behind the ray origin should not be hit")
	}
}

func TestPickNearestMiss(t *testing.T) {
	p, _ := newScene()
	cam := frontCamera(t)
	spawnAt(p, geom.Vec3{})

	if _, ok := PickNearest(p, cam.PickRay(10, 10)); ok {
		t.Error("ray through the corner should miss the origin particle")
	}
}

func TestPickAtTogglesAndTints(t *testing.T) {
	p, sel := newScene()
	cam := frontCamera(t)
	e := spawnAt(p, geom.Vec3{})

	// Viewport offset inside the window
	viewport := geom.Rect{X: 100, Y: 50, W: 800, H: 600}
	cam.SetViewport(viewport)
	cursor := geom.Vec2{X: 500, Y: 350}

	res, ok := PickAt(p, sel, cam, viewport, cursor)
	if !ok || res.Entity != e || !res.Selected {
		t.Fatalf("first pick = %+v, %v", res, ok)
	}
	_, _, _, tint, _ := p.Components(e)
	if !sel.Contains(e) || *tint != components.TintPicked {
		t.Errorf("after select: member=%v tint=%v", sel.Contains(e), *tint)
	}

	res, ok = PickAt(p, sel, cam, viewport, cursor)
	if !ok || res.Selected {
		t.Fatalf("second pick = %+v, %v", res, ok)
	}
	if sel.Contains(e) || *tint != components.TintNone {
		t.Errorf("after deselect: member=%v tint=%v", sel.Contains(e), *tint)
	}
}

func TestPickAtOutsideViewport(t *testing.T) {
	p, sel := newScene()
	cam := frontCamera(t)
	spawnAt(p, geom.Vec3{})

	viewport := geom.Rect{X: 100, Y: 50, W: 800, H: 600}
	cam.SetViewport(viewport)
	if _, ok := PickAt(p, sel, cam, viewport, geom.Vec2{X: 50, Y: 350}); ok {
		t.Error("cursor left of the viewport should be rejected")
	}
	if _, ok := PickAt(p, sel, cam, viewport, geom.Vec2{X: 900, Y: 350}); ok {
		t.Error("cursor on the right viewport edge should be rejected")
	}
	if sel.Len() != 0 {
		t.Error("rejected pick should not change the selection")
	}
}
