package systems

import (
	"testing"

	"github.com/pthm-cable/sandbox/geom"
)

func TestMotionInactive(t *testing.T) {
	p, sel := newScene()
	sel.Add(spawnAt(p, geom.V3(1, 1, 0)))
	tr := NewSelectionTransform()
	tr.Capture(p, sel)

	m := Motion{AngularSpeed: 1}
	if m.Update(tr, 0.5) {
		t.Error("inactive motion should not update")
	}
	if tr.RotationY != 0 {
		t.Errorf("RotationY = %v, want 0", tr.RotationY)
	}
}

func TestMotionAdvancesRotation(t *testing.T) {
	p, sel := newScene()
	sel.Add(spawnAt(p, geom.V3(1, 1, 0)))
	sel.Add(spawnAt(p, geom.V3(-1, 1, 0)))
	tr := NewSelectionTransform()
	tr.Capture(p, sel)

	m := Motion{Active: true, AngularSpeed: 2}
	if !m.Update(tr, 0.25) {
		t.Fatal("active motion should update")
	}
	if !approxEq(tr.RotationY, 0.5) {
		t.Errorf("RotationY = %v, want 0.5", tr.RotationY)
	}
}

func TestMotionNoSelection(t *testing.T) {
	tr := NewSelectionTransform()
	m := Motion{Active: true, AngularSpeed: 1}
	if m.Update(tr, 1) {
		t.Error("motion without originals should not update")
	}
}

func TestTrajectories(t *testing.T) {
	p, sel := newScene()
	sel.Add(spawnAt(p, geom.V3(0, 1, 0)))
	sel.Add(spawnAt(p, geom.V3(2, 3, 0)))
	tr := NewSelectionTransform()
	tr.Capture(p, sel)
	tr.Scale = geom.V3(2, 1, 1)
	tr.Offset = geom.V3(0, 0, 4)

	circles := Trajectories(tr)
	if len(circles) != 2 {
		t.Fatalf("got %d circles, want 2", len(circles))
	}
	// Centroid (1, 2, 0); relative X of each member is +-1, doubled by scale
	for i, want := range []geom.Vec3{geom.V3(1, 1, 4), geom.V3(1, 3, 4)} {
		vecNear(t, "center", circles[i].Center, want)
		if !approxEq(circles[i].Radius, 2) {
			t.Errorf("circle %d radius = %v, want 2", i, circles[i].Radius)
		}
	}

	// Applying any rotation keeps each particle on its circle
	tr.RotationY = 1.1
	tr.Apply(p, sel)
	for i := range circles {
		pos := mustPos(t, p, tr.order[i])
		d := geom.Vec2{X: pos.X - circles[i].Center.X, Y: pos.Z - circles[i].Center.Z}
		if !approxEq(d.Len(), circles[i].Radius) || !approxEq(pos.Y, circles[i].Center.Y) {
			t.Errorf("particle %d at %v is off its trajectory", i, pos)
		}
	}
}

func TestTrajectoriesEmpty(t *testing.T) {
	if got := Trajectories(NewSelectionTransform()); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestCirclePoint(t *testing.T) {
	c := Circle{Center: geom.V3(1, 2, 3), Radius: 2}
	vecNear(t, "Point(0)", c.Point(0), geom.V3(3, 2, 3))
}
