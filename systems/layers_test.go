package systems

import (
	"testing"

	"github.com/pthm-cable/sandbox/geom"
)

func TestBoundsLayerReprojects(t *testing.T) {
	p, _ := newScene()
	e := p.Spawn(geom.V3(0, 1.5, 0), geom.V3(1, 0.5, 0.5), 0.1)

	var layer BoundsLayer
	b := Bounds{X: 10, Z: 10, YHeight: 1}
	if !layer.Update(p, b) {
		t.Fatal("first update should write positions")
	}
	vecNear(t, "bounds 10", mustPos(t, p, e), geom.V3(5, 1.5, 0))

	if layer.Update(p, b) {
		t.Error("unchanged bounds should not rewrite")
	}

	b.X = 20
	if !layer.Update(p, b) {
		t.Fatal("changed bounds should rewrite")
	}
	vecNear(t, "bounds 20", mustPos(t, p, e), geom.V3(10, 1.5, 0))
}

func TestGroupLayerScenario(t *testing.T) {
	p, _ := newScene()
	b := Bounds{X: 10, Z: 10, YHeight: 1}
	// Base world (1, 1.5, 0)
	e := p.Spawn(geom.Vec3{}, geom.V3(0.6, 0.5, 0.5), 0.1)

	var layer GroupLayer
	g := GroupTransform{Offset: geom.V3(5, 0, 0), Scale: 2}
	if !layer.Update(p, b, g, false) {
		t.Fatal("first update should write positions")
	}
	vecNear(t, "final", mustPos(t, p, e), geom.V3(7, 3, 0))

	if layer.Update(p, b, g, false) {
		t.Error("unchanged group should not rewrite")
	}
	if !layer.Update(p, b, g, true) {
		t.Error("forced update should rewrite")
	}
}

func TestGroupLayerDoesNotCompound(t *testing.T) {
	p, _ := newScene()
	b := Bounds{X: 10, Z: 10, YHeight: 1}
	e := p.Spawn(geom.Vec3{}, geom.V3(0.6, 0.5, 0.5), 0.1)

	var layer GroupLayer
	layer.Update(p, b, GroupTransform{Scale: 3}, false)
	layer.Update(p, b, GroupTransform{Scale: 2, Offset: geom.V3(5, 0, 0)}, false)
	vecNear(t, "final", mustPos(t, p, e), geom.V3(7, 3, 0))
}
