package systems

import (
	"testing"

	"github.com/pthm-cable/sandbox/geom"
)

func TestToWorldScenarios(t *testing.T) {
	tests := []struct {
		name string
		n    geom.Vec3
		b    Bounds
		want geom.Vec3
	}{
		{"centered", geom.V3(0.5, 0.5, 0.5), Bounds{X: 10, Z: 10, YHeight: 1}, geom.V3(0, 1.5, 0)},
		{"wider bounds stay centered", geom.V3(0.5, 0.5, 0.5), Bounds{X: 20, Z: 10, YHeight: 1}, geom.V3(0, 1.5, 0)},
		{"max x edge", geom.V3(1, 0.5, 0.5), Bounds{X: 20, Z: 10, YHeight: 1}, geom.V3(10, 1.5, 0)},
		{"floor corner", geom.V3(0, 0, 0), Bounds{X: 4, Z: 6, YHeight: 2}, geom.V3(-2, 1, -3)},
		{"outside unit cube is not clamped", geom.V3(1.5, -1, 0.5), Bounds{X: 10, Z: 10, YHeight: 1}, geom.V3(10, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vecNear(t, "ToWorld", ToWorld(tt.n, tt.b), tt.want)
		})
	}
}

func TestToNormalizedInverse(t *testing.T) {
	b := Bounds{X: 7, Z: 3, YHeight: 2.5}
	for _, n := range []geom.Vec3{
		geom.V3(0, 0, 0),
		geom.V3(0.25, 0.75, 0.5),
		geom.V3(1, 1, 1),
		geom.V3(-0.3, 1.2, 2),
	} {
		vecNear(t, "ToNormalized(ToWorld(n))", ToNormalized(ToWorld(n, b), b), n)
	}
}

func TestToWorldLinearInBounds(t *testing.T) {
	// Position changes continuously and linearly as an extent grows
	n := geom.V3(0.8, 0.3, 0.1)
	prev := ToWorld(n, Bounds{X: 1, Z: 1, YHeight: 1})
	step := ToWorld(n, Bounds{X: 2, Z: 1, YHeight: 1}).X - prev.X
	for x := float32(2); x <= 10; x++ {
		cur := ToWorld(n, Bounds{X: x, Z: 1, YHeight: 1})
		if !approxEq(cur.X-prev.X, step) {
			t.Fatalf("x step at bounds %f = %f, want %f", x, cur.X-prev.X, step)
		}
		prev = cur
	}
}

func TestBoundsClamp(t *testing.T) {
	got := Bounds{X: -5, Z: 0.05, YHeight: 3}.Clamp(MinExtent)
	want := Bounds{X: 0.1, Z: 0.1, YHeight: 3}
	if got != want {
		t.Errorf("Clamp = %+v, want %+v", got, want)
	}
}

func TestBoundsBox(t *testing.T) {
	box := Bounds{X: 4, Z: 2, YHeight: 1}.Box()
	vecNear(t, "Min", box.Min, geom.V3(-2, 1, -1))
	vecNear(t, "Max", box.Max, geom.V3(2, 2, 1))
}
