package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sandbox/camera"
	"github.com/pthm-cable/sandbox/config"
	"github.com/pthm-cable/sandbox/geom"
)

// newScene creates an empty particle store and selection.
func newScene() (*Particles, *Selection) {
	return NewParticles(ecs.NewWorld()), NewSelection()
}

// spawnAt creates a particle at a world position with a centered base.
func spawnAt(p *Particles, pos geom.Vec3) ecs.Entity {
	return p.Spawn(pos, geom.V3(0.5, 0.5, 0.5), 0.1)
}

// frontCamera looks down -Z from (0, 0, 15) into an 800x600 viewport.
func frontCamera(t *testing.T) *camera.Camera {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cam := camera.New(cfg.Camera, geom.Rect{W: 800, H: 600})
	cam.ApplyPreset(camera.PresetFront)
	return cam
}

func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func vecNear(t *testing.T, label string, got, want geom.Vec3) {
	t.Helper()
	if !got.ApproxEqual(want, 1e-4) {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

func mustPos(t *testing.T, p *Particles, e ecs.Entity) geom.Vec3 {
	t.Helper()
	pos, ok := p.Position(e)
	if !ok {
		t.Fatalf("entity %v is not alive", e)
	}
	return pos
}
