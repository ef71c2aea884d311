package systems

import (
	"github.com/chewxy/math32"

	"github.com/pthm-cable/sandbox/geom"
)

// Motion animates the selection rotation in place.
type Motion struct {
	Active         bool
	ShowTrajectory bool
	AngularSpeed   float32 // Radians per second
}

// Update advances the selection rotation while active. Returns whether the
// rotation changed.
func (m *Motion) Update(t *SelectionTransform, dt float32) bool {
	if !m.Active || !t.HasOriginals() || dt <= 0 {
		return false
	}
	t.RotationY = normalizeAngle(t.RotationY + m.AngularSpeed*dt)
	return true
}

// Circle is a horizontal circle in world space.
type Circle struct {
	Center geom.Vec3
	Radius float32
}

// Point returns the circle point at angle a.
func (c Circle) Point(a float32) geom.Vec3 {
	s, co := math32.Sincos(a)
	return geom.Vec3{X: c.Center.X + c.Radius*co, Y: c.Center.Y, Z: c.Center.Z + c.Radius*s}
}

// Trajectories returns the path each selected particle follows as the
// rotation sweeps a full turn, in member ID order.
func Trajectories(t *SelectionTransform) []Circle {
	c, ok := t.Centroid()
	if !ok {
		return nil
	}
	out := make([]Circle, 0, len(t.order))
	for _, e := range t.order {
		rel := t.originals[e].Sub(c).Mul(t.Scale)
		out = append(out, Circle{
			Center: geom.Vec3{X: c.X + t.Offset.X, Y: c.Y + rel.Y + t.Offset.Y, Z: c.Z + t.Offset.Z},
			Radius: math32.Sqrt(rel.X*rel.X + rel.Z*rel.Z),
		})
	}
	return out
}
