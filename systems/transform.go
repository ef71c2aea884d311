package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sandbox/geom"
)

// GroupTransform applies to every particle's bounds-derived base position:
// final = base * Scale + Offset.
type GroupTransform struct {
	Offset geom.Vec3
	Scale  float32
}

// IdentityGroup returns the no-op group transform.
func IdentityGroup() GroupTransform {
	return GroupTransform{Scale: 1}
}

// Apply maps a base position through the group transform.
func (g GroupTransform) Apply(base geom.Vec3) geom.Vec3 {
	return base.Scale(g.Scale).Add(g.Offset)
}

// Invert maps a final position back to its base. A zero scale is treated
// as identity.
func (g GroupTransform) Invert(final geom.Vec3) geom.Vec3 {
	if g.Scale == 0 {
		return final.Sub(g.Offset)
	}
	return final.Sub(g.Offset).Scale(1 / g.Scale)
}

// SelectionTransform moves the current selection relative to the centroid
// of the positions captured when the selection last changed. Edits never
// compound because every apply starts from the captured originals.
type SelectionTransform struct {
	Offset    geom.Vec3
	Scale     geom.Vec3
	RotationY float32 // Radians about the vertical axis through the centroid

	originals map[ecs.Entity]geom.Vec3
	order     []ecs.Entity // Members in ID order for deterministic output
	centroid  geom.Vec3
	hash      uint64
	captured  bool
}

// NewSelectionTransform creates a transform at identity with no originals.
func NewSelectionTransform() *SelectionTransform {
	return &SelectionTransform{
		Scale:     geom.One,
		originals: make(map[ecs.Entity]geom.Vec3),
	}
}

// ResetParams returns offset, scale and rotation to identity.
func (t *SelectionTransform) ResetParams() {
	t.Offset = geom.Vec3{}
	t.Scale = geom.One
	t.RotationY = 0
}

// Capture records originals when the selection identity differs from the
// one last captured, and resets the parameters. Membership is compared once
// per call, so an add and remove of the same entity between calls is not a
// change. Returns whether a capture happened.
func (t *SelectionTransform) Capture(p *Particles, sel *Selection) bool {
	h := sel.Hash()
	if t.captured && h == t.hash {
		return false
	}
	t.hash = h
	t.captured = true
	t.ResetParams()
	t.snapshot(p, sel)
	return true
}

// Recapture re-reads originals from the current positions while keeping
// the parameters. Used after a base layer rewrote every position.
func (t *SelectionTransform) Recapture(p *Particles, sel *Selection) {
	if !t.captured {
		return
	}
	t.snapshot(p, sel)
}

func (t *SelectionTransform) snapshot(p *Particles, sel *Selection) {
	clear(t.originals)
	t.order = t.order[:0]
	var sum geom.Vec3
	for _, e := range sel.Entities() {
		pos, ok := p.Position(e)
		if !ok {
			continue
		}
		t.originals[e] = pos
		t.order = append(t.order, e)
		sum = sum.Add(pos)
	}
	t.centroid = geom.Vec3{}
	if n := len(t.order); n > 0 {
		t.centroid = sum.Scale(1 / float32(n))
	}
}

// HasOriginals reports whether there is anything to transform.
func (t *SelectionTransform) HasOriginals() bool {
	return len(t.order) > 0
}

// Centroid returns the centroid of the captured originals.
func (t *SelectionTransform) Centroid() (geom.Vec3, bool) {
	return t.centroid, t.HasOriginals()
}

// Original returns the captured position of a member.
func (t *SelectionTransform) Original(e ecs.Entity) (geom.Vec3, bool) {
	v, ok := t.originals[e]
	return v, ok
}

// Transformed maps a captured original through the current parameters.
func (t *SelectionTransform) Transformed(orig geom.Vec3) geom.Vec3 {
	rel := orig.Sub(t.centroid).Mul(t.Scale).RotateY(t.RotationY)
	return t.centroid.Add(rel).Add(t.Offset)
}

// Apply writes the transformed position of every captured member that is
// still selected and alive. Repeated calls with unchanged parameters are
// idempotent. Returns the number of particles written.
func (t *SelectionTransform) Apply(p *Particles, sel *Selection) int {
	if sel.Len() == 0 || !t.HasOriginals() {
		return 0
	}
	n := 0
	for _, e := range t.order {
		if !sel.Contains(e) || !p.Alive(e) {
			continue
		}
		p.SetPosition(e, t.Transformed(t.originals[e]))
		n++
	}
	return n
}

// ClampParams bounds the parameters to the UI ranges.
func (t *SelectionTransform) ClampParams(offsetRange, scaleMin, scaleMax float32) {
	t.Offset = geom.Vec3{
		X: clampFloat(t.Offset.X, -offsetRange, offsetRange),
		Y: clampFloat(t.Offset.Y, -offsetRange, offsetRange),
		Z: clampFloat(t.Offset.Z, -offsetRange, offsetRange),
	}
	t.Scale = geom.Vec3{
		X: clampFloat(t.Scale.X, scaleMin, scaleMax),
		Y: clampFloat(t.Scale.Y, scaleMin, scaleMax),
		Z: clampFloat(t.Scale.Z, scaleMin, scaleMax),
	}
	t.RotationY = normalizeAngle(t.RotationY)
}
