package components

import "github.com/pthm-cable/sandbox/geom"

// Position is a particle's rendered world position.
type Position struct {
	X float32 `inspect:"label,fmt:%.3f"`
	Y float32 `inspect:"label,fmt:%.3f"`
	Z float32 `inspect:"label,fmt:%.3f"`
}

// Vec returns the position as a vector.
func (p *Position) Vec() geom.Vec3 {
	return geom.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Set overwrites the position.
func (p *Position) Set(v geom.Vec3) {
	p.X, p.Y, p.Z = v.X, v.Y, v.Z
}

// Normalized is a particle's [0,1]^3 coordinate relative to the bounds
// volume. It is fixed at creation and never resampled by bounds edits.
type Normalized struct {
	X float32 `inspect:"bar,max:1"`
	Y float32 `inspect:"bar,max:1"`
	Z float32 `inspect:"bar,max:1"`
}

// Vec returns the normalized coordinate as a vector.
func (n *Normalized) Vec() geom.Vec3 {
	return geom.Vec3{X: n.X, Y: n.Y, Z: n.Z}
}

// NewNormalized builds a normalized coordinate from a vector.
func NewNormalized(v geom.Vec3) Normalized {
	return Normalized{X: v.X, Y: v.Y, Z: v.Z}
}
