package systems

import "github.com/pthm-cable/sandbox/geom"

// YMin is the fixed floor of the bounds volume.
const YMin float32 = 1.0

// MinExtent is the write-site floor for every bounds extent.
const MinExtent float32 = 0.1

// Bounds is the distribution volume: X and Z are full extents centered on
// the origin, YHeight is measured up from YMin.
type Bounds struct {
	X, Z, YHeight float32
}

// Clamp floors every extent at min.
func (b Bounds) Clamp(min float32) Bounds {
	if min <= 0 {
		min = MinExtent
	}
	return Bounds{
		X:       maxf(b.X, min),
		Z:       maxf(b.Z, min),
		YHeight: maxf(b.YHeight, min),
	}
}

// ToWorld maps a normalized coordinate into the bounds volume. Values
// outside [0,1] are not clamped and land outside the volume.
func ToWorld(n geom.Vec3, b Bounds) geom.Vec3 {
	return geom.Vec3{
		X: (n.X - 0.5) * b.X,
		Y: YMin + n.Y*b.YHeight,
		Z: (n.Z - 0.5) * b.Z,
	}
}

// ToNormalized is the inverse of ToWorld. Extents must be non-zero.
func ToNormalized(w geom.Vec3, b Bounds) geom.Vec3 {
	return geom.Vec3{
		X: w.X/b.X + 0.5,
		Y: (w.Y - YMin) / b.YHeight,
		Z: w.Z/b.Z + 0.5,
	}
}

// Box returns the bounds volume as an AABB.
func (b Bounds) Box() geom.AABB {
	return geom.AABB{
		Min: geom.Vec3{X: -b.X / 2, Y: YMin, Z: -b.Z / 2},
		Max: geom.Vec3{X: b.X / 2, Y: YMin + b.YHeight, Z: b.Z / 2},
	}
}
