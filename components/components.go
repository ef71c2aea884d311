// Package components defines ECS components for the particle sandbox.
package components

// Particle holds the per-particle constants used for picking and drawing.
type Particle struct {
	Radius float32 `inspect:"label,fmt:%.3f"`
	Serial uint32  `inspect:"label"` // Creation order, stable across ID reuse
}

// Tint is the visual selection state of a particle.
type Tint uint8

const (
	TintNone   Tint = iota // Unselected (white)
	TintPicked             // Selected by ray pick (green)
	TintBoxed              // Selected by drag box (purple)
)

// String returns the display name for a Tint.
func (t Tint) String() string {
	names := TintNames()
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// TintNames returns the display names for all tints.
// The order matches the Tint constants.
func TintNames() []string {
	return []string{"None", "Picked", "Boxed"}
}

// Selected reports whether the tint marks a selection member.
func (t Tint) Selected() bool {
	return t != TintNone
}
