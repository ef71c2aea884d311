// Package inspector shows the components of the most recently picked particle.
package inspector

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sandbox/systems"
)

// Inspector tracks the focused particle.
type Inspector struct {
	focused    ecs.Entity
	hasFocused bool
}

// New creates an inspector with nothing focused.
func New() *Inspector {
	return &Inspector{}
}

// Focus sets the particle whose components are shown.
func (ins *Inspector) Focus(e ecs.Entity) {
	ins.focused = e
	ins.hasFocused = true
}

// Clear drops the focused particle.
func (ins *Inspector) Clear() {
	ins.hasFocused = false
}

// Focused returns the focused particle if it still exists. A removed
// particle clears the focus.
func (ins *Inspector) Focused(p *systems.Particles) (ecs.Entity, bool) {
	if !ins.hasFocused {
		return ecs.Entity{}, false
	}
	if !p.Alive(ins.focused) {
		ins.hasFocused = false
		return ecs.Entity{}, false
	}
	return ins.focused, true
}

// Sections returns the focused particle's components for display.
func (ins *Inspector) Sections(p *systems.Particles) []Section {
	e, ok := ins.Focused(p)
	if !ok {
		return nil
	}
	pos, norm, part, tint, ok := p.Components(e)
	if !ok {
		return nil
	}
	return []Section{
		Describe("Particle", part),
		Describe("Position", pos),
		Describe("Normalized", norm),
		Describe("Tint", tint),
	}
}
