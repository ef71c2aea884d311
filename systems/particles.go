package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sandbox/components"
	"github.com/pthm-cable/sandbox/geom"
)

// Particles bundles the ECS mappers for particle entities.
type Particles struct {
	world *ecs.World

	mapper *ecs.Map4[
		components.Position,
		components.Normalized,
		components.Particle,
		components.Tint,
	]
	filter *ecs.Filter4[
		components.Position,
		components.Normalized,
		components.Particle,
		components.Tint,
	]

	// Individual component mappers for lookups
	posMap  *ecs.Map1[components.Position]
	normMap *ecs.Map1[components.Normalized]
	partMap *ecs.Map1[components.Particle]
	tintMap *ecs.Map1[components.Tint]

	count  int
	serial uint32
}

// NewParticles creates the particle mappers on a world.
func NewParticles(world *ecs.World) *Particles {
	return &Particles{
		world: world,
		mapper: ecs.NewMap4[
			components.Position,
			components.Normalized,
			components.Particle,
			components.Tint,
		](world),
		filter: ecs.NewFilter4[
			components.Position,
			components.Normalized,
			components.Particle,
			components.Tint,
		](world),
		posMap:  ecs.NewMap1[components.Position](world),
		normMap: ecs.NewMap1[components.Normalized](world),
		partMap: ecs.NewMap1[components.Particle](world),
		tintMap: ecs.NewMap1[components.Tint](world),
	}
}

// World returns the underlying ECS world.
func (p *Particles) World() *ecs.World {
	return p.world
}

// Spawn creates a particle at a world position with its normalized base.
func (p *Particles) Spawn(pos, normalized geom.Vec3, radius float32) ecs.Entity {
	p.serial++
	position := components.Position{X: pos.X, Y: pos.Y, Z: pos.Z}
	norm := components.NewNormalized(normalized)
	part := components.Particle{Radius: radius, Serial: p.serial}
	tint := components.TintNone
	e := p.mapper.NewEntity(&position, &norm, &part, &tint)
	p.count++
	return e
}

// Despawn removes a particle. Dead entities are ignored.
func (p *Particles) Despawn(e ecs.Entity) bool {
	if !p.world.Alive(e) {
		return false
	}
	p.world.RemoveEntity(e)
	p.count--
	return true
}

// Count returns the number of live particles.
func (p *Particles) Count() int {
	return p.count
}

// Alive reports whether e is a live particle.
func (p *Particles) Alive(e ecs.Entity) bool {
	return p.world.Alive(e) && p.posMap.HasAll(e)
}

// Position returns the world position of a live particle.
func (p *Particles) Position(e ecs.Entity) (geom.Vec3, bool) {
	if !p.Alive(e) {
		return geom.Vec3{}, false
	}
	return p.posMap.Get(e).Vec(), true
}

// SetPosition overwrites the world position of a live particle.
func (p *Particles) SetPosition(e ecs.Entity, v geom.Vec3) {
	if p.Alive(e) {
		p.posMap.Get(e).Set(v)
	}
}

// SetTint updates the visual selection state of a live particle.
func (p *Particles) SetTint(e ecs.Entity, t components.Tint) {
	if p.Alive(e) {
		*p.tintMap.Get(e) = t
	}
}

// Components returns pointers to every component of a live particle.
func (p *Particles) Components(e ecs.Entity) (*components.Position, *components.Normalized, *components.Particle, *components.Tint, bool) {
	if !p.Alive(e) {
		return nil, nil, nil, nil, false
	}
	return p.posMap.Get(e), p.normMap.Get(e), p.partMap.Get(e), p.tintMap.Get(e), true
}

// Entities returns every live particle in query order.
func (p *Particles) Entities() []ecs.Entity {
	out := make([]ecs.Entity, 0, p.count)
	query := p.filter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// Each calls fn for every live particle in query order. fn must not spawn
// or despawn particles.
func (p *Particles) Each(fn func(pos geom.Vec3, radius float32, tint components.Tint)) {
	query := p.filter.Query()
	for query.Next() {
		pos, _, part, tint := query.Get()
		fn(pos.Vec(), part.Radius, *tint)
	}
}
