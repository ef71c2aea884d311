package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sandbox/geom"
)

// PlacementMode selects how new particles are distributed.
type PlacementMode uint8

const (
	PlaceRandom PlacementMode = iota // Uniform in the bounds volume
	PlaceBall                        // Uniform in a sphere
	PlaceCube                        // Uniform in a box
)

// String returns the display name for a PlacementMode.
func (m PlacementMode) String() string {
	names := PlacementModeNames()
	if int(m) < len(names) {
		return names[m]
	}
	return "Unknown"
}

// PlacementModeNames returns the display names for all placement modes.
// The order matches the PlacementMode constants.
func PlacementModeNames() []string {
	return []string{"Random", "Ball", "Cube"}
}

// SpawnSettings holds the creation controls edited by the UI.
type SpawnSettings struct {
	Mode  PlacementMode
	Count int

	BallCenter geom.Vec3
	BallRadius float32

	CubeCenter geom.Vec3
	CubeSize   geom.Vec3
}

// Spawner creates particles with a seeded RNG.
type Spawner struct {
	rng    *rand.Rand
	radius float32
	yMin   float32 // Floor for ball and cube placements
}

// NewSpawner creates a spawner. radius is the particle pick radius.
func NewSpawner(rng *rand.Rand, radius, yMin float32) *Spawner {
	return &Spawner{rng: rng, radius: radius, yMin: yMin}
}

// Spawn creates count particles. Random placements sample the normalized
// coordinate directly. Ball and cube placements sample a world position and
// derive the normalized base through the inverse group and bounds mappings,
// so later reprojection keeps them in place. The base is not clamped to
// [0,1].
func (s *Spawner) Spawn(p *Particles, set SpawnSettings, count int, b Bounds, g GroupTransform) []ecs.Entity {
	if count <= 0 {
		return nil
	}
	out := make([]ecs.Entity, 0, count)
	for i := 0; i < count; i++ {
		var pos, norm geom.Vec3
		switch set.Mode {
		case PlaceBall:
			pos = s.floor(set.BallCenter.Add(s.unitBall().Scale(set.BallRadius)))
			norm = ToNormalized(g.Invert(pos), b)
		case PlaceCube:
			pos = s.floor(set.CubeCenter.Add(s.centeredUnit().Mul(set.CubeSize)))
			norm = ToNormalized(g.Invert(pos), b)
		default:
			norm = geom.V3(s.rng.Float32(), s.rng.Float32(), s.rng.Float32())
			pos = g.Apply(ToWorld(norm, b))
		}
		out = append(out, p.Spawn(pos, norm, s.radius))
	}
	return out
}

// unitBall samples uniformly inside the unit sphere by rejection.
func (s *Spawner) unitBall() geom.Vec3 {
	for {
		v := s.centeredUnit().Scale(2)
		if v.LenSq() <= 1 {
			return v
		}
	}
}

// centeredUnit samples uniformly in [-0.5, 0.5)^3.
func (s *Spawner) centeredUnit() geom.Vec3 {
	return geom.V3(s.rng.Float32()-0.5, s.rng.Float32()-0.5, s.rng.Float32()-0.5)
}

func (s *Spawner) floor(v geom.Vec3) geom.Vec3 {
	v.Y = maxf(v.Y, s.yMin)
	return v
}

// RemoveAll despawns every particle and empties the selection.
// Returns the number removed.
func RemoveAll(p *Particles, sel *Selection) int {
	entities := p.Entities()
	clear(sel.members)
	n := 0
	for _, e := range entities {
		if p.Despawn(e) {
			n++
		}
	}
	return n
}

// RemoveSelected despawns the selected particles that still exist and
// empties the selection. Returns the number removed.
func RemoveSelected(p *Particles, sel *Selection) int {
	n := 0
	for _, e := range sel.Entities() {
		if p.Despawn(e) {
			n++
		}
	}
	clear(sel.members)
	return n
}
