package systems

import (
	"math/bits"
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sandbox/components"
)

// Selection is an unordered set of particle entities.
type Selection struct {
	members map[ecs.Entity]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{members: make(map[ecs.Entity]struct{})}
}

// Len returns the member count.
func (s *Selection) Len() int {
	return len(s.members)
}

// Contains reports membership.
func (s *Selection) Contains(e ecs.Entity) bool {
	_, ok := s.members[e]
	return ok
}

// Add inserts e. Returns false if it was already a member.
func (s *Selection) Add(e ecs.Entity) bool {
	if s.Contains(e) {
		return false
	}
	s.members[e] = struct{}{}
	return true
}

// Remove deletes e. Returns false if it was not a member.
func (s *Selection) Remove(e ecs.Entity) bool {
	if !s.Contains(e) {
		return false
	}
	delete(s.members, e)
	return true
}

// Toggle flips membership and returns whether e is now selected.
func (s *Selection) Toggle(e ecs.Entity) bool {
	if s.Remove(e) {
		return false
	}
	s.members[e] = struct{}{}
	return true
}

// Entities returns the members sorted by entity ID.
func (s *Selection) Entities() []ecs.Entity {
	out := make([]ecs.Entity, 0, len(s.members))
	for e := range s.members {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Hash returns an order-independent digest of the member identities.
// Equal-sized sets with different members hash differently with high
// probability.
func (s *Selection) Hash() uint64 {
	var sum, xor uint64
	for e := range s.members {
		m := mix64(uint64(e.ID()) | uint64(e.Gen())<<32)
		sum += m
		xor ^= m
	}
	return mix64(sum ^ bits.RotateLeft64(xor, 29) ^ uint64(len(s.members)))
}

// ClearAll deselects every member and resets its tint.
// Returns the number of members cleared.
func (s *Selection) ClearAll(p *Particles) int {
	n := len(s.members)
	for e := range s.members {
		p.SetTint(e, components.TintNone)
	}
	clear(s.members)
	return n
}

// Prune drops members that are no longer alive.
func (s *Selection) Prune(p *Particles) int {
	removed := 0
	for e := range s.members {
		if !p.Alive(e) {
			delete(s.members, e)
			removed++
		}
	}
	return removed
}

// mix64 is the splitmix64 finalizer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
