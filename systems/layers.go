package systems

// BoundsLayer reprojects every particle from its normalized base whenever
// the bounds differ from the previous frame.
type BoundsLayer struct {
	cached Bounds
	primed bool
}

// Update rewrites positions to ToWorld(n, b) when b changed. Returns
// whether positions were rewritten.
func (l *BoundsLayer) Update(p *Particles, b Bounds) bool {
	if l.primed && b == l.cached {
		return false
	}
	l.cached = b
	l.primed = true

	query := p.filter.Query()
	for query.Next() {
		pos, norm, _, _ := query.Get()
		pos.Set(ToWorld(norm.Vec(), b))
	}
	return true
}

// GroupLayer applies the group transform over the bounds-derived base of
// every particle.
type GroupLayer struct {
	cached GroupTransform
	primed bool
}

// Update rewrites positions to ToWorld(n, b)*scale + offset when the group
// transform changed or force is set (the bounds layer ran this frame).
// Returns whether positions were rewritten.
func (l *GroupLayer) Update(p *Particles, b Bounds, g GroupTransform, force bool) bool {
	if l.primed && !force && g == l.cached {
		return false
	}
	l.cached = g
	l.primed = true

	query := p.filter.Query()
	for query.Next() {
		pos, norm, _, _ := query.Get()
		pos.Set(g.Apply(ToWorld(norm.Vec(), b)))
	}
	return true
}
