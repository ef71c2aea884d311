package systems

import "github.com/pthm-cable/sandbox/geom"

// SelectionBounds returns the axis-aligned box around the selected
// particles' positions, padded on every side. Absent for an empty selection.
func SelectionBounds(p *Particles, sel *Selection, pad float32) (geom.AABB, bool) {
	var box geom.AABB
	found := false
	for _, e := range sel.Entities() {
		pos, ok := p.Position(e)
		if !ok {
			continue
		}
		if !found {
			box = geom.AABB{Min: pos, Max: pos}
			found = true
			continue
		}
		box = box.Extend(pos)
	}
	if !found {
		return geom.AABB{}, false
	}
	return box.Pad(pad), true
}
