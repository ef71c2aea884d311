package geom

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// ClosestApproach projects p onto the ray, returning the ray parameter and
// the squared perpendicular distance. t may be negative.
func (r Ray) ClosestApproach(p Vec3) (t, distSq float32) {
	t = p.Sub(r.Origin).Dot(r.Dir)
	return t, p.Sub(r.At(t)).LenSq()
}
