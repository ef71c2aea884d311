package geom

import "github.com/chewxy/math32"

// Rect is an axis-aligned pixel rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float32
}

// RectFromCorners builds a rectangle spanning two arbitrary corners.
func RectFromCorners(a, b Vec2) Rect {
	x0, x1 := math32.Min(a.X, b.X), math32.Max(a.X, b.X)
	y0, y1 := math32.Min(a.Y, b.Y), math32.Max(a.Y, b.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ContainsPixel reports whether p lies inside r with the right and bottom
// edges excluded, so adjacent rectangles never share a pixel.
func (r Rect) ContainsPixel(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Origin returns the top-left corner.
func (r Rect) Origin() Vec2 {
	return Vec2{r.X, r.Y}
}

// Intersect returns the overlap of r and o, or a zero-size rectangle at the
// clamped corner when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math32.Max(r.X, o.X)
	y0 := math32.Max(r.Y, o.Y)
	x1 := math32.Min(r.X+r.W, o.X+o.W)
	y1 := math32.Min(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: math32.Max(0, x1-x0), H: math32.Max(0, y1-y0)}
}

// AABB is an axis-aligned box in world space.
type AABB struct {
	Min, Max Vec3
}

// Extend grows the box to include p.
func (b AABB) Extend(p Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Pad grows the box by d on every side.
func (b AABB) Pad(d float32) AABB {
	pad := Vec3{d, d, d}
	return AABB{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}
}

// Center returns the midpoint.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}
