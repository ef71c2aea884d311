package systems

import "github.com/pthm-cable/sandbox/geom"

// Line is a world-space segment.
type Line struct {
	From, To geom.Vec3
}

// Grid is the floor grid centered on the origin at y = 0.
type Grid struct {
	SizeX, SizeZ int
	MaxSize      int
	Spacing      float32

	lines            []Line
	cachedX, cachedZ int
}

// NewGrid creates a grid, clamping the size to [1, maxSize].
func NewGrid(sizeX, sizeZ, maxSize int, spacing float32) *Grid {
	if maxSize < 1 {
		maxSize = 1
	}
	if spacing <= 0 {
		spacing = 1
	}
	g := &Grid{MaxSize: maxSize, Spacing: spacing}
	g.SetSize(sizeX, sizeZ)
	return g
}

// SetSize updates the grid dimensions in meters, clamped to [1, MaxSize].
func (g *Grid) SetSize(x, z int) {
	g.SizeX = clampInt(x, 1, g.MaxSize)
	g.SizeZ = clampInt(z, 1, g.MaxSize)
}

// Lines returns the grid segments, rebuilding them when the size changed.
func (g *Grid) Lines() []Line {
	if g.lines != nil && g.cachedX == g.SizeX && g.cachedZ == g.SizeZ {
		return g.lines
	}
	g.cachedX, g.cachedZ = g.SizeX, g.SizeZ

	hx := float32(g.SizeX) * g.Spacing / 2
	hz := float32(g.SizeZ) * g.Spacing / 2
	lines := make([]Line, 0, g.SizeX+g.SizeZ+2)
	for i := 0; i <= g.SizeX; i++ {
		x := -hx + float32(i)*g.Spacing
		lines = append(lines, Line{From: geom.V3(x, 0, -hz), To: geom.V3(x, 0, hz)})
	}
	for i := 0; i <= g.SizeZ; i++ {
		z := -hz + float32(i)*g.Spacing
		lines = append(lines, Line{From: geom.V3(-hx, 0, z), To: geom.V3(hx, 0, z)})
	}
	g.lines = lines
	return lines
}

// Axes returns the X, Y and Z world axes from the origin.
func Axes(length float32) [3]Line {
	return [3]Line{
		{To: geom.V3(length, 0, 0)},
		{To: geom.V3(0, length, 0)},
		{To: geom.V3(0, 0, length)},
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
