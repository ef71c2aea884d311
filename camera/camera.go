// Package camera provides a 3D fly camera with viewport-aware projection.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/pthm-cable/sandbox/config"
	"github.com/pthm-cable/sandbox/geom"
)

// MaxPitch keeps the view direction off the vertical axis.
const MaxPitch = math32.Pi/2 - 0.01

// Preset names a canned framing of the scene.
type Preset uint8

const (
	PresetStart Preset = iota
	PresetFront
	PresetTop
)

// String returns the preset label shown in the UI.
func (p Preset) String() string {
	switch p {
	case PresetFront:
		return "Front"
	case PresetTop:
		return "Top"
	default:
		return "Start"
	}
}

// Camera controls the 3D view into the scene.
// Orientation is yaw about world Y followed by pitch about local X.
type Camera struct {
	// Position is the eye in world coordinates
	Position geom.Vec3

	// Yaw and Pitch in radians. Yaw 0 looks down -Z.
	Yaw, Pitch float32

	// Vertical field of view in degrees
	FOV float32

	// FOV constraints
	MinFOV, MaxFOV float32

	// Clip planes
	Near, Far float32

	// Viewport is the physical-pixel sub-rectangle of the window the camera draws into
	Viewport geom.Rect

	// Controller tuning
	Sensitivity    float32
	Speed          float32
	FastMultiplier float32

	presets [3]geom.Vec3
	baseFOV float32
}

// New creates a camera at the start preset looking at the origin.
func New(cfg config.CameraConfig, viewport geom.Rect) *Camera {
	c := &Camera{
		FOV:            cfg.FOV,
		MinFOV:         cfg.MinFOV,
		MaxFOV:         cfg.MaxFOV,
		Near:           cfg.Near,
		Far:            cfg.Far,
		Viewport:       viewport,
		Sensitivity:    cfg.Sensitivity,
		Speed:          cfg.Speed,
		FastMultiplier: cfg.FastMultiplier,
		presets: [3]geom.Vec3{
			PresetStart: geom.FromArray(cfg.Start),
			PresetFront: geom.FromArray(cfg.Front),
			PresetTop:   geom.FromArray(cfg.Top),
		},
		baseFOV: cfg.FOV,
	}
	c.SetFOV(cfg.FOV)
	c.ApplyPreset(PresetStart)
	return c
}

// Forward returns the unit view direction.
func (c *Camera) Forward() geom.Vec3 {
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	return geom.Vec3{X: -sy * cp, Y: sp, Z: -cy * cp}
}

// Right returns the horizontal unit vector to the right of the view.
func (c *Camera) Right() geom.Vec3 {
	sy, cy := math32.Sincos(c.Yaw)
	return geom.Vec3{X: cy, Y: 0, Z: -sy}
}

// Up returns the camera's local up vector.
func (c *Camera) Up() geom.Vec3 {
	return c.Right().Cross(c.Forward())
}

// Target returns a point one unit ahead of the eye.
func (c *Camera) Target() geom.Vec3 {
	return c.Position.Add(c.Forward())
}

// LookAt orients the camera toward a world point.
func (c *Camera) LookAt(target geom.Vec3) {
	d := target.Sub(c.Position).Normalize()
	if d == (geom.Vec3{}) {
		return
	}
	c.Yaw = math32.Atan2(-d.X, -d.Z)
	c.Pitch = clamp(math32.Asin(clamp(d.Y, -1, 1)), -MaxPitch, MaxPitch)
}

// ApplyPreset moves the camera to a preset position facing the origin.
func (c *Camera) ApplyPreset(p Preset) {
	if int(p) >= len(c.presets) {
		p = PresetStart
	}
	c.Position = c.presets[p]
	c.LookAt(geom.Vec3{})
}

// PresetPosition returns the configured eye position of a preset.
func (c *Camera) PresetPosition(p Preset) geom.Vec3 {
	return c.presets[p]
}

// Rotate applies a mouse delta in logical pixels.
func (c *Camera) Rotate(dx, dy float32) {
	c.Yaw -= dx * c.Sensitivity
	c.Pitch = clamp(c.Pitch-dy*c.Sensitivity, -MaxPitch, MaxPitch)
	c.Yaw = wrapAngle(c.Yaw)
}

// Move translates the camera along its local axes. Each axis is in [-1, 1]:
// forward along the view, right along the horizontal right vector, up along
// world Y.
func (c *Camera) Move(forward, right, up, dt float32, fast bool) {
	speed := c.Speed * dt
	if fast {
		speed *= c.FastMultiplier
	}
	delta := c.Forward().Scale(forward).
		Add(c.Right().Scale(right)).
		Add(geom.Vec3{Y: up})
	if delta == (geom.Vec3{}) {
		return
	}
	c.Position = c.Position.Add(delta.Normalize().Scale(speed))
}

// SetFOV sets the vertical field of view, clamped to min/max.
func (c *Camera) SetFOV(deg float32) {
	c.FOV = clamp(deg, c.MinFOV, c.MaxFOV)
}

// ResetFOV restores the configured field of view.
func (c *Camera) ResetFOV() {
	c.SetFOV(c.baseFOV)
}

// SetViewport updates the physical-pixel viewport.
func (c *Camera) SetViewport(r geom.Rect) {
	c.Viewport = r
}

// Aspect returns the viewport aspect ratio, or 1 for a degenerate viewport.
func (c *Camera) Aspect() float32 {
	if c.Viewport.W <= 0 || c.Viewport.H <= 0 {
		return 1
	}
	return c.Viewport.W / c.Viewport.H
}

// View returns the world-to-camera matrix.
func (c *Camera) View() geom.Mat4 {
	return geom.LookAt(c.Position, c.Target(), c.Up())
}

// Projection returns the perspective matrix for the current viewport.
func (c *Camera) Projection() geom.Mat4 {
	return geom.Perspective(c.FOV*math32.Pi/180, c.Aspect(), c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() geom.Mat4 {
	return c.Projection().Mul(c.View())
}

// PickRay builds a world-space ray through a viewport-relative physical pixel.
// The ray starts at the eye and is built from the camera basis, matching the
// perspective used by Projection.
func (c *Camera) PickRay(vx, vy float32) geom.Ray {
	w, h := c.Viewport.W, c.Viewport.H
	if w <= 0 || h <= 0 {
		return geom.Ray{Origin: c.Position, Dir: c.Forward()}
	}
	ndcX := 2*vx/w - 1
	ndcY := 1 - 2*vy/h // Flip Y

	tanHalf := math32.Tan(c.FOV * math32.Pi / 360)
	dir := c.Forward().
		Add(c.Right().Scale(ndcX * tanHalf * c.Aspect())).
		Add(c.Up().Scale(ndcY * tanHalf))
	return geom.Ray{Origin: c.Position, Dir: dir.Normalize()}
}

// WorldToNDC projects a world point to normalized device coordinates.
// ok is false for points at or behind the eye plane.
func (c *Camera) WorldToNDC(p geom.Vec3) (ndc geom.Vec3, ok bool) {
	clip := c.ViewProjection().MulVec4(geom.Point(p))
	if clip.W <= 0 {
		return geom.Vec3{}, false
	}
	return clip.Divide(), true
}

// NDCToViewport converts NDC to viewport-relative physical pixels (y down).
func (c *Camera) NDCToViewport(ndc geom.Vec3) geom.Vec2 {
	return geom.Vec2{
		X: (ndc.X*0.5 + 0.5) * c.Viewport.W,
		Y: (1 - (ndc.Y*0.5 + 0.5)) * c.Viewport.H,
	}
}

// WorldToViewport projects a world point straight to viewport pixels.
func (c *Camera) WorldToViewport(p geom.Vec3) (geom.Vec2, bool) {
	ndc, ok := c.WorldToNDC(p)
	if !ok {
		return geom.Vec2{}, false
	}
	return c.NDCToViewport(ndc), true
}

// wrapAngle wraps an angle to [-Pi, Pi].
func wrapAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a < -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
