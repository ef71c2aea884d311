package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sandbox/geom"
	"github.com/pthm-cable/sandbox/input"
)

// sampleInput snapshots the host input for this frame. The UI hit test uses
// the panels arranged at the end of the previous frame.
func (g *Game) sampleInput() input.Frame {
	mouse := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	cursor := geom.Vec2{X: mouse.X, Y: mouse.Y}

	return input.Frame{
		Cursor:         cursor,
		CursorDelta:    geom.Vec2{X: delta.X, Y: delta.Y},
		CursorOnScreen: rl.IsCursorOnScreen(),
		OverUI:         g.panels.Contains(cursor),

		LeftDown:      rl.IsMouseButtonDown(rl.MouseButtonLeft),
		RightDown:     rl.IsMouseButtonDown(rl.MouseButtonRight),
		LeftPressed:   rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		RightPressed:  rl.IsMouseButtonPressed(rl.MouseButtonRight),
		LeftReleased:  rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		RightReleased: rl.IsMouseButtonReleased(rl.MouseButtonRight),

		Keys: input.Keys{
			Forward: rl.IsKeyDown(rl.KeyW),
			Back:    rl.IsKeyDown(rl.KeyS),
			Left:    rl.IsKeyDown(rl.KeyA),
			Right:   rl.IsKeyDown(rl.KeyD),
			Up:      rl.IsKeyDown(rl.KeyE),
			Down:    rl.IsKeyDown(rl.KeyQ),
			Fast:    rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		},
		Scale: rl.GetWindowScaleDPI().X,
		Dt:    rl.GetFrameTime(),
	}
}

// handleOverlayKeys toggles overlays bound to keys pressed this frame.
func (g *Game) handleOverlayKeys() {
	reg := g.ui.State.Overlays
	for _, key := range reg.Keys() {
		if !rl.IsKeyPressed(key) {
			continue
		}
		if id, enabled, ok := reg.HandleKeyPress(key); ok {
			slog.Debug("overlay toggled", "overlay", id, "enabled", enabled)
		}
	}
}

// axis maps a pair of opposing keys to -1, 0 or 1.
func axis(pos, neg bool) float32 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}
