// Package input tracks per-frame mouse button state for the scene passes.
//
// Button press events can be swallowed when the UI owns the cursor, so a
// release may never be observed. Cleanup compares the tracked state against
// the raw held state each frame and forces the release.
package input

import "github.com/pthm-cable/sandbox/geom"

// Keys is the movement key snapshot.
type Keys struct {
	Forward, Back bool // W / S
	Left, Right   bool // A / D
	Up, Down      bool // E / Q
	Fast          bool // Shift
}

// Frame is a plain snapshot of the host input for one frame.
type Frame struct {
	Cursor         geom.Vec2 // Logical pixels
	CursorDelta    geom.Vec2 // Logical pixels since last frame
	CursorOnScreen bool
	OverUI         bool // Cursor is over a UI panel

	LeftDown, RightDown         bool // Raw held state
	LeftPressed, RightPressed   bool // Press edges from the host
	LeftReleased, RightReleased bool // Release edges from the host

	Keys  Keys
	Scale float32 // Logical to physical pixel factor
	Dt    float32 // Seconds since last frame
}

// Physical returns the cursor in physical pixels.
func (f Frame) Physical() geom.Vec2 {
	scale := f.Scale
	if scale <= 0 {
		scale = 1
	}
	return f.Cursor.Scale(scale)
}

// Button holds the tracked state of one mouse button.
type Button struct {
	pressed bool
	was     bool

	pressPos geom.Vec2 // Cursor at press, logical pixels
	travel   float32   // Max distance from pressPos while held
	forced   int       // Releases forced by Cleanup
}

// Held reports whether the button is tracked as down.
func (b *Button) Held() bool { return b.pressed }

// JustPressed reports a press edge this frame.
func (b *Button) JustPressed() bool { return b.pressed && !b.was }

// JustReleased reports a release edge this frame.
func (b *Button) JustReleased() bool { return !b.pressed && b.was }

// Travel returns the largest cursor distance from the press position.
func (b *Button) Travel() float32 { return b.travel }

// Forced returns how many releases Cleanup has synthesized.
func (b *Button) Forced() int { return b.forced }

func (b *Button) track(pressed, released, acceptPress bool, cursor geom.Vec2) {
	b.was = b.pressed
	if pressed && acceptPress && !b.pressed {
		b.pressed = true
		b.pressPos = cursor
		b.travel = 0
	}
	if b.pressed {
		if d := cursor.Sub(b.pressPos).Len(); d > b.travel {
			b.travel = d
		}
	}
	if released {
		b.pressed = false
	}
}

func (b *Button) cleanup(down bool) {
	if b.pressed && !down {
		b.pressed = false
		b.forced++
	}
}

// Tracker keeps the left and right button state across frames.
type Tracker struct {
	Left  Button
	Right Button
}

// Track consumes the host edges for this frame. Presses over the UI are
// ignored; releases are always honored.
func (t *Tracker) Track(f Frame) {
	accept := f.CursorOnScreen && !f.OverUI
	t.Left.track(f.LeftPressed, f.LeftReleased, accept, f.Cursor)
	t.Right.track(f.RightPressed, f.RightReleased, accept, f.Cursor)
}

// Cleanup forces a release for any button tracked as down whose raw state
// is up.
func (t *Tracker) Cleanup(f Frame) {
	t.Left.cleanup(f.LeftDown)
	t.Right.cleanup(f.RightDown)
}

// LeftReleased reports a left release edge.
func (t *Tracker) LeftReleased() bool { return t.Left.JustReleased() }

// RightPressed reports a right press edge.
func (t *Tracker) RightPressed() bool { return t.Right.JustPressed() }

// RightReleased reports a right release edge.
func (t *Tracker) RightReleased() bool { return t.Right.JustReleased() }

// LeftClicked reports a left release whose travel stayed within maxTravel
// logical pixels.
func (t *Tracker) LeftClicked(maxTravel float32) bool {
	return t.Left.JustReleased() && t.Left.travel <= maxTravel
}
