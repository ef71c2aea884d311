package systems

import (
	"github.com/chewxy/math32"

	"github.com/pthm-cable/sandbox/components"
	"github.com/pthm-cable/sandbox/geom"
)

// DragState is the phase of a drag-box gesture.
type DragState uint8

const (
	DragIdle DragState = iota
	DragDragging
	DragPendingCommit
)

// String returns the state name.
func (s DragState) String() string {
	switch s {
	case DragDragging:
		return "dragging"
	case DragPendingCommit:
		return "pending_commit"
	default:
		return "idle"
	}
}

// DragBox is the right-button box selection state machine. Corners are
// window positions in physical pixels.
type DragBox struct {
	State   DragState
	Start   geom.Vec2
	Current geom.Vec2

	MinDrag         float32 // Logical pixels; shorter drags deselect all
	VisualThreshold float32 // Logical pixels each side must exceed to draw
}

// NewDragBox creates an idle drag box.
func NewDragBox(minDrag, visualThreshold float32) *DragBox {
	return &DragBox{MinDrag: minDrag, VisualThreshold: visualThreshold}
}

// Update advances the state machine for one frame. A press only starts a
// drag inside the viewport; a release is honored wherever the cursor is.
func (d *DragBox) Update(pressed, released bool, cursor geom.Vec2, viewport geom.Rect) {
	switch d.State {
	case DragIdle:
		if pressed && !viewport.Empty() && viewport.ContainsPixel(cursor) {
			d.State = DragDragging
			d.Start = cursor
			d.Current = cursor
		}
	case DragDragging:
		d.Current = cursor
		if released {
			d.State = DragPendingCommit
		}
	}
}

// Visual returns the rectangle to draw while dragging, in physical pixels,
// once both sides exceed the visual threshold in logical pixels.
func (d *DragBox) Visual(scale float32) (geom.Rect, bool) {
	if d.State != DragDragging {
		return geom.Rect{}, false
	}
	if scale <= 0 {
		scale = 1
	}
	r := geom.RectFromCorners(d.Start, d.Current)
	if r.W/scale <= d.VisualThreshold || r.H/scale <= d.VisualThreshold {
		return geom.Rect{}, false
	}
	return r, true
}

// CommitResult reports what a commit did.
type CommitResult struct {
	Cleared int // Members removed by a deselect click
	Added   int // New members from the box
	Boxed   int // Particles inside the box, including existing members
}

// Commit processes a pending gesture once and returns to idle. A drag
// shorter than MinDrag (compared in logical pixels) clears the selection.
// Otherwise every particle projecting inside the inclusive, viewport-clamped
// rectangle joins the selection; members outside are kept.
func (d *DragBox) Commit(p *Particles, sel *Selection, view View, viewport geom.Rect, scale float32) (CommitResult, bool) {
	if d.State != DragPendingCommit {
		return CommitResult{}, false
	}
	d.State = DragIdle

	if scale <= 0 {
		scale = 1
	}
	if d.Current.Sub(d.Start).Len()/scale < d.MinDrag {
		return CommitResult{Cleared: sel.ClearAll(p)}, true
	}

	origin := viewport.Origin()
	box := geom.RectFromCorners(d.Start.Sub(origin), d.Current.Sub(origin)).
		Intersect(geom.Rect{W: viewport.W, H: viewport.H})

	var res CommitResult
	query := p.filter.Query()
	for query.Next() {
		pos, _, _, tint := query.Get()
		px, ok := view.WorldToViewport(pos.Vec())
		if !ok || math32.IsNaN(px.X) || math32.IsNaN(px.Y) {
			continue
		}
		if !box.Contains(px) {
			continue
		}
		if sel.Add(query.Entity()) {
			res.Added++
		}
		*tint = components.TintBoxed
		res.Boxed++
	}
	return res, true
}

// Cancel abandons any gesture in progress.
func (d *DragBox) Cancel() {
	d.State = DragIdle
}
