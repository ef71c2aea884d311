// Package telemetry provides frame timing, interaction event counting, and CSV output.
package telemetry

import "log/slog"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventPick      EventType = iota // Ray pick selected a particle
	EventDeselect                   // Ray pick deselected a particle
	EventBoxSelect                  // Drag box added particles
	EventClear                      // Short drag box cleared the selection
	EventCreate                     // Batch of particles created
	EventRemove                     // Particles removed
	EventPreset                     // Camera preset applied
)

// String returns the log name for an EventType.
func (t EventType) String() string {
	switch t {
	case EventPick:
		return "pick"
	case EventDeselect:
		return "deselect"
	case EventBoxSelect:
		return "box_select"
	case EventClear:
		return "clear"
	case EventCreate:
		return "create"
	case EventRemove:
		return "remove"
	case EventPreset:
		return "preset"
	default:
		return "unknown"
	}
}

// Event represents a single interaction event.
type Event struct {
	Type  EventType
	Frame int32

	// Optional fields depending on event type
	EntityID uint32 // for pick/deselect events
	Count    int    // particles affected
	Detail   string // placement mode or preset name
}

// NewPickEvent creates a pick or deselect event for a toggled particle.
func NewPickEvent(frame int32, entityID uint32, selected bool) Event {
	t := EventDeselect
	if selected {
		t = EventPick
	}
	return Event{Type: t, Frame: frame, EntityID: entityID, Count: 1}
}

// NewBoxSelectEvent creates a box selection event.
func NewBoxSelectEvent(frame int32, added int) Event {
	return Event{Type: EventBoxSelect, Frame: frame, Count: added}
}

// NewClearEvent creates a selection clear event.
func NewClearEvent(frame int32, cleared int) Event {
	return Event{Type: EventClear, Frame: frame, Count: cleared}
}

// NewCreateEvent creates a particle creation event.
func NewCreateEvent(frame int32, count int, mode string) Event {
	return Event{Type: EventCreate, Frame: frame, Count: count, Detail: mode}
}

// NewRemoveEvent creates a particle removal event. scope is "all" or "selected".
func NewRemoveEvent(frame int32, count int, scope string) Event {
	return Event{Type: EventRemove, Frame: frame, Count: count, Detail: scope}
}

// NewPresetEvent creates a camera preset event.
func NewPresetEvent(frame int32, preset string) Event {
	return Event{Type: EventPreset, Frame: frame, Detail: preset}
}

// LogValue implements slog.LogValuer for structured logging.
func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", e.Type.String()),
		slog.Int("frame", int(e.Frame)),
	}
	if e.Type == EventPick || e.Type == EventDeselect {
		attrs = append(attrs, slog.Int("entity", int(e.EntityID)))
	}
	if e.Count > 0 {
		attrs = append(attrs, slog.Int("count", e.Count))
	}
	if e.Detail != "" {
		attrs = append(attrs, slog.String("detail", e.Detail))
	}
	return slog.GroupValue(attrs...)
}
