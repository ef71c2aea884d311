package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies a scene overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayGrid       OverlayID = "grid"
	OverlayAxes       OverlayID = "axes"
	OverlayBounds     OverlayID = "bounds"
	OverlaySelBounds  OverlayID = "selection_bounds"
	OverlayViewportHL OverlayID = "viewport_outline"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID   // Unique identifier
	Name        string      // Display name
	Description string      // What this overlay shows
	Key         int32       // Keyboard key to toggle (0 = no key)
	KeyLabel    string      // Key label for display (e.g., "G")
	Category    string      // Grouping (e.g., "scene", "debug")
	Default     bool        // Enabled at startup
	Exclusive   []OverlayID // Other overlays to disable when this is enabled
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds standard overlays.
func (r *OverlayRegistry) registerDefaults() {
	r.Register(OverlayDescriptor{
		ID:          OverlayGrid,
		Name:        "Grid",
		Description: "Floor grid at y = 0",
		Key:         rl.KeyG,
		KeyLabel:    "G",
		Category:    "scene",
		Default:     true,
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayAxes,
		Name:        "Axes",
		Description: "World X/Y/Z axes",
		Key:         rl.KeyX,
		KeyLabel:    "X",
		Category:    "scene",
		Default:     true,
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayBounds,
		Name:        "Bounds Box",
		Description: "Particle distribution volume",
		Key:         rl.KeyB,
		KeyLabel:    "B",
		Category:    "scene",
		Default:     true,
	})
	r.Register(OverlayDescriptor{
		ID:          OverlaySelBounds,
		Name:        "Selection Box",
		Description: "Padded AABB around the selection",
		Key:         rl.KeyN,
		KeyLabel:    "N",
		Category:    "selection",
		Default:     true,
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayViewportHL,
		Name:        "Viewport Outline",
		Description: "Outline the camera viewport",
		Key:         rl.KeyV,
		KeyLabel:    "V",
		Category:    "debug",
	})
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = desc.Default
}

// Toggle switches an overlay on or off. Returns the new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.byID[id]
	if !ok {
		return
	}

	r.enabled[id] = enabled

	// If enabling, disable exclusive overlays
	if enabled {
		for _, excl := range desc.Exclusive {
			r.enabled[excl] = false
		}
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress checks if a key corresponds to an overlay toggle.
// Returns the overlay ID and new state if a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}

// Keys returns the toggle keys of all overlays.
func (r *OverlayRegistry) Keys() []int32 {
	keys := make([]int32, 0, len(r.descriptors))
	for _, desc := range r.descriptors {
		if desc.Key != 0 {
			keys = append(keys, desc.Key)
		}
	}
	return keys
}
