package telemetry

// Pass identifiers, in pipeline order.
const (
	PassInput     = "input"
	PassCleanup   = "cleanup"
	PassCamera    = "camera"
	PassCreation  = "creation"
	PassBounds    = "bounds"
	PassGroup     = "group"
	PassPick      = "pick"
	PassDragBox   = "dragbox"
	PassCapture   = "capture"
	PassMotion    = "motion"
	PassTransform = "transform"
	PassSelBounds = "selbounds"
	PassLayout    = "layout"
	PassRender    = "render"
)

// PassInfo describes a frame pass for UI display.
type PassInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this pass does
	Category    string // Grouping (e.g., "input", "scene", "selection")
}

// PassRegistry holds metadata about all frame passes.
// The streams panel and the perf collector both read names from here.
type PassRegistry struct {
	passes []PassInfo
	byID   map[string]PassInfo
}

// NewPassRegistry creates a registry with all known passes.
func NewPassRegistry() *PassRegistry {
	reg := &PassRegistry{
		byID: make(map[string]PassInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds the pipeline passes in execution order.
func (r *PassRegistry) registerDefaults() {
	r.Register(PassInfo{ID: PassInput, Name: "Input", Description: "Samples mouse and keyboard", Category: "input"})
	r.Register(PassInfo{ID: PassCleanup, Name: "Button Cleanup", Description: "Forces stuck button releases", Category: "input"})
	r.Register(PassInfo{ID: PassCamera, Name: "Camera", Description: "Applies look and fly controls", Category: "input"})

	r.Register(PassInfo{ID: PassCreation, Name: "Creation", Description: "Spawns and removes particle batches", Category: "scene"})
	r.Register(PassInfo{ID: PassBounds, Name: "Bounds", Description: "Reprojects particles into the bounds volume", Category: "scene"})
	r.Register(PassInfo{ID: PassGroup, Name: "Group", Description: "Applies the group offset and scale", Category: "scene"})

	r.Register(PassInfo{ID: PassPick, Name: "Ray Pick", Description: "Toggles the particle under the cursor", Category: "selection"})
	r.Register(PassInfo{ID: PassDragBox, Name: "Drag Box", Description: "Runs the box selection state machine", Category: "selection"})
	r.Register(PassInfo{ID: PassCapture, Name: "Capture", Description: "Snapshots originals when membership changes", Category: "selection"})
	r.Register(PassInfo{ID: PassMotion, Name: "Motion", Description: "Advances the in-place rotation", Category: "selection"})
	r.Register(PassInfo{ID: PassTransform, Name: "Transform", Description: "Applies the selection transform", Category: "selection"})
	r.Register(PassInfo{ID: PassSelBounds, Name: "Selection Bounds", Description: "Computes the selection AABB", Category: "selection"})

	r.Register(PassInfo{ID: PassLayout, Name: "Layout", Description: "Resolves the camera viewport", Category: "frame"})
	r.Register(PassInfo{ID: PassRender, Name: "Render", Description: "Draws the scene and panels", Category: "frame"})
}

// Register adds a pass to the registry.
func (r *PassRegistry) Register(info PassInfo) {
	r.passes = append(r.passes, info)
	r.byID[info.ID] = info
}

// Get returns pass info by ID.
func (r *PassRegistry) Get(id string) (PassInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// Name returns the display name for a pass ID.
// Falls back to the ID itself if not found.
func (r *PassRegistry) Name(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered passes.
func (r *PassRegistry) All() []PassInfo {
	return r.passes
}

// ByCategory returns passes filtered by category.
func (r *PassRegistry) ByCategory(category string) []PassInfo {
	var result []PassInfo
	for _, info := range r.passes {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// Categories returns all unique categories in registration order.
func (r *PassRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, info := range r.passes {
		if !seen[info.Category] {
			seen[info.Category] = true
			cats = append(cats, info.Category)
		}
	}
	return cats
}

// IDs returns all pass IDs in registration order.
func (r *PassRegistry) IDs() []string {
	ids := make([]string, len(r.passes))
	for i, info := range r.passes {
		ids[i] = info.ID
	}
	return ids
}
