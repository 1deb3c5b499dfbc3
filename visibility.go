package sway

// VisibilityGate aggregates per-surface visibility into the scheduler's
// single flag: the scheduler is visible iff at least one tracked surface
// intersects the viewport. The viewport sensor itself (intersection
// observation, debouncing) lives outside sway; it only has to call
// SetSurfaceVisible whenever a surface's state flips.
//
// Like the scheduler it drives, a VisibilityGate is confined to the
// animation goroutine.
type VisibilityGate struct {
	sched    *Scheduler
	surfaces map[string]bool
	visible  int
}

// NewVisibilityGate returns a gate driving the given scheduler. With no
// surfaces tracked the scheduler keeps its default (visible).
func NewVisibilityGate(sched *Scheduler) *VisibilityGate {
	return &VisibilityGate{
		sched:    sched,
		surfaces: make(map[string]bool),
	}
}

// AddSurface starts tracking a surface with the given initial visibility.
// Adding an already-tracked surface is equivalent to SetSurfaceVisible.
func (v *VisibilityGate) AddSurface(id string, visible bool) {
	v.SetSurfaceVisible(id, visible)
}

// RemoveSurface stops tracking a surface. Unknown ids are ignored.
func (v *VisibilityGate) RemoveSurface(id string) {
	if vis, ok := v.surfaces[id]; ok {
		delete(v.surfaces, id)
		if vis {
			v.visible--
		}
		v.apply()
	}
}

// SetSurfaceVisible records a surface's visibility and updates the
// scheduler flag if the aggregate changed.
func (v *VisibilityGate) SetSurfaceVisible(id string, visible bool) {
	prev, tracked := v.surfaces[id]
	if tracked && prev == visible {
		return
	}
	v.surfaces[id] = visible
	if visible {
		v.visible++
	} else if tracked {
		v.visible--
	}
	v.apply()
}

func (v *VisibilityGate) apply() {
	v.sched.SetVisible(v.visible > 0)
}
