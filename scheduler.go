package sway

// advancer is the capability shared by everything the scheduler ticks.
// advance moves the object one fixed step and reports whether it is
// finished and may be dropped from the live set.
type advancer interface {
	advance(elapsed, dt float64) bool
}

// Scheduler owns every live animated object and advances them all once per
// frame. Create one at application startup, register Groups and
// SpringWidgets as UI elements come into being, and call Tick from the
// frame driver (Run does this for you).
//
// All scheduler state lives on the single animation goroutine: Tick,
// registration, and teardown must be called from the same goroutine that
// drives frames. Published values change only between ticks, so a renderer
// always observes a self-consistent snapshot.
type Scheduler struct {
	groups  []*Group
	widgets []*SpringWidget
	visible bool
}

// NewScheduler returns an empty scheduler. Visibility starts true; the
// viewport sensor should call SetVisible with the real initial state before
// the first tick.
func NewScheduler() *Scheduler {
	return &Scheduler{visible: true}
}

// SetVisible sets the visibility gate. While false, Tick is a no-op: an
// off-screen page performs zero animation work and no published value
// changes. The viewport sensor aggregates per-surface visibility into this
// single flag (see VisibilityGate).
func (s *Scheduler) SetVisible(visible bool) {
	s.visible = visible
}

// Visible reports the current gate state.
func (s *Scheduler) Visible() bool {
	return s.visible
}

// NewGroup builds a Group of one Item per label, with Item i starting
// cfg.Stagger*i seconds into the Group, and adds it to the live set. The
// returned handle stays valid after the Group finishes and is evicted.
// Panics if cfg is invalid (see Config.Validate); a broken config must
// fail at construction, not corrupt the simulation later.
func (s *Scheduler) NewGroup(cfg Config, labels []string) *Group {
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	g := newGroup(cfg, labels)
	s.groups = append(s.groups, g)
	return g
}

// NewSpringWidget registers a standalone spring-backed value and returns
// its handle. Widgets are retained until Reset; they map 1:1 to interactive
// controls, so the list is bounded by the UI itself.
// Panics if cfg is invalid.
func (s *Scheduler) NewSpringWidget(cfg Config) *SpringWidget {
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	w := newSpringWidget(cfg)
	s.widgets = append(s.widgets, w)
	return w
}

// Tick advances every live animation by one fixed step. elapsed is the
// wall-clock time in seconds since the scheduler started; dt is the fixed
// simulation step (DefaultDT for a 60 Hz driver), deliberately not the
// measured frame delta — fixed stepping keeps the integration stable under
// frame jitter.
//
// Groups advance in registration order and finished ones are dropped;
// widgets advance after all groups and are never dropped.
func (s *Scheduler) Tick(elapsed, dt float64) {
	if !s.visible {
		return
	}

	// Retain unfinished groups in place, preserving registration order.
	live := s.groups[:0]
	for _, g := range s.groups {
		if done := g.advance(elapsed, dt); !done {
			live = append(live, g)
		}
	}
	// Clear the tail so evicted groups are not pinned by the backing array.
	for i := len(live); i < len(s.groups); i++ {
		s.groups[i] = nil
	}
	s.groups = live

	for _, w := range s.widgets {
		w.advance(elapsed, dt)
	}
}

// LiveGroups returns the number of unfinished groups in the live set.
func (s *Scheduler) LiveGroups() int {
	return len(s.groups)
}

// Widgets returns the number of registered spring widgets.
func (s *Scheduler) Widgets() int {
	return len(s.widgets)
}

// Reset drops every group and widget, releasing the retained lists. Use on
// teardown (page navigation) so a stopped loop does not leak its widgets.
// Existing handles keep their last published values but are no longer
// advanced.
func (s *Scheduler) Reset() {
	s.groups = nil
	s.widgets = nil
}

var (
	_ advancer = (*Group)(nil)
	_ advancer = (*SpringWidget)(nil)
)
