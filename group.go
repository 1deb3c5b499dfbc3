package sway

// Group owns an ordered collection of Items sharing one Config — the words
// of one text block, revealed with a per-Item stagger. Groups are built by
// Scheduler.NewGroup and advanced by the scheduler until every Item has
// converged, at which point the Group is evicted from the live set. The
// caller's handle stays valid after eviction: the published values hold the
// final state for static rendering.
type Group struct {
	cfg      Config
	items    []*Item
	finished bool
}

func newGroup(cfg Config, labels []string) *Group {
	g := &Group{
		cfg:   cfg,
		items: make([]*Item, len(labels)),
		// Nothing to converge in an empty group.
		finished: len(labels) == 0,
	}
	for i, label := range labels {
		g.items[i] = newItem(label, float64(i)*cfg.Stagger, cfg)
	}
	return g
}

// Items returns the Group's items in creation order. The returned slice
// MUST NOT be mutated.
func (g *Group) Items() []*Item {
	return g.items
}

// Item returns the item at the given index.
func (g *Group) Item(index int) *Item {
	return g.items[index]
}

// Finished reports whether every Item has converged. Once true it never
// reverts.
func (g *Group) Finished() bool {
	return g.finished
}

// Config returns the Group's parameter bundle.
func (g *Group) Config() Config {
	return g.cfg
}

// advance moves every due Item one step. elapsed is the global clock; the
// Group runs on its own local clock offset by StartDelay and does nothing
// until that clock reaches zero. Returns true when the Group is finished
// and can be dropped from the live set.
func (g *Group) advance(elapsed, dt float64) bool {
	if g.finished {
		return true
	}
	local := elapsed - g.cfg.StartDelay
	if local < 0 {
		return false
	}

	done := true
	for _, it := range g.items {
		it.activateIfDue(local)
		it.advance(local, dt, g.cfg)
		if !it.converged {
			done = false
		}
	}
	g.finished = done
	return done
}
