package hive

// Entity is a stable (index, version) handle. It carries no data of its own;
// copying is free. A handle goes stale when the entity it refers to is
// destroyed, which is detected by version mismatch.
type Entity struct {
	ID      uint32 // slot index into the world's per-entity arrays
	Version uint32 // version counter, bumped on every destroy of the slot
}

// Handle bundles an Entity with its World so callers can use method form for
// the non-generic operations. Typed component access stays in the package
// level generics (Get, Add, Set, ...), since Go methods cannot introduce type
// parameters.
type Handle struct {
	w *World
	e Entity
}

// Handle wraps an entity for method-style access.
func (w *World) Handle(e Entity) Handle {
	return Handle{w: w, e: e}
}

// Entity returns the underlying handle value.
func (h Handle) Entity() Entity { return h.e }

// IsLive reports whether the entity is still alive.
func (h Handle) IsLive() bool { return h.w.IsLive(h.e) }

// Mask returns the entity's current component mask.
func (h Handle) Mask() Mask {
	h.w.mustLive(h.e)
	return h.w.table.masks[h.e.ID]
}

// Destroy destroys the entity.
func (h Handle) Destroy() { h.w.Destroy(h.e) }

// RemoveAll destroys every component on the entity but keeps it alive.
func (h Handle) RemoveAll() { h.w.RemoveAll(h.e) }

// ClearMask clears the entity's mask without destroying components. See
// World.ClearMask for the caveats.
func (h Handle) ClearMask() { h.w.ClearMask(h.e) }
