package hive

import (
	"fmt"
	"math/bits"
)

// World owns all entity and component state: the per-slot version and mask
// arrays, the archetype block allocator, and one chunked pool per component
// type. A World is not safe for concurrent use; callers serialize all access.
type World struct {
	resources Resources
	table     entityTable
	index     archetypeIndex
	stores    [MaxComponentTypes]*pool
	liveCount int
}

// NewWorld creates a World with room reserved for initialCapacity entities.
// The reservation is a performance hint, not a cap; the world grows on
// demand. Pass 0 to use the default.
func NewWorld(initialCapacity int) *World {
	if initialCapacity <= 0 {
		initialCapacity = defaultInitialCapacity
	}
	w := &World{index: newArchetypeIndex()}
	w.table.versions = make([]uint32, 0, initialCapacity)
	w.table.masks = make([]Mask, 0, initialCapacity)
	return w
}

// Resources returns the world's resource store: a typed key-value registry
// for data shared across systems (configuration, lookup tables, and such).
func (w *World) Resources() *Resources {
	return &w.resources
}

// poolFor returns the component pool for id, creating it on first use.
func (w *World) poolFor(id ComponentID) *pool {
	p := w.stores[id]
	if p == nil {
		typ, ok := idToType[id]
		if !ok {
			panic(fmt.Sprintf("hive: component ID %d not registered", id))
		}
		p = newPool(typ)
		w.stores[id] = p
	}
	return p
}

func (w *World) mustLive(e Entity) {
	if !w.table.isLive(e) {
		panic(fmt.Sprintf("hive: stale or invalid entity handle {ID: %d, Version: %d}", e.ID, e.Version))
	}
}

// createSlot allocates one slot clustered with other entities created under
// mask, grows the entity table to cover it, and returns the handle. The
// slot's version is whatever recycling left it at; creation never bumps it.
func (w *World) createSlot(mask Mask) Entity {
	slot := w.index.allocateOne(mask)
	w.table.ensureSize(int(slot) + 1)
	w.liveCount++
	return Entity{ID: slot, Version: w.table.versions[slot]}
}

// Create allocates a new entity with no components.
func (w *World) Create() Entity {
	return w.createSlot(0)
}

// CreateMany allocates count entities with no components in one archetype
// pass. The multiset of returned handles matches count back-to-back Create
// calls; the order is unspecified.
func (w *World) CreateMany(count int) []Entity {
	if count <= 0 {
		return nil
	}
	slots := w.index.allocateMany(0, count)
	maxSlot := uint32(0)
	for _, s := range slots {
		if s > maxSlot {
			maxSlot = s
		}
	}
	w.table.ensureSize(int(maxSlot) + 1)
	ents := make([]Entity, len(slots))
	for i, s := range slots {
		ents[i] = Entity{ID: s, Version: w.table.versions[s]}
	}
	w.liveCount += count
	return ents
}

// CreateWithMask allocates an entity clustered with others created under
// mask and zero-constructs every component named by the mask. Use the
// generated CreateN variants to supply initial values.
func (w *World) CreateWithMask(mask Mask) Entity {
	e := w.createSlot(mask)
	for m := mask; m != 0; {
		id := ComponentID(bits.TrailingZeros64(uint64(m)))
		w.poolFor(id).ensureSize(int(e.ID) + 1)
		m = m.unset(id)
	}
	w.table.masks[e.ID] = mask
	return e
}

// destroyComponents zero-destroys every component the slot's mask names.
func (w *World) destroyComponents(slot uint32) {
	for m := w.table.masks[slot]; m != 0; {
		id := ComponentID(bits.TrailingZeros64(uint64(m)))
		w.stores[id].zeroAt(int(slot))
		m = m.unset(id)
	}
}

// Destroy destroys a live entity: every component is destroyed, the slot's
// version is bumped so outstanding handles go stale, and the slot returns to
// the free list of its block's original mask.
func (w *World) Destroy(e Entity) {
	w.mustLive(e)
	w.destroyComponents(e.ID)
	w.table.masks[e.ID] = 0
	w.table.bumpVersion(e.ID)
	w.index.release(e.ID)
	w.liveCount--
}

// DestroyMany destroys a batch of entities. Stale handles in the batch
// panic, same as Destroy.
func (w *World) DestroyMany(ents []Entity) {
	for _, e := range ents {
		w.Destroy(e)
	}
}

// RemoveAll destroys every component on the entity and clears its mask. The
// entity itself stays alive with an unchanged version.
func (w *World) RemoveAll(e Entity) {
	w.mustLive(e)
	w.destroyComponents(e.ID)
	w.table.masks[e.ID] = 0
}

// ClearMask clears the entity's mask without destroying components. This
// breaks the mask/storage correspondence on purpose: it exists for layered
// abstractions that manage their own teardown and must be followed by one.
// After ClearMask, Get on any previously held component panics even though
// its bytes are still in the pool.
func (w *World) ClearMask(e Entity) {
	w.mustLive(e)
	w.table.masks[e.ID] = 0
}

// IsLive reports whether the handle refers to a live entity.
func (w *World) IsLive(e Entity) bool {
	return w.table.isLive(e)
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return w.liveCount
}

// Capacity returns the current length of the entity table, i.e. the slot
// range query iteration walks.
func (w *World) Capacity() int {
	return w.table.len()
}

// At returns the current handle for a slot index. The index must be within
// the entity table.
func (w *World) At(index uint32) Entity {
	if int(index) >= w.table.len() {
		panic(fmt.Sprintf("hive: slot index %d out of range", index))
	}
	return Entity{ID: index, Version: w.table.versions[index]}
}

// MaskAt returns the component mask currently stored at a slot index.
func (w *World) MaskAt(index uint32) Mask {
	if int(index) >= w.table.len() {
		panic(fmt.Sprintf("hive: slot index %d out of range", index))
	}
	return w.table.masks[index]
}
