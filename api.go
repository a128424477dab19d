package hive

import (
	"fmt"
	"unsafe"
)

// Add attaches a component of type T to a live entity and returns a pointer
// to it. The pointer stays valid for the world's lifetime (pool chunks never
// move), but the component it addresses is only meaningful while the mask
// bit is set. Panics if the entity is stale or already has the component.
func Add[T any](w *World, e Entity, v T) *T {
	w.mustLive(e)
	id := ComponentIDFor[T]()
	if w.table.masks[e.ID].has(id) {
		panic(fmt.Sprintf("hive: entity already has component %s", idToType[id]))
	}
	ptr := construct(w, e.ID, id, v)
	w.table.masks[e.ID] = w.table.masks[e.ID].set(id)
	return (*T)(ptr)
}

// Set overwrites the entity's component of type T, attaching it first if it
// is absent. Panics if the entity is stale.
func Set[T any](w *World, e Entity, v T) *T {
	w.mustLive(e)
	id := ComponentIDFor[T]()
	if !w.table.masks[e.ID].has(id) {
		return Add(w, e, v)
	}
	ptr := (*T)(w.stores[id].ptrAt(int(e.ID)))
	*ptr = v
	return ptr
}

// Get returns a pointer to the entity's component of type T. Panics if the
// entity is stale or does not have the component; use TryGet for a soft
// check.
func Get[T any](w *World, e Entity) *T {
	w.mustLive(e)
	id := ComponentIDFor[T]()
	if !w.table.masks[e.ID].has(id) {
		panic(fmt.Sprintf("hive: entity does not have component %s", idToType[id]))
	}
	return (*T)(w.stores[id].ptrAt(int(e.ID)))
}

// TryGet returns a pointer to the entity's component of type T, or nil and
// false when the entity is stale or the component absent.
func TryGet[T any](w *World, e Entity) (*T, bool) {
	if !w.table.isLive(e) {
		return nil, false
	}
	id, ok := TryComponentIDFor[T]()
	if !ok || !w.table.masks[e.ID].has(id) {
		return nil, false
	}
	return (*T)(w.stores[id].ptrAt(int(e.ID))), true
}

// Has reports whether a live entity has a component of type T. Panics if the
// entity is stale.
func Has[T any](w *World, e Entity) bool {
	w.mustLive(e)
	id, ok := TryComponentIDFor[T]()
	return ok && w.table.masks[e.ID].has(id)
}

// Remove destroys the entity's component of type T and clears its mask bit.
// Panics if the entity is stale or does not have the component.
func Remove[T any](w *World, e Entity) {
	w.mustLive(e)
	id := ComponentIDFor[T]()
	if !w.table.masks[e.ID].has(id) {
		panic(fmt.Sprintf("hive: entity does not have component %s", idToType[id]))
	}
	w.stores[id].zeroAt(int(e.ID))
	w.table.masks[e.ID] = w.table.masks[e.ID].unset(id)
}

// CreateWith creates an entity carrying a single component, clustered with
// other {T} entities. Generated variants cover higher arities.
func CreateWith[T any](w *World, v T) Entity {
	id := ComponentIDFor[T]()
	e := w.createSlot(MaskOf(id))
	construct(w, e.ID, id, v)
	w.table.masks[e.ID] = MaskOf(id)
	return e
}

// construct writes v into the slot of the given component pool, growing the
// pool as needed. The caller is responsible for the mask bit.
func construct[T any](w *World, slot uint32, id ComponentID, v T) unsafe.Pointer {
	p := w.poolFor(id)
	p.ensureSize(int(slot) + 1)
	ptr := p.ptrAt(int(slot))
	*(*T)(ptr) = v
	return ptr
}
