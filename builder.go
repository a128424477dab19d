package hive

// Builder caches the archetype mask for entities with a single component T,
// so repeated creation skips the registry lookups. Components start at their
// zero value; the returned pointer is for initialization.
//
// Generated variants (Builder2, Builder3, ...) cover more components.
type Builder[T any] struct {
	world *World
	mask  Mask
	id    ComponentID
}

// NewBuilder creates a builder for entities carrying T.
func NewBuilder[T any](w *World) *Builder[T] {
	id := ComponentIDFor[T]()
	return &Builder[T]{world: w, mask: MaskOf(id), id: id}
}

// NewEntity creates one entity in the builder's archetype and returns it
// together with its zero-valued component.
func (b *Builder[T]) NewEntity() (Entity, *T) {
	e := b.world.createSlot(b.mask)
	p := b.world.poolFor(b.id)
	p.ensureSize(int(e.ID) + 1)
	b.world.table.masks[e.ID] = b.mask
	return e, (*T)(p.ptrAt(int(e.ID)))
}

// NewEntities creates count entities in the builder's archetype, all with
// zero-valued components.
func (b *Builder[T]) NewEntities(count int) []Entity {
	if count <= 0 {
		return nil
	}
	w := b.world
	slots := w.index.allocateMany(b.mask, count)
	maxSlot := uint32(0)
	for _, s := range slots {
		if s > maxSlot {
			maxSlot = s
		}
	}
	w.table.ensureSize(int(maxSlot) + 1)
	p := w.poolFor(b.id)
	p.ensureSize(int(maxSlot) + 1)
	ents := make([]Entity, len(slots))
	for i, s := range slots {
		w.table.masks[s] = b.mask
		ents[i] = Entity{ID: s, Version: w.table.versions[s]}
	}
	w.liveCount += count
	return ents
}
