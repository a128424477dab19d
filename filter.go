package hive

// Filter iterates over all entities that have at least the component T,
// yielding typed access to it. It follows the same slot walk as View; the
// same no-mutation-during-iteration rule applies.
//
// This is the single-component filter. Generated variants (Filter2,
// Filter3, ...) cover multiple components with the same protocol.
type Filter[T any] struct {
	view View
	pool *pool
	id   ComponentID
}

// NewFilter creates a filter over all entities carrying T.
//
// Example:
//
//	f := hive.NewFilter[Position](world)
//	for f.Next() {
//	    f.Get().X += 1
//	}
func NewFilter[T any](w *World) *Filter[T] {
	id := ComponentIDFor[T]()
	return &Filter[T]{
		view: View{w: w, mask: MaskOf(id), cursor: -1, size: w.table.len()},
		pool: w.poolFor(id),
		id:   id,
	}
}

// With adds further required component bits to the filter. Call before
// iterating.
func (f *Filter[T]) With(ids ...ComponentID) *Filter[T] {
	f.view.mask |= MaskOf(ids...)
	return f
}

// Next advances to the next matching entity, returning false at the end.
func (f *Filter[T]) Next() bool {
	return f.view.Next()
}

// Entity returns the current entity. Valid only after Next returned true.
func (f *Filter[T]) Entity() Entity {
	return f.view.Entity()
}

// Get returns a pointer to the current entity's T component.
func (f *Filter[T]) Get() *T {
	return (*T)(f.pool.ptrAt(f.view.cursor))
}

// Reset rewinds the filter, picking up entities created since the last walk.
func (f *Filter[T]) Reset() {
	f.view.Reset()
}

// Each calls fn for every live entity carrying T, in ascending slot order.
// fn must not mutate the world.
func Each[T any](w *World, fn func(Entity, *T)) {
	f := NewFilter[T](w)
	for f.Next() {
		fn(f.Entity(), f.Get())
	}
}
