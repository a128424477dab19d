package hive

import "reflect"

// Resources is a typed key-value store for world-global data that systems
// share: configuration, lookup tables, spatial indexes. At most one value
// per type. Like the rest of the World it is single-threaded.
type Resources struct {
	items   []any
	types   map[reflect.Type]int
	freeIDs []int
}

// Add stores a resource and returns its ID. Panics on nil or when a resource
// of the same type already exists.
func (r *Resources) Add(res any) int {
	if res == nil {
		panic("hive: cannot add nil resource")
	}
	t := reflect.TypeOf(res)
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if _, ok := r.types[t]; ok {
		panic("hive: resource of type " + t.String() + " already exists")
	}
	var id int
	if n := len(r.freeIDs); n > 0 {
		id = r.freeIDs[n-1]
		r.freeIDs = r.freeIDs[:n-1]
		r.items[id] = res
	} else {
		r.items = append(r.items, res)
		id = len(r.items) - 1
	}
	r.types[t] = id
	return id
}

// Get returns the resource with the given ID, or nil.
func (r *Resources) Get(id int) any {
	if id < 0 || id >= len(r.items) {
		return nil
	}
	return r.items[id]
}

// Remove deletes the resource with the given ID, freeing the ID for reuse.
func (r *Resources) Remove(id int) {
	if id < 0 || id >= len(r.items) || r.items[id] == nil {
		return
	}
	delete(r.types, reflect.TypeOf(r.items[id]))
	r.items[id] = nil
	r.freeIDs = append(r.freeIDs, id)
}

// Clear removes every resource.
func (r *Resources) Clear() {
	for i := range r.items {
		r.items[i] = nil
	}
	r.items = r.items[:0]
	clear(r.types)
	r.freeIDs = r.freeIDs[:0]
}

// GetResource returns the resource of type *T, or nil and false when absent.
func GetResource[T any](r *Resources) (*T, bool) {
	id, ok := r.types[reflect.TypeOf((*T)(nil))]
	if !ok {
		return nil, false
	}
	return r.items[id].(*T), true
}

// AddResource stores a resource of type *T and returns its ID.
func AddResource[T any](r *Resources, res *T) int {
	return r.Add(res)
}
