package hive

import (
	"fmt"
	"reflect"
)

// ComponentID is the dense index assigned to a component type on first
// registration. IDs are stable for the lifetime of the process and are never
// reclaimed.
type ComponentID uint32

var (
	nextComponentID ComponentID
	typeToID        = make(map[reflect.Type]ComponentID, MaxComponentTypes)
	idToType        = make(map[ComponentID]reflect.Type, MaxComponentTypes)
	componentSizes  [MaxComponentTypes]uintptr
)

// ResetRegistry resets the global component registry. Useful for tests that
// need a clean ID space; never call it while any World is alive.
func ResetRegistry() {
	nextComponentID = 0
	typeToID = make(map[reflect.Type]ComponentID, MaxComponentTypes)
	idToType = make(map[ComponentID]reflect.Type, MaxComponentTypes)
	componentSizes = [MaxComponentTypes]uintptr{}
}

// RegisterComponent registers a component type and returns its ID. Repeated
// registration of the same type is idempotent and returns the existing ID.
// It panics once MaxComponentTypes distinct types have been registered.
func RegisterComponent[T any]() ComponentID {
	var zero T
	typ := reflect.TypeOf(zero)
	if id, ok := typeToID[typ]; ok {
		return id
	}
	if int(nextComponentID) >= MaxComponentTypes {
		panic(fmt.Sprintf("hive: cannot register component %s: maximum number of component types (%d) reached", typ, MaxComponentTypes))
	}
	id := nextComponentID
	typeToID[typ] = id
	idToType[id] = typ
	componentSizes[id] = typ.Size()
	nextComponentID++
	return id
}

// ComponentIDFor returns the ID for a component type, registering it on first
// use.
func ComponentIDFor[T any]() ComponentID {
	return RegisterComponent[T]()
}

// TryComponentIDFor returns the ID for a component type and whether it has
// been registered. It never registers.
func TryComponentIDFor[T any]() (ComponentID, bool) {
	var zero T
	id, ok := typeToID[reflect.TypeOf(zero)]
	return id, ok
}

// MaskFor returns the single-bit mask for a component type, registering it on
// first use.
func MaskFor[T any]() Mask {
	return MaskOf(ComponentIDFor[T]())
}
