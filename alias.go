package hive

import "fmt"

// Alias2 is a strongly typed view of an entity known to carry both T1 and
// T2. Construction checks the mask once; the accessors skip the check
// afterwards. The alias goes stale together with its entity: after a
// destroy, remove or clear of one of its components the accessors return
// whatever is in the pool, so treat an alias like any other borrowed
// reference and drop it on mutation.
type Alias2[T1, T2 any] struct {
	w  *World
	e  Entity
	p1 *pool
	p2 *pool
}

// As2 wraps a live entity as an Alias2. Panics if the entity's mask does not
// contain both components.
func As2[T1, T2 any](w *World, e Entity) Alias2[T1, T2] {
	w.mustLive(e)
	id1 := ComponentIDFor[T1]()
	id2 := ComponentIDFor[T2]()
	need := MaskOf(id1, id2)
	if !w.table.masks[e.ID].ContainsAll(need) {
		panic(fmt.Sprintf("hive: entity is missing components for alias {%s, %s}", idToType[id1], idToType[id2]))
	}
	return Alias2[T1, T2]{w: w, e: e, p1: w.poolFor(id1), p2: w.poolFor(id2)}
}

// Entity returns the wrapped handle.
func (a Alias2[T1, T2]) Entity() Entity { return a.e }

// Get1 returns the T1 component without a mask check.
func (a Alias2[T1, T2]) Get1() *T1 { return (*T1)(a.p1.ptrAt(int(a.e.ID))) }

// Get2 returns the T2 component without a mask check.
func (a Alias2[T1, T2]) Get2() *T2 { return (*T2)(a.p2.ptrAt(int(a.e.ID))) }

// Alias3 is the three-component counterpart of Alias2.
type Alias3[T1, T2, T3 any] struct {
	w  *World
	e  Entity
	p1 *pool
	p2 *pool
	p3 *pool
}

// As3 wraps a live entity as an Alias3. Panics if the entity's mask does not
// contain all three components.
func As3[T1, T2, T3 any](w *World, e Entity) Alias3[T1, T2, T3] {
	w.mustLive(e)
	id1 := ComponentIDFor[T1]()
	id2 := ComponentIDFor[T2]()
	id3 := ComponentIDFor[T3]()
	need := MaskOf(id1, id2, id3)
	if !w.table.masks[e.ID].ContainsAll(need) {
		panic(fmt.Sprintf("hive: entity is missing components for alias {%s, %s, %s}", idToType[id1], idToType[id2], idToType[id3]))
	}
	return Alias3[T1, T2, T3]{w: w, e: e, p1: w.poolFor(id1), p2: w.poolFor(id2), p3: w.poolFor(id3)}
}

// Entity returns the wrapped handle.
func (a Alias3[T1, T2, T3]) Entity() Entity { return a.e }

// Get1 returns the T1 component without a mask check.
func (a Alias3[T1, T2, T3]) Get1() *T1 { return (*T1)(a.p1.ptrAt(int(a.e.ID))) }

// Get2 returns the T2 component without a mask check.
func (a Alias3[T1, T2, T3]) Get2() *T2 { return (*T2)(a.p2.ptrAt(int(a.e.ID))) }

// Get3 returns the T3 component without a mask check.
func (a Alias3[T1, T2, T3]) Get3() *T3 { return (*T3)(a.p3.ptrAt(int(a.e.ID))) }
