package hive

// Mask is a fixed-width bitset over component types. Bit i is set when the
// component type with ComponentID i is present.
type Mask uint64

// set enables the bit for the given component ID.
func (m Mask) set(id ComponentID) Mask {
	return m | (1 << id)
}

// unset disables the bit for the given component ID.
func (m Mask) unset(id ComponentID) Mask {
	return m &^ (1 << id)
}

// has reports whether the bit for the given component ID is set.
func (m Mask) has(id ComponentID) bool {
	return m&(1<<id) != 0
}

// ContainsAll reports whether every bit set in sub is also set in m. A query
// with required mask sub matches a slot with mask m iff this holds.
func (m Mask) ContainsAll(sub Mask) bool {
	return m&sub == sub
}

// Intersects reports whether m and other share any bit.
func (m Mask) Intersects(other Mask) bool {
	return m&other != 0
}

// MaskOf builds a Mask from component IDs.
func MaskOf(ids ...ComponentID) Mask {
	var m Mask
	for _, id := range ids {
		m = m.set(id)
	}
	return m
}
