package hive

// View is a mask-filtered iterator over entity slots. It walks slot indices
// in ascending order and yields every slot whose mask is a superset of the
// required mask. The walk is bounded by the entity table's length at the
// time the View was made; slots created after that are not visited.
//
// No mutating operation on the World may be called during iteration:
// create/destroy/add/remove/set all may move storage or flip mask bits the
// filter observes.
type View struct {
	w      *World
	mask   Mask
	cursor int
	size   int
}

// Query returns a View over all slots whose mask contains every bit of mask.
// The empty mask matches every allocated slot.
func (w *World) Query(mask Mask) *View {
	return &View{w: w, mask: mask, cursor: -1, size: w.table.len()}
}

// Next advances to the next matching slot. It must be called before the
// first access and returns false when the walk is done.
func (v *View) Next() bool {
	masks := v.w.table.masks
	for i := v.cursor + 1; i < v.size; i++ {
		if masks[i].ContainsAll(v.mask) {
			v.cursor = i
			return true
		}
	}
	v.cursor = v.size
	return false
}

// Slot returns the current slot index.
func (v *View) Slot() uint32 {
	return uint32(v.cursor)
}

// Entity returns the handle currently stored at the cursor's slot.
func (v *View) Entity() Entity {
	return Entity{ID: uint32(v.cursor), Version: v.w.table.versions[v.cursor]}
}

// Reset rewinds the iterator and re-reads the table length, so slots created
// since construction become visible.
func (v *View) Reset() {
	v.cursor = -1
	v.size = v.w.table.len()
}

// Count returns the number of matching slots without disturbing the cursor.
func (v *View) Count() int {
	masks := v.w.table.masks
	n := 0
	for i := 0; i < v.size; i++ {
		if masks[i].ContainsAll(v.mask) {
			n++
		}
	}
	return n
}
