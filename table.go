package hive

// entityTable holds the per-slot parallel arrays: the version counter used to
// detect stale handles, and the component mask. Both grow in lockstep and are
// never shrunk.
type entityTable struct {
	versions []uint32
	masks    []Mask
}

// ensureSize grows both arrays to at least n slots. New versions are zero and
// new masks empty.
func (t *entityTable) ensureSize(n int) {
	if n <= len(t.versions) {
		return
	}
	if n <= cap(t.versions) {
		t.versions = t.versions[:n]
		t.masks = t.masks[:n]
		return
	}
	newCap := 2 * cap(t.versions)
	if newCap < n {
		newCap = n
	}
	versions := make([]uint32, n, newCap)
	copy(versions, t.versions)
	t.versions = versions
	masks := make([]Mask, n, newCap)
	copy(masks, t.masks)
	t.masks = masks
}

// isLive reports whether the handle's version matches the slot's current
// version. This is the only validity check; a handle aliasing a recycled slot
// after a full version wrap is an accepted limitation.
func (t *entityTable) isLive(e Entity) bool {
	return int(e.ID) < len(t.versions) && t.versions[e.ID] == e.Version
}

// bumpVersion increments the slot's version, invalidating outstanding
// handles. Wrap-around is tolerated.
func (t *entityTable) bumpVersion(index uint32) {
	t.versions[index]++
}

func (t *entityTable) len() int {
	return len(t.versions)
}
