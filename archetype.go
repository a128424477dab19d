package hive

import (
	"github.com/kamstrup/intmap"
)

// archetype tracks where entities created with one particular component mask
// live: the ordered blocks assigned to that mask plus a LIFO free list of
// slots vacated by destroy.
type archetype struct {
	mask     Mask
	blocks   []uint32
	freeList []uint32
}

// archetypeIndex hands out entity slots so that entities sharing a creation
// mask cluster into contiguous BlockSize-slot blocks. Destroyed slots go back
// to the free list of their block's original mask, not the entity's current
// mask, so clustering survives add/remove churn on individual entities.
type archetypeIndex struct {
	byMask     *intmap.Map[Mask, int]
	archetypes []*archetype

	// Per-block metadata, indexed by block. Block b covers slots
	// [b*BlockSize, (b+1)*BlockSize).
	nextFreeOffset []uint32
	blockMasks     []Mask
}

func newArchetypeIndex() archetypeIndex {
	return archetypeIndex{
		byMask:     intmap.New[Mask, int](16),
		archetypes: make([]*archetype, 0, 16),
	}
}

func (x *archetypeIndex) getOrCreate(mask Mask) *archetype {
	if idx, ok := x.byMask.Get(mask); ok {
		return x.archetypes[idx]
	}
	a := &archetype{mask: mask}
	x.byMask.Put(mask, len(x.archetypes))
	x.archetypes = append(x.archetypes, a)
	return a
}

// newBlock appends a fresh block for the archetype and returns its index.
// The block's next-free offset starts at 0; callers advance it as they hand
// out slots.
func (x *archetypeIndex) newBlock(a *archetype, mask Mask) uint32 {
	b := uint32(len(x.nextFreeOffset))
	a.blocks = append(a.blocks, b)
	x.nextFreeOffset = append(x.nextFreeOffset, 0)
	x.blockMasks = append(x.blockMasks, mask)
	return b
}

// allocateOne returns a slot for a new entity with the given creation mask:
// a free-listed slot if one exists, else the next unused slot of the tail
// block, else the base of a fresh block.
func (x *archetypeIndex) allocateOne(mask Mask) uint32 {
	a := x.getOrCreate(mask)
	if n := len(a.freeList); n > 0 {
		slot := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		return slot
	}
	if n := len(a.blocks); n > 0 {
		tail := a.blocks[n-1]
		if off := x.nextFreeOffset[tail]; off < BlockSize {
			x.nextFreeOffset[tail] = off + 1
			return tail*BlockSize + off
		}
	}
	b := x.newBlock(a, mask)
	x.nextFreeOffset[b] = 1
	return b * BlockSize
}

// allocateMany returns count fresh slots for the given creation mask. The
// free list is drained first, then the tail block is filled, then new blocks
// are appended as needed.
func (x *archetypeIndex) allocateMany(mask Mask, count int) []uint32 {
	a := x.getOrCreate(mask)
	out := make([]uint32, 0, count)
	left := count
	for left > 0 && len(a.freeList) > 0 {
		n := len(a.freeList)
		out = append(out, a.freeList[n-1])
		a.freeList = a.freeList[:n-1]
		left--
	}
	if left > 0 && len(a.blocks) > 0 {
		tail := a.blocks[len(a.blocks)-1]
		for off := x.nextFreeOffset[tail]; off < BlockSize && left > 0; off++ {
			out = append(out, tail*BlockSize+off)
			x.nextFreeOffset[tail] = off + 1
			left--
		}
	}
	for left > 0 {
		b := x.newBlock(a, mask)
		take := uint32(left)
		if take > BlockSize {
			take = BlockSize
		}
		for off := uint32(0); off < take; off++ {
			out = append(out, b*BlockSize+off)
		}
		x.nextFreeOffset[b] = take
		left -= int(take)
	}
	return out
}

// release returns a destroyed entity's slot to the free list of its block's
// original mask.
func (x *archetypeIndex) release(slot uint32) {
	mask := x.blockMasks[slot/BlockSize]
	a := x.getOrCreate(mask)
	a.freeList = append(a.freeList, slot)
}

// blockMaskOf returns the creation mask of the block holding slot.
func (x *archetypeIndex) blockMaskOf(slot uint32) Mask {
	return x.blockMasks[slot/BlockSize]
}
