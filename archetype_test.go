package hive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateOneFillsBlockBeforeOpeningNext(t *testing.T) {
	x := newArchetypeIndex()

	for i := 0; i < BlockSize; i++ {
		require.Equal(t, uint32(i), x.allocateOne(0))
	}
	assert.Equal(t, uint32(BlockSize), x.allocateOne(0), "full tail block forces a fresh one")
}

func TestAllocateOneSeparatesMasks(t *testing.T) {
	x := newArchetypeIndex()

	a := x.allocateOne(MaskOf(0))
	b := x.allocateOne(MaskOf(1))
	c := x.allocateOne(MaskOf(0))
	d := x.allocateOne(MaskOf(1))

	assert.Equal(t, a/BlockSize, c/BlockSize)
	assert.Equal(t, b/BlockSize, d/BlockSize)
	assert.NotEqual(t, a/BlockSize, b/BlockSize)

	assert.Equal(t, MaskOf(0), x.blockMaskOf(a))
	assert.Equal(t, MaskOf(1), x.blockMaskOf(b))
}

func TestReleasePrefersFreeListOverTailBlock(t *testing.T) {
	x := newArchetypeIndex()

	first := x.allocateOne(0)
	x.allocateOne(0)
	x.release(first)

	assert.Equal(t, first, x.allocateOne(0), "free list outranks the tail block")
}

func TestReleaseKeyedByBlockMask(t *testing.T) {
	x := newArchetypeIndex()

	slot := x.allocateOne(MaskOf(2))
	// The entity's mask may have drifted since creation; release always goes
	// to the block's original mask.
	x.release(slot)

	other := x.allocateOne(MaskOf(3))
	assert.NotEqual(t, slot, other, "free slot of a different archetype must not leak")
	assert.Equal(t, slot, x.allocateOne(MaskOf(2)))
}

func TestAllocateManyDrainsFreeListFirst(t *testing.T) {
	x := newArchetypeIndex()

	a := x.allocateOne(0)
	b := x.allocateOne(0)
	x.release(a)
	x.release(b)

	slots := x.allocateMany(0, 3)
	require.Len(t, slots, 3)
	assert.Contains(t, slots, a)
	assert.Contains(t, slots, b)
	assert.Contains(t, slots, uint32(2))
}

func TestAllocateManySpansBlocks(t *testing.T) {
	x := newArchetypeIndex()

	n := 2*BlockSize + 10
	slots := x.allocateMany(0, n)
	require.Len(t, slots, n)

	seen := make(map[uint32]bool, n)
	blocks := make(map[uint32]bool)
	for _, s := range slots {
		require.False(t, seen[s], "slot %d handed out twice", s)
		seen[s] = true
		blocks[s/BlockSize] = true
	}
	assert.Len(t, blocks, 3)
	assert.Equal(t, uint32(10), x.nextFreeOffset[2], "last block partially filled")
}

func TestAllocateManyContinuesTailBlock(t *testing.T) {
	x := newArchetypeIndex()

	x.allocateOne(0)
	x.allocateOne(0)
	slots := x.allocateMany(0, 4)

	assert.Equal(t, []uint32{2, 3, 4, 5}, slots)
}

func TestBlocksOfDistinctMasksInterleave(t *testing.T) {
	x := newArchetypeIndex()

	a0 := x.allocateOne(MaskOf(0))
	b0 := x.allocateOne(MaskOf(1))
	for i := 0; i < BlockSize; i++ {
		x.allocateOne(MaskOf(0))
	}
	b1 := x.allocateOne(MaskOf(1))

	// Mask 0 overflowed into a third block; mask 1 kept filling its own.
	assert.Equal(t, uint32(0), a0/BlockSize)
	assert.Equal(t, b0/BlockSize, b1/BlockSize)
	assert.Equal(t, b0+1, b1)
}
