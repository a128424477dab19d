package hive_test

import (
	"testing"

	"github.com/hivelib/hive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryYieldsAscendingMatchingSlots(t *testing.T) {
	w := newWorld(t)

	var want []uint32
	for i := 0; i < 10; i++ {
		e := w.Create()
		if i%2 == 0 {
			hive.Add(w, e, Health{Current: i})
			want = append(want, e.ID)
		}
	}

	var got []uint32
	v := w.Query(hive.MaskFor[Health]())
	for v.Next() {
		got = append(got, v.Slot())
	}
	assert.Equal(t, want, got)
}

func TestQueryEmptyMaskYieldsEveryLiveSlot(t *testing.T) {
	w := newWorld(t)

	w.CreateMany(10)
	e := hive.CreateWith(w, Health{})

	v := w.Query(0)
	n := 0
	for v.Next() {
		n++
	}
	// The empty mask matches every allocated slot, covering the full walk
	// range including the block opened for the {Health} archetype.
	assert.Equal(t, 11, w.Count())
	assert.Equal(t, w.Capacity(), n)
	assert.GreaterOrEqual(t, n, 11)
	assert.True(t, w.IsLive(e))
}

func TestQueryNoMatchTerminates(t *testing.T) {
	w := newWorld(t)
	w.CreateMany(100)

	v := w.Query(hive.MaskFor[Health]())
	assert.False(t, v.Next())
	assert.Equal(t, 0, v.Count())
}

func TestQuerySkipsDestroyedSlots(t *testing.T) {
	w := newWorld(t)

	keep := hive.CreateWith(w, Health{Current: 1})
	gone := hive.CreateWith(w, Health{Current: 2})
	w.Destroy(gone)

	var slots []uint32
	v := w.Query(hive.MaskFor[Health]())
	for v.Next() {
		slots = append(slots, v.Slot())
	}
	assert.Equal(t, []uint32{keep.ID}, slots)
}

func TestQueryBoundedByCapacityAtStart(t *testing.T) {
	w := newWorld(t)
	hive.CreateWith(w, Health{})

	v := w.Query(hive.MaskFor[Health]())
	require.True(t, v.Next())

	// A later Reset picks up entities created after the view was made.
	hive.CreateWith(w, Health{})
	v.Reset()
	n := 0
	for v.Next() {
		n++
	}
	assert.Equal(t, 2, n)
}

func TestViewEntityHandlesAreLive(t *testing.T) {
	w := newWorld(t)
	e := hive.CreateWith(w, Health{Current: 3})

	v := w.Query(hive.MaskFor[Health]())
	require.True(t, v.Next())
	assert.Equal(t, e, v.Entity())
	assert.True(t, w.IsLive(v.Entity()))
}

func TestFilterSingle(t *testing.T) {
	w := newWorld(t)

	for i := 1; i <= 5; i++ {
		hive.CreateWith(w, Health{Current: i})
	}

	sum := 0
	f := hive.NewFilter[Health](w)
	for f.Next() {
		sum += f.Get().Current
	}
	assert.Equal(t, 15, sum)
}

func TestFilterWith(t *testing.T) {
	w := newWorld(t)

	both := hive.Create2(w, Health{Current: 1}, Mana{Amount: 2})
	hive.CreateWith(w, Health{Current: 9})

	f := hive.NewFilter[Health](w).With(hive.ComponentIDFor[Mana]())
	require.True(t, f.Next())
	assert.Equal(t, both, f.Entity())
	assert.False(t, f.Next())
}

func TestFilter2MutatesThroughPointers(t *testing.T) {
	w := newWorld(t)

	b := hive.NewBuilder2[Position, Velocity](w)
	for i := 0; i < 100; i++ {
		_, p, v := b.NewEntity()
		p.X = float64(i)
		v.DX = 1
	}

	f := hive.NewFilter2[Position, Velocity](w)
	for f.Next() {
		p, v := f.Get()
		p.X += v.DX
	}

	total := 0.0
	hive.Each[Position](w, func(_ hive.Entity, p *Position) {
		total += p.X
	})
	assert.Equal(t, float64(100*99/2+100), total)
}

func TestEachVariants(t *testing.T) {
	w := newWorld(t)

	hive.Create3(w, Position{X: 1}, Velocity{DX: 2}, Health{Current: 3})
	hive.Create2(w, Position{X: 10}, Velocity{DX: 20})
	hive.CreateWith(w, Position{X: 100})

	n2, n3 := 0, 0
	hive.Each2(w, func(_ hive.Entity, p *Position, v *Velocity) {
		n2++
	})
	hive.Each3(w, func(_ hive.Entity, p *Position, v *Velocity, h *Health) {
		n3++
		assert.Equal(t, 3, h.Current)
	})
	assert.Equal(t, 2, n2)
	assert.Equal(t, 1, n3)
}

func TestFilterResetSeesNewEntities(t *testing.T) {
	w := newWorld(t)
	hive.CreateWith(w, Health{})

	f := hive.NewFilter[Health](w)
	n := 0
	for f.Next() {
		n++
	}
	require.Equal(t, 1, n)

	hive.CreateWith(w, Health{})
	f.Reset()
	n = 0
	for f.Next() {
		n++
	}
	assert.Equal(t, 2, n)
}
