package hive_test

import (
	"testing"

	"github.com/hivelib/hive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gravity struct{ G float64 }
type bounds struct{ W, H int }

func TestResourcesAddGetRemove(t *testing.T) {
	w := newWorld(t)
	r := w.Resources()

	id := hive.AddResource(r, &gravity{G: 9.81})
	g, ok := hive.GetResource[gravity](r)
	require.True(t, ok)
	assert.Equal(t, 9.81, g.G)

	r.Remove(id)
	_, ok = hive.GetResource[gravity](r)
	assert.False(t, ok)
}

func TestResourcesOnePerType(t *testing.T) {
	w := newWorld(t)
	r := w.Resources()

	hive.AddResource(r, &gravity{})
	assert.Panics(t, func() { hive.AddResource(r, &gravity{}) })
	assert.Panics(t, func() { r.Add(nil) })
}

func TestResourcesIDReuse(t *testing.T) {
	w := newWorld(t)
	r := w.Resources()

	id1 := hive.AddResource(r, &gravity{})
	id2 := hive.AddResource(r, &bounds{W: 3, H: 4})
	r.Remove(id1)
	id3 := hive.AddResource(r, &gravity{G: 1})
	assert.Equal(t, id1, id3, "freed IDs are reused")
	assert.NotEqual(t, id2, id3)

	r.Clear()
	_, ok := hive.GetResource[bounds](r)
	assert.False(t, ok)
	assert.Nil(t, r.Get(id2))
}
