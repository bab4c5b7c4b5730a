package llrb

import "math/rand"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestTreeEmpty(t *testing.T) {
	tree := New()
	assert.Equal(t, int64(0), tree.Len())

	_, ok := tree.Get(10)
	assert.False(t, ok)

	_, _, ok = tree.Min()
	assert.False(t, ok)

	_, ok = tree.Delete(10)
	assert.False(t, ok)
}

func TestTreeInsertGet(t *testing.T) {
	tree := New()
	keys := []uint64{50, 20, 80, 10, 30, 70, 90}
	for _, k := range keys {
		tree.Insert(k, k*10)
	}
	require.Equal(t, int64(len(keys)), tree.Len())

	for _, k := range keys {
		val, ok := tree.Get(k)
		require.True(t, ok)
		assert.Equal(t, k*10, val)
	}

	_, ok := tree.Get(999)
	assert.False(t, ok)
}

func TestTreeInsertOverwrite(t *testing.T) {
	tree := New()
	tree.Insert(1, 100)
	tree.Insert(1, 200)
	assert.Equal(t, int64(1), tree.Len())

	val, ok := tree.Get(1)
	require.True(t, ok)
	assert.Equal(t, uint64(200), val)
}

func TestTreeMinMax(t *testing.T) {
	tree := New()
	for _, k := range []uint64{50, 20, 80, 10, 90} {
		tree.Insert(k, k)
	}
	minkey, _, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, uint64(10), minkey)

	maxkey, _, ok := tree.Max()
	require.True(t, ok)
	assert.Equal(t, uint64(90), maxkey)
}

func TestTreeFloorCeiling(t *testing.T) {
	tree := New()
	for _, k := range []uint64{10, 20, 30, 40} {
		tree.Insert(k, k)
	}

	fkey, _, ok := tree.Floor(25)
	require.True(t, ok)
	assert.Equal(t, uint64(20), fkey)

	fkey, _, ok = tree.Floor(10)
	require.True(t, ok)
	assert.Equal(t, uint64(10), fkey)

	_, _, ok = tree.Floor(5)
	assert.False(t, ok)

	ckey, _, ok := tree.Ceiling(25)
	require.True(t, ok)
	assert.Equal(t, uint64(30), ckey)

	ckey, _, ok = tree.Ceiling(40)
	require.True(t, ok)
	assert.Equal(t, uint64(40), ckey)

	_, _, ok = tree.Ceiling(45)
	assert.False(t, ok)
}

func TestTreeDelete(t *testing.T) {
	tree := New()
	keys := []uint64{50, 20, 80, 10, 30, 70, 90, 5, 15, 25, 35}
	for _, k := range keys {
		tree.Insert(k, k)
	}

	for i, k := range keys {
		val, ok := tree.Delete(k)
		require.True(t, ok, "deleting %v", k)
		assert.Equal(t, k, val)
		assert.Equal(t, int64(len(keys)-i-1), tree.Len())

		for _, remaining := range keys[i+1:] {
			_, ok := tree.Get(remaining)
			assert.True(t, ok, "expected %v to survive deleting %v", remaining, k)
		}
	}
}

func TestTreeAscend(t *testing.T) {
	tree := New()
	keys := []uint64{50, 20, 80, 10, 30, 70, 90}
	for _, k := range keys {
		tree.Insert(k, k)
	}

	var got []uint64
	tree.Ascend(func(k, v uint64) bool {
		got = append(got, k)
		return true
	})

	want := []uint64{10, 20, 30, 50, 70, 80, 90}
	assert.Equal(t, want, got)
}

func TestTreeIterator(t *testing.T) {
	tree := New()
	keys := []uint64{5, 3, 8, 1, 4, 7, 9}
	for _, k := range keys {
		tree.Insert(k, k)
	}

	it := tree.Iterator()
	var got []uint64
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, k)
	}
	want := []uint64{1, 3, 4, 5, 7, 8, 9}
	assert.Equal(t, want, got)
}

func TestTreeRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := New()
	model := map[uint64]uint64{}

	for i := 0; i < 5000; i++ {
		key := uint64(rng.Intn(1000))
		if rng.Intn(2) == 0 {
			val := uint64(rng.Int63())
			tree.Insert(key, val)
			model[key] = val
		} else {
			_, wantOk := model[key]
			_, gotOk := tree.Delete(key)
			assert.Equal(t, wantOk, gotOk, "key %v", key)
			delete(model, key)
		}
	}

	assert.Equal(t, int64(len(model)), tree.Len())
	for k, v := range model {
		got, ok := tree.Get(k)
		require.True(t, ok, "key %v", k)
		assert.Equal(t, v, got)
	}
}

func TestTreeWithArena(t *testing.T) {
	tree := NewWithArena(16)
	for i := uint64(0); i < 16; i++ {
		tree.Insert(i, i)
	}
	assert.Equal(t, int64(16), tree.Len())

	assert.Panics(t, func() {
		tree.Insert(999, 999)
	})

	_, ok := tree.Delete(0)
	require.True(t, ok)
	// a freed slot is recycled by the arena.
	tree.Insert(1000, 1000)
	val, ok := tree.Get(1000)
	require.True(t, ok)
	assert.Equal(t, uint64(1000), val)
}
