package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestKey struct {
	part1 int
	part2 string
}

func (k TestKey) Hash() uint64 {
	return uint64(k.part1 + len(k.part2))
}

func (k TestKey) Equals(other Hashable) bool {
	o, ok := other.(TestKey)
	return ok && k.part1 == o.part1 && k.part2 == o.part2
}

func TestHashMapBasic(t *testing.T) {
	t.Run("InsertAndGet", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := TestKey{1, "a"}
		hm.Set(key, "value1")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value1", val)

		_, exists = hm.Get(TestKey{2, "b"})
		assert.False(t, exists)
	})

	t.Run("UpdateValue", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := TestKey{1, "a"}
		hm.Set(key, "value1")
		hm.Set(key, "value2")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value2", val)
		assert.Equal(t, 1, hm.Size())
	})

	t.Run("DeleteKey", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := TestKey{1, "a"}
		hm.Set(key, "value1")

		hm.Delete(key)
		assert.Equal(t, 0, hm.Size())

		// deleting a missing key is a no-op
		hm.Delete(TestKey{2, "b"})
		assert.Equal(t, 0, hm.Size())
	})
}

func TestHashCollision(t *testing.T) {
	hm := NewHashMap[string](WithCapacity(16))

	key1 := TestKey{1, "a"}  // Hash: 1+1=2
	key2 := TestKey{0, "bb"} // Hash: 0+2=2
	key3 := TestKey{2, "a"}  // Hash: 2+1=3

	hm.Set(key1, "value1")
	hm.Set(key2, "value2")
	hm.Set(key3, "value3")

	assert.Equal(t, 3, hm.Size())

	t.Run("GetCollisionKeys", func(t *testing.T) {
		val, exists := hm.Get(key1)
		assert.True(t, exists)
		assert.Equal(t, "value1", val)

		val, exists = hm.Get(key2)
		assert.True(t, exists)
		assert.Equal(t, "value2", val)
	})

	t.Run("DeleteCollisionKey", func(t *testing.T) {
		hm.Delete(key1)
		assert.Equal(t, 2, hm.Size())
		_, exists := hm.Get(key1)
		assert.False(t, exists)
		_, exists = hm.Get(key2)
		assert.True(t, exists)
	})
}

func TestAutoResize(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(16), WithLoadFactor(0.75))

	// 16 * 0.75 = 12
	for i := 0; i < 13; i++ {
		hm.Set(TestKey{i, ""}, i)
	}

	assert.Equal(t, 32, len(hm.buckets))
	assert.Equal(t, 13, hm.Size())
	for i := 0; i < 13; i++ {
		val, exists := hm.Get(TestKey{i, ""})
		assert.True(t, exists)
		assert.Equal(t, i, val)
	}
}

func TestCapacityRounding(t *testing.T) {
	assert.Len(t, NewHashMap[int](WithCapacity(5)).buckets, 8)
	assert.Len(t, NewHashMap[int]().buckets, 1)
}

func TestHashMapIterator(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(4))
	for i := 0; i < 10; i++ {
		hm.Set(TestKey{i, "k"}, i)
	}

	seen := make(map[int]bool)
	for k, v := range hm.Iterator() {
		assert.Equal(t, v, k.(TestKey).part1)
		seen[v] = true
	}
	assert.Len(t, seen, 10)

	count := 0
	for range hm.Iterator() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestHashMapStateSetKeys(t *testing.T) {
	hm := NewHashMap[int]()

	a := NewStateSet(8)
	a.Add(1)
	a.Add(3)
	hm.Set(a.Freeze(), 0)

	b := NewStateSet(8)
	b.Add(3)
	b.Add(1)
	n, ok := hm.Get(b)
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	b.Add(2)
	_, ok = hm.Get(b)
	assert.False(t, ok)
}
