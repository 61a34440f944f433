package genstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillmont/genstore"
)

func TestSlotMapInsertGet(t *testing.T) {
	m := genstore.NewSlotMap[testKind, string]()

	keys := make([]testKey, 0, 10)
	for i := 0; i < 10; i++ {
		k, err := m.Insert(string(rune('a' + i)))
		require.NoError(t, err)
		keys = append(keys, k)
	}

	require.Equal(t, 10, m.Len())
	for i, k := range keys {
		v, ok := m.Get(k)
		require.True(t, ok)
		require.Equal(t, string(rune('a'+i)), v)
	}
}

func TestSlotMapStaleKeyReturnsNothing(t *testing.T) {
	m := genstore.NewSlotMap[testKind, int]()

	old, err := m.Insert(1)
	require.NoError(t, err)
	_, ok := m.Remove(old)
	require.True(t, ok)

	// The recycled slot now belongs to a new key at the same index.
	fresh, err := m.Insert(2)
	require.NoError(t, err)
	require.Equal(t, old.Index(), fresh.Index())
	require.NotEqual(t, old.Version(), fresh.Version())

	_, ok = m.Get(old)
	require.False(t, ok, "stale key must never observe the new occupant")
	v, ok := m.Get(fresh)
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestSlotMapStaleRemoveIsNoOp(t *testing.T) {
	m := genstore.NewSlotMap[testKind, int]()

	old, err := m.Insert(1)
	require.NoError(t, err)
	m.Remove(old)

	fresh, err := m.Insert(2)
	require.NoError(t, err)

	_, ok := m.Remove(old)
	require.False(t, ok, "removing through a stale key must not touch the new occupant")
	require.True(t, m.Contains(fresh))
	require.Equal(t, 1, m.Len())
}

func TestSlotMapGetMutAndReplace(t *testing.T) {
	m := genstore.NewSlotMap[testKind, int]()

	k, err := m.Insert(10)
	require.NoError(t, err)

	p, ok := m.GetMut(k)
	require.True(t, ok)
	*p = 11
	v, _ := m.Get(k)
	require.Equal(t, 11, v)

	prev, ok := m.Replace(k, 12)
	require.True(t, ok)
	require.Equal(t, 11, prev)
	v, _ = m.Get(k)
	require.Equal(t, 12, v)

	stale := genstore.NewKey[testKind](k.Index(), k.Version()+2)
	_, ok = m.Replace(stale, 99)
	require.False(t, ok)
	v, _ = m.Get(k)
	require.Equal(t, 12, v)
}

func TestSlotMapCapacityExhaustion(t *testing.T) {
	m := genstore.NewSlotMap[testKind, int](genstore.WithSlotLimit(2))

	a, err := m.Insert(1)
	require.NoError(t, err)
	b, err := m.Insert(2)
	require.NoError(t, err)

	_, err = m.Insert(3)
	require.ErrorIs(t, err, genstore.ErrCapacityExhausted)

	// Prior entries survive the failed insert.
	va, ok := m.Get(a)
	require.True(t, ok)
	require.Equal(t, 1, va)
	vb, ok := m.Get(b)
	require.True(t, ok)
	require.Equal(t, 2, vb)
}

func TestSlotMapRecyclesSlotsLIFO(t *testing.T) {
	m := genstore.NewSlotMap[testKind, int]()

	keys := make([]testKey, 0, 10)
	for i := 0; i < 10; i++ {
		k, err := m.Insert(i)
		require.NoError(t, err)
		keys = append(keys, k)
	}
	for _, k := range keys {
		_, ok := m.Remove(k)
		require.True(t, ok)
	}
	require.True(t, m.IsEmpty())

	reused := make([]testKey, 0, 10)
	for i := 0; i < 10; i++ {
		k, err := m.Insert(i)
		require.NoError(t, err)
		reused = append(reused, k)
	}
	require.Equal(t, 10, m.Len())

	for _, k := range reused {
		require.Less(t, int(k.Index()), 10, "all indices must be recycled, not appended")
		require.NotZero(t, k.Version(), "recycled slots must carry a bumped version")
	}
}

func TestSlotMapIterate(t *testing.T) {
	m := genstore.NewSlotMap[testKind, int]()

	keys := make([]testKey, 0, 10)
	for i := 0; i < 10; i++ {
		k, err := m.Insert(i)
		require.NoError(t, err)
		keys = append(keys, k)
	}
	for i := 0; i < 3; i++ {
		m.Remove(keys[i*3])
	}

	remaining := 0
	m.Iterate(func(k testKey, v int) bool {
		got, ok := m.Get(k)
		require.True(t, ok)
		require.Equal(t, v, got)
		remaining++
		return true
	})
	require.Equal(t, m.Len(), remaining)
}

func TestSlotMapClear(t *testing.T) {
	m := genstore.NewSlotMap[testKind, int]()

	k, err := m.Insert(1)
	require.NoError(t, err)
	m.Clear()

	require.True(t, m.IsEmpty())
	require.False(t, m.Contains(k))
}
