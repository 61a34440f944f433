package genstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillmont/genstore"
)

func TestManagerCreateAndDestroy(t *testing.T) {
	m := genstore.NewManager[testKind]()

	a, err := m.Create()
	require.NoError(t, err)
	b, err := m.Create()
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.Equal(t, 2, m.Len())
	require.True(t, m.IsAlive(a))
	require.True(t, m.IsAlive(b))

	require.True(t, m.Destroy(a))
	require.False(t, m.IsAlive(a))
	require.Equal(t, 1, m.Len())
}

func TestManagerRecyclesIndexWithNewVersion(t *testing.T) {
	m := genstore.NewManager[testKind]()

	a, err := m.Create()
	require.NoError(t, err)
	require.True(t, m.Destroy(a))

	b, err := m.Create()
	require.NoError(t, err)
	require.Equal(t, a.Index(), b.Index())
	require.NotEqual(t, a.Version(), b.Version())

	require.False(t, m.IsAlive(a), "stale key must not be alive after its index is recycled")
	require.True(t, m.IsAlive(b))
}

func TestManagerDestroyIsIdempotent(t *testing.T) {
	m := genstore.NewManager[testKind]()

	a, err := m.Create()
	require.NoError(t, err)
	_, err = m.Create()
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())

	require.True(t, m.Destroy(a))
	require.False(t, m.Destroy(a), "second destroy of the same key must be a no-op")
	require.Equal(t, 1, m.Len(), "len must decrease by exactly 1, not 2")
}

func TestManagerKeySpaceExhaustion(t *testing.T) {
	m := genstore.NewManager[testKind](genstore.WithKeyLimit(2))

	a, err := m.Create()
	require.NoError(t, err)
	b, err := m.Create()
	require.NoError(t, err)

	_, err = m.Create()
	require.ErrorIs(t, err, genstore.ErrKeySpaceExhausted)

	// The failed create must not disturb existing keys.
	require.True(t, m.IsAlive(a))
	require.True(t, m.IsAlive(b))
	require.Equal(t, 2, m.Len())

	// Freeing an index makes creation possible again.
	require.True(t, m.Destroy(a))
	c, err := m.Create()
	require.NoError(t, err)
	require.Equal(t, a.Index(), c.Index())
}

func TestManagerIterationAndKeys(t *testing.T) {
	m := genstore.NewManager[testKind](genstore.WithKeyCapacity(8))

	created := make(map[testKey]bool)
	for i := 0; i < 5; i++ {
		k, err := m.Create()
		require.NoError(t, err)
		created[k] = true
	}

	keys := m.Keys()
	require.Len(t, keys, 5)
	for _, k := range keys {
		require.True(t, created[k])
	}

	visited := 0
	m.Iterate(func(k testKey) bool {
		require.True(t, created[k])
		visited++
		return visited < 3
	})
	require.Equal(t, 3, visited, "iteration must stop when fn returns false")
}

func TestManagerReset(t *testing.T) {
	m := genstore.NewManager[testKind]()

	for i := 0; i < 4; i++ {
		_, err := m.Create()
		require.NoError(t, err)
	}
	require.Equal(t, 4, m.Len())

	m.Reset()
	require.True(t, m.IsEmpty())
	require.Empty(t, m.Keys())

	k, err := m.Create()
	require.NoError(t, err)
	require.Equal(t, uint32(0), k.Index())
}

func TestManagerOutOfRangeKeyIsAbsorbed(t *testing.T) {
	m := genstore.NewManager[testKind]()

	bogus := genstore.NewKey[testKind](999, 0)
	require.False(t, m.IsAlive(bogus))
	require.False(t, m.Destroy(bogus))
}
