package genstore_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillmont/genstore"
)

type testKind struct{}

type otherKind struct{}

type testKey = genstore.Key[testKind]

func TestKeyPackingRoundTrip(t *testing.T) {
	boundaries := []uint32{0, 1, 2, 255, 256, 1 << 16, 1<<22 - 1, math.MaxUint32 - 1, math.MaxUint32}
	for _, index := range boundaries {
		for _, version := range boundaries {
			k := genstore.NewKey[testKind](index, version)
			require.Equal(t, index, k.Index())
			require.Equal(t, version, k.Version())
		}
	}
}

func TestKeyEqualityOverPackedValue(t *testing.T) {
	a := genstore.NewKey[testKind](7, 3)
	b := genstore.NewKey[testKind](7, 3)
	c := genstore.NewKey[testKind](7, 4)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Equal(t, a.Raw(), b.Raw())

	// Keys are directly usable as map keys; hashing is over the packed
	// integer.
	seen := map[testKey]int{a: 1}
	require.Equal(t, 1, seen[b])
	require.Equal(t, 0, seen[c])
}

func TestKeyKindsAreDistinctTypes(t *testing.T) {
	a := genstore.NewKey[testKind](1, 0)
	b := genstore.NewKey[otherKind](1, 0)

	// Same representation, different nominal types; these cannot be
	// compared or mixed without an explicit conversion.
	require.Equal(t, a.Raw(), b.Raw())

	var _ genstore.Key[testKind] = a
	var _ genstore.Key[otherKind] = b
}

func TestKeyString(t *testing.T) {
	k := genstore.NewKey[testKind](5, 2)
	require.Equal(t, "Key(5:2)", k.String())
}
