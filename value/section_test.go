package value

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSection_InsertAndGet(t *testing.T) {
	s := NewSection()
	require.NoError(t, s.Insert("id", Uint8(56)))
	require.NoError(t, s.Insert("transaction_proof", Uint64(1337)))

	v, ok := s.Get("id")
	require.True(t, ok)
	n, _ := v.AsUint8()
	require.Equal(t, uint8(56), n)

	_, ok = s.Get("missing")
	require.False(t, ok)
}

func TestSection_InsertRejectsOutOfRangeKeyLength(t *testing.T) {
	s := NewSection()
	require.Error(t, s.Insert("", Uint8(1)))
	require.Error(t, s.Insert(strings.Repeat("a", 256), Uint8(1)))
	require.NoError(t, s.Insert(strings.Repeat("a", 255), Uint8(1)))
}

func TestSection_DuplicateKeyOverwritesInPlace(t *testing.T) {
	s := NewSection()
	require.NoError(t, s.Insert("a", Uint8(1)))
	require.NoError(t, s.Insert("k", Uint8(1)))
	require.NoError(t, s.Insert("k", Uint8(2)))
	require.NoError(t, s.Insert("z", Uint8(3)))

	require.Equal(t, 3, s.Len())
	v, ok := s.Get("k")
	require.True(t, ok)
	n, _ := v.AsUint8()
	require.Equal(t, uint8(2), n)

	// Position is preserved: "a", "k", "z" in that order.
	require.Equal(t, []string{"a", "k", "z"}, s.Keys())
}

func TestSection_AllPreservesInsertionOrder(t *testing.T) {
	s := NewSection()
	order := []string{"z", "a", "m"}
	for _, k := range order {
		require.NoError(t, s.Insert(k, Uint8(0)))
	}

	var got []string
	for k := range s.All() {
		got = append(got, k)
	}
	require.Equal(t, order, got)
}

func TestSection_Equal(t *testing.T) {
	a := NewSection()
	require.NoError(t, a.Insert("x", Uint8(1)))

	b := NewSection()
	require.NoError(t, b.Insert("x", Uint8(1)))

	require.True(t, a.Equal(b))

	require.NoError(t, b.Insert("y", Uint8(2)))
	require.False(t, a.Equal(b))
}

func TestSection_EmptyIsLegal(t *testing.T) {
	s := NewSection()
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Len())
}

func TestSection_HashCollisionsResolvedByExactKeyMatch(t *testing.T) {
	// Not a true xxhash collision, just exercises the bucket-list path
	// with several distinct keys to make sure find() disambiguates.
	s := NewSection()
	keys := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for i, k := range keys {
		require.NoError(t, s.Insert(k, Uint32(uint32(i)))) //nolint:gosec
	}

	for i, k := range keys {
		v, ok := s.Get(k)
		require.True(t, ok)
		n, _ := v.AsUint32()
		require.Equal(t, uint32(i), n) //nolint:gosec
	}
}
