package value

import (
	"testing"

	"github.com/arloliu/portablestorage/wire"
	"github.com/stretchr/testify/require"
)

func TestConstructorsAndTag(t *testing.T) {
	cases := []struct {
		name string
		val  Value
		tag  wire.Tag
	}{
		{"u64", Uint64(1), wire.TagUint64},
		{"u32", Uint32(1), wire.TagUint32},
		{"u16", Uint16(1), wire.TagUint16},
		{"u8", Uint8(1), wire.TagUint8},
		{"i64", Int64(-1), wire.TagInt64},
		{"i32", Int32(-1), wire.TagInt32},
		{"i16", Int16(-1), wire.TagInt16},
		{"i8", Int8(-1), wire.TagInt8},
		{"double", Double(1.5), wire.TagDouble},
		{"bool", Bool(true), wire.TagBool},
		{"blob", Blob([]byte("hi")), wire.TagBlob},
		{"section", Sec(NewSection()), wire.TagSection},
		{"array", Arr(NewArray()), wire.TagArray},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.tag, tc.val.Tag())
		})
	}
}

func TestTypedAccessors_WrongVariant(t *testing.T) {
	v := Uint8(5)
	_, ok := v.AsUint64()
	require.False(t, ok)

	got, ok := v.AsUint8()
	require.True(t, ok)
	require.Equal(t, uint8(5), got)
}

func TestAsUint64Widened(t *testing.T) {
	for _, v := range []Value{Uint64(10), Uint32(10), Uint16(10), Uint8(10)} {
		got, ok := v.AsUint64Widened()
		require.True(t, ok)
		require.Equal(t, uint64(10), got)
	}

	_, ok := Int8(1).AsUint64Widened()
	require.False(t, ok)
}

func TestAsInt64Widened(t *testing.T) {
	for _, v := range []Value{Int64(-3), Int32(-3), Int16(-3), Int8(-3)} {
		got, ok := v.AsInt64Widened()
		require.True(t, ok)
		require.Equal(t, int64(-3), got)
	}
}

func TestEqual(t *testing.T) {
	require.True(t, Uint8(5).Equal(Uint8(5)))
	require.False(t, Uint8(5).Equal(Uint8(6)))
	require.False(t, Uint8(5).Equal(Uint16(5)), "different discriminants are never equal")
	require.True(t, Blob([]byte("ab")).Equal(Blob([]byte("ab"))))
	require.False(t, Blob([]byte("ab")).Equal(Blob([]byte("ac"))))
}

func TestIsZero(t *testing.T) {
	var v Value
	require.True(t, v.IsZero())
	require.False(t, Uint8(0).IsZero())
}
