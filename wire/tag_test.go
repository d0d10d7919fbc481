package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsArrayOf_SetsFlag(t *testing.T) {
	tag := TagUint16.AsArrayOf()
	require.True(t, tag.IsArray())
	require.Equal(t, TagUint16, tag.Base())
	require.Equal(t, Tag(0x87), tag)
}

func TestBase_StripsFlag(t *testing.T) {
	require.Equal(t, TagSection, (TagSection | ArrayFlag).Base())
}

func TestValid(t *testing.T) {
	require.True(t, TagDouble.Valid())
	require.True(t, TagArray.AsArrayOf().Valid())
	require.False(t, Tag(0x63).Valid())
}

func TestString(t *testing.T) {
	require.Equal(t, "u16", TagUint16.String())
	require.Equal(t, "array<u16>", TagUint16.AsArrayOf().String())
	require.Contains(t, Tag(0x63).String(), "unknown")
}
