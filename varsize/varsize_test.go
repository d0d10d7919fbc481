package varsize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteRead_Boundaries(t *testing.T) {
	cases := []struct {
		name      string
		val       uint64
		wantWidth int
	}{
		{"min", 0, 1},
		{"byte max", 63, 1},
		{"word min", 64, 2},
		{"word max", 16_383, 2},
		{"dword min", 16_384, 4},
		{"dword max", 1_073_741_823, 4},
		{"int64 min", 1_073_741_824, 8},
		{"int64 max", 4_611_686_018_427_387_903, 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := Write(nil, tc.val)
			require.NoError(t, err)
			require.Len(t, encoded, tc.wantWidth)
			require.Equal(t, tc.wantWidth, EncodedLen(tc.val))

			got, n, err := Read(encoded)
			require.NoError(t, err)
			require.Equal(t, tc.val, got)
			require.Equal(t, tc.wantWidth, n)
		})
	}
}

func TestWrite_RejectsValuesAtOrAboveMax(t *testing.T) {
	_, err := Write(nil, Max+1)
	require.Error(t, err)

	_, err = Write(nil, 1<<63)
	require.Error(t, err)
}

func TestWrite_AppendsToExistingSlice(t *testing.T) {
	dst := []byte{0xAA, 0xBB}
	out, err := Write(dst, 10)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB, 10 << 2}, out)
}

func TestRead_UnexpectedEOF(t *testing.T) {
	_, _, err := Read(nil)
	require.Error(t, err)

	// Mark says "word" (2 bytes) but only one byte is present.
	_, _, err = Read([]byte{0x01})
	require.Error(t, err)

	// Mark says "dword" (4 bytes) but only two bytes are present.
	_, _, err = Read([]byte{0x02, 0x00})
	require.Error(t, err)

	// Mark says "int64" (8 bytes) but only four bytes are present.
	_, _, err = Read([]byte{0x03, 0x00, 0x00, 0x00})
	require.Error(t, err)
}

func TestRead_MinimalWidthExamples(t *testing.T) {
	// 0x08 = 0b0000_1000 -> mark=0 (byte), value = 0b10 = 2
	v, n, err := Read([]byte{0x08})
	require.NoError(t, err)
	require.Equal(t, uint64(2), v)
	require.Equal(t, 1, n)
}

func TestWriteRead_FuzzLikeRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 63, 64, 100, 16_383, 16_384, 1_000_000,
		1_073_741_823, 1_073_741_824, 5_000_000_000, Max}

	for _, v := range values {
		encoded, err := Write(nil, v)
		require.NoError(t, err)

		got, n, err := Read(encoded)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, len(encoded), n)
		require.Equal(t, EncodedLen(v), n, "written length must be the minimum permitted width")
	}
}

func TestRead_IgnoresTrailingBytes(t *testing.T) {
	encoded, err := Write(nil, 5)
	require.NoError(t, err)
	encoded = append(encoded, 0xFF, 0xFF, 0xFF)

	v, n, err := Read(encoded)
	require.NoError(t, err)
	require.Equal(t, uint64(5), v)
	require.Equal(t, 1, n)
}
