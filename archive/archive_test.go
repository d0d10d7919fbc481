package archive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecs_RoundTrip(t *testing.T) {
	doc := []byte("the quick brown fox jumps over the lazy dog, repeated: " +
		"the quick brown fox jumps over the lazy dog")

	for _, f := range []Format{FormatNone, FormatZstd, FormatS2, FormatLZ4} {
		t.Run(f.String(), func(t *testing.T) {
			codec, err := New(f)
			require.NoError(t, err)

			compressed, err := codec.Compress(doc)
			require.NoError(t, err)

			out, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, doc, out)
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, f := range []Format{FormatZstd, FormatS2, FormatLZ4} {
		codec, err := New(f)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		out, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, out)
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	_, err := New(Format(99))
	require.Error(t, err)
}
