package psuuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	u := From(uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef"))

	b, err := u.MarshalPSBytes()
	require.NoError(t, err)
	require.Len(t, b, 16)

	var got UUID
	require.NoError(t, got.UnmarshalPSBytes(b))
	require.Equal(t, u.UUID, got.UUID)
}

func TestUnmarshal_RejectsWrongLength(t *testing.T) {
	var got UUID
	require.Error(t, got.UnmarshalPSBytes([]byte{1, 2, 3}))
}
