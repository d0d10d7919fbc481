package portablestorage

import (
	"testing"

	"github.com/arloliu/portablestorage/structpack"
	"github.com/arloliu/portablestorage/value"
	"github.com/stretchr/testify/require"
)

type handshake struct {
	NodeID []byte `ps:"node_id"`
	PeerID uint64 `ps:"peer_id"`
}

func TestReadWrite_StructuredRoundTrip(t *testing.T) {
	sec := value.NewSection()
	require.NoError(t, sec.Insert("node_id", value.Blob([]byte{1, 2, 3, 4})))
	require.NoError(t, sec.Insert("peer_id", value.Uint64(1337)))

	encoded := Write(sec)

	decoded, err := Read(encoded)
	require.NoError(t, err)

	var h handshake
	require.NoError(t, structpack.FromSection(decoded, &h))
	require.Equal(t, []byte{1, 2, 3, 4}, h.NodeID)
	require.Equal(t, uint64(1337), h.PeerID)
}

func TestWrite_FromStructuredEncode(t *testing.T) {
	src := handshake{NodeID: []byte{9, 9}, PeerID: 42}
	sec, err := structpack.ToSection(src)
	require.NoError(t, err)

	encoded := Write(sec)
	decoded, err := Read(encoded, WithMaxDepth(8))
	require.NoError(t, err)
	require.True(t, sec.Equal(decoded))
}
