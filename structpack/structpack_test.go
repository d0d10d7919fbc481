package structpack

import (
	"testing"

	"github.com/arloliu/portablestorage/psuuid"
	"github.com/arloliu/portablestorage/value"
	"github.com/arloliu/portablestorage/wire"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type txProof struct {
	ID                uint8  `ps:"id"`
	TransactionProof  uint64 `ps:"transaction_proof"`
	unexported        int    //nolint:unused
}

func TestToFromSection_ScalarFields(t *testing.T) {
	src := txProof{ID: 56, TransactionProof: 1337}

	sec, err := ToSection(src)
	require.NoError(t, err)

	v, ok := sec.Get("id")
	require.True(t, ok)
	n, _ := v.AsUint8()
	require.Equal(t, uint8(56), n)

	var dst txProof
	require.NoError(t, FromSection(sec, &dst))
	require.Equal(t, src.ID, dst.ID)
	require.Equal(t, src.TransactionProof, dst.TransactionProof)
}

func TestWideningNarrowing_AcrossIntegerWidths(t *testing.T) {
	sec := value.NewSection()
	require.NoError(t, sec.Insert("n", value.Uint8(42)))

	var dst struct {
		N uint64 `ps:"n"`
	}
	require.NoError(t, FromSection(sec, &dst))
	require.Equal(t, uint64(42), dst.N)
}

func TestNestedStruct(t *testing.T) {
	type inner struct {
		X int32 `ps:"x"`
	}
	type outer struct {
		Inner inner `ps:"inner"`
	}

	src := outer{Inner: inner{X: -7}}
	sec, err := ToSection(src)
	require.NoError(t, err)

	var dst outer
	require.NoError(t, FromSection(sec, &dst))
	require.Equal(t, src, dst)
}

func TestSliceBindsToArray_ByteSliceBindsToBlob(t *testing.T) {
	type rec struct {
		Values []uint16 `ps:"values"`
		Data   []byte   `ps:"data"`
	}

	src := rec{Values: []uint16{1, 258, 65535}, Data: []byte("hello")}
	sec, err := ToSection(src)
	require.NoError(t, err)

	v, ok := sec.Get("data")
	require.True(t, ok)
	require.Equal(t, wire.TagBlob, v.Tag())

	var dst rec
	require.NoError(t, FromSection(sec, &dst))
	require.Equal(t, src, dst)
}

func TestMapField_BindsToNestedSection(t *testing.T) {
	type rec struct {
		Scores map[string]uint32 `ps:"scores"`
	}

	src := rec{Scores: map[string]uint32{"a": 1, "b": 2}}
	sec, err := ToSection(src)
	require.NoError(t, err)

	var dst rec
	require.NoError(t, FromSection(sec, &dst))
	require.Equal(t, src.Scores, dst.Scores)
}

func TestAuxiliaryType_UUIDBindsToBlob(t *testing.T) {
	type rec struct {
		ID psuuid.UUID `ps:"id"`
	}

	src := rec{ID: psuuid.From(uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef"))}
	sec, err := ToSection(src)
	require.NoError(t, err)

	v, ok := sec.Get("id")
	require.True(t, ok)
	b, ok := v.AsBlob()
	require.True(t, ok)
	require.Len(t, b, 16)

	var dst rec
	require.NoError(t, FromSection(sec, &dst))
	require.Equal(t, src.ID.UUID, dst.ID.UUID)
}

func TestUnknownFields_RejectedWhenConfigured(t *testing.T) {
	sec := value.NewSection()
	require.NoError(t, sec.Insert("extra", value.Uint8(1)))

	var dst struct {
		Known uint8 `ps:"known"`
	}
	require.Error(t, FromSection(sec, &dst, WithUnknownFields(false)))
	require.NoError(t, FromSection(sec, &dst))
}

func TestToSection_RejectsNonStruct(t *testing.T) {
	_, err := ToSection(42)
	require.Error(t, err)
}

func TestFromSection_BindsToTopLevelMap(t *testing.T) {
	sec := value.NewSection()
	require.NoError(t, sec.Insert("id", value.Uint8(56)))
	require.NoError(t, sec.Insert("name", value.Blob([]byte("alice"))))

	inner := value.NewSection()
	require.NoError(t, inner.Insert("x", value.Int32(-7)))
	require.NoError(t, sec.Insert("nested", value.Sec(inner)))

	var dst map[string]any
	require.NoError(t, FromSection(sec, &dst))

	require.Equal(t, uint64(56), dst["id"])
	require.Equal(t, []byte("alice"), dst["name"])
	require.Equal(t, map[string]any{"x": int64(-7)}, dst["nested"])
}

func TestFromSection_RejectsNonStructNonMap(t *testing.T) {
	sec := value.NewSection()
	var n int
	require.Error(t, FromSection(sec, &n))
}
