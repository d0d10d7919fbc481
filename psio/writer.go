package psio

import (
	"math"

	"github.com/arloliu/portablestorage/internal/pool"
	"github.com/arloliu/portablestorage/value"
	"github.com/arloliu/portablestorage/varsize"
	"github.com/arloliu/portablestorage/wire"
)

// appendVarSize writes v's VarSize encoding into bb via MustWrite, so every
// write path — fixed-width payloads, VarSize counts, and blob bodies alike —
// goes through the same pooled buffer rather than a bare []byte append.
func appendVarSize(bb *pool.ByteBuffer, v uint64) {
	enc, _ := varsize.Write(nil, v) //nolint:errcheck // unreachable: callers never pass a value >= 2^62
	bb.MustWrite(enc)
}

func writeSection(bb *pool.ByteBuffer, s *value.Section) {
	appendVarSize(bb, uint64(s.Len()))
	for name, v := range s.All() {
		bb.MustWriteByte(byte(len(name)))
		bb.MustWrite([]byte(name))
		writeValue(bb, v)
	}
}

// writeValue appends a full Section-entry encoding: a tag byte followed by
// its payload.
func writeValue(bb *pool.ByteBuffer, v value.Value) {
	switch tag := v.Tag(); tag {
	case wire.TagSection:
		sec, _ := v.AsSection()
		bb.MustWriteByte(byte(wire.TagSection))
		writeSection(bb, sec)
	case wire.TagArray:
		arr, _ := v.AsArray()
		bb.MustWriteByte(byte(wire.TagArray))
		writeArrayPayload(bb, arr)
	default:
		bb.MustWriteByte(byte(tag))
		writeScalarPayload(bb, v)
	}
}

// writeArrayPayload appends an array payload: the element-type byte (with
// ArrayFlag set), the VarSize element count, then each tagless element.
//
// An Array whose element type was never established (an empty NewArray
// with no Push) has no type to report; this falls back to emitting it as
// an empty array of u8, the smallest meaningful default, rather than
// panicking — Write's infallibility contract (spec §7) covers well-formed
// trees, and an untyped empty array reaching here is already a caller
// bug with no data loss either way, since it carries zero elements.
func writeArrayPayload(bb *pool.ByteBuffer, a *value.Array) {
	elemTag, typed := a.ElemTag()
	if !typed {
		elemTag = wire.TagUint8
	}

	bb.MustWriteByte(byte(elemTag.AsArrayOf()))
	appendVarSize(bb, uint64(a.Len()))
	for v := range a.All() {
		writeElementPayload(bb, elemTag, v)
	}
}

// writeElementPayload appends one array element's payload. Unlike
// Section entries, array elements of base type Section or Array carry no
// extra discriminant beyond what the array's element-type byte already
// declared, except arrays-of-arrays: each such element still carries its
// own element-type byte, since the outer declaration only says "this
// element is an array", not of what.
func writeElementPayload(bb *pool.ByteBuffer, elemTag wire.Tag, v value.Value) {
	switch elemTag {
	case wire.TagSection:
		sec, _ := v.AsSection()
		writeSection(bb, sec)
	case wire.TagArray:
		arr, _ := v.AsArray()
		writeArrayPayload(bb, arr)
	default:
		writeScalarPayload(bb, v)
	}
}

// writeScalarPayload appends the fixed-width/bool/blob payload for v. It
// never sees Section or Array values: both call sites dispatch those
// before reaching here.
func writeScalarPayload(bb *pool.ByteBuffer, v value.Value) {
	switch tag := v.Tag(); tag {
	case wire.TagInt64:
		n, _ := v.AsInt64()
		var b [8]byte
		wireEndian.PutUint64(b[:], uint64(n))
		bb.MustWrite(b[:])
	case wire.TagInt32:
		n, _ := v.AsInt32()
		var b [4]byte
		wireEndian.PutUint32(b[:], uint32(n))
		bb.MustWrite(b[:])
	case wire.TagInt16:
		n, _ := v.AsInt16()
		var b [2]byte
		wireEndian.PutUint16(b[:], uint16(n))
		bb.MustWrite(b[:])
	case wire.TagInt8:
		n, _ := v.AsInt8()
		bb.MustWriteByte(byte(n))
	case wire.TagUint64:
		n, _ := v.AsUint64()
		var b [8]byte
		wireEndian.PutUint64(b[:], n)
		bb.MustWrite(b[:])
	case wire.TagUint32:
		n, _ := v.AsUint32()
		var b [4]byte
		wireEndian.PutUint32(b[:], n)
		bb.MustWrite(b[:])
	case wire.TagUint16:
		n, _ := v.AsUint16()
		var b [2]byte
		wireEndian.PutUint16(b[:], n)
		bb.MustWrite(b[:])
	case wire.TagUint8:
		n, _ := v.AsUint8()
		bb.MustWriteByte(n)
	case wire.TagDouble:
		f, _ := v.AsDouble()
		var b [8]byte
		wireEndian.PutUint64(b[:], math.Float64bits(f))
		bb.MustWrite(b[:])
	case wire.TagBool:
		bl, _ := v.AsBool()
		if bl {
			bb.MustWriteByte(1)
		} else {
			bb.MustWriteByte(0)
		}
	case wire.TagBlob:
		blob, _ := v.AsBlob()
		appendVarSize(bb, uint64(len(blob)))
		// A blob can be arbitrarily large relative to the buffer's current
		// spare capacity; Grow lets one potentially-big payload reallocate
		// once instead of riding append's doubling through several steps.
		bb.Grow(len(blob))
		bb.MustWrite(blob)
	default:
		panic("psio: writeScalarPayload called with non-scalar tag " + tag.String())
	}
}
