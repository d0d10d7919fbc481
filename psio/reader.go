package psio

import (
	"math"

	"github.com/arloliu/portablestorage/endian"
	"github.com/arloliu/portablestorage/pserr"
	"github.com/arloliu/portablestorage/value"
	"github.com/arloliu/portablestorage/varsize"
	"github.com/arloliu/portablestorage/wire"
)

var wireEndian = endian.GetLittleEndianEngine()

// decoder walks data with a cursor, the same shape as the reference epee
// implementation's Buf-backed reader.
type decoder struct {
	data     []byte
	pos      int
	maxDepth int
}

func (d *decoder) remaining() int {
	return len(d.data) - d.pos
}

func (d *decoder) need(n int) error {
	if d.remaining() < n {
		return pserr.UnexpectedEOF(n, d.remaining())
	}

	return nil
}

func (d *decoder) readByte() (byte, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}

	b := d.data[d.pos]
	d.pos++

	return b, nil
}

// readN returns a view into d.data, not a copy; callers that need to keep
// bytes past the lifetime of the input slice must copy them out.
func (d *decoder) readN(n int) ([]byte, error) {
	if err := d.need(n); err != nil {
		return nil, err
	}

	b := d.data[d.pos : d.pos+n]
	d.pos += n

	return b, nil
}

func (d *decoder) readVarSize() (uint64, error) {
	v, n, err := varsize.Read(d.data[d.pos:])
	if err != nil {
		return 0, err
	}

	d.pos += n

	return v, nil
}

// toInt converts a wire-derived length/count to an int, rejecting values
// that don't fit this machine's int — the portable-overflow case spec §9
// calls out distinctly from ordinary truncation.
func toInt(n uint64) (int, error) {
	if n > uint64(math.MaxInt) {
		return 0, pserr.StorageEntryTooBig(n)
	}

	return int(n), nil
}

func (d *decoder) readSection(depth int) (*value.Section, error) {
	if depth > d.maxDepth {
		return nil, pserr.Custom("section nesting exceeds limit of %d", d.maxDepth)
	}

	count, err := d.readVarSize()
	if err != nil {
		return nil, err
	}

	n, err := toInt(count)
	if err != nil {
		return nil, err
	}

	sec := value.NewSection()
	for i := 0; i < n; i++ {
		nameLen, err := d.readByte()
		if err != nil {
			return nil, err
		}

		rawKey, err := d.readN(int(nameLen))
		if err != nil {
			return nil, err
		}
		key := append([]byte(nil), rawKey...)

		v, err := d.readValue(depth)
		if err != nil {
			return nil, err
		}

		sec.InsertRaw(key, v)
	}

	return sec, nil
}

// readValue reads one Section-entry value: a leading tag byte followed by
// its payload, per spec §4.4.
func (d *decoder) readValue(depth int) (value.Value, error) {
	t, err := d.readByte()
	if err != nil {
		return value.Value{}, err
	}
	tag := wire.Tag(t)

	if tag.IsArray() {
		arr, err := d.readArrayPayload(tag, depth)
		if err != nil {
			return value.Value{}, err
		}

		return value.Arr(arr), nil
	}

	return d.readEntryRaw(tag, depth)
}

// readEntryRaw reads the payload for an already-known tag: either the
// fixed-width/blob/bool payload, a nested Section, or — for TagArray — one
// more type byte followed by an array payload (the long wire form, spec
// §4.4 bullet on tag 0x0D).
func (d *decoder) readEntryRaw(tag wire.Tag, depth int) (value.Value, error) {
	switch tag {
	case wire.TagInt64:
		b, err := d.readN(8)
		if err != nil {
			return value.Value{}, err
		}

		return value.Int64(int64(wireEndian.Uint64(b))), nil
	case wire.TagInt32:
		b, err := d.readN(4)
		if err != nil {
			return value.Value{}, err
		}

		return value.Int32(int32(wireEndian.Uint32(b))), nil
	case wire.TagInt16:
		b, err := d.readN(2)
		if err != nil {
			return value.Value{}, err
		}

		return value.Int16(int16(wireEndian.Uint16(b))), nil
	case wire.TagInt8:
		b, err := d.readN(1)
		if err != nil {
			return value.Value{}, err
		}

		return value.Int8(int8(b[0])), nil
	case wire.TagUint64:
		b, err := d.readN(8)
		if err != nil {
			return value.Value{}, err
		}

		return value.Uint64(wireEndian.Uint64(b)), nil
	case wire.TagUint32:
		b, err := d.readN(4)
		if err != nil {
			return value.Value{}, err
		}

		return value.Uint32(wireEndian.Uint32(b)), nil
	case wire.TagUint16:
		b, err := d.readN(2)
		if err != nil {
			return value.Value{}, err
		}

		return value.Uint16(wireEndian.Uint16(b)), nil
	case wire.TagUint8:
		b, err := d.readN(1)
		if err != nil {
			return value.Value{}, err
		}

		return value.Uint8(b[0]), nil
	case wire.TagDouble:
		b, err := d.readN(8)
		if err != nil {
			return value.Value{}, err
		}

		return value.Double(math.Float64frombits(wireEndian.Uint64(b))), nil
	case wire.TagBool:
		b, err := d.readN(1)
		if err != nil {
			return value.Value{}, err
		}

		return value.Bool(b[0] != 0), nil
	case wire.TagBlob:
		blobLen, err := d.readVarSize()
		if err != nil {
			return value.Value{}, err
		}

		n, err := toInt(blobLen)
		if err != nil {
			return value.Value{}, err
		}

		raw, err := d.readN(n)
		if err != nil {
			return value.Value{}, err
		}

		return value.Blob(append([]byte(nil), raw...)), nil
	case wire.TagSection:
		sec, err := d.readSection(depth + 1)
		if err != nil {
			return value.Value{}, err
		}

		return value.Sec(sec), nil
	case wire.TagArray:
		t2, err := d.readByte()
		if err != nil {
			return value.Value{}, err
		}

		elemTag := wire.Tag(t2)
		if !elemTag.IsArray() {
			return value.Value{}, pserr.ErrWrongTypeSequence
		}

		arr, err := d.readArrayPayload(elemTag, depth+1)
		if err != nil {
			return value.Value{}, err
		}

		return value.Arr(arr), nil
	default:
		return value.Value{}, pserr.InvalidSerializeType(byte(tag))
	}
}

// readArrayPayload reads an array's element-type byte's payload half: the
// VarSize element count followed by that many tagless elements of base
// type. rawElemTag must already carry ArrayFlag; this mirrors the
// reference implementation's own (otherwise unreachable, since both call
// sites already validate) defensive check in Array::read.
func (d *decoder) readArrayPayload(rawElemTag wire.Tag, depth int) (*value.Array, error) {
	if depth > d.maxDepth {
		return nil, pserr.Custom("array nesting exceeds limit of %d", d.maxDepth)
	}

	if !rawElemTag.IsArray() {
		return nil, pserr.InvalidArrayType(byte(rawElemTag))
	}
	base := rawElemTag.Base()

	count, err := d.readVarSize()
	if err != nil {
		return nil, err
	}

	n, err := toInt(count)
	if err != nil {
		return nil, err
	}

	arr := value.NewArrayOf(base)
	for i := 0; i < n; i++ {
		v, err := d.readEntryRaw(base, depth)
		if err != nil {
			return nil, err
		}

		if err := arr.Push(v); err != nil {
			return nil, err
		}
	}

	return arr, nil
}
