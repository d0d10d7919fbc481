// Package value implements the Portable Storage data model: the Value
// tagged union, homogeneously-typed Array, and ordered-map Section
// described in spec §3.
//
// A Value, Array, or Section built only through this package's
// constructors and Insert/Push methods is always well-formed: an Array's
// elements always share its declared element tag, and a Section's key
// byte lengths always fit the wire's one-octet length prefix. The psio
// package is the only place malformed wire bytes are turned into a Value
// tree, and it does so by driving these same constructors.
package value

import (
	"fmt"
	"math"

	"github.com/arloliu/portablestorage/wire"
)

// Value is a tagged union of the scalar, blob, array, and section variants
// from spec §3. The zero Value is not meaningful; use one of the
// constructors below.
//
// The discriminant is the dynamic type held in v, which a type switch in
// Tag inspects without unpacking the payload into a different
// representation — the same requirement the structured-access visitor in
// package structpack depends on for dispatch.
type Value struct {
	v any
}

// Constructors, one per spec §3 variant.

func Uint64(n uint64) Value  { return Value{n} }
func Uint32(n uint32) Value  { return Value{n} }
func Uint16(n uint16) Value  { return Value{n} }
func Uint8(n uint8) Value    { return Value{n} }
func Int64(n int64) Value    { return Value{n} }
func Int32(n int32) Value    { return Value{n} }
func Int16(n int16) Value    { return Value{n} }
func Int8(n int8) Value      { return Value{n} }
func Double(f float64) Value { return Value{f} }
func Bool(b bool) Value      { return Value{b} }

// Blob wraps b as an opaque byte string. b is retained, not copied; callers
// must not mutate it after passing it in.
func Blob(b []byte) Value { return Value{b} }

// Sec wraps a nested Section as a Value.
func Sec(s *Section) Value { return Value{s} }

// Arr wraps an Array as a Value.
func Arr(a *Array) Value { return Value{a} }

// Tag returns the wire type tag for v's dynamic type.
func (val Value) Tag() wire.Tag {
	switch val.v.(type) {
	case int64:
		return wire.TagInt64
	case int32:
		return wire.TagInt32
	case int16:
		return wire.TagInt16
	case int8:
		return wire.TagInt8
	case uint64:
		return wire.TagUint64
	case uint32:
		return wire.TagUint32
	case uint16:
		return wire.TagUint16
	case uint8:
		return wire.TagUint8
	case float64:
		return wire.TagDouble
	case bool:
		return wire.TagBool
	case []byte:
		return wire.TagBlob
	case *Section:
		return wire.TagSection
	case *Array:
		return wire.TagArray
	default:
		panic(fmt.Sprintf("value: invalid Value with payload type %T", val.v))
	}
}

// IsZero reports whether v was never assigned by a constructor.
func (val Value) IsZero() bool {
	return val.v == nil
}

// Typed accessors. Each returns the payload and true if v holds exactly
// that variant, or the zero value and false otherwise. Structured access
// (package structpack) additionally widens/narrows across integer widths;
// these accessors do not.

func (val Value) AsUint64() (uint64, bool)  { n, ok := val.v.(uint64); return n, ok }
func (val Value) AsUint32() (uint32, bool)  { n, ok := val.v.(uint32); return n, ok }
func (val Value) AsUint16() (uint16, bool)  { n, ok := val.v.(uint16); return n, ok }
func (val Value) AsUint8() (uint8, bool)    { n, ok := val.v.(uint8); return n, ok }
func (val Value) AsInt64() (int64, bool)    { n, ok := val.v.(int64); return n, ok }
func (val Value) AsInt32() (int32, bool)    { n, ok := val.v.(int32); return n, ok }
func (val Value) AsInt16() (int16, bool)    { n, ok := val.v.(int16); return n, ok }
func (val Value) AsInt8() (int8, bool)      { n, ok := val.v.(int8); return n, ok }
func (val Value) AsDouble() (float64, bool) { f, ok := val.v.(float64); return f, ok }
func (val Value) AsBool() (bool, bool)      { b, ok := val.v.(bool); return b, ok }
func (val Value) AsBlob() ([]byte, bool)    { b, ok := val.v.([]byte); return b, ok }
func (val Value) AsSection() (*Section, bool) {
	s, ok := val.v.(*Section)
	return s, ok
}

func (val Value) AsArray() (*Array, bool) {
	a, ok := val.v.(*Array)
	return a, ok
}

// AsUint64Widened reports the value as a uint64 if v holds any unsigned
// integer variant, widening as needed. This is the semantics spec §4.5
// requires of the structured-access visitor for integer fields; it is
// exposed here too since it is useful independent of reflection-based
// binding.
func (val Value) AsUint64Widened() (uint64, bool) {
	switch n := val.v.(type) {
	case uint64:
		return n, true
	case uint32:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	default:
		return 0, false
	}
}

// AsInt64Widened reports the value as an int64 if v holds any signed
// integer variant, widening as needed.
func (val Value) AsInt64Widened() (int64, bool) {
	switch n := val.v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	default:
		return 0, false
	}
}

// Equal reports whether val and other hold the same discriminant and an
// equal payload, recursing into Section/Array. It is used by the round-trip
// tests in package psio and is otherwise not required by the wire format.
func (val Value) Equal(other Value) bool {
	if val.Tag() != other.Tag() {
		return false
	}

	switch a := val.v.(type) {
	case []byte:
		b := other.v.([]byte)
		return string(a) == string(b)
	case float64:
		b := other.v.(float64)
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	case *Section:
		return a.Equal(other.v.(*Section))
	case *Array:
		return a.Equal(other.v.(*Array))
	default:
		return val.v == other.v
	}
}
