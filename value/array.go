package value

import (
	"iter"

	"github.com/arloliu/portablestorage/pserr"
	"github.com/arloliu/portablestorage/wire"
)

// Array is a homogeneously-typed sequence of Values, per spec §3/§4.4.
//
// An Array's element type is fixed by the first Push (or by NewArrayOf):
// every subsequent Push must carry a Value of that same discriminant.
// The zero Array is the same as NewArray(): empty, with its element type
// fixed by the first Push. Use NewArrayOf to fix the type up front.
type Array struct {
	elemTag wire.Tag
	typed   bool
	items   []Value
}

// NewArray creates an empty Array whose element type will be fixed by the
// first Push.
func NewArray() *Array {
	return &Array{}
}

// NewArrayOf creates an empty Array whose element type is fixed up front
// to elemTag. This lets a writer emit a legally empty, typed array —
// spec §3 requires an empty array's element type to have been established
// by construction, since the wire form always carries an element-type
// byte even when the array has zero elements.
func NewArrayOf(elemTag wire.Tag) *Array {
	return &Array{elemTag: elemTag.Base(), typed: true}
}

// ElemTag returns the Array's declared element type (without ArrayFlag)
// and whether one has been established yet.
func (a *Array) ElemTag() (wire.Tag, bool) {
	return a.elemTag, a.typed
}

// Len returns the number of elements in the Array.
func (a *Array) Len() int {
	return len(a.items)
}

// IsEmpty reports whether the Array has no elements.
func (a *Array) IsEmpty() bool {
	return len(a.items) == 0
}

// Push appends v to the Array.
//
// If this is the first element (and the Array wasn't given an element
// type by NewArrayOf), v's tag becomes the Array's fixed element type.
// Otherwise, Push fails with a pserr.Custom error if v's tag disagrees
// with the established element type — the Go analogue of the reference
// epee implementation's Array::push, which returns an opaque Result<(),
// ()> for the same mismatch; naming both discriminants here is a
// diagnostic improvement, not a behavior change.
func (a *Array) Push(v Value) error {
	tag := v.Tag()

	if !a.typed {
		a.elemTag = tag
		a.typed = true
	} else if a.elemTag != tag {
		return pserr.Custom("array element type mismatch: array holds %s, got %s", a.elemTag, tag)
	}

	a.items = append(a.items, v)

	return nil
}

// At returns the element at index i and true, or the zero Value and false
// if i is out of bounds.
func (a *Array) At(i int) (Value, bool) {
	if i < 0 || i >= len(a.items) {
		return Value{}, false
	}

	return a.items[i], true
}

// All iterates the Array's elements in order.
func (a *Array) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range a.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports whether a and other have the same element type and
// elementwise-equal contents.
func (a *Array) Equal(other *Array) bool {
	if a == nil || other == nil {
		return a == other
	}

	if a.typed != other.typed || (a.typed && a.elemTag != other.elemTag) {
		return false
	}

	if len(a.items) != len(other.items) {
		return false
	}

	for i, v := range a.items {
		if !v.Equal(other.items[i]) {
			return false
		}
	}

	return true
}
