package value

import (
	"bytes"
	"iter"

	"github.com/arloliu/portablestorage/internal/phash"
	"github.com/arloliu/portablestorage/pserr"
)

// MaxKeyLen is the largest Section key length the wire format can express:
// the name-length prefix is a single octet (spec §4.3).
const MaxKeyLen = 255

type sectionEntry struct {
	key []byte
	val Value
}

// Section is an ordered mapping from short name to Value, the document's
// root container (spec §3).
//
// Entries are kept in insertion order in a slice — the wire contract
// requires iteration and re-encoding to reproduce that order — with a
// hash-bucket index over the key bytes layered on top for O(1) average
// Get/Insert, the same "ordered vector plus lookup index" shape spec §9's
// Design Notes call out as a valid Section implementation strategy, and
// the structural analogue of how package internal/phash's sibling, the
// teacher's internal/hash package, indexed metric IDs.
type Section struct {
	order []sectionEntry
	index map[uint64][]int
}

// NewSection creates an empty Section.
func NewSection() *Section {
	return &Section{index: make(map[uint64][]int)}
}

// NewSectionCapacity creates an empty Section whose backing slice/map start
// with room for capacity entries. Only call this with a capacity derived
// from something other than an untrusted wire length — see psio's package
// doc for why the decoder itself never does this.
func NewSectionCapacity(capacity int) *Section {
	return &Section{
		order: make([]sectionEntry, 0, capacity),
		index: make(map[uint64][]int, capacity),
	}
}

// find returns the order-slice index of key, or -1 if absent.
func (s *Section) find(key []byte) int {
	h := phash.Sum(key)
	for _, idx := range s.index[h] {
		if bytes.Equal(s.order[idx].key, key) {
			return idx
		}
	}

	return -1
}

// Insert sets name to v, appending a new entry or, if name is already
// present, overwriting its value in place (the entry keeps its original
// position — spec §4.3: "the later entry replaces the earlier" describes
// the value, not a reordering).
//
// Insert validates that name's byte length fits the wire's one-octet
// length prefix (1..=MaxKeyLen); callers decoding untrusted input should
// use the lower-level path psio drives instead, which trusts a length
// already bounded by a single byte read off the wire.
func (s *Section) Insert(name string, v Value) error {
	key := []byte(name)
	if len(key) < 1 || len(key) > MaxKeyLen {
		return pserr.Custom("section key length %d out of range 1..=%d", len(key), MaxKeyLen)
	}

	s.InsertRaw(key, v)

	return nil
}

// InsertRaw inserts without validating key length; used by psio's reader,
// which already knows len(key) <= 255 because it was read from a
// single-octet length prefix. Exported for package psio; library callers
// building a tree by hand should prefer Insert.
func (s *Section) InsertRaw(key []byte, v Value) {
	if idx := s.find(key); idx >= 0 {
		s.order[idx].val = v
		return
	}

	idx := len(s.order)
	s.order = append(s.order, sectionEntry{key: key, val: v})
	h := phash.Sum(key)
	s.index[h] = append(s.index[h], idx)
}

// Get returns the Value stored at name and true, or the zero Value and
// false if name is absent.
func (s *Section) Get(name string) (Value, bool) {
	idx := s.find([]byte(name))
	if idx < 0 {
		return Value{}, false
	}

	return s.order[idx].val, true
}

// Len returns the number of entries in the Section.
func (s *Section) Len() int {
	return len(s.order)
}

// IsEmpty reports whether the Section has no entries.
func (s *Section) IsEmpty() bool {
	return len(s.order) == 0
}

// All iterates the Section's (name, Value) pairs in insertion order.
func (s *Section) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, e := range s.order {
			if !yield(string(e.key), e.val) {
				return
			}
		}
	}
}

// Keys returns the Section's keys in insertion order.
func (s *Section) Keys() []string {
	keys := make([]string, len(s.order))
	for i, e := range s.order {
		keys[i] = string(e.key)
	}

	return keys
}

// Equal reports whether s and other have the same entries in the same
// order with equal values.
func (s *Section) Equal(other *Section) bool {
	if s == nil || other == nil {
		return s == other
	}

	if len(s.order) != len(other.order) {
		return false
	}

	for i, e := range s.order {
		oe := other.order[i]
		if !bytes.Equal(e.key, oe.key) || !e.val.Equal(oe.val) {
			return false
		}
	}

	return true
}
