// Package pserr defines the typed error taxonomy returned by every decode
// and structured-access path in this module.
//
// Every error kind from the wire-format specification has exactly one
// sentinel below; constructors that need contextual data (how many bytes
// were needed, which type byte was invalid) wrap the sentinel with
// fmt.Errorf's %w so that errors.Is against the sentinel still matches.
package pserr

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per wire-format error kind. Use errors.Is to test
// for a specific kind regardless of the contextual wrapping added by the
// constructors below.
var (
	ErrUnexpectedEOF        = errors.New("portablestorage: unexpected end of input")
	ErrInvalidHeader        = errors.New("portablestorage: invalid header")
	ErrInvalidSerializeType = errors.New("portablestorage: invalid serialize type")
	ErrInvalidArrayType     = errors.New("portablestorage: invalid array type")
	ErrWrongTypeSequence    = errors.New("portablestorage: wrong type sequence")
	ErrStorageEntryTooBig   = errors.New("portablestorage: storage entry too big for this machine")
	ErrCustom               = errors.New("portablestorage: structured access error")
)

// UnexpectedEOF builds an ErrUnexpectedEOF reporting how many bytes were
// needed versus how many remained in the input.
func UnexpectedEOF(needed, have int) error {
	return fmt.Errorf("%w: needed %d bytes, have %d", ErrUnexpectedEOF, needed, have)
}

// InvalidSerializeType builds an ErrInvalidSerializeType naming the
// offending tag byte.
func InvalidSerializeType(tag byte) error {
	return fmt.Errorf("%w: 0x%02x", ErrInvalidSerializeType, tag)
}

// InvalidArrayType builds an ErrInvalidArrayType naming the offending tag
// byte (which was expected to carry the array flag).
func InvalidArrayType(tag byte) error {
	return fmt.Errorf("%w: 0x%02x", ErrInvalidArrayType, tag)
}

// StorageEntryTooBig builds an ErrStorageEntryTooBig naming the offending
// value.
func StorageEntryTooBig(n uint64) error {
	return fmt.Errorf("%w: %d", ErrStorageEntryTooBig, n)
}

// Custom builds an ErrCustom carrying a caller-supplied message, for
// structured-access (schema-level) failures: missing fields, extra
// fields rejected by policy, type mismatches, semantic validation.
func Custom(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCustom, fmt.Sprintf(format, args...))
}
