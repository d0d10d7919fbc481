// Package psuuid provides a 16-byte UUID auxiliary value type for
// structured access (package structpack), grounded on the reference
// implementation's BytesUuid (original_source/utils/src/bytes_uuid.rs):
// a UUID is just a Blob on the wire, serialized as its 16 raw bytes with
// no text encoding, and deserialized by requiring the Blob be exactly 16
// bytes long.
package psuuid

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID is a 16-byte UUID that binds to a structpack field as a Blob.
type UUID struct {
	uuid.UUID
}

// From wraps an existing google/uuid.UUID.
func From(u uuid.UUID) UUID { return UUID{u} }

// MarshalPSBytes implements structpack.BytesMarshaler, emitting the
// UUID's 16 raw bytes.
func (u UUID) MarshalPSBytes() ([]byte, error) {
	b := u.UUID[:]

	return append([]byte(nil), b...), nil
}

// UnmarshalPSBytes implements structpack.BytesUnmarshaler. It fails if b
// is not exactly 16 bytes, mirroring uuid::Uuid::from_slice's length
// check in the reference implementation.
func (u *UUID) UnmarshalPSBytes(b []byte) error {
	if len(b) != 16 {
		return fmt.Errorf("psuuid: UUID blob must be 16 bytes, got %d", len(b))
	}

	copy(u.UUID[:], b)

	return nil
}
