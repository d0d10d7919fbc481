// Package portablestorage implements a codec for the Portable Storage
// binary format originated by the epee library and used by Monero-family
// peer-to-peer and RPC protocols: a tagged, hierarchical, ordered
// key/value tree, read from and written to bytes bit-exact with the
// reference implementation.
//
// # Core Features
//
//   - Reader with bounds checking and malformed-input defenses, never
//     pre-sizing a container from a length read off the wire
//   - Writer producing the single canonical byte-for-byte encoding
//   - Structured access: binding a *value.Section onto a caller struct
//     via `ps:"name"` tags, with the same integer widening/narrowing
//     rules the wire format itself uses
//   - Optional at-rest compression of whole encoded documents (package
//     archive), entirely outside the wire format
//
// # Basic Usage
//
// Decoding a document into a struct:
//
//	type Handshake struct {
//	    NodeID    []byte `ps:"node_id"`
//	    PeerID    uint64 `ps:"peer_id"`
//	}
//
//	sec, err := portablestorage.Read(buf)
//	if err != nil {
//	    return err
//	}
//	var h Handshake
//	if err := structpack.FromSection(sec, &h); err != nil {
//	    return err
//	}
//
// Building and encoding one by hand:
//
//	sec := value.NewSection()
//	sec.Insert("peer_id", value.Uint64(1337))
//	out := portablestorage.Write(sec)
//
// # Package Structure
//
// This package is a thin convenience wrapper around package psio for the
// two top-level entry points most callers need. Package value defines the
// data model (Value, Array, Section); package structpack implements the
// struct-binding visitor; package varsize and package header expose the
// lower-level codecs callers embedding Portable Storage fields in a
// larger frame may need directly.
package portablestorage

import (
	"github.com/arloliu/portablestorage/psio"
	"github.com/arloliu/portablestorage/value"
)

// Option configures Read/Write. See psio.WithMaxDepth.
type Option = psio.Option

// WithMaxDepth overrides the maximum Section/Array nesting depth Read
// will follow before failing.
func WithMaxDepth(n int) Option { return psio.WithMaxDepth(n) }

// Read parses a complete Portable Storage document: a 9-byte header
// followed by a root Section.
func Read(data []byte, opts ...Option) (*value.Section, error) {
	return psio.Read(data, opts...)
}

// Write encodes s as a complete Portable Storage document.
func Write(s *value.Section, opts ...Option) []byte {
	return psio.Write(s, opts...)
}
