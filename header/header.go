// Package header recognizes and emits the 9-byte magic-and-version prefix
// that precedes every Portable Storage document.
package header

import (
	"github.com/arloliu/portablestorage/endian"
	"github.com/arloliu/portablestorage/pserr"
)

var wireEndian = endian.GetLittleEndianEngine()

// Canonical header constants. The writer always emits exactly these
// values in these positions.
const (
	SignatureA uint32 = 0x0101_1101
	SignatureB uint32 = 0x0102_0101
	Version    uint8  = 1

	// Size is the fixed on-wire length of a header.
	Size = 4 + 4 + 1
)

// Header is the parsed 9-byte prefix of a Portable Storage document.
type Header struct {
	SignatureA uint32
	SignatureB uint32
	Version    uint8
}

// IsValidSignatureA reports whether SignatureA matches the canonical value.
func (h Header) IsValidSignatureA() bool {
	return h.SignatureA == SignatureA
}

// IsValidSignatureB reports whether SignatureA matches SignatureB's
// canonical value.
//
// This mirrors a copy-paste artifact in the reference epee implementation,
// which compares signature_a against both canonical magic values instead
// of checking signature_a against A and signature_b against B
// independently. A faithful reader preserves this tolerance rather than
// "fixing" it, since doing so would reject documents the reference
// implementation (and therefore every other peer on the network) accepts.
// See the Open Question entry in DESIGN.md.
func (h Header) IsValidSignatureB() bool {
	return h.SignatureA == SignatureB
}

// IsValidVersion reports whether Version matches the single documented
// format version.
func (h Header) IsValidVersion() bool {
	return h.Version == Version
}

// Valid reports whether the header would be accepted by Read: version 1,
// and the SignatureA field equal to either canonical signature value. The
// SignatureB field is not checked.
func (h Header) Valid() bool {
	return (h.IsValidSignatureA() || h.IsValidSignatureB()) && h.IsValidVersion()
}

// Read parses a Header from the start of data.
//
// Returns pserr.ErrUnexpectedEOF if fewer than Size bytes are available,
// or pserr.ErrInvalidHeader if the parsed header fails Valid.
func Read(data []byte) (Header, int, error) {
	if len(data) < Size {
		return Header{}, 0, pserr.UnexpectedEOF(Size, len(data))
	}

	h := Header{
		SignatureA: wireEndian.Uint32(data[0:4]),
		SignatureB: wireEndian.Uint32(data[4:8]),
		Version:    data[8],
	}

	if !h.Valid() {
		return Header{}, 0, pserr.ErrInvalidHeader
	}

	return h, Size, nil
}

// Write appends the canonical 9-byte header to dst, returning the
// extended slice. Write never fails: it always emits SignatureA,
// SignatureB, and Version in their canonical positions.
func Write(dst []byte) []byte {
	dst = wireEndian.AppendUint32(dst, SignatureA)
	dst = wireEndian.AppendUint32(dst, SignatureB)

	return append(dst, Version)
}
