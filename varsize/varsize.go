// Package varsize implements Portable Storage's variable-length unsigned
// size encoding: a 2-bit width mark packed into the low bits of the first
// byte, followed by the value shifted left by 2 across 1, 2, 4, or 8
// little-endian bytes.
//
// This is the codec's leaf component: Section entry counts, Blob lengths,
// and Array element counts are all encoded through Read/Write here. The
// fixed-size Header has no length field and does not use this package.
package varsize

import (
	"github.com/arloliu/portablestorage/endian"
	"github.com/arloliu/portablestorage/pserr"
)

// wireEndian is fixed: VarSize is always little-endian on the wire (spec
// §6), regardless of the host's native byte order.
var wireEndian = endian.GetLittleEndianEngine()

// Mark values occupying the low 2 bits of the first encoded byte.
const (
	markByte  = 0 // 1 byte,  value range 0..=63
	markWord  = 1 // 2 bytes, value range 0..=16_383
	markDword = 2 // 4 bytes, value range 0..=1_073_741_823
	markInt64 = 3 // 8 bytes, value range 0..=4_611_686_018_427_387_903
)

const markMask = 0x03

// Max is the largest value Write can encode: 2^62 - 1. The wire format has
// no representation for values at or above 2^62, per spec §4.1.
const Max = uint64(1)<<62 - 1

// Read decodes a VarSize from the start of data, returning the decoded
// value and the number of bytes consumed.
//
// The width is forced by the 2-bit mark in the first byte, so there is no
// "invalid mark" failure mode — the only way Read fails is running out of
// input mid-word, reported as pserr.ErrUnexpectedEOF.
func Read(data []byte) (uint64, int, error) {
	if len(data) < 1 {
		return 0, 0, pserr.UnexpectedEOF(1, len(data))
	}

	mark := data[0] & markMask
	switch mark {
	case markByte:
		return uint64(data[0] >> 2), 1, nil
	case markWord:
		if len(data) < 2 {
			return 0, 0, pserr.UnexpectedEOF(2, len(data))
		}

		return uint64(wireEndian.Uint16(data[:2]) >> 2), 2, nil
	case markDword:
		if len(data) < 4 {
			return 0, 0, pserr.UnexpectedEOF(4, len(data))
		}

		return uint64(wireEndian.Uint32(data[:4]) >> 2), 4, nil
	default: // markInt64
		if len(data) < 8 {
			return 0, 0, pserr.UnexpectedEOF(8, len(data))
		}

		return wireEndian.Uint64(data[:8]) >> 2, 8, nil
	}
}

// Write appends the minimal-width VarSize encoding of v to dst, returning
// the extended slice.
//
// Write returns an error rather than panicking (unlike the reference epee
// implementation, which aborts the process) when v does not fit in 62
// bits; see the REDESIGN note in the module's design notes.
func Write(dst []byte, v uint64) ([]byte, error) {
	switch {
	case v <= 63:
		return append(dst, byte(v<<2)|markByte), nil
	case v <= 16_383:
		return wireEndian.AppendUint16(dst, uint16(v<<2)|markWord), nil
	case v <= 1_073_741_823:
		return wireEndian.AppendUint32(dst, uint32(v<<2)|markDword), nil
	case v <= Max:
		return wireEndian.AppendUint64(dst, (v<<2)|markInt64), nil
	default:
		return nil, pserr.StorageEntryTooBig(v)
	}
}

// EncodedLen returns the number of bytes Write(nil, v) would produce, or -1
// if v exceeds Max.
func EncodedLen(v uint64) int {
	switch {
	case v <= 63:
		return 1
	case v <= 16_383:
		return 2
	case v <= 1_073_741_823:
		return 4
	case v <= Max:
		return 8
	default:
		return -1
	}
}
