// Package archive compresses already-encoded Portable Storage documents for
// at-rest storage or transport. This is deliberately outside the wire
// format itself — spec §6 defines the wire bytes produced by psio.Write as
// the normative, bit-exact interoperability surface, and nothing in this
// package's output is expected to be understood by another peer speaking
// the raw protocol. Callers who need to archive or ship documents over a
// bandwidth-constrained channel compress the already-final bytes from
// psio.Write and decompress before handing them to psio.Read.
package archive

import "fmt"

// Format identifies a compression algorithm a Codec implements.
type Format uint8

const (
	FormatNone Format = iota + 1
	FormatZstd
	FormatS2
	FormatLZ4
)

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatZstd:
		return "zstd"
	case FormatS2:
		return "s2"
	case FormatLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// Codec compresses and decompresses document bytes.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// New returns the built-in Codec for f.
func New(f Format) (Codec, error) {
	switch f {
	case FormatNone:
		return NoOpCodec{}, nil
	case FormatZstd:
		return ZstdCodec{}, nil
	case FormatS2:
		return S2Codec{}, nil
	case FormatLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("archive: unsupported format %s", f)
	}
}
