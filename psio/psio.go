// Package psio drives Header, varsize, and value to read and write whole
// Portable Storage documents: a 9-byte header followed by a root Section.
//
// Read never trusts a length it takes off the wire as an allocation size.
// Every Section and Array it builds starts empty (value.NewSection,
// value.NewArrayOf with no capacity hint) and grows one entry at a time via
// append's amortized-doubling strategy, so a forged VarSize count can cost
// at most O(actual remaining input) before Read runs out of bytes and
// fails — never O(claimed count) up front. This is the same anti-DoS
// posture package internal/pool documents for its buffer growth.
package psio

import (
	"github.com/arloliu/portablestorage/header"
	"github.com/arloliu/portablestorage/internal/pool"
	"github.com/arloliu/portablestorage/value"
)

// Read parses a complete Portable Storage document: a header followed by a
// root Section.
func Read(data []byte, opts ...Option) (*value.Section, error) {
	cfg := newConfig(opts)

	_, n, err := header.Read(data)
	if err != nil {
		return nil, err
	}

	d := &decoder{data: data, pos: n, maxDepth: cfg.maxDepth}

	return d.readSection(0)
}

// Write encodes s as a complete Portable Storage document: a header
// followed by s's entries.
//
// Write is infallible given a well-formed tree (one built entirely through
// package value's constructors and Insert/Push methods), matching spec
// §7's description of the raw write path; VarSize.Write's error return is
// unreachable here since no Section or Array built that way can hold
// 2^62 or more entries.
//
// The working buffer is borrowed from package internal/pool's default
// pool, so a long-running process doing repeated encodes reuses one
// backing array across calls instead of allocating fresh for each.
// writeSection and everything it calls write into that buffer through
// ByteBuffer.MustWrite/MustWriteByte (growing it via ByteBuffer.Grow for
// large blob payloads), rather than threading a plain []byte through the
// call tree.
func Write(s *value.Section, _ ...Option) []byte {
	buf := pool.GetDocBuffer()
	defer pool.PutDocBuffer(buf)

	buf.B = header.Write(buf.B)
	writeSection(buf, s)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}
