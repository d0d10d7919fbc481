// Package phash provides the hash function backing Section's key lookup
// index.
//
// A Section is an ordered mapping (spec: insertion order is part of the
// wire contract) that also needs O(1) Get by name. Rather than a plain
// Go map (which would be ordered-insensitive and require keeping a
// parallel slice purely for order) or a linear scan over the order slice
// (O(n) lookups), Section keeps the order slice as the single source of
// truth and layers a hash-bucket index over it, keyed by Sum of the raw
// key bytes. Collisions are resolved by the caller comparing the actual
// key bytes of every candidate in a bucket.
package phash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of a Section or Array key's raw bytes.
func Sum(key []byte) uint64 {
	return xxhash.Sum64(key)
}
