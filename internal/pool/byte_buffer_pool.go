// Package pool provides a reusable, geometrically-growing byte buffer and a
// sync.Pool-backed allocator for it.
//
// The writer path in psio never knows up front how large an encoded Section
// will be, and the reader path must never size a container from an
// attacker-controlled length read off the wire (see the package doc of
// psio for the anti-DoS rationale); the reader does not use this package.
// ByteBuffer's Grow enlarges the buffer by the default size or by a quarter
// of its current capacity (or by the requested amount when that is larger),
// while ByteBufferPool lets repeated encode calls in a long-running RPC
// server reuse the underlying array instead of allocating one per call.
package pool

import "sync"

// DocBufferDefaultSize is the default capacity of a ByteBuffer obtained from
// the package's default pool.
const (
	DocBufferDefaultSize  = 1024 * 4  // 4KiB, comfortably larger than a typical handshake/ping Section
	DocBufferMaxThreshold = 1024 * 64 // 64KiB, buffers larger than this are discarded instead of pooled
)

// ByteBuffer is a growable byte slice wrapper designed to be reused across
// encode calls via ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// Grow ensures the buffer can hold requiredBytes more bytes without a
// further reallocation. If the buffer already has sufficient spare
// capacity, Grow does nothing.
//
// Growth strategy: for small buffers (< 4x the default size) grow by the
// default size to minimize reallocations early on; for larger buffers grow
// by 25% of current capacity, amortizing the cost of repeated appends
// without ever over-allocating based on an untrusted, wire-supplied length.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DocBufferDefaultSize
	if cap(bb.B) > 4*DocBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally, so it is safe for concurrent use from
// multiple goroutines encoding independent documents.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool whose buffers start at
// defaultSize and are discarded, rather than retained, once they grow past
// maxThreshold.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(DocBufferDefaultSize, DocBufferMaxThreshold)

// GetDocBuffer retrieves a ByteBuffer from the package's default pool.
func GetDocBuffer() *ByteBuffer {
	return defaultPool.Get()
}

// PutDocBuffer returns a ByteBuffer to the package's default pool.
func PutDocBuffer(bb *ByteBuffer) {
	defaultPool.Put(bb)
}
