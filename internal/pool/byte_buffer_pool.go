// Package pool provides a pooled growable byte buffer for building CESR
// text atoms without repeated allocation.
//
// The growth strategy is sized for atom-scale buffers: CESR atoms and
// most groups are a few hundred bytes of base64 text at most.
package pool

import "sync"

const (
	// AtomBufferDefaultSize is the default size of a ByteBuffer obtained from the pool.
	AtomBufferDefaultSize = 256
	// AtomBufferMaxThreshold is the largest buffer capacity retained in the pool;
	// larger buffers (e.g. from a big frame group) are discarded instead of pooled.
	AtomBufferMaxThreshold = 1024 * 64
)

// ByteBuffer is a growable byte slice wrapper with an amortized growth strategy.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) MustWriteByte(c byte) {
	bb.B = append(bb.B, c)
}

// MustWriteString appends a string to the buffer.
func (bb *ByteBuffer) MustWriteString(s string) {
	bb.B = append(bb.B, s...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Growth strategy: small buffers grow by AtomBufferDefaultSize increments;
// buffers already past 4x that size grow by 25% of current capacity, to
// balance reallocation cost against memory held for oversized atoms.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := AtomBufferDefaultSize
	if cap(bb.B) > 4*AtomBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a sync.Pool of ByteBuffers to minimize allocations during encoding.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse, discarding oversized buffers.
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

var atomDefaultPool = NewByteBufferPool(AtomBufferDefaultSize, AtomBufferMaxThreshold)

// GetAtomBuffer retrieves a ByteBuffer from the default atom-text pool.
func GetAtomBuffer() *ByteBuffer { return atomDefaultPool.Get() }

// PutAtomBuffer returns a ByteBuffer to the default atom-text pool.
func PutAtomBuffer(bb *ByteBuffer) { atomDefaultPool.Put(bb) }
