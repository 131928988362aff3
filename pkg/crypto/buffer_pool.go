// This file (buffer_pool.go) provides pooled scratch buffers for the AEAD
// engine. Keystream superblocks are key-derived state, so every buffer is
// zeroed before it returns to the pool; a pooled buffer handed out again
// never carries another message's keystream.
package crypto

import (
	"sync"

	"github.com/vortexcipher/vortex-go/internal/constants"
)

// Envelope buffer size classes, chosen around typical message sizes plus
// framing overhead.
const (
	smallEnvelopeSize  = 4*1024 + constants.EnvelopeOverhead
	mediumEnvelopeSize = 64*1024 + constants.EnvelopeOverhead
	largeEnvelopeSize  = 1024*1024 + constants.EnvelopeOverhead
)

// BufferPool provides pooled byte buffers for encryption scratch.
type BufferPool struct {
	// Keystream superblock scratch (512 bytes, fixed).
	superBlock sync.Pool

	// Envelope buffers by size class.
	small  sync.Pool
	medium sync.Pool
	large  sync.Pool
}

// globalPool is the default pool used by the package-level helpers.
var globalPool = NewBufferPool()

// NewBufferPool creates a new buffer pool.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		superBlock: sync.Pool{
			New: func() any { return new([constants.SuperBlockSize]byte) },
		},
		small: sync.Pool{
			New: func() any {
				buf := make([]byte, smallEnvelopeSize)
				return &buf
			},
		},
		medium: sync.Pool{
			New: func() any {
				buf := make([]byte, mediumEnvelopeSize)
				return &buf
			},
		},
		large: sync.Pool{
			New: func() any {
				buf := make([]byte, largeEnvelopeSize)
				return &buf
			},
		},
	}
}

// GetSuperBlock returns keystream scratch from the pool.
func (p *BufferPool) GetSuperBlock() *[constants.SuperBlockSize]byte {
	return p.superBlock.Get().(*[constants.SuperBlockSize]byte)
}

// PutSuperBlock zeroes keystream scratch and returns it to the pool.
func (p *BufferPool) PutSuperBlock(b *[constants.SuperBlockSize]byte) {
	if b == nil {
		return
	}
	*b = [constants.SuperBlockSize]byte{}
	p.superBlock.Put(b)
}

// GetEnvelope returns an envelope buffer of at least the requested size.
// Requests beyond the largest size class are allocated directly.
func (p *BufferPool) GetEnvelope(size int) []byte {
	if size <= 0 {
		return nil
	}

	var bufPtr *[]byte
	switch {
	case size <= smallEnvelopeSize:
		bufPtr = p.small.Get().(*[]byte)
	case size <= mediumEnvelopeSize:
		bufPtr = p.medium.Get().(*[]byte)
	case size <= largeEnvelopeSize:
		bufPtr = p.large.Get().(*[]byte)
	default:
		return make([]byte, size)
	}
	return (*bufPtr)[:size]
}

// PutEnvelope zeroes an envelope buffer and returns it to its size class.
// Buffers of non-pool capacities are dropped for the GC.
func (p *BufferPool) PutEnvelope(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	buf = buf[:cap(buf)]
	Zeroize(buf)

	switch cap(buf) {
	case smallEnvelopeSize:
		p.small.Put(&buf)
	case mediumEnvelopeSize:
		p.medium.Put(&buf)
	case largeEnvelopeSize:
		p.large.Put(&buf)
	}
}

// GetEnvelopeBuffer returns a buffer from the global pool.
func GetEnvelopeBuffer(size int) []byte {
	return globalPool.GetEnvelope(size)
}

// PutEnvelopeBuffer returns a buffer to the global pool.
func PutEnvelopeBuffer(buf []byte) {
	globalPool.PutEnvelope(buf)
}
