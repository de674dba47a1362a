package pool

import (
	"sync"
	"unicode/utf8"
)

const (
	GlyphBufferDefaultSize  = 256       // GlyphBufferDefaultSize is the initial capacity of pooled buffers.
	GlyphBufferMaxThreshold = 1024 * 64 // GlyphBufferMaxThreshold is the largest capacity kept in the pool.
)

// ByteBuffer accumulates the UTF-8 form of glyph and text output.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// String returns a copy of the buffer contents as a string.
func (bb *ByteBuffer) String() string {
	return string(bb.B)
}

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer and keeps its storage.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures room for n more bytes.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := cap(bb.B) / 2
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// WriteRune appends the UTF-8 encoding of r.
func (bb *ByteBuffer) WriteRune(r rune) {
	bb.B = utf8.AppendRune(bb.B, r)
}

// WriteString appends s.
func (bb *ByteBuffer) WriteString(s string) {
	bb.B = append(bb.B, s...)
}

// ByteBufferPool is a sync.Pool of ByteBuffers that drops buffers grown
// beyond maxThreshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given initial size.
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

// Get retrieves an empty ByteBuffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool.
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

var glyphDefaultPool = NewByteBufferPool(GlyphBufferDefaultSize, GlyphBufferMaxThreshold)

// GetGlyphBuffer retrieves a ByteBuffer from the default pool.
func GetGlyphBuffer() *ByteBuffer {
	return glyphDefaultPool.Get()
}

// PutGlyphBuffer returns a ByteBuffer to the default pool.
func PutGlyphBuffer(bb *ByteBuffer) {
	glyphDefaultPool.Put(bb)
}
