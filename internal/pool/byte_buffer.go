// Package pool provides pooled byte buffers for the two allocation hot spots
// in notectl: gzip decompression of note payloads and export file assembly.
package pool

import (
	"io"
	"sync"
)

const (
	// NoteBufferDefaultSize sizes fresh note buffers; most decompressed note
	// payloads fit well under 64KiB.
	NoteBufferDefaultSize = 64 * 1024
	// NoteBufferMaxThreshold caps the capacity of note buffers returned to the
	// pool; anything larger is dropped to avoid pinning memory for one outlier.
	NoteBufferMaxThreshold = 1024 * 1024

	// ExportBufferDefaultSize sizes fresh export buffers.
	ExportBufferDefaultSize = 256 * 1024
	// ExportBufferMaxThreshold caps the capacity of export buffers returned to
	// the pool.
	ExportBufferMaxThreshold = 8 * 1024 * 1024
)

// ByteBuffer is a minimal growable byte buffer that exposes its backing slice.
// It implements io.Writer so decompressors can io.Copy into it.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice. The slice is only valid until the
// buffer is returned to its pool.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the backing slice.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset empties the buffer, keeping the backing array for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures capacity for at least n more bytes without further allocation.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	grown := make([]byte, len(bb.B), len(bb.B)+n)
	copy(grown, bb.B)
	bb.B = grown
}

// Write appends data to the buffer. It never fails; the error is always nil.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteString appends a string to the buffer.
func (bb *ByteBuffer) WriteString(s string) {
	bb.B = append(bb.B, s...)
}

// WriteByte appends a single byte. It never fails; the error is always nil.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// WriteTo writes the buffer contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// bufferPool pairs a sync.Pool with a capacity threshold so oversized buffers
// are discarded instead of cached.
type bufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

func newBufferPool(defaultSize, maxThreshold int) *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

func (bp *bufferPool) get() *ByteBuffer {
	bb, _ := bp.pool.Get().(*ByteBuffer)
	return bb
}

func (bp *bufferPool) put(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > bp.maxThreshold {
		return
	}

	bb.Reset()
	bp.pool.Put(bb)
}

var (
	notePool   = newBufferPool(NoteBufferDefaultSize, NoteBufferMaxThreshold)
	exportPool = newBufferPool(ExportBufferDefaultSize, ExportBufferMaxThreshold)
)

// GetNoteBuffer retrieves a buffer sized for decompressed note payloads.
func GetNoteBuffer() *ByteBuffer {
	return notePool.get()
}

// PutNoteBuffer returns a note buffer to its pool.
func PutNoteBuffer(bb *ByteBuffer) {
	notePool.put(bb)
}

// GetExportBuffer retrieves a buffer sized for export file assembly.
func GetExportBuffer() *ByteBuffer {
	return exportPool.get()
}

// PutExportBuffer returns an export buffer to its pool.
func PutExportBuffer(bb *ByteBuffer) {
	exportPool.put(bb)
}
