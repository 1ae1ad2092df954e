package surf

import (
	"io"
	"slices"
	"sync"
)

// ByteBuffer is a pooled append buffer for encoded literals.
//
// PutByteBuffer resets the buffer, so copy out anything you keep before
// returning it. LiteralSize gives the exact figure to pass to Ensure.
type ByteBuffer struct {
	b []byte
}

var bbPool = sync.Pool{New: func() any { return &ByteBuffer{b: make([]byte, 0, 1024)} }}

// GetByteBuffer obtains a pooled ByteBuffer. The buffer is Reset() before
// being returned so length is zero (capacity may be reused).
func GetByteBuffer() *ByteBuffer {
	bb := bbPool.Get().(*ByteBuffer)
	bb.Reset()
	return bb
}

// GetMinSize obtains a pooled ByteBuffer with capacity for at least size bytes.
func GetMinSize(size int) *ByteBuffer {
	bb := GetByteBuffer()
	if size > 0 {
		bb.Ensure(size)
	}
	return bb
}

// PutByteBuffer returns the buffer to the pool after Resetting length to zero.
func PutByteBuffer(bb *ByteBuffer) { bb.Reset(); bbPool.Put(bb) }

// Bytes returns the underlying bytes.
func (bb *ByteBuffer) Bytes() []byte { return bb.b }

// Len returns length.
func (bb *ByteBuffer) Len() int { return len(bb.b) }

// Cap returns capacity.
func (bb *ByteBuffer) Cap() int { return cap(bb.b) }

// Reset resets the length to zero; capacity is unchanged.
func (bb *ByteBuffer) Reset() { bb.b = bb.b[:0] }

// Ensure grows the buffer so that n more bytes fit without reallocation.
func (bb *ByteBuffer) Ensure(n int) { bb.b = slices.Grow(bb.b, n) }

// Write implements io.Writer.
func (bb *ByteBuffer) Write(p []byte) (int, error) {
	bb.b = append(bb.b, p...)
	return len(p), nil
}

// WriteString appends a string verbatim, without escaping.
func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.b = append(bb.b, s...)
	return len(s), nil
}

// WriteByte appends a single byte.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.b = append(bb.b, c)
	return nil
}

// WriteTo implements io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.b)
	return int64(n), err
}

// readChunk is the free space ReadFrom keeps available per read.
const readChunk = 32 << 10

// ReadFrom implements io.ReaderFrom. It is how the CLI buffers its input
// before transcoding it to code units.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	start := len(bb.b)
	for {
		bb.Ensure(readChunk)
		n, err := r.Read(bb.b[len(bb.b):cap(bb.b)])
		bb.b = bb.b[:len(bb.b)+n]
		switch {
		case err == io.EOF:
			return int64(len(bb.b) - start), nil
		case err != nil:
			return int64(len(bb.b) - start), err
		}
	}
}

// AppendLiteral appends s as a literal bounded by delim.
func (bb *ByteBuffer) AppendLiteral(s string, delim uint16, mode EscapeMode) *ByteBuffer {
	bb.b = AppendLiteral(bb.b, s, delim, mode)
	return bb
}

// AppendString appends s as a string literal.
func (bb *ByteBuffer) AppendString(s string) *ByteBuffer {
	bb.b = AppendString(bb.b, s)
	return bb
}

func (bb *ByteBuffer) AppendChar(r rune) *ByteBuffer {
	bb.b = AppendChar(bb.b, r)
	return bb
}

func (bb *ByteBuffer) AppendCodePoint(r rune, delim uint16, mode EscapeMode) *ByteBuffer {
	bb.b = AppendCodePoint(bb.b, r, delim, mode)
	return bb
}
