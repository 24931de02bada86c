// Package reader provides a zero-copy cursor over a borrowed byte slice.
//
// A Reader never copies payload bytes: PeekN, NextN and Rest return
// subslices of the source buffer, so the returned slices are only valid
// for as long as the source buffer is. All typed reads interpret bytes in
// little-endian order regardless of host endianness, matching the udoc
// wire format.
//
// Note: The Reader is NOT thread-safe. Each instance should be used by a
// single goroutine at a time. Multiple readers may operate concurrently
// over the same immutable source buffer.
package reader

import (
	"math"

	"github.com/arloliu/udoc/endian"
	"github.com/arloliu/udoc/errs"
)

var engine = endian.GetLittleEndianEngine()

// Reader is a cursor over a borrowed byte slice.
//
// The zero value is an empty reader. Reader is a small value type; copying
// one yields an independent cursor over the same buffer, which is how
// encoding.PeekSize looks ahead without advancing the caller's cursor.
type Reader struct {
	buf    []byte
	cursor int
}

// New creates a Reader positioned at the start of buf.
// The reader borrows buf; it must not be mutated while the reader is in use.
func New(buf []byte) Reader {
	return Reader{buf: buf}
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.cursor
}

// Rest returns the unconsumed tail of the buffer without advancing the cursor.
func (r *Reader) Rest() []byte {
	return r.buf[r.cursor:]
}

// Offset returns the current cursor position from the start of the buffer.
func (r *Reader) Offset() int {
	return r.cursor
}

// Empty reports whether all bytes have been consumed.
func (r *Reader) Empty() bool {
	return !r.HasSome()
}

// HasSome reports whether at least one unconsumed byte remains.
func (r *Reader) HasSome() bool {
	return r.cursor < len(r.buf)
}

// HasN reports whether at least n unconsumed bytes remain.
func (r *Reader) HasN(n int) bool {
	return r.cursor+n <= len(r.buf)
}

// Peek returns the byte at the given offset past the cursor without
// advancing. It fails with errs.ErrInputExhausted when the offset is out
// of range.
func (r *Reader) Peek(offset int) (byte, error) {
	if r.cursor+offset >= len(r.buf) {
		return 0, errs.ErrInputExhausted
	}

	return r.buf[r.cursor+offset], nil
}

// PeekN returns the next n bytes without advancing the cursor.
// The returned slice points into the source buffer.
func (r *Reader) PeekN(n int) ([]byte, error) {
	if !r.HasN(n) {
		return nil, errs.ErrInputExhausted
	}

	return r.buf[r.cursor : r.cursor+n], nil
}

// Next consumes and returns a single byte.
func (r *Reader) Next() (byte, error) {
	b, err := r.Peek(0)
	if err != nil {
		return 0, err
	}
	r.cursor++

	return b, nil
}

// NextN consumes and returns the next n bytes.
// The returned slice points into the source buffer.
func (r *Reader) NextN(n int) ([]byte, error) {
	b, err := r.PeekN(n)
	if err != nil {
		return nil, err
	}
	r.cursor += n

	return b, nil
}

// NextUint8 consumes one byte as an unsigned integer.
func (r *Reader) NextUint8() (uint8, error) {
	return r.Next()
}

// NextUint16 consumes two bytes as a little-endian unsigned integer.
func (r *Reader) NextUint16() (uint16, error) {
	b, err := r.NextN(2)
	if err != nil {
		return 0, err
	}

	return engine.Uint16(b), nil
}

// NextUint32 consumes four bytes as a little-endian unsigned integer.
func (r *Reader) NextUint32() (uint32, error) {
	b, err := r.NextN(4)
	if err != nil {
		return 0, err
	}

	return engine.Uint32(b), nil
}

// NextUint64 consumes eight bytes as a little-endian unsigned integer.
func (r *Reader) NextUint64() (uint64, error) {
	b, err := r.NextN(8)
	if err != nil {
		return 0, err
	}

	return engine.Uint64(b), nil
}

// NextInt8 consumes one byte as a two's complement signed integer.
func (r *Reader) NextInt8() (int8, error) {
	v, err := r.Next()
	return int8(v), err
}

// NextInt16 consumes two bytes as a little-endian two's complement integer.
func (r *Reader) NextInt16() (int16, error) {
	v, err := r.NextUint16()
	return int16(v), err
}

// NextInt32 consumes four bytes as a little-endian two's complement integer.
func (r *Reader) NextInt32() (int32, error) {
	v, err := r.NextUint32()
	return int32(v), err
}

// NextInt64 consumes eight bytes as a little-endian two's complement integer.
func (r *Reader) NextInt64() (int64, error) {
	v, err := r.NextUint64()
	return int64(v), err
}

// NextFloat32 consumes four bytes as a little-endian IEEE-754 float.
func (r *Reader) NextFloat32() (float32, error) {
	v, err := r.NextUint32()
	return math.Float32frombits(v), err
}

// NextFloat64 consumes eight bytes as a little-endian IEEE-754 float.
func (r *Reader) NextFloat64() (float64, error) {
	v, err := r.NextUint64()
	return math.Float64frombits(v), err
}
