package encoding

import (
	"math"
	"math/bits"

	"github.com/arloliu/udoc/errs"
	"github.com/arloliu/udoc/reader"
)

// MaxSize is the largest value the size encoding can represent.
// Two bits of the widest (8-byte) encoding are spent on the class tag,
// leaving 62 bits for the value itself.
const MaxSize = 1<<62 - 1

// Class tags stored in the low two bits of the first encoded byte.
// The tag selects the total width of the encoded size.
const (
	sizeClass8  = 0b00 // 1 byte, values up to 2^6-1
	sizeClass16 = 0b01 // 2 bytes, values up to 2^14-1
	sizeClass32 = 0b10 // 4 bytes, values up to 2^30-1
	sizeClass64 = 0b11 // 8 bytes, values up to 2^62-1
)

// EncodeSize encodes an unsigned value into the variable-width size format.
//
// The value is shifted left by two and the class tag is stored in the low
// bits; the result is written little-endian in the smallest width that
// fits. The encoded bytes occupy buf[:n] where n is the returned length
// (1, 2, 4 or 8).
//
// Values above MaxSize fail with errs.ErrSizeOverflow.
func EncodeSize(value uint64) (buf [8]byte, n int, err error) {
	width := 64 - bits.LeadingZeros64(value)

	shifted := value << 2
	switch {
	case width <= 8-2:
		shifted |= sizeClass8
		n = 1
	case width <= 16-2:
		shifted |= sizeClass16
		n = 2
	case width <= 32-2:
		shifted |= sizeClass32
		n = 4
	case width <= 64-2:
		shifted |= sizeClass64
		n = 8
	default:
		return buf, 0, errs.ErrSizeOverflow
	}

	engine.PutUint64(buf[:], shifted)

	return buf, n, nil
}

// AppendSize appends the encoded size to dst and returns the extended slice.
func AppendSize(dst []byte, value uint64) ([]byte, error) {
	buf, n, err := EncodeSize(value)
	if err != nil {
		return dst, err
	}

	return append(dst, buf[:n]...), nil
}

// DecodeSize decodes one variable-width size from the reader, advancing it
// past the consumed bytes.
//
// The width is dispatched on the low two bits of the first byte. Any of the
// four widths is accepted for any value in range; only the encoder is
// required to pick the minimal width.
func DecodeSize(r *reader.Reader) (uint64, error) {
	first, err := r.Peek(0)
	if err != nil {
		return 0, err
	}

	var value uint64
	switch first & 0b11 {
	case sizeClass8:
		v, err := r.NextUint8()
		if err != nil {
			return 0, err
		}
		value = uint64(v)
	case sizeClass16:
		v, err := r.NextUint16()
		if err != nil {
			return 0, err
		}
		value = uint64(v)
	case sizeClass32:
		v, err := r.NextUint32()
		if err != nil {
			return 0, err
		}
		value = uint64(v)
	case sizeClass64:
		value, err = r.NextUint64()
		if err != nil {
			return 0, err
		}
	}

	return value >> 2, nil
}

// PeekSize decodes one size without advancing the reader.
// It returns the decoded value and the encoded width in bytes.
func PeekSize(r *reader.Reader) (uint64, int, error) {
	fork := *r
	start := fork.Offset()

	value, err := DecodeSize(&fork)
	if err != nil {
		return 0, 0, err
	}

	return value, fork.Offset() - start, nil
}

// DecodeSizeAsInt decodes one size and converts it to int.
// Sizes beyond the host's int range fail with errs.ErrSizeTooLarge.
func DecodeSizeAsInt(r *reader.Reader) (int, error) {
	value, err := DecodeSize(r)
	if err != nil {
		return 0, err
	}
	if value > math.MaxInt {
		return 0, errs.ErrSizeTooLarge
	}

	return int(value), nil
}

// DecodeSizePrefixed decodes a size then consumes that many bytes,
// returning them as a zero-copy slice into the source buffer.
func DecodeSizePrefixed(r *reader.Reader) ([]byte, error) {
	size, err := DecodeSizeAsInt(r)
	if err != nil {
		return nil, err
	}

	return r.NextN(size)
}
