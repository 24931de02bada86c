package encoding

import (
	"github.com/arloliu/udoc/errs"
	"github.com/arloliu/udoc/reader"
)

// MaxSymbolLength is the largest symbol the codec can encode. The length
// prefix loses one bit to the inline-bytes tag, so the ceiling is one bit
// below MaxSize.
const MaxSymbolLength = 1<<61 - 1

// EncodeSymbolLength encodes the tag-biased length prefix of a symbol.
// The low bit of the prefix value is set to mark the inline-bytes form;
// the clear form is reserved.
func EncodeSymbolLength(length uint64) (buf [8]byte, n int, err error) {
	if length > MaxSymbolLength {
		return buf, 0, errs.ErrSizeOverflow
	}

	return EncodeSize(length<<1 | 1)
}

// AppendSymbol appends the symbol encoding, length prefix followed by the
// raw bytes, to dst and returns the extended slice.
func AppendSymbol(dst []byte, symbol []byte) ([]byte, error) {
	buf, n, err := EncodeSymbolLength(uint64(len(symbol)))
	if err != nil {
		return dst, err
	}

	dst = append(dst, buf[:n]...)

	return append(dst, symbol...), nil
}

// DecodeSymbol decodes one symbol from the reader, returning its bytes as a
// zero-copy slice into the source buffer.
//
// A length prefix with the low bit clear is the reserved alternative form
// and fails with errs.ErrReservedSymbol.
func DecodeSymbol(r *reader.Reader) ([]byte, error) {
	prefix, err := DecodeSize(r)
	if err != nil {
		return nil, err
	}

	if prefix&1 == 0 {
		return nil, errs.ErrReservedSymbol
	}

	length := prefix >> 1
	if length > uint64(r.Remaining()) {
		return nil, errs.ErrInputExhausted
	}

	return r.NextN(int(length))
}
