package encoding

import (
	"bytes"
	"testing"

	"github.com/arloliu/udoc/errs"
	"github.com/arloliu/udoc/reader"
	"github.com/stretchr/testify/require"
)

func TestAppendSymbol(t *testing.T) {
	// len=1 -> prefix value 1<<1|1 = 3 -> single byte 3<<2 = 0x0C.
	dst, err := AppendSymbol(nil, []byte("a"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x0C, 'a'}, dst)

	// Empty symbol: prefix value 1 -> 0x04, no bytes.
	dst, err = AppendSymbol(nil, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x04}, dst)
}

func TestSymbol_RoundTrip(t *testing.T) {
	symbols := [][]byte{
		nil,
		[]byte("a"),
		[]byte("name"),
		[]byte("with spaces and \x00 bytes"),
		bytes.Repeat([]byte("k"), 100), // pushes the prefix into two bytes
	}

	for _, symbol := range symbols {
		encoded, err := AppendSymbol(nil, symbol)
		require.NoError(t, err)

		r := reader.New(encoded)
		decoded, err := DecodeSymbol(&r)
		require.NoError(t, err)
		require.Equal(t, len(symbol), len(decoded))
		require.True(t, bytes.Equal(symbol, decoded))
		require.True(t, r.Empty())
	}
}

func TestDecodeSymbol_ReservedForm(t *testing.T) {
	// Low bit clear is the reserved alternative: prefix value 2 encodes
	// as 2<<2 = 0x08.
	r := reader.New([]byte{0x08, 'a'})
	_, err := DecodeSymbol(&r)
	require.ErrorIs(t, err, errs.ErrReservedSymbol)
}

func TestDecodeSymbol_Truncated(t *testing.T) {
	// Declares 2 bytes, provides 1.
	prefix, n, err := EncodeSymbolLength(2)
	require.NoError(t, err)

	r := reader.New(append(prefix[:n], 'x'))
	_, err = DecodeSymbol(&r)
	require.ErrorIs(t, err, errs.ErrInputExhausted)
}

func TestEncodeSymbolLength_Overflow(t *testing.T) {
	_, _, err := EncodeSymbolLength(MaxSymbolLength + 1)
	require.ErrorIs(t, err, errs.ErrSizeOverflow)
}
