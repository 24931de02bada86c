package reader

import (
	"math"
	"testing"

	"github.com/arloliu/udoc/errs"
	"github.com/stretchr/testify/require"
)

func TestReader_Cursor(t *testing.T) {
	r := New([]byte{0x01, 0x02, 0x03})

	require.True(t, r.HasSome())
	require.False(t, r.Empty())
	require.Equal(t, 3, r.Remaining())
	require.Equal(t, 0, r.Offset())

	b, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, byte(0x01), b)
	require.Equal(t, 2, r.Remaining())
	require.Equal(t, 1, r.Offset())

	require.Equal(t, []byte{0x02, 0x03}, r.Rest())

	b, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, byte(0x02), b)

	b, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, byte(0x03), b)

	require.True(t, r.Empty())
	_, err = r.Next()
	require.ErrorIs(t, err, errs.ErrInputExhausted)
}

func TestReader_PeekDoesNotAdvance(t *testing.T) {
	r := New([]byte{0xAA, 0xBB})

	b, err := r.Peek(0)
	require.NoError(t, err)
	require.Equal(t, byte(0xAA), b)

	b, err = r.Peek(1)
	require.NoError(t, err)
	require.Equal(t, byte(0xBB), b)

	_, err = r.Peek(2)
	require.ErrorIs(t, err, errs.ErrInputExhausted)

	require.Equal(t, 0, r.Offset())
}

func TestReader_NextN(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03, 0x04}
	r := New(src)

	head, err := r.NextN(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, head)

	// NextN returns a view into the source buffer, not a copy.
	src[2] = 0x33
	tail, err := r.PeekN(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0x33, 0x04}, tail)

	_, err = r.NextN(3)
	require.ErrorIs(t, err, errs.ErrInputExhausted)
	require.Equal(t, 2, r.Remaining())

	empty, err := r.NextN(0)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestReader_HasN(t *testing.T) {
	r := New([]byte{0x01, 0x02})

	require.True(t, r.HasN(0))
	require.True(t, r.HasN(2))
	require.False(t, r.HasN(3))
}

func TestReader_TypedReads(t *testing.T) {
	r := New([]byte{
		0x2A,                   // uint8
		0x34, 0x12,             // uint16
		0x78, 0x56, 0x34, 0x12, // uint32
		0xF0, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12, // uint64
	})

	u8, err := r.NextUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x2A), u8)

	u16, err := r.NextUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), u16)

	u32, err := r.NextUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), u32)

	u64, err := r.NextUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x123456789ABCDEF0), u64)

	require.True(t, r.Empty())
}

func TestReader_SignedReads(t *testing.T) {
	r := New([]byte{
		0xFF,       // int8 -1
		0xFE, 0xFF, // int16 -2
		0xFD, 0xFF, 0xFF, 0xFF, // int32 -3
		0xFC, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // int64 -4
	})

	i8, err := r.NextInt8()
	require.NoError(t, err)
	require.Equal(t, int8(-1), i8)

	i16, err := r.NextInt16()
	require.NoError(t, err)
	require.Equal(t, int16(-2), i16)

	i32, err := r.NextInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-3), i32)

	i64, err := r.NextInt64()
	require.NoError(t, err)
	require.Equal(t, int64(-4), i64)
}

func TestReader_FloatReads(t *testing.T) {
	buf := append([]byte{}, 0x00, 0x00, 0x20, 0x41) // float32(10.0)
	var f64bits [8]byte
	for i := range 8 {
		f64bits[i] = byte(math.Float64bits(2.5) >> (8 * i))
	}
	buf = append(buf, f64bits[:]...)

	r := New(buf)

	f32, err := r.NextFloat32()
	require.NoError(t, err)
	require.InDelta(t, 10.0, f32, 1e-6)

	f64, err := r.NextFloat64()
	require.NoError(t, err)
	require.Equal(t, 2.5, f64)
}

func TestReader_TypedReadExhaustion(t *testing.T) {
	r := New([]byte{0x01})

	_, err := r.NextUint16()
	require.ErrorIs(t, err, errs.ErrInputExhausted)

	// The failed read must not consume the remaining byte.
	require.Equal(t, 1, r.Remaining())
}

func TestReader_CopyForksCursor(t *testing.T) {
	r := New([]byte{0x01, 0x02, 0x03})
	_, err := r.Next()
	require.NoError(t, err)

	fork := r
	_, err = fork.Next()
	require.NoError(t, err)

	require.Equal(t, 1, r.Offset())
	require.Equal(t, 2, fork.Offset())
}
