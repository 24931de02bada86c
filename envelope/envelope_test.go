package envelope

import (
	"testing"

	"github.com/arloliu/udoc/codec"
	"github.com/arloliu/udoc/errs"
	"github.com/arloliu/udoc/format"
	"github.com/stretchr/testify/require"
)

// testDoc builds a small valid document: {"k": "value"}.
func testDoc(t *testing.T) []byte {
	t.Helper()

	enc, err := codec.NewEncoder()
	require.NoError(t, err)
	defer enc.Finish()

	enc.BeginMap(1)
	enc.AppendKey([]byte("k"))
	enc.AppendString("value")
	enc.EndMap()

	doc, err := enc.Build()
	require.NoError(t, err)

	return doc
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	doc := testDoc(t)

	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			packed, err := Pack(doc, WithCompression(compression))
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(packed), HeaderSize)

			unpacked, err := Unpack(packed)
			require.NoError(t, err)
			require.Equal(t, doc, unpacked)
		})
	}
}

func TestPack_HeaderFields(t *testing.T) {
	doc := testDoc(t)

	packed, err := Pack(doc, WithCompression(format.CompressionS2))
	require.NoError(t, err)

	var header Header
	require.NoError(t, header.Parse(packed))
	require.Equal(t, uint32(len(doc)), header.PayloadSize)
	require.Equal(t, format.CompressionS2, header.Flag.Compression)
	require.True(t, header.Flag.HasChecksum())
	require.True(t, header.Flag.IsLittleEndian())
	require.NotZero(t, header.Checksum)
}

func TestPack_BigEndianHeader(t *testing.T) {
	doc := testDoc(t)

	packed, err := Pack(doc, WithBigEndian())
	require.NoError(t, err)

	var header Header
	require.NoError(t, header.Parse(packed))
	require.False(t, header.Flag.IsLittleEndian())
	require.Equal(t, uint32(len(doc)), header.PayloadSize)

	unpacked, err := Unpack(packed)
	require.NoError(t, err)
	require.Equal(t, doc, unpacked)
}

func TestPack_RejectsMalformedDocument(t *testing.T) {
	_, err := Pack([]byte{0x13, 0x04, 0xFF}) // invalid UTF-8 string
	require.ErrorIs(t, err, errs.ErrStringInvalidUTF8)

	// Validation can be disabled explicitly.
	packed, err := Pack([]byte{0x13, 0x04, 0xFF}, WithDocumentValidation(false))
	require.NoError(t, err)

	unpacked, err := Unpack(packed)
	require.NoError(t, err)
	require.Equal(t, []byte{0x13, 0x04, 0xFF}, unpacked)
}

func TestPack_InvalidCompression(t *testing.T) {
	_, err := Pack(testDoc(t), WithCompression(format.CompressionType(0x7F)))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
}

func TestUnpack_HeaderErrors(t *testing.T) {
	doc := testDoc(t)
	packed, err := Pack(doc)
	require.NoError(t, err)

	// Truncated header.
	_, err = Unpack(packed[:HeaderSize-1])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	// Corrupted magic number.
	bad := append([]byte{}, packed...)
	bad[1] ^= 0xF0
	_, err = Unpack(bad)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)

	// Reserved flag bits set.
	bad = append([]byte{}, packed...)
	bad[0] |= 0x04
	_, err = Unpack(bad)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)

	// Bad compression type byte.
	bad = append([]byte{}, packed...)
	bad[2] = 0x7F
	_, err = Unpack(bad)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)

	// Nonzero reserved byte.
	bad = append([]byte{}, packed...)
	bad[3] = 0x01
	_, err = Unpack(bad)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
}

func TestUnpack_ChecksumMismatch(t *testing.T) {
	packed, err := Pack(testDoc(t))
	require.NoError(t, err)

	// Flip a payload byte past the header.
	bad := append([]byte{}, packed...)
	bad[len(bad)-1] ^= 0xFF
	_, err = Unpack(bad)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestUnpack_PayloadSizeMismatch(t *testing.T) {
	packed, err := Pack(testDoc(t), WithChecksum(false))
	require.NoError(t, err)

	// Truncate the uncompressed payload; with the checksum disabled the
	// size check has to catch it.
	_, err = Unpack(packed[:len(packed)-1])
	require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
}

func TestFlag_Defaults(t *testing.T) {
	flag := NewFlag()
	require.True(t, flag.HasChecksum())
	require.True(t, flag.IsLittleEndian())
	require.Equal(t, format.CompressionNone, flag.Compression)
	require.NoError(t, flag.Validate())

	flag.SetChecksum(false)
	require.False(t, flag.HasChecksum())

	flag.WithBigEndian()
	require.False(t, flag.IsLittleEndian())
	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
}

func TestHeader_SerializeParse(t *testing.T) {
	header := NewHeader(1234)
	header.Checksum = 0x0102030405060708
	header.Flag.Compression = format.CompressionLZ4

	data := header.Bytes()
	require.Len(t, data, HeaderSize)

	var parsed Header
	require.NoError(t, parsed.Parse(data))
	require.Equal(t, header, parsed)
}
