package compress

import (
	"bytes"
	"testing"

	"github.com/arloliu/udoc/format"
	"github.com/stretchr/testify/require"
)

// sampleDoc builds a repetitive payload that every real codec can shrink.
func sampleDoc(size int) []byte {
	pattern := []byte("udoc document payload ")
	data := make([]byte, 0, size)
	for len(data) < size {
		data = append(data, pattern...)
	}

	return data[:size]
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		name            string
		compressionType format.CompressionType
		wantErr         bool
	}{
		{"none", format.CompressionNone, false},
		{"zstd", format.CompressionZstd, false},
		{"s2", format.CompressionS2, false},
		{"lz4", format.CompressionLZ4, false},
		{"invalid", format.CompressionType(0xFF), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := CreateCodec(tt.compressionType, "payload")
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, codec)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "codec for %s", ct)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0x7F))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := sampleDoc(8 * 1024)

	codecs := map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, decompressed))
		})
	}
}

func TestCodecs_CompressibleDataShrinks(t *testing.T) {
	payload := sampleDoc(32 * 1024)

	for name, codec := range map[string]Codec{
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for name, codec := range map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodecs_CorruptedInput(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03}

	_, err := NewZstdCompressor().Decompress(garbage)
	require.Error(t, err)

	_, err = NewS2Compressor().Decompress(garbage)
	require.Error(t, err)
}
