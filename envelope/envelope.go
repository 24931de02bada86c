// Package envelope frames udoc documents for storage and transport.
//
// An envelope is a fixed 16-byte header followed by the document payload,
// optionally compressed. The header records a magic number, the payload's
// uncompressed size and an xxHash64 checksum of the uncompressed document,
// so a reader can reject corrupted or truncated envelopes before touching
// the codec layer.
//
// Packing validates the document by default; the envelope never frames a
// malformed tree unless validation is explicitly disabled.
package envelope

import (
	"fmt"
	"math"

	"github.com/arloliu/udoc/codec"
	"github.com/arloliu/udoc/compress"
	"github.com/arloliu/udoc/errs"
	"github.com/arloliu/udoc/format"
	"github.com/arloliu/udoc/internal/hash"
	"github.com/arloliu/udoc/internal/options"
)

// packConfig collects the Pack options.
type packConfig struct {
	flag     Flag
	validate bool
}

// PackOption represents a functional option for configuring Pack.
type PackOption = options.Option[*packConfig]

// WithCompression selects the compression codec for the document payload.
// The default is no compression.
func WithCompression(compression format.CompressionType) PackOption {
	return options.New(func(c *packConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: compression %s", errs.ErrInvalidHeaderFlags, compression)
		}
		c.flag.Compression = compression

		return nil
	})
}

// WithChecksum enables or disables the payload checksum. It is enabled by
// default; disabling trades corruption detection for a cheaper pack.
func WithChecksum(enabled bool) PackOption {
	return options.NoError(func(c *packConfig) {
		c.flag.SetChecksum(enabled)
	})
}

// WithLittleEndian writes the header fields in little-endian byte order.
// It is the default option.
func WithLittleEndian() PackOption {
	return options.NoError(func(c *packConfig) {
		c.flag.WithLittleEndian()
	})
}

// WithBigEndian writes the header fields in big-endian byte order.
// It rarely needs to be used unless interoperability with big-endian
// systems is required.
func WithBigEndian() PackOption {
	return options.NoError(func(c *packConfig) {
		c.flag.WithBigEndian()
	})
}

// WithDocumentValidation enables or disables validating the document
// before framing. It is enabled by default.
func WithDocumentValidation(enabled bool) PackOption {
	return options.NoError(func(c *packConfig) {
		c.validate = enabled
	})
}

// Pack frames a udoc document into an envelope.
//
// The document is validated (unless disabled), checksummed, compressed
// with the selected codec and prefixed with the envelope header.
func Pack(doc []byte, opts ...PackOption) ([]byte, error) {
	cfg := packConfig{flag: NewFlag(), validate: true}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if len(doc) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: document length %d", errs.ErrInvalidPayloadSize, len(doc))
	}

	if cfg.validate {
		if err := codec.Validate(doc); err != nil {
			return nil, fmt.Errorf("document validation failed: %w", err)
		}
	}

	header := Header{
		PayloadSize: uint32(len(doc)),
		Flag:        cfg.flag,
	}
	if cfg.flag.HasChecksum() {
		header.Checksum = hash.Sum(doc)
	}

	cmp, err := compress.GetCodec(cfg.flag.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := cmp.Compress(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, header.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

// Unpack opens an envelope and returns the document payload.
//
// The header is verified (magic, reserved bits, compression type), the
// payload is decompressed, and its size and checksum are checked against
// the header. The returned document is freshly allocated unless the
// envelope was packed without compression, in which case it aliases the
// input buffer.
func Unpack(data []byte) ([]byte, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	cmp, err := compress.GetCodec(header.Flag.Compression)
	if err != nil {
		return nil, err
	}
	doc, err := cmp.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if len(doc) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header %d, payload %d",
			errs.ErrInvalidPayloadSize, header.PayloadSize, len(doc))
	}
	if header.Flag.HasChecksum() && hash.Sum(doc) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	return doc, nil
}
