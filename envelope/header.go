package envelope

import (
	"github.com/arloliu/udoc/errs"
	"github.com/arloliu/udoc/format"
)

// HeaderSize is the fixed envelope header size in bytes.
const HeaderSize = 16

// Header is the fixed-size section at the start of an envelope.
//
// Layout:
//
//	byte  0-1   packed options (always little-endian)
//	byte  2     compression type
//	byte  3     reserved, must be zero
//	byte  4-7   uncompressed document size
//	byte  8-15  xxHash64 checksum of the uncompressed document
//	            (zero when the checksum flag is clear)
//
// The multi-byte fields after the options use the byte order selected by
// the endianness flag; the options field itself is always little-endian so
// the flag can be read before the order is known.
type Header struct {
	// PayloadSize is the size of the document before compression.
	PayloadSize uint32

	// Checksum is the xxHash64 of the uncompressed document.
	Checksum uint64

	// Flag packs the magic number, flag bits and compression type.
	Flag Flag
}

// NewHeader creates a Header with default flags for the given document size.
func NewHeader(payloadSize uint32) Header {
	return Header{
		PayloadSize: payloadSize,
		Flag:        NewFlag(),
	}
}

// Parse parses the header from a byte slice.
// It fails with errs.ErrInvalidHeaderSize when data is shorter than
// HeaderSize, and with flag validation errors for bad magic, reserved
// bits or compression type.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The options field is always little-endian; it carries the
	// endianness of everything after it.
	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Compression = format.CompressionType(data[2])
	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if data[3] != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	engine := h.Flag.GetEndianEngine()
	h.PayloadSize = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	return nil
}

// Bytes serializes the header into a fresh HeaderSize byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = byte(h.Flag.Compression)
	b[3] = 0

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[4:8], h.PayloadSize)
	engine.PutUint64(b[8:16], h.Checksum)

	return b
}
