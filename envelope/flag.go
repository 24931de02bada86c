package envelope

import (
	"github.com/arloliu/udoc/endian"
	"github.com/arloliu/udoc/errs"
	"github.com/arloliu/udoc/format"
)

const (
	// Bit masks for the packed options field.
	ChecksumMask     = 0x0001 // mask for checksum-present bit (bit 0)
	EndiannessMask   = 0x0002 // mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // mask for reserved bits (bits 2-3), must be zero
	MagicNumberMask  = 0xFFF0 // mask for magic number (bits 4-15)

	// MagicEnvelopeV1Opt is the version 1 magic number for the udoc
	// envelope format, stored in bits 4-15 of the options field.
	MagicEnvelopeV1Opt = 0xED10
)

// Flag is the packed options field of an envelope header.
type Flag struct {
	// Options packs the magic number and flag bits.
	// Bit 0 is the checksum flag: 1 means the header carries an xxHash64
	// checksum of the uncompressed document.
	// Bit 1 is the endianness flag for the remaining header fields:
	// 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved and must be zero.
	// Bits 4-15 hold the magic number MagicEnvelopeV1Opt.
	Options uint16

	// Compression identifies the codec applied to the document payload.
	Compression format.CompressionType
}

// NewFlag creates a Flag with default settings: little-endian header,
// checksum enabled, no compression.
func NewFlag() Flag {
	return Flag{
		Options:     MagicEnvelopeV1Opt | ChecksumMask,
		Compression: format.CompressionNone,
	}
}

// HasChecksum returns whether the header carries a payload checksum.
func (f Flag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetChecksum enables or disables the payload checksum.
func (f *Flag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// WithLittleEndian sets the header fields to little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets the header fields to big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Validate checks the magic number, the reserved bits and the compression
// type.
func (f Flag) Validate() error {
	if f.Options&MagicNumberMask != MagicEnvelopeV1Opt {
		return errs.ErrInvalidMagicNumber
	}
	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if !f.Compression.IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
