// Package encoding implements the primitive codecs of the udoc wire format:
// the variable-width size encoding used everywhere a length or count
// appears, and the symbol encoding used for identifier-like byte strings.
//
// # Size encoding
//
// A size is an unsigned value up to 62 bits, encoded in 1, 2, 4 or 8
// little-endian bytes. The value is shifted left by two and the low two
// bits of the first byte carry a class tag selecting the width:
//
//	00 -> 1 byte,  values < 2^6
//	01 -> 2 bytes, values < 2^14
//	10 -> 4 bytes, values < 2^30
//	11 -> 8 bytes, values < 2^62
//
// The encoding is self-delimiting: decoders dispatch on the first byte
// alone. Encoders always pick the minimal width; decoders accept any of
// the four widths for any value in range.
//
// # Symbol encoding
//
// A symbol is a byte string encoded as size(len<<1 | 1) followed by the
// raw bytes. The low bit distinguishes the inline-bytes form from a
// reserved alternative which decodes as an error.
package encoding

import "github.com/arloliu/udoc/endian"

// engine is the wire byte order. The udoc format is little-endian only.
var engine = endian.GetLittleEndianEngine()
