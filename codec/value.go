package codec

import (
	"math"

	"github.com/arloliu/udoc/endian"
	"github.com/arloliu/udoc/wire"
)

var engine = endian.GetLittleEndianEngine()

// Value is a zero-copy view of one decoded value.
//
// Kind, TagBytes and the payload accessors return slices pointing into the
// source buffer; a Value is only valid for as long as that buffer is. The
// tag payload is skipped, not parsed, during decoding — parsing is
// deferred to the TagDecoder returned by Tags().
//
// Payload accessors must only be called for the matching wire type; they
// decode the raw payload bytes on demand. They do not check the wire type:
// an accessor called for a mismatched type reinterprets whatever payload
// bytes are present, and returns a zero value only when the payload is
// shorter than the accessor's width.
type Value struct {
	// Type is the wire type decoded from the header byte.
	Type wire.Type

	// HasKind and HasTags mirror the header flag bits.
	HasKind bool
	HasTags bool

	// Kind holds the raw kind symbol bytes, empty unless HasKind is set.
	// The kind feature is reserved: the bytes are exposed but carry no
	// defined semantics.
	Kind []byte

	// TagBytes holds the unparsed tag payload, empty unless HasTags is set.
	TagBytes []byte

	payload []byte
}

// Payload returns the raw payload bytes of the value.
// For fixed-width types this is the declared number of bytes; for
// size-prefixed types it is the content after the size prefix.
func (v Value) Payload() []byte {
	return v.payload
}

// Bool returns the payload of a BoolTrue or BoolFalse value.
func (v Value) Bool() bool {
	return v.Type == wire.TypeBoolTrue
}

// Uint8 returns the payload of a Nat8 value.
func (v Value) Uint8() uint8 {
	if len(v.payload) < 1 {
		return 0
	}

	return v.payload[0]
}

// Uint16 returns the payload of a Nat16 value.
func (v Value) Uint16() uint16 {
	if len(v.payload) < 2 {
		return 0
	}

	return engine.Uint16(v.payload)
}

// Uint32 returns the payload of a Nat32 value.
func (v Value) Uint32() uint32 {
	if len(v.payload) < 4 {
		return 0
	}

	return engine.Uint32(v.payload)
}

// Uint64 returns the payload of a Nat64 value.
func (v Value) Uint64() uint64 {
	if len(v.payload) < 8 {
		return 0
	}

	return engine.Uint64(v.payload)
}

// Int8 returns the payload of an Int8 value.
func (v Value) Int8() int8 {
	return int8(v.Uint8())
}

// Int16 returns the payload of an Int16 value.
func (v Value) Int16() int16 {
	return int16(v.Uint16())
}

// Int32 returns the payload of an Int32 value.
func (v Value) Int32() int32 {
	return int32(v.Uint32())
}

// Int64 returns the payload of an Int64 value.
func (v Value) Int64() int64 {
	return int64(v.Uint64())
}

// Float32 returns the payload of a Float32 value.
func (v Value) Float32() float32 {
	return math.Float32frombits(v.Uint32())
}

// Float64 returns the payload of a Float64 value.
func (v Value) Float64() float64 {
	return math.Float64frombits(v.Uint64())
}

// Decimal32 returns the raw payload bytes of a Decimal32 value.
// The layout is opaque at this layer.
func (v Value) Decimal32() [4]byte {
	var d [4]byte
	copy(d[:], v.payload)

	return d
}

// Decimal64 returns the raw payload bytes of a Decimal64 value.
// The layout is opaque at this layer.
func (v Value) Decimal64() [8]byte {
	var d [8]byte
	copy(d[:], v.payload)

	return d
}

// NatBytes returns the big unsigned payload bytes of a Nat value.
func (v Value) NatBytes() []byte {
	return v.payload
}

// IntBytes returns the two's complement payload bytes of an Int value.
func (v Value) IntBytes() []byte {
	return v.payload
}

// Bytes returns the payload of a Bytes value.
func (v Value) Bytes() []byte {
	return v.payload
}

// StringBytes returns the payload of a String value without conversion.
// The bytes are only guaranteed to be valid UTF-8 after validation.
func (v Value) StringBytes() []byte {
	return v.payload
}

// String returns the payload of a String value as a Go string.
// Unlike the other accessors this copies the payload.
func (v Value) String() string {
	return string(v.payload)
}

// SymbolBytes returns the payload of a Symbol value.
func (v Value) SymbolBytes() []byte {
	return v.payload
}

// ListBytes returns the unparsed list payload of a List value.
// Use List() to iterate its elements.
func (v Value) ListBytes() []byte {
	return v.payload
}

// Tags constructs a TagDecoder over the value's tag payload.
// A value without tags yields an empty decoder.
func (v Value) Tags() (*TagDecoder, error) {
	return NewTagDecoder(v.TagBytes)
}

// List constructs a ListDecoder over the value's list payload.
// Must only be called when Type is wire.TypeList.
func (v Value) List() (*ListDecoder, error) {
	return NewListDecoder(v.payload)
}
