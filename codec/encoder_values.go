package codec

import (
	"math"

	"github.com/arloliu/udoc/wire"
)

// Value emission helpers. These append complete encoded values, so callers
// composing documents do not need to hand-assemble header bytes. Lists and
// maps take their element count up front, matching the count-prefixed wire
// layout.

// appendLE appends a fixed-width little-endian payload.
func (e *Encoder) appendLE(value uint64, width int) {
	var buf [8]byte
	engine.PutUint64(buf[:], value)
	e.Append(buf[:width])
}

// AppendNull appends a Null value.
func (e *Encoder) AppendNull() {
	e.AppendByte(byte(wire.TypeNull))
}

// AppendBool appends a BoolTrue or BoolFalse value.
func (e *Encoder) AppendBool(value bool) {
	if value {
		e.AppendByte(byte(wire.TypeBoolTrue))
	} else {
		e.AppendByte(byte(wire.TypeBoolFalse))
	}
}

// AppendNat8 appends a Nat8 value.
func (e *Encoder) AppendNat8(value uint8) {
	e.AppendByte(byte(wire.TypeNat8))
	e.AppendByte(value)
}

// AppendNat16 appends a Nat16 value.
func (e *Encoder) AppendNat16(value uint16) {
	e.AppendByte(byte(wire.TypeNat16))
	e.appendLE(uint64(value), 2)
}

// AppendNat32 appends a Nat32 value.
func (e *Encoder) AppendNat32(value uint32) {
	e.AppendByte(byte(wire.TypeNat32))
	e.appendLE(uint64(value), 4)
}

// AppendNat64 appends a Nat64 value.
func (e *Encoder) AppendNat64(value uint64) {
	e.AppendByte(byte(wire.TypeNat64))
	e.appendLE(value, 8)
}

// AppendInt8 appends an Int8 value.
func (e *Encoder) AppendInt8(value int8) {
	e.AppendByte(byte(wire.TypeInt8))
	e.AppendByte(byte(value))
}

// AppendInt16 appends an Int16 value.
func (e *Encoder) AppendInt16(value int16) {
	e.AppendByte(byte(wire.TypeInt16))
	e.appendLE(uint64(uint16(value)), 2)
}

// AppendInt32 appends an Int32 value.
func (e *Encoder) AppendInt32(value int32) {
	e.AppendByte(byte(wire.TypeInt32))
	e.appendLE(uint64(uint32(value)), 4)
}

// AppendInt64 appends an Int64 value.
func (e *Encoder) AppendInt64(value int64) {
	e.AppendByte(byte(wire.TypeInt64))
	e.appendLE(uint64(value), 8)
}

// AppendFloat32 appends a Float32 value.
func (e *Encoder) AppendFloat32(value float32) {
	e.AppendByte(byte(wire.TypeFloat32))
	e.appendLE(uint64(math.Float32bits(value)), 4)
}

// AppendFloat64 appends a Float64 value.
func (e *Encoder) AppendFloat64(value float64) {
	e.AppendByte(byte(wire.TypeFloat64))
	e.appendLE(math.Float64bits(value), 8)
}

// AppendDecimal32 appends a Decimal32 value with an opaque payload.
func (e *Encoder) AppendDecimal32(value [4]byte) {
	e.AppendByte(byte(wire.TypeDecimal32))
	e.Append(value[:])
}

// AppendDecimal64 appends a Decimal64 value with an opaque payload.
func (e *Encoder) AppendDecimal64(value [8]byte) {
	e.AppendByte(byte(wire.TypeDecimal64))
	e.Append(value[:])
}

// AppendNatBytes appends a Nat value: size-prefixed big unsigned bytes.
func (e *Encoder) AppendNatBytes(value []byte) {
	e.AppendByte(byte(wire.TypeNat))
	e.AppendSize(uint64(len(value)))
	e.Append(value)
}

// AppendIntBytes appends an Int value: size-prefixed two's complement bytes.
func (e *Encoder) AppendIntBytes(value []byte) {
	e.AppendByte(byte(wire.TypeInt))
	e.AppendSize(uint64(len(value)))
	e.Append(value)
}

// AppendBytesValue appends a Bytes value.
func (e *Encoder) AppendBytesValue(value []byte) {
	e.AppendByte(byte(wire.TypeBytes))
	e.AppendSize(uint64(len(value)))
	e.Append(value)
}

// AppendString appends a String value. The payload must be valid UTF-8 to
// pass validation; Go string values already are unless constructed from
// arbitrary bytes.
func (e *Encoder) AppendString(value string) {
	e.AppendByte(byte(wire.TypeString))
	e.AppendSize(uint64(len(value)))
	e.Append([]byte(value))
}

// AppendSymbolValue appends a Symbol value.
func (e *Encoder) AppendSymbolValue(symbol []byte) {
	e.AppendByte(byte(wire.TypeSymbol))
	e.AppendSymbol(symbol)
}

// BeginList appends a List header for count elements. The count must be
// exact: append exactly count values, then call EndList.
//
// An empty list is emitted in the compact single-byte form and opens no
// size scope.
func (e *Encoder) BeginList(count int) {
	e.AppendByte(byte(wire.TypeList))
	e.beginContainer(count)
}

// EndList closes the innermost list opened with BeginList.
func (e *Encoder) EndList() {
	e.endContainer("EndList without matching BeginList")
}

// BeginMap appends a map header for count (key, value) entries: the
// canonical Null-with-tags encoding. For each entry call AppendKey
// followed by one value append, then call EndMap.
//
// An empty map is emitted in the compact single-byte form and opens no
// size scope.
func (e *Encoder) BeginMap(count int) {
	e.AppendByte(byte(wire.TypeNull) | wire.FlagTags)
	e.beginContainer(count)
}

// AppendKey appends a map entry's key symbol. It must be followed by
// exactly one value append.
func (e *Encoder) AppendKey(key []byte) {
	e.AppendSymbol(key)
}

// EndMap closes the innermost map opened with BeginMap.
func (e *Encoder) EndMap() {
	e.endContainer("EndMap without matching BeginMap")
}

func (e *Encoder) beginContainer(count int) {
	if count == 0 {
		e.AppendByte(0)
		e.containers = append(e.containers, false)
		return
	}

	e.BeginSize()
	e.AppendSize(uint64(count))
	e.containers = append(e.containers, true)
}

func (e *Encoder) endContainer(misuse string) {
	if len(e.containers) == 0 {
		panic(misuse)
	}

	sized := e.containers[len(e.containers)-1]
	e.containers = e.containers[:len(e.containers)-1]
	if sized {
		e.EndSize()
	}
}
