// Package wire defines the on-wire type table and header bit layout of the
// udoc format.
//
// Every encoded value starts with a single header byte: the low five bits
// store the wire type code, bit 6 flags an attached kind discriminant and
// bit 7 flags attached tags. The numeric identity of each code is part of
// the wire format and must be preserved exactly.
package wire

// Type identifies the payload layout of an encoded value.
type Type uint8

const (
	TypeNull      Type = 1  // no payload
	TypeBoolFalse Type = 2  // no payload
	TypeBoolTrue  Type = 3  // no payload
	TypeNat8      Type = 4  // 1 byte LE unsigned
	TypeNat16     Type = 5  // 2 bytes LE unsigned
	TypeNat32     Type = 6  // 4 bytes LE unsigned
	TypeNat64     Type = 7  // 8 bytes LE unsigned
	TypeInt8      Type = 8  // 1 byte LE two's complement
	TypeInt16     Type = 9  // 2 bytes LE two's complement
	TypeInt32     Type = 10 // 4 bytes LE two's complement
	TypeInt64     Type = 11 // 8 bytes LE two's complement
	TypeFloat32   Type = 12 // 4 bytes IEEE-754 LE
	TypeFloat64   Type = 13 // 8 bytes IEEE-754 LE
	TypeDecimal32 Type = 14 // 4 raw bytes, opaque
	TypeDecimal64 Type = 15 // 8 raw bytes, opaque
	TypeNat       Type = 16 // size-prefixed big unsigned bytes
	TypeInt       Type = 17 // size-prefixed two's complement bytes
	TypeBytes     Type = 18 // size-prefixed bytes
	TypeString    Type = 19 // size-prefixed UTF-8 bytes
	TypeSymbol    Type = 20 // symbol-encoded identifier bytes
	TypeList      Type = 21 // size-prefixed list payload
)

const (
	// TypeMin and TypeMax bound the valid wire type codes.
	TypeMin Type = TypeNull
	TypeMax Type = TypeList

	// TypeMask extracts the wire type code from a header byte.
	TypeMask byte = 0x1F

	// FlagKind marks a header whose value carries a kind discriminant symbol.
	// The bit is defined on the wire; its payload semantics are reserved.
	FlagKind byte = 0x40

	// FlagTags marks a header whose value carries a tag payload.
	FlagTags byte = 0x80
)

// FromByte extracts the wire type from a header byte.
// The second return value reports whether the code is in the valid range.
func FromByte(header byte) (Type, bool) {
	t := Type(header & TypeMask)

	return t, t.IsValid()
}

// IsValid reports whether the type code is in the valid range.
func (t Type) IsValid() bool {
	return t >= TypeMin && t <= TypeMax
}

// Header builds a header byte from the type code and the kind/tags flags.
func (t Type) Header(hasKind, hasTags bool) byte {
	header := byte(t)
	if hasKind {
		header |= FlagKind
	}
	if hasTags {
		header |= FlagTags
	}

	return header
}

// FixedWidth returns the payload width in bytes for fixed-width types.
// The second return value is false for types with size-prefixed payloads.
// Types without a payload (Null and the booleans) report a width of zero.
func (t Type) FixedWidth() (int, bool) {
	switch t {
	case TypeNull, TypeBoolFalse, TypeBoolTrue:
		return 0, true
	case TypeNat8, TypeInt8:
		return 1, true
	case TypeNat16, TypeInt16:
		return 2, true
	case TypeNat32, TypeInt32, TypeFloat32, TypeDecimal32:
		return 4, true
	case TypeNat64, TypeInt64, TypeFloat64, TypeDecimal64:
		return 8, true
	default:
		return 0, false
	}
}

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBoolFalse:
		return "BoolFalse"
	case TypeBoolTrue:
		return "BoolTrue"
	case TypeNat8:
		return "Nat8"
	case TypeNat16:
		return "Nat16"
	case TypeNat32:
		return "Nat32"
	case TypeNat64:
		return "Nat64"
	case TypeInt8:
		return "Int8"
	case TypeInt16:
		return "Int16"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	case TypeDecimal32:
		return "Decimal32"
	case TypeDecimal64:
		return "Decimal64"
	case TypeNat:
		return "Nat"
	case TypeInt:
		return "Int"
	case TypeBytes:
		return "Bytes"
	case TypeString:
		return "String"
	case TypeSymbol:
		return "Symbol"
	case TypeList:
		return "List"
	default:
		return "Unknown"
	}
}
