package codec

import (
	"testing"

	"github.com/arloliu/udoc/errs"
	"github.com/stretchr/testify/require"
)

func TestValidate_WellFormedScalars(t *testing.T) {
	cases := [][]byte{
		{0x01},                   // null
		{0x02},                   // false
		{0x03},                   // true
		{0x04, 0xFF},             // Nat8
		{0x13, 0x08, 0x68, 0x69}, // "hi"
		{0x13, 0x00},             // ""
		{0x15, 0x00},             // empty list
		{0x81, 0x00},             // empty map
		{0x12, 0x08, 0xFF, 0xFE}, // bytes payloads are not UTF-8 checked
	}

	for _, data := range cases {
		require.NoError(t, Validate(data), "data %#v", data)
	}
}

func TestValidate_TrailingData(t *testing.T) {
	err := Validate([]byte{0x01, 0x00})
	require.ErrorIs(t, err, errs.ErrTrailingData)

	err = Validate([]byte{0x13, 0x08, 0x68, 0x69, 0xAA, 0xBB})
	require.ErrorIs(t, err, errs.ErrTrailingData)
}

func TestValidate_Truncated(t *testing.T) {
	err := Validate(nil)
	require.ErrorIs(t, err, errs.ErrInputExhausted)

	err = Validate([]byte{0x13, 0x08, 0x68})
	require.ErrorIs(t, err, errs.ErrInputExhausted)
}

func TestValidate_InvalidUTF8(t *testing.T) {
	// String holding 0xFF, a byte that never occurs in UTF-8.
	err := Validate([]byte{0x13, 0x04, 0xFF})
	require.ErrorIs(t, err, errs.ErrStringInvalidUTF8)

	// A valid multi-byte sequence passes.
	require.NoError(t, Validate([]byte{0x13, 0x08, 0xC3, 0xA9})) // "é"

	// Inside a list element.
	err = Validate([]byte{0x15, 0x10, 0x04, 0x13, 0x04, 0xFF})
	require.ErrorIs(t, err, errs.ErrStringInvalidUTF8)
}

func TestValidate_KindIsUnsupported(t *testing.T) {
	// Null with kind symbol "a": the wire bit is defined, the semantics
	// are not.
	err := Validate([]byte{0x41, 0x0C, 'a'})
	require.ErrorIs(t, err, errs.ErrUnsupportedFeature)
}

func TestValidate_TagErrors(t *testing.T) {
	// Declared pair count exceeds what the payload can hold.
	err := Validate([]byte{0x81, 0x04, 0x04})
	require.ErrorIs(t, err, errs.ErrTagsInvalidLength)

	// Trailing byte after the declared pairs.
	err = Validate([]byte{0x81, 0x08, 0x00, 0xEE})
	require.ErrorIs(t, err, errs.ErrTagsTrailingData)

	// Pair runs out of bytes mid-iteration.
	err = Validate([]byte{0x81, 0x14, 0x08, 0x0C, 'a', 0x01, 0x0C})
	require.ErrorIs(t, err, errs.ErrTagsInputExhausted)
}

func TestValidate_ListErrors(t *testing.T) {
	// Declared element count exceeds what the payload can hold.
	err := Validate([]byte{0x15, 0x08, 0x08, 0x01})
	require.ErrorIs(t, err, errs.ErrListInvalidLength)

	// Trailing byte after the declared elements.
	err = Validate([]byte{0x15, 0x0C, 0x04, 0x01, 0xEE})
	require.ErrorIs(t, err, errs.ErrListTrailingData)

	// Element runs out of bytes mid-iteration.
	err = Validate([]byte{0x15, 0x0C, 0x08, 0x04, 0x2A})
	require.ErrorIs(t, err, errs.ErrListInputExhausted)
}

func TestValidate_RecursesIntoTags(t *testing.T) {
	// {"a": <invalid utf8 string>}
	err := Validate([]byte{0x81, 0x18, 0x04, 0x0C, 'a', 0x13, 0x04, 0xFF})
	require.ErrorIs(t, err, errs.ErrStringInvalidUTF8)
}

func TestValidate_DepthLimit(t *testing.T) {
	v, err := NewValidator(WithMaxDepth(4))
	require.NoError(t, err)

	nested := func(depth int) []byte {
		enc, err := NewEncoder()
		require.NoError(t, err)
		defer enc.Finish()

		for range depth {
			enc.BeginList(1)
		}
		enc.AppendNull()
		for range depth {
			enc.EndList()
		}

		doc, err := enc.Build()
		require.NoError(t, err)

		return doc
	}

	// Null at depth 4: three lists + the leaf.
	require.NoError(t, v.Validate(nested(3)))

	// One level deeper exceeds the limit.
	require.ErrorIs(t, v.Validate(nested(4)), errs.ErrDepthExceeded)

	// The default validator copes with the same document.
	require.NoError(t, Validate(nested(4)))
}

func TestNewValidator_BadDepth(t *testing.T) {
	_, err := NewValidator(WithMaxDepth(0))
	require.ErrorIs(t, err, errs.ErrDepthExceeded)
}
