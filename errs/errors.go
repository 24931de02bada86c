// Package errs defines the sentinel errors shared across udoc packages.
//
// All errors are plain sentinels so callers can match them with errors.Is
// even when call sites wrap them with additional context via fmt.Errorf
// and the %w verb.
package errs

import "errors"

// Reader and size codec errors.
var (
	// ErrInputExhausted is returned when a read requires more bytes than remain
	// in the source buffer.
	ErrInputExhausted = errors.New("input exhausted")

	// ErrTrailingData is returned when a top-level decode or validation finishes
	// with unconsumed bytes left in the buffer.
	ErrTrailingData = errors.New("trailing data after value")

	// ErrSizeTooLarge is returned when a decoded size does not fit in int on the
	// host platform.
	ErrSizeTooLarge = errors.New("decoded size exceeds int range")

	// ErrSizeOverflow is returned when a size cannot be encoded: either the value
	// exceeds the 62-bit ceiling of the size encoding, or a size scope's final
	// size does not fit in the encoder's configured placeholder width.
	ErrSizeOverflow = errors.New("size overflow")

	// ErrInvalidSizeWidth is returned when an encoder is configured with a
	// placeholder width other than 1, 2, 4 or 8 bytes.
	ErrInvalidSizeWidth = errors.New("size width must be 1, 2, 4 or 8")
)

// Value decoder errors.
var (
	// ErrInvalidWireType is returned when a header byte carries a wire type code
	// outside the valid range.
	ErrInvalidWireType = errors.New("invalid wire type")

	// ErrReservedSymbol is returned when a symbol length prefix has the reserved
	// low bit clear. The inline-bytes form is the only defined symbol encoding.
	ErrReservedSymbol = errors.New("reserved symbol encoding")

	// ErrStringInvalidUTF8 is returned when a String payload is not valid UTF-8.
	ErrStringInvalidUTF8 = errors.New("string payload is not valid UTF-8")

	// ErrUnsupportedFeature is returned when a value uses the reserved kind
	// discriminant. The wire bit is defined but its semantics are not.
	ErrUnsupportedFeature = errors.New("unsupported feature")

	// ErrDepthExceeded is returned when a document nests deeper than the
	// validator's configured maximum depth.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")
)

// Tag decoder errors.
var (
	// ErrTagsInvalidLength is returned when a tag payload declares more pairs
	// than its remaining bytes could possibly hold.
	ErrTagsInvalidLength = errors.New("tag count exceeds payload length")

	// ErrTagsInputExhausted is returned when tag iteration stops before the
	// declared pair count is reached.
	ErrTagsInputExhausted = errors.New("tag payload exhausted before count")

	// ErrTagsTrailingData is returned when bytes remain in a tag payload after
	// the declared pair count has been consumed.
	ErrTagsTrailingData = errors.New("trailing data in tag payload")
)

// List decoder errors.
var (
	// ErrListInvalidLength is returned when a list payload declares more
	// elements than its remaining bytes could possibly hold.
	ErrListInvalidLength = errors.New("list count exceeds payload length")

	// ErrListInputExhausted is returned when list iteration stops before the
	// declared element count is reached.
	ErrListInputExhausted = errors.New("list payload exhausted before count")

	// ErrListTrailingData is returned when bytes remain in a list payload after
	// the declared element count has been consumed.
	ErrListTrailingData = errors.New("trailing data in list payload")
)

// Envelope errors.
var (
	// ErrInvalidHeaderSize is returned when an envelope buffer is shorter than
	// the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid envelope header size")

	// ErrInvalidMagicNumber is returned when an envelope header does not carry
	// the udoc magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags is returned when an envelope header carries flag
	// bits or field values outside the defined set.
	ErrInvalidHeaderFlags = errors.New("invalid envelope header flags")

	// ErrInvalidPayloadSize is returned when a decompressed envelope payload
	// does not match the size recorded in the header.
	ErrInvalidPayloadSize = errors.New("payload size mismatch")

	// ErrChecksumMismatch is returned when an envelope payload fails checksum
	// verification.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)
