package codec

import (
	"errors"
	"iter"

	"github.com/arloliu/udoc/encoding"
	"github.com/arloliu/udoc/errs"
	"github.com/arloliu/udoc/reader"
	"github.com/arloliu/udoc/wire"
)

// DecodeValue decodes one value from the reader, advancing the cursor past
// exactly the value's bytes.
//
// The returned Value is a zero-copy view into the reader's buffer. Tag and
// list payloads are skipped, not parsed; parsing is deferred to the
// TagDecoder and ListDecoder iterators.
func DecodeValue(r *reader.Reader) (Value, error) {
	header, err := r.Next()
	if err != nil {
		return Value{}, err
	}

	wireType, ok := wire.FromByte(header)
	if !ok {
		return Value{}, errs.ErrInvalidWireType
	}

	val := Value{
		Type:    wireType,
		HasKind: header&wire.FlagKind != 0,
		HasTags: header&wire.FlagTags != 0,
	}

	if val.HasKind {
		val.Kind, err = encoding.DecodeSymbol(r)
		if err != nil {
			return Value{}, err
		}
	}

	if val.HasTags {
		val.TagBytes, err = encoding.DecodeSizePrefixed(r)
		if err != nil {
			return Value{}, err
		}
	}

	val.payload, err = decodePayload(wireType, r)
	if err != nil {
		return Value{}, err
	}

	return val, nil
}

// decodePayload consumes the payload bytes for the given wire type and
// returns them as a zero-copy slice.
func decodePayload(t wire.Type, r *reader.Reader) ([]byte, error) {
	if width, fixed := t.FixedWidth(); fixed {
		if width == 0 {
			return nil, nil
		}

		return r.NextN(width)
	}

	if t == wire.TypeSymbol {
		return encoding.DecodeSymbol(r)
	}

	return encoding.DecodeSizePrefixed(r)
}

// decodeCountPrefixed reads the leading element count of a tag or list
// payload. An empty payload means zero elements; this also covers the
// compact single-0x00 form, which decodes as count zero with no inner
// bytes remaining.
func decodeCountPrefixed(payload []byte) (int, reader.Reader, error) {
	r := reader.New(payload)
	if r.Empty() {
		return 0, r, nil
	}

	count, err := encoding.DecodeSizeAsInt(&r)
	if err != nil {
		return 0, r, err
	}

	return count, r, nil
}

// TagDecoder iterates the (symbol, value) pairs of a tag payload.
//
// The decoder is lazy: each step decodes one symbol and one value from the
// payload. The first decode error latches and terminates iteration; after
// draining the iterator, call CheckError to observe the latched error or
// confirm clean exhaustion.
type TagDecoder struct {
	remaining int
	r         reader.Reader
	err       error
}

// NewTagDecoder constructs a TagDecoder over a raw tag payload.
//
// The payload's declared pair count is checked against the remaining
// bytes: each pair takes at least two bytes (a one-byte symbol length
// prefix and a one-byte value header), so a payload declaring more pairs
// than half its remaining bytes fails with errs.ErrTagsInvalidLength.
func NewTagDecoder(tags []byte) (*TagDecoder, error) {
	count, r, err := decodeCountPrefixed(tags)
	if err != nil {
		return nil, err
	}
	// Phrased as a division so a hostile count near the int ceiling
	// cannot overflow the comparison.
	if count > r.Remaining()/2 {
		return nil, errs.ErrTagsInvalidLength
	}

	return &TagDecoder{remaining: count, r: r}, nil
}

// Len returns the number of pairs not yet yielded.
func (d *TagDecoder) Len() int {
	return d.remaining
}

// Next decodes and returns the next (symbol, value) pair.
// It returns ok == false when the pairs are exhausted or an error latched.
func (d *TagDecoder) Next() (symbol []byte, val Value, ok bool) {
	if d.err != nil || d.remaining == 0 {
		return nil, Value{}, false
	}

	symbol, d.err = encoding.DecodeSymbol(&d.r)
	if d.err != nil {
		return nil, Value{}, false
	}

	val, d.err = DecodeValue(&d.r)
	if d.err != nil {
		return nil, Value{}, false
	}

	d.remaining--

	return symbol, val, true
}

// All returns an iterator over the remaining (symbol, value) pairs.
// Iteration stops at exhaustion or at the first decode error; the error is
// observed via CheckError afterwards.
func (d *TagDecoder) All() iter.Seq2[[]byte, Value] {
	return func(yield func([]byte, Value) bool) {
		for {
			symbol, val, ok := d.Next()
			if !ok {
				return
			}
			if !yield(symbol, val) {
				return
			}
		}
	}
}

// CheckError reports the latched decode error, or confirms that the
// declared pair count was consumed exactly.
//
// A latched input exhaustion maps to errs.ErrTagsInputExhausted. An
// undershot count (iteration stopped early) reports the same; leftover
// bytes after the declared count report errs.ErrTagsTrailingData.
func (d *TagDecoder) CheckError() error {
	if d.err != nil {
		if errors.Is(d.err, errs.ErrInputExhausted) {
			return errs.ErrTagsInputExhausted
		}

		return d.err
	}
	if d.remaining != 0 {
		return errs.ErrTagsInputExhausted
	}
	if d.r.HasSome() {
		return errs.ErrTagsTrailingData
	}

	return nil
}

// ListDecoder iterates the element values of a list payload.
//
// Like TagDecoder it is lazy and latches its first decode error; drain the
// iterator and call CheckError to observe it.
type ListDecoder struct {
	remaining int
	r         reader.Reader
	err       error
}

// NewListDecoder constructs a ListDecoder over a raw list payload.
//
// Each element takes at least one byte (its header), so a payload
// declaring more elements than its remaining bytes fails with
// errs.ErrListInvalidLength.
func NewListDecoder(payload []byte) (*ListDecoder, error) {
	count, r, err := decodeCountPrefixed(payload)
	if err != nil {
		return nil, err
	}
	if count > r.Remaining() {
		return nil, errs.ErrListInvalidLength
	}

	return &ListDecoder{remaining: count, r: r}, nil
}

// Len returns the number of elements not yet yielded.
func (d *ListDecoder) Len() int {
	return d.remaining
}

// Next decodes and returns the next element.
// It returns ok == false when the elements are exhausted or an error latched.
func (d *ListDecoder) Next() (val Value, ok bool) {
	if d.err != nil || d.remaining == 0 {
		return Value{}, false
	}

	val, d.err = DecodeValue(&d.r)
	if d.err != nil {
		return Value{}, false
	}

	d.remaining--

	return val, true
}

// All returns an iterator over the remaining elements.
// Iteration stops at exhaustion or at the first decode error; the error is
// observed via CheckError afterwards.
func (d *ListDecoder) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for {
			val, ok := d.Next()
			if !ok {
				return
			}
			if !yield(val) {
				return
			}
		}
	}
}

// CheckError reports the latched decode error, or confirms that the
// declared element count was consumed exactly.
func (d *ListDecoder) CheckError() error {
	if d.err != nil {
		if errors.Is(d.err, errs.ErrInputExhausted) {
			return errs.ErrListInputExhausted
		}

		return d.err
	}
	if d.remaining != 0 {
		return errs.ErrListInputExhausted
	}
	if d.r.HasSome() {
		return errs.ErrListTrailingData
	}

	return nil
}
