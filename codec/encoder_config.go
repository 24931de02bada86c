package codec

import (
	"github.com/arloliu/udoc/errs"
	"github.com/arloliu/udoc/internal/options"
)

// defaultSizeWidth is the default placeholder width. Eight bytes can hold
// any encodable size, trading padding (removed by compaction) for the
// guarantee that no scope overflows.
const defaultSizeWidth = 8

// EncoderOption represents a functional option for configuring the Encoder.
type EncoderOption = options.Option[*Encoder]

// applyEncoderOptions applies the options to a freshly constructed encoder.
func applyEncoderOptions(e *Encoder, opts ...EncoderOption) error {
	return options.Apply(e, opts...)
}

// WithSizeWidth sets the placeholder width for size scopes.
//
// The width must be 1, 2, 4 or 8 bytes. Narrow widths save working-buffer
// space when every scope is known to be small, but a scope whose size does
// not fit latches an overflow that fails Build.
func WithSizeWidth(width int) EncoderOption {
	return options.New(func(e *Encoder) error {
		switch width {
		case 1, 2, 4, 8:
			e.sizeMaxBytes = width
			return nil
		default:
			return errs.ErrInvalidSizeWidth
		}
	})
}

// WithSizeCompression enables or disables the terminal compaction pass.
//
// With compression enabled (the default) Build removes placeholder padding
// using the offsets log, producing minimal-width sizes. With compression
// disabled the working buffer is returned verbatim: sizes occupy the full
// placeholder width, which is wasteful but allows handing the buffer off
// without a final pass.
func WithSizeCompression(enabled bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.compressSizes = enabled
	})
}
