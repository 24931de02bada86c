package codec

import (
	"github.com/arloliu/udoc/encoding"
	"github.com/arloliu/udoc/errs"
	"github.com/arloliu/udoc/internal/pool"
	"github.com/arloliu/udoc/reader"
)

// sizer tracks one open size scope: where its placeholder lives in the
// working buffer and how many logical bytes the scope has accumulated.
type sizer struct {
	offset int
	size   int
}

// Encoder builds udoc documents append-style with nestable size scopes.
//
// A size scope reserves a fixed-width placeholder in the working buffer;
// EndSize back-patches it with the scope's true size. In size-compression
// mode the placeholders keep their minimal encoding plus zero padding, and
// Build removes the padding in a single linear pass driven by a log of
// placeholder offsets. With compression disabled the placeholder is
// patched with the size encoded at the full placeholder width, so the
// buffer is returned verbatim.
//
// A size that cannot be encoded, or that does not fit the configured
// placeholder width, latches an overflow; building continues and the error
// surfaces at Build or AppendTo.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be
// used by a single goroutine at a time.
//
// Note: The Encoder is NOT reusable. After calling Finish, a new encoder
// must be created for further encoding.
type Encoder struct {
	buf     *pool.ByteBuffer
	offsets *pool.ByteBuffer

	sizers         []sizer
	lastSizeOffset int

	sizeMaxBytes  int
	compressSizes bool
	sizeOverflow  bool

	containers []bool // open BeginList/BeginMap scopes; true when non-empty
}

// NewEncoder creates an Encoder.
//
// The defaults are an 8-byte placeholder width and size compression
// enabled; see WithSizeWidth and WithSizeCompression.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		buf:           pool.GetDocBuffer(),
		offsets:       pool.GetScratchBuffer(),
		sizers:        make([]sizer, 1, 8),
		sizeMaxBytes:  defaultSizeWidth,
		compressSizes: true,
	}

	if err := applyEncoderOptions(e, opts...); err != nil {
		e.Finish()
		return nil, err
	}

	return e, nil
}

// commitSize credits the current scope with n logical bytes.
func (e *Encoder) commitSize(n int) {
	e.sizers[len(e.sizers)-1].size += n
}

// Append pushes raw bytes into the current scope.
func (e *Encoder) Append(bytes []byte) {
	if e.buf == nil {
		panic("encoder already finished - cannot append after Finish()")
	}

	e.buf.MustWrite(bytes)
	e.commitSize(len(bytes))
}

// AppendByte pushes a single raw byte into the current scope.
func (e *Encoder) AppendByte(b byte) {
	if e.buf == nil {
		panic("encoder already finished - cannot append after Finish()")
	}

	e.buf.MustWriteByte(b)
	e.commitSize(1)
}

// AppendSize appends a standalone variable-width size.
// A value above encoding.MaxSize latches an overflow.
func (e *Encoder) AppendSize(value uint64) {
	buf, n, err := encoding.EncodeSize(value)
	if err != nil {
		e.sizeOverflow = true
		return
	}

	e.Append(buf[:n])
}

// AppendSymbol appends a symbol: its tag-biased length prefix followed by
// the raw bytes. An oversized symbol latches an overflow.
func (e *Encoder) AppendSymbol(symbol []byte) {
	buf, n, err := encoding.EncodeSymbolLength(uint64(len(symbol)))
	if err != nil {
		e.sizeOverflow = true
		return
	}

	e.Append(buf[:n])
	e.Append(symbol)
}

// BeginSize opens a size scope at the current position.
//
// A placeholder of the configured width is reserved in the working buffer
// and, in compression mode, its offset delta is recorded in the offsets
// log for the terminal compaction pass.
func (e *Encoder) BeginSize() {
	if e.buf == nil {
		panic("encoder already finished - cannot open scope after Finish()")
	}

	offset := e.buf.Len()
	e.buf.ExtendOrGrow(e.sizeMaxBytes)
	clear(e.buf.B[offset:])
	e.sizers = append(e.sizers, sizer{offset: offset})

	if e.compressSizes {
		delta, n, err := encoding.EncodeSize(uint64(offset - e.lastSizeOffset))
		if err != nil {
			// Buffer offsets are bounded by memory, far below the 62-bit
			// size ceiling.
			panic("udoc: placeholder offset not encodable")
		}
		e.offsets.MustWrite(delta[:n])
		e.lastSizeOffset = offset
	}
}

// EndSize closes the innermost size scope and back-patches its placeholder.
//
// In compression mode the placeholder receives the minimal size encoding
// padded with zeros; otherwise it receives the size encoded at the full
// placeholder width. A size whose minimal encoding exceeds the placeholder
// width latches an overflow.
func (e *Encoder) EndSize() {
	if len(e.sizers) < 2 {
		panic("EndSize without matching BeginSize")
	}

	top := e.sizers[len(e.sizers)-1]
	e.sizers = e.sizers[:len(e.sizers)-1]

	buf, n, err := encoding.EncodeSize(uint64(top.size))
	if err != nil || n > e.sizeMaxBytes {
		e.sizeOverflow = true
		n = e.sizeMaxBytes
	}

	if !e.compressSizes {
		// Pad-preserving buffers are read back directly, so the size must
		// occupy the whole placeholder: re-encode at the forced width.
		buf = encodeSizeForced(uint64(top.size), e.sizeMaxBytes)
	}
	copy(e.buf.B[top.offset:top.offset+e.sizeMaxBytes], buf[:e.sizeMaxBytes])

	if e.compressSizes {
		e.commitSize(n + top.size)
	} else {
		e.commitSize(e.sizeMaxBytes + top.size)
	}
}

// encodeSizeForced encodes value at exactly the given width, using the
// class tag of that width instead of the minimal one. The caller
// guarantees the value fits.
func encodeSizeForced(value uint64, width int) [8]byte {
	var class uint64
	switch width {
	case 1:
		class = 0b00
	case 2:
		class = 0b01
	case 4:
		class = 0b10
	case 8:
		class = 0b11
	}

	var buf [8]byte
	engine.PutUint64(buf[:], value<<2|class)

	return buf
}

// Size returns the logical size of the finished document: the byte length
// Build will produce. All size scopes must be closed.
func (e *Encoder) Size() int {
	if len(e.sizers) != 1 {
		panic("Size with open size scopes")
	}

	return e.sizers[0].size
}

// Build returns the finished document.
//
// It fails with errs.ErrSizeOverflow if any size latched an overflow. The
// returned slice is freshly allocated and owned by the caller.
func (e *Encoder) Build() ([]byte, error) {
	return e.AppendTo(make([]byte, 0, e.Size()))
}

// AppendTo appends the finished document to dst and returns the extended
// slice. It fails with errs.ErrSizeOverflow if any size latched an
// overflow.
func (e *Encoder) AppendTo(dst []byte) ([]byte, error) {
	size := e.Size() // panics if scopes remain open
	if e.sizeOverflow {
		return dst, errs.ErrSizeOverflow
	}

	if !e.compressSizes {
		return append(dst, e.buf.Bytes()...), nil
	}

	oldLen := len(dst)
	dst = e.compact(dst)
	if len(dst)-oldLen != size {
		panic("udoc: compacted output does not match committed size")
	}

	return dst, nil
}

// compact copies the working buffer to dst, replacing each fixed-width
// placeholder with its minimal size encoding. The two streams — working
// buffer and offsets log — are walked once, in step.
func (e *Encoder) compact(dst []byte) []byte {
	bufr := reader.New(e.buf.Bytes())
	offr := reader.New(e.offsets.Bytes())

	first := true
	for bufr.HasSome() {
		if offr.Empty() {
			// No placeholders left; the rest is plain content.
			dst = append(dst, bufr.Rest()...)
			break
		}

		delta, err := encoding.DecodeSizeAsInt(&offr)
		if err != nil {
			panic("udoc: corrupt size offsets log")
		}

		// The logged delta spans from the previous placeholder's start, so
		// after the first hop it over-counts by the placeholder bytes that
		// were already consumed.
		gap := delta
		if first {
			first = false
		} else {
			gap = delta - e.sizeMaxBytes
		}

		content, err := bufr.NextN(gap)
		if err != nil {
			panic("udoc: size offset past end of buffer")
		}
		dst = append(dst, content...)

		_, width, err := encoding.PeekSize(&bufr)
		if err != nil {
			panic("udoc: unreadable size placeholder")
		}
		head, _ := bufr.PeekN(width)
		dst = append(dst, head...)
		if _, err := bufr.NextN(e.sizeMaxBytes); err != nil {
			panic("udoc: truncated size placeholder")
		}
	}

	return dst
}

// Finish returns the encoder's buffers to their pools.
//
// After calling Finish the encoder is no longer usable; any subsequent
// append or build panics. Use defer to ensure buffers are returned even on
// error paths:
//
//	enc, _ := codec.NewEncoder()
//	defer enc.Finish()
func (e *Encoder) Finish() {
	if e.buf != nil {
		pool.PutDocBuffer(e.buf)
		e.buf = nil
	}
	if e.offsets != nil {
		pool.PutScratchBuffer(e.offsets)
		e.offsets = nil
	}
	e.sizers = nil
	e.containers = nil
}
