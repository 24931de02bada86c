// Package udoc provides a self-describing, length-prefixed binary format
// for tree-structured documents, with zero-copy decoding over a contiguous
// byte slice.
//
// A udoc value is a one-byte header (wire type plus optional metadata
// flags) followed by a typed payload. Containers carry their byte size up
// front, so a decoder can skip any subtree without parsing it, and the
// decoder returns borrowed views into the source buffer instead of
// allocating. The encoder builds documents in a single forward pass using
// deferred sizes: container sizes are back-patched into fixed-width
// placeholders and compacted to minimal width when the document is built.
//
// # Basic Usage
//
// Encoding a document:
//
//	enc, _ := udoc.NewEncoder()
//	defer enc.Finish()
//
//	enc.BeginMap(2)
//	enc.AppendKey([]byte("name"))
//	enc.AppendString("udoc")
//	enc.AppendKey([]byte("tags"))
//	enc.BeginList(2)
//	enc.AppendString("fast")
//	enc.AppendString("small")
//	enc.EndList()
//	enc.EndMap()
//
//	doc, err := enc.Build()
//
// Decoding it back:
//
//	val, _ := udoc.Decode(doc)
//	tags, _ := val.Tags()
//	for key, field := range tags.All() {
//	    fmt.Printf("%s = %v\n", key, field.Type)
//	}
//	if err := tags.CheckError(); err != nil {
//	    return err
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package, simplifying the most common use cases. For fine-grained
// control, use the codec, reader, encoding and wire packages directly.
// The envelope package frames finished documents with a checksummed,
// optionally compressed container for storage and transport.
package udoc

import (
	"github.com/arloliu/udoc/codec"
	"github.com/arloliu/udoc/errs"
	"github.com/arloliu/udoc/reader"
)

// Value is a zero-copy view of one decoded value.
type Value = codec.Value

// Encoder builds udoc documents append-style with deferred sizes.
type Encoder = codec.Encoder

// EncoderOption configures NewEncoder.
type EncoderOption = codec.EncoderOption

// TagDecoder iterates the (symbol, value) pairs of a tag payload.
type TagDecoder = codec.TagDecoder

// ListDecoder iterates the element values of a list payload.
type ListDecoder = codec.ListDecoder

// NewEncoder creates an Encoder with the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	return codec.NewEncoder(opts...)
}

// Decode decodes the single top-level value of a document.
//
// The buffer must contain exactly one value; leftover bytes fail with
// errs.ErrTrailingData. The returned Value borrows the buffer.
func Decode(data []byte) (Value, error) {
	r := reader.New(data)

	val, err := codec.DecodeValue(&r)
	if err != nil {
		return Value{}, err
	}
	if r.HasSome() {
		return Value{}, errs.ErrTrailingData
	}

	return val, nil
}

// Validate checks that data is a well-formed document end-to-end,
// including exhaustive container consumption and UTF-8 validity of
// string payloads.
func Validate(data []byte) error {
	return codec.Validate(data)
}
