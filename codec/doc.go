// Package codec implements encoding, decoding and validation of udoc
// documents.
//
// # Decoding
//
// DecodeValue reads one value from a reader.Reader as a zero-copy Value
// view. Container payloads stay unparsed until iterated through the
// TagDecoder and ListDecoder, so structural traversal allocates nothing
// and touches only the bytes the caller asks for:
//
//	r := reader.New(data)
//	val, err := codec.DecodeValue(&r)
//	if err != nil {
//	    return err
//	}
//	if val.Type == wire.TypeList {
//	    list, _ := val.List()
//	    for elem := range list.All() {
//	        // ...
//	    }
//	    if err := list.CheckError(); err != nil {
//	        return err
//	    }
//	}
//
// # Encoding
//
// Encoder builds documents in a single forward pass. Sizes of nested
// containers are deferred: BeginSize reserves a fixed-width placeholder,
// EndSize back-patches it, and Build compacts the placeholders down to
// minimal-width sizes in one linear pass. The emission helpers
// (AppendString, BeginList, BeginMap, ...) cover the common tree shapes:
//
//	enc, _ := codec.NewEncoder()
//	defer enc.Finish()
//	enc.BeginMap(1)
//	enc.AppendKey([]byte("answer"))
//	enc.AppendNat8(42)
//	enc.EndMap()
//	doc, err := enc.Build()
//
// # Validation
//
// Validate walks a buffer end-to-end, enforcing exhaustive consumption of
// every container, UTF-8 validity of String payloads, a nesting depth
// limit, and the absence of trailing bytes.
package codec
