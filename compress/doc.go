// Package compress provides compression and decompression codecs for udoc
// document payloads.
//
// Compression is optional and applied at the envelope level: a finished
// document is compressed as a whole before being framed, and decompressed
// after the envelope header is verified. Four codecs are supported:
//
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// The Zstd codec has two implementations selected at build time: a cgo
// binding (valyala/gozstd) when cgo is available, and a pure-Go fallback
// (klauspost/compress/zstd) otherwise. Both produce standard Zstandard
// frames and interoperate freely.
//
// All codecs are stateless values and safe for concurrent use; pooled
// internal buffers are managed per call.
package compress
