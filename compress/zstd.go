package compress

// ZstdCompressor provides Zstandard compression for udoc document payloads.
//
// Zstd favors compression ratio over speed, making it a good fit for
// documents that are stored or transmitted more often than they are built:
// archival, network transfer, caches with long retention.
//
// The implementation is selected at build time: cgo builds bind to
// valyala/gozstd, pure-Go builds use klauspost/compress/zstd. Both emit
// standard Zstandard frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
