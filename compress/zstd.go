package compress

// ZstdCompressor provides Zstandard compression at an explicit level 1.
//
// The library default is level 3; level 1 is chosen deliberately so zstd is
// compared at a speed-oriented setting, matching the other codecs' fixed
// speed-first parameters.
//
// Two implementations exist behind build tags: a cgo binding when cgo is
// available, and a pure-Go implementation otherwise. Both honor the same
// level and round-trip contract.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec at level 1.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Name returns the constant algorithm name "zstd".
func (c ZstdCompressor) Name() string {
	return string(AlgorithmZstd)
}
