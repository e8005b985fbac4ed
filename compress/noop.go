package compress

// NoOpCompressor provides a no-operation codec that passes data through unchanged.
//
// This codec is useful for:
//   - Baseline rows in benchmark reports (measures harness overhead, not compression)
//   - Scenarios where the data is already compressed or not suitable for compression
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation codec that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Name returns the constant algorithm name "none".
func (c NoOpCompressor) Name() string {
	return string(AlgorithmNone)
}

// Compress bypasses compression and returns the input data directly without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if they
// plan to use the returned slice.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress bypasses decompression and returns the input data directly without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
