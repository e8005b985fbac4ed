package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCompressor provides gzip (DEFLATE) compression at the library's default level.
//
// Gzip is the slowest codec in this package but the most universally readable:
// its output can be consumed by any standard gzip tool. The default level is
// kept deliberately so the comparison reflects what most callers get out of
// the box.
type GzipCompressor struct{}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a new gzip codec with the default compression level.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Name returns the constant algorithm name "gzip".
func (c GzipCompressor) Name() string {
	return string(AlgorithmGzip)
}

// Compress compresses the input data into a complete gzip stream.
//
// The stream trailer is only written on Close, so the buffer is not valid
// gzip until the writer has been closed.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip finalization failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a gzip stream produced by Compress.
//
// Returns an error if the stream header is malformed or the payload is
// corrupted (gzip validates its CRC32 trailer).
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	defer r.Close()

	decompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return decompressed, nil
}
