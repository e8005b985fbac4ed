package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/snappy"
)

// SnappyCompressor provides Snappy compression using the framing format.
//
// The frame format (rather than the raw block API) is used so output is
// self-describing and streamable; very small inputs therefore still pay the
// fixed stream-identifier overhead.
type SnappyCompressor struct{}

var _ Codec = (*SnappyCompressor)(nil)

// NewSnappyCompressor creates a new Snappy frame-format codec.
func NewSnappyCompressor() SnappyCompressor {
	return SnappyCompressor{}
}

// Name returns the constant algorithm name "snappy".
func (c SnappyCompressor) Name() string {
	return string(AlgorithmSnappy)
}

// Compress compresses the input data into a Snappy frame stream.
//
// The buffered writer holds the final chunk until Close, so the buffer is
// incomplete until the writer has been closed.
func (c SnappyCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := snappy.NewBufferedWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("snappy compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("snappy finalization failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a Snappy frame stream produced by Compress.
//
// Returns an error if the stream identifier is missing or a chunk checksum
// does not match.
func (c SnappyCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := io.ReadAll(snappy.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("snappy decompression failed: %w", err)
	}

	return decompressed, nil
}
