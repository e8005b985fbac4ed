package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

const (
	// brotliQuality 0 favors speed over ratio so Brotli competes on the same
	// speed-oriented footing as the other codecs.
	brotliQuality = 0
	// brotliWindowBits is the log2 of the sliding window size (1 MiB).
	brotliWindowBits = 20
)

// BrotliCompressor provides Brotli compression at quality 0 with a 20-bit window.
type BrotliCompressor struct{}

var _ Codec = (*BrotliCompressor)(nil)

// NewBrotliCompressor creates a new Brotli codec with the fixed speed-oriented settings.
func NewBrotliCompressor() BrotliCompressor {
	return BrotliCompressor{}
}

// Name returns the constant algorithm name "brotli".
func (c BrotliCompressor) Name() string {
	return string(AlgorithmBrotli)
}

// Compress compresses the input data into a Brotli stream.
//
// The encoder buffers internally, so the stream is only complete after Close.
func (c BrotliCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := brotli.NewWriterOptions(&buf, brotli.WriterOptions{
		Quality: brotliQuality,
		LGWin:   brotliWindowBits,
	})
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("brotli compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("brotli finalization failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a Brotli stream produced by Compress.
func (c BrotliCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("brotli decompression failed: %w", err)
	}

	return decompressed, nil
}
