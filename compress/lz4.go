package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

const (
	// lz4HeaderSize is the length of the little-endian uncompressed-size
	// prefix stored before the LZ4 block.
	lz4HeaderSize = 4

	// lz4MaxDecompressedSize caps both the input Compress accepts and the
	// size a header may declare on decode. A larger declared value
	// indicates corrupted data or an unreasonable compression ratio.
	lz4MaxDecompressedSize = 128 * 1024 * 1024
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression with a size-prefixed framing.
//
// The block API does not record the uncompressed size, so Compress prepends
// it as a 4-byte little-endian header. Decompress reads the header to
// pre-size the output buffer exactly; the header is this codec's own
// contract and is never exposed to callers.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Name returns the constant algorithm name "lz4".
func (c LZ4Compressor) Name() string {
	return string(AlgorithmLZ4)
}

// Compress compresses the input data into a size-prefixed LZ4 block.
//
// CompressBlock may emit an expanded literal block when the input is
// incompressible; any block that fails to shrink the input is discarded and
// the payload is stored raw after the header instead. A kept compressed
// block is therefore always strictly smaller than the original, so a stored
// payload is recognized on decode by its length matching the header exactly.
//
// Input larger than the decode-side size limit is rejected up front so the
// failure surfaces on the encode side rather than producing output that can
// never decompress.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) > lz4MaxDecompressedSize {
		return nil, fmt.Errorf("lz4: input of %d bytes exceeds %d byte limit", len(data), lz4MaxDecompressedSize)
	}

	dst := make([]byte, lz4HeaderSize+lz4.CompressBlockBound(len(data)))
	binary.LittleEndian.PutUint32(dst, uint32(len(data)))

	// Get compressor from pool
	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[lz4HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if n == 0 || n >= len(data) {
		// Empty or expanded block: incompressible, store raw.
		n = copy(dst[lz4HeaderSize:], data)
	}

	return dst[:lz4HeaderSize+n], nil
}

// Decompress decompresses a size-prefixed LZ4 block produced by Compress.
//
// The only documented failure modes are a missing or corrupted size header
// and a payload that does not decode to the declared size.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < lz4HeaderSize {
		return nil, fmt.Errorf("lz4: truncated size header: got %d bytes, need %d", len(data), lz4HeaderSize)
	}

	size := binary.LittleEndian.Uint32(data)
	if size > lz4MaxDecompressedSize {
		return nil, fmt.Errorf("lz4: declared size %d exceeds %d byte limit", size, lz4MaxDecompressedSize)
	}

	payload := data[lz4HeaderSize:]
	if len(payload) == int(size) {
		// Stored raw by Compress because the input was incompressible.
		decompressed := make([]byte, size)
		copy(decompressed, payload)

		return decompressed, nil
	}
	if len(payload) > int(size) {
		return nil, fmt.Errorf("lz4: payload of %d bytes exceeds declared size %d", len(payload), size)
	}

	decompressed := make([]byte, size)
	n, err := lz4.UncompressBlock(payload, decompressed)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if n != int(size) {
		return nil, fmt.Errorf("lz4: decompressed %d bytes, header declared %d", n, size)
	}

	return decompressed[:n], nil
}
