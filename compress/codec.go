package compress

import "fmt"

// Algorithm identifies a compression algorithm by its stable reporting name.
//
// The name is the string printed in benchmark reports and accepted on the
// command line; it never changes between releases.
type Algorithm string

const (
	AlgorithmNone   Algorithm = "none"   // AlgorithmNone is the passthrough baseline.
	AlgorithmBrotli Algorithm = "brotli" // AlgorithmBrotli is Brotli at quality 0.
	AlgorithmGzip   Algorithm = "gzip"   // AlgorithmGzip is gzip/DEFLATE at the default level.
	AlgorithmLZ4    Algorithm = "lz4"    // AlgorithmLZ4 is LZ4 block format with a size prefix.
	AlgorithmSnappy Algorithm = "snappy" // AlgorithmSnappy is Snappy frame format.
	AlgorithmZstd   Algorithm = "zstd"   // AlgorithmZstd is Zstandard at level 1.
)

func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm converts a user-supplied algorithm name into an Algorithm.
//
// Returns:
//   - Algorithm: Parsed algorithm on success
//   - error: Unknown algorithm name error
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(s); a {
	case AlgorithmNone, AlgorithmBrotli, AlgorithmGzip, AlgorithmLZ4, AlgorithmSnappy, AlgorithmZstd:
		return a, nil
	default:
		return "", fmt.Errorf("unknown compression algorithm: %q", s)
	}
}

// Compressor compresses a byte buffer in a single call.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified or retained beyond the call
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// A zero-length input compresses to a zero-length result. The output,
	// when passed to Decompress on the same codec, yields back exactly the
	// input.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// This interface mirrors the Compressor interface but focuses on the
// decompression operation. Separate interfaces allow for asymmetric
// implementations where compression and decompression have different
// performance characteristics.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must have been produced by the same algorithm's Compress.
	// Codecs are permitted, but not required, to detect corrupted or
	// truncated input and return an error; behavior on arbitrary input is
	// otherwise implementation-defined.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression with a stable identity.
//
// All built-in codecs are stateless values and safe for concurrent use
// across independent inputs; instances may be reused or created fresh per
// call interchangeably.
type Codec interface {
	Compressor
	Decompressor

	// Name returns the constant algorithm name used for reporting.
	Name() string
}

// CreateCodec is a factory function that creates a Codec for the specified algorithm.
//
// Parameters:
//   - algorithm: Algorithm to instantiate
//
// Returns:
//   - Codec: Codec instance for the algorithm
//   - error: Unknown algorithm error
func CreateCodec(algorithm Algorithm) (Codec, error) {
	switch algorithm {
	case AlgorithmNone:
		return NewNoOpCompressor(), nil
	case AlgorithmBrotli:
		return NewBrotliCompressor(), nil
	case AlgorithmGzip:
		return NewGzipCompressor(), nil
	case AlgorithmLZ4:
		return NewLZ4Compressor(), nil
	case AlgorithmSnappy:
		return NewSnappyCompressor(), nil
	case AlgorithmZstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %s", algorithm)
	}
}

var builtinCodecs = map[Algorithm]Codec{
	AlgorithmNone:   NewNoOpCompressor(),
	AlgorithmBrotli: NewBrotliCompressor(),
	AlgorithmGzip:   NewGzipCompressor(),
	AlgorithmLZ4:    NewLZ4Compressor(),
	AlgorithmSnappy: NewSnappyCompressor(),
	AlgorithmZstd:   NewZstdCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified algorithm.
func GetCodec(algorithm Algorithm) (Codec, error) {
	if codec, ok := builtinCodecs[algorithm]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression algorithm: %s", algorithm)
}

// codecOrder is the stable display order used by benchmark reports.
var codecOrder = []Algorithm{
	AlgorithmBrotli,
	AlgorithmGzip,
	AlgorithmLZ4,
	AlgorithmSnappy,
	AlgorithmZstd,
	AlgorithmNone,
}

// Codecs returns every built-in codec in stable display order.
//
// The passthrough codec is last so benchmark output ends with the zero-cost
// reference row.
func Codecs() []Codec {
	codecs := make([]Codec, 0, len(codecOrder))
	for _, algorithm := range codecOrder {
		codecs = append(codecs, builtinCodecs[algorithm])
	}

	return codecs
}
