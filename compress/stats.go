package compress

import "time"

const bytesPerMiB = 1024 * 1024

// CompressionStats captures the sizes and wall-clock timings of one
// compress/decompress round trip.
//
// This is useful for monitoring and for the benchmark driver, which
// aggregates these samples into rate and ratio statistics.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm Algorithm

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressTime is the time taken to compress the data
	CompressTime time.Duration

	// DecompressTime is the time taken to decompress the data (if applicable)
	DecompressTime time.Duration
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
// Values greater than 1.0 indicate compression overhead (common for
// incompressible input).
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
//
// Higher values indicate better compression.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CompressThroughputMBps returns the compression rate in MiB of input
// processed per second (0.0 if no time was recorded).
func (s CompressionStats) CompressThroughputMBps() float64 {
	return throughputMBps(s.OriginalSize, s.CompressTime)
}

// DecompressThroughputMBps returns the decompression rate in MiB of output
// produced per second (0.0 if no time was recorded).
func (s CompressionStats) DecompressThroughputMBps() float64 {
	return throughputMBps(s.OriginalSize, s.DecompressTime)
}

func throughputMBps(size int64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0.0
	}

	return float64(size) / bytesPerMiB / elapsed.Seconds()
}
