// Package bench drives every codec over the same input buffer and
// aggregates compression ratio and throughput statistics.
package bench

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/compbench/compress"
)

// DefaultIterations is the number of timed compress/decompress cycles run
// per codec when the caller does not specify one.
const DefaultIterations = 25

// Config describes a benchmark run.
type Config struct {
	// InputName labels the input in reports (typically the file path).
	InputName string

	// Input is the buffer fed to every codec. It is lent to each call and
	// never mutated.
	Input []byte

	// Iterations is the number of timed cycles per codec.
	// Zero or negative selects DefaultIterations.
	Iterations int

	// Codecs is the set to benchmark, in report order.
	// Empty selects all built-in codecs.
	Codecs []compress.Codec

	// Progress, if non-nil, is invoked after each completed iteration.
	// It lets the caller render a progress bar without this package
	// depending on one.
	Progress func(algorithm string, iteration int)
}

// Result holds the aggregated statistics for one codec.
type Result struct {
	Algorithm      string  // Codec reporting name
	InputSize      int     // Size of the input buffer in bytes
	CompressedSize int     // Size of the compressed output in bytes
	RatioPercent   float64 // 100 * compressed / input
	CompressMBps   float64 // Mean compression rate over all iterations
	DecompressMBps float64 // Mean decompression rate over all iterations
	Verified       bool    // Every iteration round-tripped exactly
}

// Run benchmarks every configured codec over the same input buffer.
//
// Each iteration times one compress call and one decompress call with the
// wall clock and verifies the round trip by comparing the xxHash64 of the
// decompressed output against the input's. Any codec error or round-trip
// mismatch aborts the run.
//
// Execution is single-threaded and sequential; results come back in codec
// order.
func Run(cfg Config) ([]Result, error) {
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	codecs := cfg.Codecs
	if len(codecs) == 0 {
		codecs = compress.Codecs()
	}

	inputHash := xxhash.Sum64(cfg.Input)

	results := make([]Result, 0, len(codecs))
	for _, codec := range codecs {
		result, err := runCodec(codec, cfg, iterations, inputHash)
		if err != nil {
			return nil, fmt.Errorf("benchmarking %s: %w", codec.Name(), err)
		}

		results = append(results, result)
	}

	return results, nil
}

func runCodec(codec compress.Codec, cfg Config, iterations int, inputHash uint64) (Result, error) {
	var compressRateSum, decompressRateSum float64
	var compressedSize int

	for i := 0; i < iterations; i++ {
		// One timed sample per iteration: create, measure, aggregate, discard.
		stats := compress.CompressionStats{
			Algorithm:    compress.Algorithm(codec.Name()),
			OriginalSize: int64(len(cfg.Input)),
		}

		start := time.Now()
		compressed, err := codec.Compress(cfg.Input)
		if err != nil {
			return Result{}, err
		}
		stats.CompressTime = time.Since(start)
		stats.CompressedSize = int64(len(compressed))

		start = time.Now()
		decompressed, err := codec.Decompress(compressed)
		if err != nil {
			return Result{}, err
		}
		stats.DecompressTime = time.Since(start)

		if xxhash.Sum64(decompressed) != inputHash {
			return Result{}, fmt.Errorf("round-trip mismatch on iteration %d", i+1)
		}

		compressRateSum += stats.CompressThroughputMBps()
		decompressRateSum += stats.DecompressThroughputMBps()
		compressedSize = int(stats.CompressedSize)

		if cfg.Progress != nil {
			cfg.Progress(codec.Name(), i+1)
		}
	}

	var ratio float64
	if len(cfg.Input) > 0 {
		ratio = 100.0 * float64(compressedSize) / float64(len(cfg.Input))
	}

	return Result{
		Algorithm:      codec.Name(),
		InputSize:      len(cfg.Input),
		CompressedSize: compressedSize,
		RatioPercent:   ratio,
		CompressMBps:   compressRateSum / float64(iterations),
		DecompressMBps: decompressRateSum / float64(iterations),
		Verified:       true,
	}, nil
}
