// Command compbench benchmarks general-purpose compression algorithms
// against a file, or applies a single algorithm in one shot.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "compbench",
	Short: "Benchmark and apply general-purpose compression algorithms",
	Long: `compbench measures the compression ratio and throughput of several
byte-stream compression algorithms (brotli, gzip, lz4, snappy, zstd) against
a file, or performs a one-shot compress/decompress with a selected algorithm.

The input file is read fully into memory before any operation runs. Result
bytes go to stdout; logs and progress go to stderr.`,
	SilenceUsage: true,
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
