package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/arloliu/compbench/compress"
	"github.com/arloliu/compbench/internal/bench"
	"github.com/arloliu/compbench/internal/fileio"
)

var (
	flagBenchFile       string
	flagBenchIterations int
	flagBenchBase64     bool
	flagBenchAlgorithm  string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure compression ratio and throughput for every algorithm",
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().StringVarP(&flagBenchFile, "file", "f", "",
		"path to the input file")

	benchCmd.Flags().IntVarP(&flagBenchIterations, "iterations", "n", bench.DefaultIterations,
		"timed iterations per algorithm")

	benchCmd.Flags().BoolVar(&flagBenchBase64, "base64", false,
		"treat the input file as base64-encoded")

	benchCmd.Flags().StringVarP(&flagBenchAlgorithm, "algorithm", "a", "",
		"benchmark a single algorithm instead of all")

	_ = benchCmd.MarkFlagRequired("file")
}

func runBench(cmd *cobra.Command, args []string) error {
	input, err := fileio.ReadInput(flagBenchFile, flagBenchBase64)
	if err != nil {
		return err
	}

	if flagBenchIterations <= 0 {
		flagBenchIterations = bench.DefaultIterations
	}

	codecs := compress.Codecs()
	if flagBenchAlgorithm != "" {
		algorithm, err := compress.ParseAlgorithm(flagBenchAlgorithm)
		if err != nil {
			return err
		}
		codec, err := compress.CreateCodec(algorithm)
		if err != nil {
			return err
		}
		codecs = []compress.Codec{codec}
	}

	log.Info().
		Str("file", flagBenchFile).
		Int("size", len(input)).
		Int("iterations", flagBenchIterations).
		Int("algorithms", len(codecs)).
		Msg("starting benchmark")

	bar := progressbar.Default(int64(flagBenchIterations*len(codecs)), "benchmarking")

	results, err := bench.Run(bench.Config{
		InputName:  flagBenchFile,
		Input:      input,
		Iterations: flagBenchIterations,
		Codecs:     codecs,
		Progress: func(string, int) {
			_ = bar.Add(1)
		},
	})
	if err != nil {
		return err
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	bench.WriteReport(os.Stdout, flagBenchFile, results)

	return nil
}
