package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arloliu/compbench/compress"
	"github.com/arloliu/compbench/internal/fileio"
)

var (
	flagTransformFile      string
	flagTransformAlgorithm string
	flagTransformBase64In  bool
	flagTransformBase64Out bool
)

var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "Compress a file with one algorithm and write the result to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(true)
	},
}

var decompressCmd = &cobra.Command{
	Use:   "decompress",
	Short: "Decompress a file with one algorithm and write the result to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(false)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{compressCmd, decompressCmd} {
		rootCmd.AddCommand(cmd)

		cmd.Flags().StringVarP(&flagTransformFile, "file", "f", "",
			"path to the input file")

		cmd.Flags().StringVarP(&flagTransformAlgorithm, "algorithm", "a", "",
			"algorithm to use (brotli, gzip, lz4, snappy, zstd, none)")

		cmd.Flags().BoolVar(&flagTransformBase64In, "base64-in", false,
			"treat the input file as base64-encoded")

		cmd.Flags().BoolVar(&flagTransformBase64Out, "base64-out", false,
			"base64-encode the output")

		_ = cmd.MarkFlagRequired("file")
		_ = cmd.MarkFlagRequired("algorithm")
	}
}

func runTransform(compressOp bool) error {
	algorithm, err := compress.ParseAlgorithm(flagTransformAlgorithm)
	if err != nil {
		return err
	}

	codec, err := compress.CreateCodec(algorithm)
	if err != nil {
		return err
	}

	input, err := fileio.ReadInput(flagTransformFile, flagTransformBase64In)
	if err != nil {
		return err
	}

	var output []byte
	if compressOp {
		output, err = codec.Compress(input)
	} else {
		output, err = codec.Decompress(input)
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("algorithm", codec.Name()).
		Str("file", flagTransformFile).
		Int("input_size", len(input)).
		Int("output_size", len(output)).
		Msg(operationName(compressOp) + " complete")

	return fileio.WriteOutput(os.Stdout, output, flagTransformBase64Out)
}

func operationName(compressOp bool) string {
	if compressOp {
		return "compression"
	}

	return "decompression"
}
