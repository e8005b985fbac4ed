// Package fileio reads whole input buffers and writes result bytes for the
// compbench commands, with optional base64 framing on either side.
package fileio

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadInput reads the file at path fully into memory.
//
// With base64Encoded set, the file content is treated as standard base64 and
// the decoded bytes are returned. Whitespace anywhere in the stream is
// ignored, so line-wrapped output from the base64 tool decodes as-is.
func ReadInput(path string, base64Encoded bool) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	if !base64Encoded {
		return raw, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(string(raw)), ""))
	if err != nil {
		return nil, fmt.Errorf("decoding base64 input from %s: %w", path, err)
	}

	return decoded, nil
}

// WriteOutput writes data to w, verbatim or base64-encoded.
func WriteOutput(w io.Writer, data []byte, base64Encode bool) error {
	if !base64Encode {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		return nil
	}

	enc := base64.NewEncoder(base64.StdEncoding, w)
	if _, err := enc.Write(data); err != nil {
		return fmt.Errorf("writing base64 output: %w", err)
	}
	// Close flushes the final partial quantum; the stream is incomplete
	// without it.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing base64 output: %w", err)
	}

	return nil
}
