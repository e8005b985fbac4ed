package fileio

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	return path
}

func TestReadInput_Plain(t *testing.T) {
	content := []byte("hello world")
	path := writeTempFile(t, content)

	data, err := ReadInput(path, false)
	require.NoError(t, err)
	require.Equal(t, content, data)
}

func TestReadInput_Base64(t *testing.T) {
	original := []byte{0x00, 0x01, 0xFF, 0xFE, 'a', 'b'}
	encoded := base64.StdEncoding.EncodeToString(original)

	t.Run("bare", func(t *testing.T) {
		path := writeTempFile(t, []byte(encoded))
		data, err := ReadInput(path, true)
		require.NoError(t, err)
		require.Equal(t, original, data)
	})

	t.Run("line_wrapped", func(t *testing.T) {
		// The base64 tool wraps output at 76 columns by default.
		long := bytes.Repeat([]byte{0xAB, 0xCD, 0xEF}, 100)
		encoded := base64.StdEncoding.EncodeToString(long)

		var wrapped strings.Builder
		for i := 0; i < len(encoded); i += 76 {
			end := min(i+76, len(encoded))
			wrapped.WriteString(encoded[i:end])
			wrapped.WriteByte('\n')
		}

		path := writeTempFile(t, []byte(wrapped.String()))
		data, err := ReadInput(path, true)
		require.NoError(t, err)
		require.Equal(t, long, data)
	})

	t.Run("trailing_newline", func(t *testing.T) {
		path := writeTempFile(t, []byte(encoded+"\n"))
		data, err := ReadInput(path, true)
		require.NoError(t, err)
		require.Equal(t, original, data)
	})

	t.Run("invalid", func(t *testing.T) {
		path := writeTempFile(t, []byte("not!base64@@"))
		_, err := ReadInput(path, true)
		require.Error(t, err)
	})
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "nope.bin"), false)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteOutput(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	t.Run("verbatim", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteOutput(&buf, data, false))
		require.Equal(t, data, buf.Bytes())
	})

	t.Run("base64", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteOutput(&buf, data, true))

		decoded, err := base64.StdEncoding.DecodeString(buf.String())
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteOutput(&buf, nil, true))
		require.Empty(t, buf.String())
	})
}
