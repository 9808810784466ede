package textio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, r io.Reader) ([]string, error) {
	t.Helper()
	var lines []string
	for line, err := range Lines(r) {
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single without newline", "abc", []string{"abc"}},
		{"single with newline", "abc\n", []string{"abc"}},
		{"crlf", "a\r\n  b\r\n", []string{"a", "  b"}},
		{"lone cr kept at eof", "a\r", []string{"a\r"}},
		{"blank lines", "\n\n\tx\n", []string{"", "", "\tx"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := collect(t, strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, lines)
		})
	}
}

func TestLinesLongLine(t *testing.T) {
	long := "  " + strings.Repeat("x", 1<<20)
	lines, err := collect(t, strings.NewReader(long+"\nnext\n"))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, long, lines[0])
}

func TestLinesInvalidUTF8(t *testing.T) {
	lines, err := collect(t, strings.NewReader("ok\n\xff\xfe\nnever\n"))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Equal(t, []string{"ok"}, lines)
}

func TestLinesReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("  a\n"), iotest.ErrReader(boom))

	lines, err := collect(t, r)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"  a"}, lines)
}

func TestLinesStopsWhenConsumerStops(t *testing.T) {
	n := 0
	for range Lines(strings.NewReader("a\nb\nc\n")) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestDetectCompression(t *testing.T) {
	assert.Equal(t, Gzip, DetectCompression([]byte{0x1f, 0x8b, 0x08, 0x00}))
	assert.Equal(t, Zstd, DetectCompression([]byte{0x28, 0xb5, 0x2f, 0xfd}))
	assert.Equal(t, Uncompressed, DetectCompression([]byte("\tfoo")))
	assert.Equal(t, Uncompressed, DetectCompression(nil))
	assert.Equal(t, "gzip", Gzip.String())
	assert.Equal(t, "zstd", Zstd.String())
	assert.Equal(t, "none", Uncompressed.String())
}

const sample = "func f() {\n\treturn\n}\n"

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestNewInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Compression
	}{
		{"plain", []byte(sample), Uncompressed},
		{"gzip", gzipped(t, sample), Gzip},
		{"zstd", zstded(t, sample), Zstd},
		{"short plain", []byte("x"), Uncompressed},
		{"empty", []byte{}, Uncompressed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			closed := false
			in, err := NewInput(bytes.NewReader(tc.data), func() error {
				closed = true
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, in.Compression)
			assert.Equal(t, int64(-1), in.Size)

			got, err := io.ReadAll(in)
			require.NoError(t, err)
			if tc.want != Uncompressed {
				assert.Equal(t, sample, string(got))
			} else {
				assert.Equal(t, string(tc.data), string(got))
			}

			require.NoError(t, in.Close())
			assert.True(t, closed)
		})
	}
}

func TestNewInputCorruptGzip(t *testing.T) {
	_, err := NewInput(bytes.NewReader([]byte{0x1f, 0x8b, 0x00}), nil)
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go.gz")
	data := gzipped(t, sample)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	in, err := Open(path, nil)
	require.NoError(t, err)
	defer in.Close()

	assert.Equal(t, Gzip, in.Compression)
	assert.Equal(t, int64(len(data)), in.Size)

	lines, err := collect(t, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"func f() {", "\treturn", "}"}, lines)
}

func TestOpenStdin(t *testing.T) {
	in, err := Open(Stdin, strings.NewReader("  a\n"))
	require.NoError(t, err)
	defer in.Close()

	lines, err := collect(t, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"  a"}, lines)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
