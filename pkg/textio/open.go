// Package textio opens text inputs and reads them line by line.
package textio

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/moby/sys/sequential"
	"github.com/pkg/errors"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Compression identifies how an input stream is encoded.
type Compression int

const (
	Uncompressed Compression = iota
	Gzip
	Zstd
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "none"
	}
}

// DetectCompression inspects the first bytes of a stream.
func DetectCompression(header []byte) Compression {
	switch {
	case bytes.HasPrefix(header, gzipMagic):
		return Gzip
	case bytes.HasPrefix(header, zstdMagic):
		return Zstd
	default:
		return Uncompressed
	}
}

// Input is an opened text input. Reads return decompressed content.
type Input struct {
	io.Reader
	Compression Compression
	// Size is the on-disk size of the input, or -1 when unknown.
	Size    int64
	closers []func() error
}

// Close releases the decoder, if any, and the underlying file.
func (in *Input) Close() error {
	var first error
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	in.closers = nil
	return first
}

// Open opens path for reading, or wraps stdin when path is Stdin. The file
// is opened with sequential access semantics.
func Open(path string, stdin io.Reader) (*Input, error) {
	if path == Stdin {
		return NewInput(stdin, nil)
	}
	f, err := sequential.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	in, err := NewInput(f, f.Close)
	if err != nil {
		f.Close()
		return nil, err
	}
	in.Size = fi.Size()
	return in, nil
}

// NewInput wraps r, transparently decompressing gzip and zstd streams.
// closeFn, if non-nil, is called by Close after any decoder is released.
func NewInput(r io.Reader, closeFn func() error) (*Input, error) {
	in := &Input{Size: -1}
	if closeFn != nil {
		in.closers = append(in.closers, closeFn)
	}

	br := bufio.NewReader(r)
	header, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}

	in.Compression = DetectCompression(header)
	switch in.Compression {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open gzip stream")
		}
		in.Reader = zr
		in.closers = append(in.closers, zr.Close)
	case Zstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open zstd stream")
		}
		in.Reader = zr
		in.closers = append(in.closers, func() error {
			zr.Close()
			return nil
		})
	default:
		in.Reader = br
	}
	return in, nil
}
