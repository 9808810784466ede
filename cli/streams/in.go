package streams

import (
	"io"

	"github.com/moby/term"
)

// In is an input stream the detector can read text from. It implements
// [io.ReadCloser] and records whether a terminal is attached.
type In struct {
	commonStream
	in io.ReadCloser
}

// Read implements the [io.Reader] interface.
func (i *In) Read(p []byte) (int, error) {
	return i.in.Read(p)
}

// Close implements the [io.Closer] interface.
func (i *In) Close() error {
	return i.in.Close()
}

// NewIn returns a new [In] from an [io.ReadCloser].
func NewIn(in io.ReadCloser) *In {
	i := &In{in: in}
	_, i.isTerminal = term.GetFdInfo(in)
	return i
}
