package indent

import (
	"iter"

	"github.com/pkg/errors"
)

// ErrNoIndentation is returned by Detect when no sampled line carries any
// leading whitespace.
var ErrNoIndentation = errors.New("No indentation")

// Options configures Detect.
type Options struct {
	// Mode is the output format.
	Mode Mode
	// DefaultTabWidth is reported for files indented with tabs only. It
	// must be greater than zero.
	DefaultTabWidth uint32
}

// Result is the outcome of a successful Detect.
type Result struct {
	Collection Collection
	Descriptor Descriptor
	Output     string
}

// Detect samples lines, infers their indentation and formats it.
func Detect(lines iter.Seq2[string, error], opts Options) (Result, error) {
	c, err := Collect(lines)
	if err != nil {
		return Result{}, err
	}
	if c.Empty() {
		return Result{Collection: c}, ErrNoIndentation
	}

	d := Infer(c, opts.DefaultTabWidth)
	return Result{
		Collection: c,
		Descriptor: d,
		Output:     Format(d, opts.Mode),
	}, nil
}
