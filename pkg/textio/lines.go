package textio

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidUTF8 is yielded by Lines for a line that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Lines returns a sequence over the lines of r with the trailing "\n" or
// "\r\n" removed. Lines may be of any length. A read error or an invalid
// UTF-8 line is yielded once with an empty line, and the sequence ends.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br, ok := r.(*bufio.Reader)
		if !ok {
			br = bufio.NewReader(r)
		}
		for {
			line, err := br.ReadString('\n')
			if err != nil && err != io.EOF {
				yield("", err)
				return
			}
			if line == "" && err == io.EOF {
				return
			}

			if strings.HasSuffix(line, "\n") {
				line = strings.TrimSuffix(line[:len(line)-1], "\r")
			}
			if !utf8.ValidString(line) {
				yield("", ErrInvalidUTF8)
				return
			}
			if !yield(line, nil) {
				return
			}
			if err == io.EOF {
				return
			}
		}
	}
}
