package streams

import (
	"fmt"
	"io"
	"os"

	"github.com/moby/term"
	"github.com/morikuni/aec"
)

// Out is an output stream for program output. It implements [io.Writer]
// and knows whether colored output may be written to it.
type Out struct {
	commonStream
	out         io.Writer
	enableColor bool
}

func (o *Out) Write(p []byte) (int, error) {
	return o.out.Write(p)
}

func (o *Out) WriteString(s string) (int, error) {
	return io.WriteString(o.out, s)
}

func (o *Out) IsColorEnabled() bool {
	return o.enableColor
}

// SetColorEnabled overrides color detection.
func (o *Out) SetColorEnabled(enabled bool) {
	o.enableColor = enabled
}

// NewOut returns a new [Out] from an [io.Writer].
func NewOut(out io.Writer) *Out {
	o := &Out{out: out}
	_, o.isTerminal = term.GetFdInfo(out)
	o.enableColor = hasColors(o.isTerminal)
	return o
}

func hasColors(isTerminal bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	force := os.Getenv("CLICOLOR_FORCE")
	if force != "" && force != "0" {
		return true
	}

	if os.Getenv("CLICOLOR") == "0" {
		return false
	}

	return isTerminal
}

func (o *Out) With(styles ...aec.ANSI) *StyledOut {
	return &StyledOut{
		parent: o,
		styles: styles,
	}
}

type StyledOut struct {
	parent *Out
	styles []aec.ANSI
}

func (s *StyledOut) apply(msg string) string {
	if len(s.styles) == 0 {
		return msg
	}

	combined := s.styles[0]
	for _, next := range s.styles[1:] {
		combined = combined.With(next)
	}

	return combined.Apply(msg)
}

// Sprint formats a like fmt.Sprint, styled when color is enabled.
func (s *StyledOut) Sprint(a ...any) string {
	msg := fmt.Sprint(a...)
	if s.parent.enableColor {
		msg = s.apply(msg)
	}
	return msg
}

func (s *StyledOut) Println(a ...any) {
	fmt.Fprintln(s.parent.out, s.Sprint(a...))
}
