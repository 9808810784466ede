package command

import (
	"io"

	"indentdetect/cli/streams"

	"github.com/go-playground/validator/v10"
	"github.com/moby/term"
)

// CLIOption is a functional argument to apply options to a [IndentCli]. These
// options can be passed to [NewIndentCli] to initialize a new CLI, or
// applied with [IndentCli.Initialize] or [IndentCli.Apply].
type CLIOption func(cli *IndentCli) error

// WithStandardStreams sets a cli in, out and err streams with the standard streams.
func WithStandardStreams() CLIOption {
	return func(cli *IndentCli) error {
		// Set terminal emulation based on platform as required.
		stdin, stdout, stderr := term.StdStreams()
		cli.in = streams.NewIn(stdin)
		cli.out = streams.NewOut(stdout)
		cli.err = streams.NewOut(stderr)
		return nil
	}
}

// WithInputStream sets a cli input stream.
func WithInputStream(in io.ReadCloser) CLIOption {
	return func(cli *IndentCli) error {
		cli.in = streams.NewIn(in)
		return nil
	}
}

// WithOutputStream sets a cli output stream.
func WithOutputStream(out io.Writer) CLIOption {
	return func(cli *IndentCli) error {
		cli.out = streams.NewOut(out)
		return nil
	}
}

// WithErrorStream sets a cli error stream.
func WithErrorStream(err io.Writer) CLIOption {
	return func(cli *IndentCli) error {
		cli.err = streams.NewOut(err)
		return nil
	}
}

// WithValidator sets the validator used for command options.
func WithValidator(v *validator.Validate) CLIOption {
	return func(cli *IndentCli) error {
		cli.validator = v
		return nil
	}
}
