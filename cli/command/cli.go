package command

import (
	"indentdetect/cli/debug"
	cliflags "indentdetect/cli/flags"
	"indentdetect/cli/streams"

	"github.com/go-playground/validator/v10"
)

// Streams is an interface which exposes the standard input and output streams
type Streams interface {
	In() *streams.In
	Out() *streams.Out
	Err() *streams.Out
}

// Cli represents the indentdetect command line client.
type Cli interface {
	Streams
	Apply(ops ...CLIOption) error
	Validator() *validator.Validate
}

// IndentCli is an instance the indentdetect command line client.
// Instances of the client can be returned from NewIndentCli.
type IndentCli struct {
	in        *streams.In
	out       *streams.Out
	err       *streams.Out
	validator *validator.Validate
}

// NewIndentCli returns a IndentCli instance with all operators applied on it.
// It applies by default the standard streams.
func NewIndentCli(ops ...CLIOption) (*IndentCli, error) {
	defaultOps := []CLIOption{
		WithStandardStreams(),
	}
	ops = append(defaultOps, ops...)

	cli := &IndentCli{}
	if err := cli.Apply(ops...); err != nil {
		return nil, err
	}
	return cli, nil
}

// Out returns the writer used for stdout
func (cli *IndentCli) Out() *streams.Out {
	return cli.out
}

// Err returns the writer used for stderr
func (cli *IndentCli) Err() *streams.Out {
	return cli.err
}

// In returns the reader used for stdin
func (cli *IndentCli) In() *streams.In {
	return cli.in
}

// Validator returns the validator used for command options.
func (cli *IndentCli) Validator() *validator.Validate {
	if cli.validator == nil {
		cli.validator = validator.New()
	}
	return cli.validator
}

// Apply all the operation on the cli
func (cli *IndentCli) Apply(ops ...CLIOption) error {
	for _, op := range ops {
		if err := op(cli); err != nil {
			return err
		}
	}
	return nil
}

// Initialize runs initialization that must happen after command line flags
// are parsed.
func (cli *IndentCli) Initialize(opts *cliflags.ClientOptions, ops ...CLIOption) error {
	if err := cli.Apply(ops...); err != nil {
		return err
	}
	if err := cliflags.SetLogLevel(opts.LogLevel); err != nil {
		return err
	}

	if opts.Debug || debug.IsEnabled() {
		debug.Enable()
	}

	return nil
}
