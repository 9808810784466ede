package detect

import (
	"fmt"

	"indentdetect/cli"
	"indentdetect/cli/command"
	"indentdetect/pkg/indent"
	"indentdetect/pkg/textio"

	"github.com/docker/docker/errdefs"
	"github.com/docker/go-units"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewDetectCommand returns the command that prints the indentation of FILE.
func NewDetectCommand(indentCli command.Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indentdetect [OPTIONS] FILE FORMAT DEFTABWIDTH",
		Short: "Detect the indentation style of a text file",
		Long: `Detect the indentation style of a text file.

FILE:        file to inspect, or "-" to read standard input
FORMAT:      output format ("vim" or "generic")
DEFTABWIDTH: default tab width`,
		Args: cli.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions(args, indentCli.Validator())
			if err != nil {
				return err
			}
			return runDetect(indentCli, opts)
		},
	}

	return cmd
}

func runDetect(indentCli command.Cli, opts detectOptions) error {
	if opts.File == textio.Stdin && indentCli.In().IsTerminal() {
		logrus.Debug("reading standard input from a terminal, end input with EOF")
	}

	in, err := textio.Open(opts.File, indentCli.In())
	if err != nil {
		return errdefs.System(err)
	}
	defer in.Close()

	fields := logrus.Fields{
		"file":        opts.File,
		"compression": in.Compression,
	}
	if in.Size >= 0 {
		fields["size"] = units.HumanSize(float64(in.Size))
	}
	logrus.WithFields(fields).Debug("sampling indentation")

	res, err := indent.Detect(textio.Lines(in), indent.Options{
		Mode:            opts.Mode,
		DefaultTabWidth: opts.DefaultTabWidth,
	})
	if err != nil {
		if errors.Is(err, indent.ErrNoIndentation) {
			logrus.WithField("file", opts.File).Debug("no indented lines found")
			return errdefs.NotFound(err)
		}
		return errdefs.System(err)
	}

	logrus.WithFields(logrus.Fields{
		"sampled":    res.Collection.Sampled,
		"tabs":       res.Collection.Tabs,
		"space_runs": len(res.Collection.SpaceRuns),
		"tab_width":  res.Descriptor.TabWidth,
		"space_unit": res.Descriptor.SpaceUnit,
	}).Debug("inferred indentation")

	_, err = fmt.Fprintln(indentCli.Out(), res.Output)
	return err
}
