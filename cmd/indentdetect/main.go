package main

import (
	"fmt"
	"os"

	"indentdetect/cli"
	"indentdetect/cli/command"
	"indentdetect/cli/command/detect"
	"indentdetect/cli/version"

	"github.com/morikuni/aec"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	indentCli, err := command.NewIndentCli()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := runIndentDetect(indentCli, os.Args[1:]); err != nil {
		os.Exit(handleError(indentCli, err))
	}
}

func newIndentDetectCommand(indentCli *command.IndentCli) *cobra.Command {
	cmd := detect.NewDetectCommand(indentCli)
	cmd.Version = fmt.Sprintf("%s, build %s (%s)", version.Version, version.GitCommit, version.BuildTime)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.CompletionOptions.DisableDefaultCmd = true

	cli.SetupRootCommand(cmd, indentCli)
	return cmd
}

func runIndentDetect(indentCli *command.IndentCli, args []string) error {
	if args == nil {
		args = []string{}
	}
	cmd := newIndentDetectCommand(indentCli)
	cmd.SetArgs(args)
	cmd.SetOut(indentCli.Out())
	cmd.SetErr(indentCli.Err())
	return cmd.Execute()
}

// handleError reports err on the error stream and returns the exit status.
func handleError(indentCli command.Streams, err error) int {
	var statusErr cli.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Status != "" {
			fmt.Fprint(indentCli.Err(), withNewline(statusErr.Status))
		}
		if statusErr.StatusCode == 0 {
			return 1
		}
		return statusErr.StatusCode
	}

	prefix := indentCli.Err().With(aec.RedF, aec.Bold).Sprint("error:")
	fmt.Fprintf(indentCli.Err(), "%s %s\n", prefix, err)
	return 1
}

func withNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
