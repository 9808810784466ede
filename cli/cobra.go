package cli

import (
	"fmt"

	"indentdetect/cli/command"
	cliflags "indentdetect/cli/flags"

	"github.com/spf13/cobra"
)

// StatusError reports an unsuccessful exit by a command.
type StatusError struct {
	Status     string
	StatusCode int
}

func (e StatusError) Error() string {
	return e.Status
}

// UsageExitCode is the exit status for command line usage errors.
const UsageExitCode = 2

// SetupRootCommand sets default usage, version and error handling
// for the root command, and installs the global flags. The returned options
// are applied to indentCli before the command runs.
func SetupRootCommand(rootCmd *cobra.Command, indentCli *command.IndentCli) *cliflags.ClientOptions {
	opts := cliflags.NewClientOptions()
	opts.InstallFlags(rootCmd.PersistentFlags())

	rootCmd.SetVersionTemplate("indentdetect version {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(FlagErrorFunc)

	rootCmd.PersistentFlags().BoolP("help", "h", false, "Print usage")
	rootCmd.PersistentFlags().Lookup("help").Hidden = true

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return indentCli.Initialize(opts)
	}

	// do not add a `[flags]` to the end of the usage line.
	rootCmd.DisableFlagsInUseLine = true
	return opts
}

// FlagErrorFunc prints an error message which matches the format of the
// usage errors, and exits with the usage status.
func FlagErrorFunc(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	return StatusError{
		Status:     fmt.Sprintf("%s\n\n%s", err, cmd.UsageString()),
		StatusCode: UsageExitCode,
	}
}
