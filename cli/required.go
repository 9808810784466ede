package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ExactArgs returns an error if there is not the exact number of args.
// The error carries the usage text and UsageExitCode.
func ExactArgs(number int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == number {
			return nil
		}
		return StatusError{
			Status: fmt.Sprintf(
				"%q requires exactly %d %s.\n\n%s",
				cmd.CommandPath(),
				number,
				pluralize("argument", number),
				cmd.UsageString(),
			),
			StatusCode: UsageExitCode,
		}
	}
}

func pluralize(word string, number int) string {
	if number == 1 {
		return word
	}
	return word + "s"
}
