package config

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newFlagCommand creates a cobra command with all flags configured. Help is
// written to out, or to os.Stdout when out is nil.
func newFlagCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "burstload",
		Short:         "Fire a burst of concurrent GET requests at one URL and summarize latency",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	if out == nil {
		out = os.Stdout
	}
	cmd.SetOut(out)
	configureFlags(cmd.Flags())
	return cmd
}

// configureFlags sets up all CLI flags on the provided flag set.
func configureFlags(flags *pflag.FlagSet) {
	flags.Int("requests", DefaultRequests, "number of requests to make")
	flags.String("url", DefaultTargetURL, "target URL")
}

// displayHelp prints the help message for a command.
func displayHelp(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Usage: %s\n\n%s\n\nFlags:\n", cmd.UseLine(), cmd.Short)
	fs := cmd.Flags()
	fs.SetOutput(out)
	fs.PrintDefaults()
}
