package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/gofred/internal/logger"
)

type rootFlags struct {
	debug bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gofred",
		Short:         "Build Go workflows for Alfred with ease",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if negated(c, "debug") {
				flags.debug = false
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Whether to enable debug logging")
	cmd.PersistentFlags().Bool("no-debug", false, "Disable debug logging")
	cmd.PersistentFlags().MarkHidden("no-debug") //nolint:errcheck

	cmd.AddCommand(newNewCmd(flags))
	cmd.AddCommand(newLinkCmd(flags))
	cmd.AddCommand(newVendorCmd(flags))
	cmd.AddCommand(newPackageCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addNegatedFlag registers a hidden --no-<name> counterpart for a boolean
// flag, matching the --flag/--no-flag pairs of the CLI surface.
func addNegatedFlag(cmd *cobra.Command, name string) {
	cmd.Flags().Bool("no-"+name, false, "Disable --"+name)
	cmd.Flags().MarkHidden("no-" + name) //nolint:errcheck
}

// negated reports whether --no-<name> was passed to the command.
func negated(cmd *cobra.Command, name string) bool {
	set, err := cmd.Flags().GetBool("no-" + name)
	return err == nil && set
}

func newLogger(flags *rootFlags) *logger.Logger {
	return logger.New(logger.Options{
		Debug: flags.debug,
		Human: term.IsTerminal(int(os.Stderr.Fd())),
	})
}
