package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gofred/internal/logger"
	"github.com/alexisbeaulieu97/gofred/internal/project"
)

var vendorCmdRunner = runVendor

func newVendorCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "vendor",
		Short: "Install workflow dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return vendorCmdRunner(newLogger(root))
		},
	}
}

func runVendor(log *logger.Logger) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	p, err := project.Open(cwd)
	if err != nil {
		log.Error(err, "cannot find workflow. You need to run this command from the root of the project")
		return err
	}

	runner := project.NewRunner(log)
	if err := project.Vendor(context.Background(), log, runner, p.Root); err != nil {
		log.Error(err, "failed to download dependencies")
		return err
	}
	return nil
}
