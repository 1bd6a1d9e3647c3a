package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gofred/internal/logger"
	"github.com/alexisbeaulieu97/gofred/internal/project"
)

var packageCmdRunner = runPackage

func newPackageCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "package",
		Short: "Package the workflow for distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return packageCmdRunner(newLogger(root))
		},
	}
}

func runPackage(log *logger.Logger) error {
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
	if err := project.Package(context.Background(), log, runner, p); err != nil {
		log.Error(err, "failed to package workflow")
		return err
	}
	return nil
}
