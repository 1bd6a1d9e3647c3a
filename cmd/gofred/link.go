package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gofred/internal/logger"
	"github.com/alexisbeaulieu97/gofred/internal/project"
)

var linkCmdRunner = runLink

func newLinkCmd(root *rootFlags) *cobra.Command {
	opts := project.LinkOptions{}

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Create a symbolic link to this workflow in Alfred",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if negated(cmd, "relink") {
				opts.Relink = false
			}
			if negated(cmd, "same-path") {
				opts.SamePath = false
			}
			return linkCmdRunner(newLogger(root), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Relink, "relink", false, "Whether to delete (if exists) and recreate the link")
	addNegatedFlag(cmd, "relink")
	cmd.Flags().BoolVar(&opts.SamePath, "same-path", false, "Whether to reuse (if exists) the previous path for the link")
	addNegatedFlag(cmd, "same-path")

	return cmd
}

func runLink(log *logger.Logger, opts project.LinkOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	p, err := project.Open(cwd)
	if err != nil {
		log.Error(err, "cannot find workflow. You need to run this command from the root of the project")
		return err
	}

	alfred, err := project.DefaultAlfred()
	if err != nil {
		return err
	}

	workflowsDir, err := alfred.WorkflowsDir()
	if err != nil {
		log.Error(err, "cannot locate Alfred's workflow directory")
		return err
	}

	if err := project.Link(log, workflowsDir, p.WorkflowDir(), opts); err != nil {
		log.Error(err, "error creating link")
		return err
	}
	return nil
}
