package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gofred/internal/logger"
	"github.com/alexisbeaulieu97/gofred/internal/project"
)

var newCmdRunner = runNew

func newNewCmd(root *rootFlags) *cobra.Command {
	opts := project.ScaffoldOptions{}

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			if negated(cmd, "git") {
				opts.Git = false
			}
			return newCmdRunner(newLogger(root), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Keyword, "keyword", "k", "", "The keyword to trigger the workflow")
	cmd.Flags().StringVarP(&opts.BundleID, "bundle-id", "b", "", "The bundle identifier, usually in reverse DNS notation")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Name of the author")
	cmd.Flags().StringVar(&opts.Website, "website", "", "The workflow website")
	cmd.Flags().StringVar(&opts.Description, "description", "", "A description for the workflow")
	cmd.Flags().BoolVar(&opts.Git, "git", true, "Whether to create a git repository")
	addNegatedFlag(cmd, "git")
	cmd.MarkFlagRequired("keyword")   //nolint:errcheck
	cmd.MarkFlagRequired("bundle-id") //nolint:errcheck

	return cmd
}

func runNew(log *logger.Logger, opts project.ScaffoldOptions) error {
	alfred, err := project.DefaultAlfred()
	if err != nil {
		return err
	}

	workflowsDir, err := alfred.WorkflowsDir()
	if err != nil {
		log.Error(err, "cannot locate Alfred's workflow directory")
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	runner := project.NewRunner(log)
	if err := project.Scaffold(context.Background(), log, runner, workflowsDir, cwd, opts); err != nil {
		log.Error(err, "cannot create workflow")
		return err
	}
	return nil
}
