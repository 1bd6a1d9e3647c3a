package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func scaffoldFixtureOptions() ScaffoldOptions {
	return ScaffoldOptions{
		Name:        "My Workflow",
		Keyword:     "mywf",
		BundleID:    "com.example.myworkflow",
		Author:      "Jane Doe",
		Website:     "https://example.com",
		Description: "Does things",
		Git:         true,
	}
}

func TestScaffoldCreatesProject(t *testing.T) {
	t.Parallel()

	workflowsDir := t.TempDir()
	parentDir := t.TempDir()
	runner := &fakeRunner{}

	err := Scaffold(context.Background(), testLogger(), runner, workflowsDir, parentDir, scaffoldFixtureOptions())
	require.NoError(t, err)

	root := filepath.Join(parentDir, "My Workflow")

	// Rendered go.mod with a derived module name.
	gomod, err := os.ReadFile(filepath.Join(root, "go.mod"))
	require.NoError(t, err)
	require.Contains(t, string(gomod), "module my-workflow")

	// Entry source file copied from the template.
	_, err = os.Stat(filepath.Join(root, "workflow.go"))
	require.NoError(t, err)

	// Executable entry script inside the workflow directory.
	info, err := os.Stat(filepath.Join(root, WorkflowDirName, EntryScriptName))
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&0o111, "entry script must be executable")

	// Generated manifest.
	manifest, err := ReadManifest(filepath.Join(root, WorkflowDirName, ManifestName))
	require.NoError(t, err)
	require.Equal(t, "My Workflow", manifest.Name)
	require.Equal(t, "com.example.myworkflow", manifest.BundleID)
	require.Len(t, manifest.Objects, 2)

	// Git repository initialised.
	_, err = os.Stat(filepath.Join(root, ".git"))
	require.NoError(t, err)

	// Dependencies vendored through the runner.
	require.Equal(t, []string{"go mod vendor"}, runner.calls)
	require.Equal(t, []string{root}, runner.dirs)

	// Exactly one development symlink pointing at the workflow directory.
	links := workflowLinks(t, workflowsDir)
	require.Len(t, links, 1)
	dest, err := os.Readlink(links[0])
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, WorkflowDirName), dest)

	// The scaffolded project is a valid project root.
	_, err = Open(root)
	require.NoError(t, err)
}

func TestScaffoldFailsWhenTargetExists(t *testing.T) {
	t.Parallel()

	parentDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(parentDir, "My Workflow"), 0o755))

	err := Scaffold(context.Background(), testLogger(), &fakeRunner{}, t.TempDir(), parentDir, scaffoldFixtureOptions())
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}

func TestScaffoldWithoutGitSkipsRepository(t *testing.T) {
	t.Parallel()

	parentDir := t.TempDir()
	opts := scaffoldFixtureOptions()
	opts.Git = false

	err := Scaffold(context.Background(), testLogger(), &fakeRunner{}, t.TempDir(), parentDir, opts)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(parentDir, "My Workflow", ".git"))
	require.True(t, os.IsNotExist(err))
}

func TestScaffoldContinuesWhenVendoringFails(t *testing.T) {
	t.Parallel()

	workflowsDir := t.TempDir()
	parentDir := t.TempDir()
	runner := &fakeRunner{failPrefix: "go mod vendor", failErr: os.ErrPermission}

	err := Scaffold(context.Background(), testLogger(), runner, workflowsDir, parentDir, scaffoldFixtureOptions())
	require.NoError(t, err)

	// The development link is still created.
	require.Len(t, workflowLinks(t, workflowsDir), 1)
}
