package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/gofred/internal/logger"
	gofrederrors "github.com/alexisbeaulieu97/gofred/pkg/errors"
)

// LinkOptions controls how Link treats an existing symlink.
type LinkOptions struct {
	// Relink deletes and recreates the link when one already exists.
	Relink bool
	// SamePath reuses the previous link path instead of generating a new
	// workflow identifier.
	SamePath bool
}

// FindWorkflowLink scans every entry of Alfred's workflows directory for a
// symbolic link whose resolved target equals target. It returns the empty
// string when no such link exists.
func FindWorkflowLink(workflowsDir, target string) (string, error) {
	target = expandUser(target)

	entries, err := os.ReadDir(workflowsDir)
	if err != nil {
		return "", gofrederrors.NewExecutionError("scan workflows directory", err)
	}

	for _, entry := range entries {
		path := filepath.Join(workflowsDir, entry.Name())

		info, err := os.Lstat(path)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			continue
		}

		dest, err := os.Readlink(path)
		if err != nil {
			continue
		}
		if expandUser(dest) == target {
			return path, nil
		}
	}

	return "", nil
}

// Link creates a symlink from Alfred's workflows directory to the project's
// workflow directory, so the workflow shows up in Alfred while staying
// editable in place.
func Link(log *logger.Logger, workflowsDir, wfDir string, opts LinkOptions) error {
	info, err := os.Stat(wfDir)
	if err != nil {
		return gofrederrors.NewNotFoundError("workflow directory", wfDir)
	}
	if !info.IsDir() {
		return gofrederrors.NewValidationError("workflow", fmt.Sprintf("%s is not a directory", wfDir), nil)
	}

	existing, err := FindWorkflowLink(workflowsDir, wfDir)
	if err != nil {
		return err
	}

	if existing != "" {
		if !opts.Relink {
			log.Debugf("found link: %s", existing)
			return nil
		}

		log.Debugf("removing existing link: %s", existing)
		if err := os.Remove(existing); err != nil {
			return gofrederrors.NewExecutionError("remove link", err)
		}
	}

	log.Infof("creating link to workflow directory %s", wfDir)

	linkPath := existing
	if !opts.SamePath || existing == "" {
		workflowID := strings.ToUpper(uuid.NewString())
		linkPath = filepath.Join(workflowsDir, "user.workflow."+workflowID)
	}

	log.Debugf("creating link: %s", linkPath)
	if err := os.Symlink(wfDir, linkPath); err != nil {
		return gofrederrors.NewExecutionError("create link", err)
	}

	// A symlink to a missing target is created silently; verify it resolves.
	if _, err := os.Stat(linkPath); err != nil {
		os.Remove(linkPath)
		return gofrederrors.NewExecutionError("create link", fmt.Errorf("link %s does not resolve to %s", linkPath, wfDir))
	}

	return nil
}
