package project

import (
	"os"
	"path/filepath"
	"strings"

	"howett.net/plist"

	gofrederrors "github.com/alexisbeaulieu97/gofred/pkg/errors"
)

const (
	// ManifestName is the manifest file inside a workflow directory. Its
	// presence under <root>/workflow marks a gofred project root.
	ManifestName = "Info.plist"

	// WorkflowDirName is the subdirectory Alfred sees through the symlink.
	WorkflowDirName = "workflow"

	preferencesBundle = "Alfred.alfredpreferences"

	// EnvPreferencesOverride points gofred at an alternate Alfred
	// preferences plist, mainly for tests and CI.
	EnvPreferencesOverride = "GOFRED_ALFRED_PREFERENCES"
)

// Alfred locates the host application's directories on this machine.
type Alfred struct {
	// PreferencesPath is the Alfred preferences plist holding the
	// syncfolder key.
	PreferencesPath string
}

// DefaultAlfred returns the standard macOS location of Alfred's
// preferences, honoring the GOFRED_ALFRED_PREFERENCES override.
func DefaultAlfred() (Alfred, error) {
	if override := os.Getenv(EnvPreferencesOverride); override != "" {
		return Alfred{PreferencesPath: override}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Alfred{}, gofrederrors.NewExecutionError("resolve home directory", err)
	}

	return Alfred{
		PreferencesPath: filepath.Join(home, "Library/Preferences/com.runningwithcrayons.Alfred-Preferences.plist"),
	}, nil
}

// SyncDir reads Alfred's synchronisation directory from the preferences
// plist.
func (a Alfred) SyncDir() (string, error) {
	data, err := os.ReadFile(a.PreferencesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", gofrederrors.NewNotFoundError("Alfred installation", a.PreferencesPath)
		}
		return "", gofrederrors.NewExecutionError("read Alfred preferences", err)
	}

	var prefs struct {
		SyncFolder string `plist:"syncfolder"`
	}
	if _, err := plist.Unmarshal(data, &prefs); err != nil {
		return "", gofrederrors.NewExecutionError("parse Alfred preferences", err)
	}

	if prefs.SyncFolder == "" {
		return "", gofrederrors.NewNotFoundError("Alfred synchronisation directory", "")
	}

	syncDir := expandUser(prefs.SyncFolder)
	info, err := os.Stat(syncDir)
	if err != nil || !info.IsDir() {
		return "", gofrederrors.NewNotFoundError("workflow directory", syncDir)
	}

	return syncDir, nil
}

// WorkflowsDir returns the directory where Alfred stores workflows.
func (a Alfred) WorkflowsDir() (string, error) {
	syncDir, err := a.SyncDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(syncDir, preferencesBundle, "workflows"), nil
}

// Project is a workflow project rooted at a directory containing
// workflow/Info.plist.
type Project struct {
	Root string
}

// Open validates that dir is a workflow project root. Commands that operate
// on an existing project call this first and report exit status 1 when it
// fails.
func Open(dir string) (*Project, error) {
	marker := filepath.Join(dir, WorkflowDirName, ManifestName)
	if _, err := os.Stat(marker); err != nil {
		return nil, gofrederrors.NewNotFoundError("workflow project", dir)
	}
	return &Project{Root: dir}, nil
}

// WorkflowDir is the directory Alfred links to and the archive is built
// from.
func (p *Project) WorkflowDir() string {
	return filepath.Join(p.Root, WorkflowDirName)
}

func expandUser(path string) string {
	if path == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
