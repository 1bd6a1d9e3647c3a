package alfred

import (
	"os"
	"path/filepath"
	"strings"

	"howett.net/plist"

	gofrederrors "github.com/alexisbeaulieu97/gofred/pkg/errors"
)

// Environment variable names set by Alfred when it invokes a script filter.
// See https://www.alfredapp.com/help/workflows/script-environment-variables/
const (
	envDebug            = "alfred_debug"
	envPreferences      = "alfred_preferences"
	envVersion          = "alfred_version"
	envVersionBuild     = "alfred_version_build"
	envWorkflowName     = "alfred_workflow_name"
	envWorkflowVersion  = "alfred_workflow_version"
	envWorkflowBundleID = "alfred_workflow_bundle_id"
	envWorkflowUID      = "alfred_workflow_uid"
	envWorkflowCache    = "alfred_workflow_cache"
	envWorkflowData     = "alfred_workflow_data"
)

// Environment is an immutable snapshot of the invocation context Alfred
// passes to a workflow through environment variables.
type Environment struct {
	// Debug reports whether Alfred's debugger is open for this workflow.
	Debug bool
	// PreferencesFile is the path to Alfred's preferences bundle. May be
	// empty when Alfred did not supply it; Preferences reports that case.
	PreferencesFile string
	// Version is the Alfred version, e.g. "5.0".
	Version string
	// VersionBuild is the Alfred build number, e.g. "2058".
	VersionBuild string
	// WorkflowName is the name of the executing workflow.
	WorkflowName string
	// WorkflowVersion is the version of the executing workflow, if set.
	WorkflowVersion string
	// WorkflowBundleID is the bundle identifier of the workflow, if set.
	WorkflowBundleID string
	// WorkflowUID identifies the workflow inside Alfred's preferences.
	WorkflowUID string
	// WorkflowCache is the workflow's cache directory, if Alfred created one.
	WorkflowCache string
	// WorkflowData is the workflow's data directory, if Alfred created one.
	WorkflowData string
}

// FromEnv reads Alfred's environment variables into an Environment snapshot.
//
// It returns nil when alfred_version is unset, which means the process is not
// running under Alfred. Callers must treat nil as an expected condition, e.g.
// when the workflow binary is run by hand during development.
func FromEnv() *Environment {
	if os.Getenv(envVersion) == "" {
		return nil
	}

	return &Environment{
		Debug:            os.Getenv(envDebug) == "1",
		PreferencesFile:  os.Getenv(envPreferences),
		Version:          os.Getenv(envVersion),
		VersionBuild:     os.Getenv(envVersionBuild),
		WorkflowName:     os.Getenv(envWorkflowName),
		WorkflowVersion:  os.Getenv(envWorkflowVersion),
		WorkflowBundleID: os.Getenv(envWorkflowBundleID),
		WorkflowUID:      os.Getenv(envWorkflowUID),
		WorkflowCache:    expandUser(os.Getenv(envWorkflowCache)),
		WorkflowData:     expandUser(os.Getenv(envWorkflowData)),
	}
}

// Preferences re-reads Alfred's preferences property list from
// PreferencesFile. The file is parsed on every call, never cached, so the
// result always reflects the state on disk.
func (e *Environment) Preferences() (map[string]any, error) {
	if e.PreferencesFile == "" {
		return nil, gofrederrors.NewNotFoundError("Alfred preferences file", "")
	}

	data, err := os.ReadFile(e.PreferencesFile)
	if err != nil {
		return nil, gofrederrors.NewExecutionError("read preferences", err)
	}

	prefs := map[string]any{}
	if _, err := plist.Unmarshal(data, &prefs); err != nil {
		return nil, gofrederrors.NewExecutionError("parse preferences", err)
	}
	return prefs, nil
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
