package alfred

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func setFixtureEnv(t *testing.T) {
	t.Helper()

	t.Setenv("alfred_debug", "1")
	t.Setenv("alfred_preferences", "/tmp/Alfred.alfredpreferences")
	t.Setenv("alfred_version", "5.0")
	t.Setenv("alfred_version_build", "2058")
	t.Setenv("alfred_workflow_name", "hello")
	t.Setenv("alfred_workflow_version", "0.0.1")
	t.Setenv("alfred_workflow_bundle_id", "com.example.hello")
	t.Setenv("alfred_workflow_uid", "user.workflow.ABC")
	t.Setenv("alfred_workflow_cache", "/tmp/cache")
	t.Setenv("alfred_workflow_data", "/tmp/data")
}

func TestFromEnvReadsFixtureValues(t *testing.T) {
	setFixtureEnv(t)

	env := FromEnv()
	require.NotNil(t, env)
	require.True(t, env.Debug)
	require.Equal(t, "/tmp/Alfred.alfredpreferences", env.PreferencesFile)
	require.Equal(t, "5.0", env.Version)
	require.Equal(t, "2058", env.VersionBuild)
	require.Equal(t, "hello", env.WorkflowName)
	require.Equal(t, "0.0.1", env.WorkflowVersion)
	require.Equal(t, "com.example.hello", env.WorkflowBundleID)
	require.Equal(t, "user.workflow.ABC", env.WorkflowUID)
	require.Equal(t, "/tmp/cache", env.WorkflowCache)
	require.Equal(t, "/tmp/data", env.WorkflowData)
}

func TestFromEnvDebugRequiresExactLiteral(t *testing.T) {
	setFixtureEnv(t)
	t.Setenv("alfred_debug", "true")

	env := FromEnv()
	require.NotNil(t, env)
	require.False(t, env.Debug)
}

func TestFromEnvReturnsNilWithoutVersionMarker(t *testing.T) {
	setFixtureEnv(t)
	t.Setenv("alfred_version", "")

	require.Nil(t, FromEnv())
}

func TestFromEnvExpandsCacheAndDataDirs(t *testing.T) {
	setFixtureEnv(t)
	t.Setenv("alfred_workflow_cache", "~/Library/Caches/hello")

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	env := FromEnv()
	require.NotNil(t, env)
	require.Equal(t, filepath.Join(home, "Library/Caches/hello"), env.WorkflowCache)
}

func TestPreferencesRereadsPlistOnDemand(t *testing.T) {
	setFixtureEnv(t)

	prefsPath := filepath.Join(t.TempDir(), "prefs.plist")
	writePrefs := func(folder string) {
		data, err := plist.Marshal(map[string]any{"syncfolder": folder}, plist.XMLFormat)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(prefsPath, data, 0o644))
	}

	writePrefs("~/Dropbox/Alfred")
	t.Setenv("alfred_preferences", prefsPath)

	env := FromEnv()
	require.NotNil(t, env)

	prefs, err := env.Preferences()
	require.NoError(t, err)
	require.Equal(t, "~/Dropbox/Alfred", prefs["syncfolder"])

	// Not cached: a second access sees the new contents.
	writePrefs("~/Documents/Alfred")
	prefs, err = env.Preferences()
	require.NoError(t, err)
	require.Equal(t, "~/Documents/Alfred", prefs["syncfolder"])
}

func TestPreferencesErrorsWhenPathMissing(t *testing.T) {
	setFixtureEnv(t)
	t.Setenv("alfred_preferences", "")

	env := FromEnv()
	require.NotNil(t, env)

	_, err := env.Preferences()
	require.Error(t, err)
}
