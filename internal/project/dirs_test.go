package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"howett.net/plist"

	gofrederrors "github.com/alexisbeaulieu97/gofred/pkg/errors"
)

// writeAlfredFixture creates a preferences plist and the matching sync
// directory layout, returning the Alfred handle and the workflows dir.
func writeAlfredFixture(t *testing.T) (Alfred, string) {
	t.Helper()

	syncDir := t.TempDir()
	workflowsDir := filepath.Join(syncDir, preferencesBundle, "workflows")
	require.NoError(t, os.MkdirAll(workflowsDir, 0o755))

	prefsPath := filepath.Join(t.TempDir(), "com.runningwithcrayons.Alfred-Preferences.plist")
	data, err := plist.Marshal(map[string]any{"syncfolder": syncDir}, plist.XMLFormat)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(prefsPath, data, 0o644))

	return Alfred{PreferencesPath: prefsPath}, workflowsDir
}

func TestWorkflowsDirFromPreferences(t *testing.T) {
	t.Parallel()

	alfred, want := writeAlfredFixture(t)

	got, err := alfred.WorkflowsDir()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSyncDirFailsWhenAlfredNotInstalled(t *testing.T) {
	t.Parallel()

	alfred := Alfred{PreferencesPath: filepath.Join(t.TempDir(), "missing.plist")}
	_, err := alfred.SyncDir()
	require.Error(t, err)

	var nf *gofrederrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "Alfred installation", nf.Resource)
}

func TestSyncDirFailsWhenSyncFolderUnset(t *testing.T) {
	t.Parallel()

	prefsPath := filepath.Join(t.TempDir(), "prefs.plist")
	data, err := plist.Marshal(map[string]any{"appearance": "dark"}, plist.XMLFormat)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(prefsPath, data, 0o644))

	_, err = Alfred{PreferencesPath: prefsPath}.SyncDir()
	require.Error(t, err)
}

func TestSyncDirFailsWhenTargetMissing(t *testing.T) {
	t.Parallel()

	prefsPath := filepath.Join(t.TempDir(), "prefs.plist")
	data, err := plist.Marshal(map[string]any{"syncfolder": "/nonexistent/sync/dir"}, plist.XMLFormat)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(prefsPath, data, 0o644))

	_, err = Alfred{PreferencesPath: prefsPath}.SyncDir()
	require.Error(t, err)
}

func TestDefaultAlfredHonorsOverride(t *testing.T) {
	t.Setenv(EnvPreferencesOverride, "/tmp/custom.plist")

	alfred, err := DefaultAlfred()
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.plist", alfred.PreferencesPath)
}

func TestOpenRequiresManifestMarker(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Open(dir)
	require.Error(t, err)

	var nf *gofrederrors.NotFoundError
	require.ErrorAs(t, err, &nf)

	wfDir := filepath.Join(dir, WorkflowDirName)
	require.NoError(t, os.MkdirAll(wfDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(wfDir, ManifestName), []byte("<plist/>"), 0o644))

	p, err := Open(dir)
	require.NoError(t, err)
	require.Equal(t, wfDir, p.WorkflowDir())
}
