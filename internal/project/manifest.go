package project

import (
	"os"

	"github.com/google/uuid"
	"howett.net/plist"

	gofrederrors "github.com/alexisbeaulieu97/gofred/pkg/errors"
)

const (
	// EntryScriptName is the script filter's entry point inside the
	// workflow directory. It execs the compiled binary when present and
	// falls back to `go run` during development.
	EntryScriptName = "workflow.sh"

	clipboardObjectType    = "alfred.workflow.output.clipboard"
	scriptFilterObjectType = "alfred.workflow.input.scriptfilter"

	initialVersion = "0.0.1"
)

// Connection is one edge in the manifest's object graph.
type Connection struct {
	DestinationUID string `plist:"destinationuid"`
}

// Object is one node in the manifest's object graph.
type Object struct {
	UID    string         `plist:"uid"`
	Type   string         `plist:"type"`
	Config map[string]any `plist:"config"`
}

// Manifest is the Info.plist describing a workflow's trigger, metadata and
// internal wiring.
type Manifest struct {
	Name        string                  `plist:"name"`
	Description string                  `plist:"description"`
	BundleID    string                  `plist:"bundleid"`
	CreatedBy   string                  `plist:"createdby"`
	Connections map[string][]Connection `plist:"connections"`
	UIData      map[string]any          `plist:"uidata"`
	Variables   map[string]string       `plist:"variables"`
	Version     string                  `plist:"version"`
	WebAddress  string                  `plist:"webaddress"`
	Objects     []Object                `plist:"objects"`
}

// NewManifest builds the manifest for a freshly scaffolded workflow: a
// script filter node wired to a clipboard output node, both with freshly
// generated identifiers.
func NewManifest(name, keyword, bundleID, author, website, description string) *Manifest {
	scriptUID := uuid.NewString()
	clipboardUID := uuid.NewString()

	return &Manifest{
		Name:        name,
		Description: description,
		BundleID:    bundleID,
		CreatedBy:   author,
		Connections: map[string][]Connection{
			scriptUID: {{DestinationUID: clipboardUID}},
		},
		UIData: map[string]any{},
		// Make the compiled workflow resolve dependencies from the
		// vendored directory.
		Variables:  map[string]string{"GOFLAGS": "-mod=vendor"},
		Version:    initialVersion,
		WebAddress: website,
		Objects: []Object{
			{
				UID:    clipboardUID,
				Type:   clipboardObjectType,
				Config: map[string]any{"clipboardtext": "{query}"},
			},
			{
				UID:  scriptUID,
				Type: scriptFilterObjectType,
				Config: map[string]any{
					"keyword":    keyword,
					"scriptfile": EntryScriptName,
					// Keyword should be followed by whitespace.
					"withspace": true,
					// Argument optional.
					"argumenttype": 1,
					// Placeholder title.
					"title": "Search",
					// "Please wait" subtext.
					"runningsubtext": "Loading...",
					// External script.
					"type": 8,
					// Terminate previous script.
					"queuemode": 2,
					// Always run immediately for the first typed character.
					"queuedelayimmediatelyinitially": true,
					// Don't set argv when empty.
					"argumenttreatemptyqueryasnil": true,
				},
			},
		},
	}
}

// Write serializes the manifest as an XML property list at path.
func (m *Manifest) Write(path string) error {
	data, err := plist.MarshalIndent(m, plist.XMLFormat, "\t")
	if err != nil {
		return gofrederrors.NewExecutionError("encode manifest", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return gofrederrors.NewExecutionError("write manifest", err)
	}
	return nil
}

// ReadManifest parses a manifest plist from path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gofrederrors.NewExecutionError("read manifest", err)
	}
	m := &Manifest{}
	if _, err := plist.Unmarshal(data, m); err != nil {
		return nil, gofrederrors.NewExecutionError("parse manifest", err)
	}
	return m, nil
}
