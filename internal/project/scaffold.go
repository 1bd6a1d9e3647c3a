package project

import (
	"bytes"
	"context"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	git "github.com/go-git/go-git/v5"

	"github.com/alexisbeaulieu97/gofred/internal/logger"
	gofrederrors "github.com/alexisbeaulieu97/gofred/pkg/errors"
)

//go:embed all:template
var templateFS embed.FS

const templateRoot = "template"

// ScaffoldOptions describes the workflow project to generate.
type ScaffoldOptions struct {
	// Name of the workflow and of the created directory.
	Name string
	// Keyword triggers the workflow in Alfred.
	Keyword string
	// BundleID identifies the workflow, usually in reverse DNS notation.
	BundleID string
	// Author, Website and Description are embedded in the manifest.
	Author      string
	Website     string
	Description string
	// Git controls whether a git repository is initialised. Failure to do
	// so is a warning, not fatal.
	Git bool
}

type templateData struct {
	Name   string
	Module string
}

// Scaffold creates a new workflow project under parentDir and links it into
// Alfred's workflows directory for live development.
//
// The project directory is rendered from the embedded template, the entry
// script is made executable, a manifest with two wired nodes is written,
// dependencies are vendored (best effort) and a development symlink is
// created. Scaffold fails when the target directory already exists.
func Scaffold(ctx context.Context, log *logger.Logger, r Runner, workflowsDir, parentDir string, opts ScaffoldOptions) error {
	log.Infof("creating new workflow: %s", opts.Name)

	root := filepath.Join(parentDir, opts.Name)
	if _, err := os.Lstat(root); err == nil {
		return gofrederrors.NewValidationError("name", "directory "+root+" already exists", nil)
	}

	log.Debugf("rendering template into %s", root)
	data := templateData{Name: opts.Name, Module: moduleName(opts.Name)}
	if err := renderTemplate(root, data); err != nil {
		// Leave nothing half-created behind.
		os.RemoveAll(root)
		return err
	}

	wfDir := filepath.Join(root, WorkflowDirName)
	entryScript := filepath.Join(wfDir, EntryScriptName)
	log.Debugf("adding +x permission to %s", entryScript)
	if err := os.Chmod(entryScript, 0o755); err != nil {
		return gofrederrors.NewExecutionError("chmod entry script", err)
	}

	if opts.Git {
		log.Debugf("initialising git repository")
		if _, err := git.PlainInit(root, false); err != nil {
			log.Warnf("failed to create git repository: %v. Ignoring.", err)
		}
	}

	log.Debugf("creating %s", ManifestName)
	manifest := NewManifest(opts.Name, opts.Keyword, opts.BundleID, opts.Author, opts.Website, opts.Description)
	if err := manifest.Write(filepath.Join(wfDir, ManifestName)); err != nil {
		return err
	}

	if err := Vendor(ctx, log, r, root); err != nil {
		log.Warnf("failed to vendor dependencies: %v", err)
	}

	return Link(log, workflowsDir, wfDir, LinkOptions{Relink: true})
}

// renderTemplate writes the embedded template below root. Files ending in
// .tmpl are executed as Go templates against data; everything else is
// copied verbatim.
func renderTemplate(root string, data templateData) error {
	return fs.WalkDir(templateFS, templateRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(path, templateRoot)
		rel = strings.TrimPrefix(rel, "/")
		dest := filepath.Join(root, rel)

		if entry.IsDir() {
			if mkerr := os.MkdirAll(dest, 0o755); mkerr != nil {
				return gofrederrors.NewExecutionError("create project directory", mkerr)
			}
			return nil
		}

		content, err := templateFS.ReadFile(path)
		if err != nil {
			return gofrederrors.NewExecutionError("read template", err)
		}

		if strings.HasSuffix(rel, ".tmpl") {
			dest = strings.TrimSuffix(dest, ".tmpl")

			tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
			if err != nil {
				return gofrederrors.NewExecutionError("parse template", err)
			}

			var rendered bytes.Buffer
			if err := tmpl.Execute(&rendered, data); err != nil {
				return gofrederrors.NewExecutionError("render template", err)
			}
			content = rendered.Bytes()
		}

		if err := os.WriteFile(dest, content, 0o644); err != nil {
			return gofrederrors.NewExecutionError("write project file", err)
		}
		return nil
	})
}

// moduleName derives a usable Go module path element from a workflow name.
func moduleName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	return name
}
