package project

import (
	"archive/zip"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/gofred/internal/logger"
	gofrederrors "github.com/alexisbeaulieu97/gofred/pkg/errors"
)

const (
	// DistDirName holds the produced archives.
	DistDirName = "dist"
	// ArchiveName is the distributable package. Users import it into
	// Alfred by double-clicking the file.
	ArchiveName = "workflow.alfredworkflow"
	// BinaryName is the compiled entry binary inside the workflow
	// directory.
	BinaryName = "workflow"
)

// Package builds a distributable archive for the project: dependencies are
// re-vendored, the entry binary is compiled into the workflow directory so
// the archive is self-contained, and the workflow directory is zipped into
// dist/workflow.alfredworkflow.
//
// A vendoring or build failure aborts before any archive is produced.
func Package(ctx context.Context, log *logger.Logger, r Runner, p *Project) error {
	if err := Vendor(ctx, log, r, p.Root); err != nil {
		return err
	}

	binary := filepath.Join(WorkflowDirName, BinaryName)
	log.Debugf("building workflow binary: %s", binary)
	if err := r.Run(ctx, p.Root, "go", "build", "-mod=vendor", "-o", binary, "."); err != nil {
		return err
	}

	distDir := filepath.Join(p.Root, DistDirName)
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		return gofrederrors.NewExecutionError("create dist directory", err)
	}

	archive := filepath.Join(distDir, ArchiveName)
	if err := zipDir(log, p.WorkflowDir(), archive); err != nil {
		return err
	}

	log.Infof("produced package at %s", archive)
	return nil
}

// zipDir compresses the contents of dir recursively, with entry paths
// relative to dir.
func zipDir(log *logger.Logger, dir, outputFile string) error {
	out, err := os.Create(outputFile)
	if err != nil {
		return gofrederrors.NewExecutionError("create archive", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		log.Debugf("adding to package: %s", path)

		info, err := entry.Info()
		if err != nil {
			return err
		}

		// Keep file modes so the entry script and binary stay executable
		// after import.
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		zw.Close()
		return gofrederrors.NewExecutionError("zip workflow", err)
	}

	if err := zw.Close(); err != nil {
		return gofrederrors.NewExecutionError("zip workflow", err)
	}
	return nil
}
