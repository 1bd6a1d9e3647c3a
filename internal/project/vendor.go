package project

import (
	"context"

	"github.com/alexisbeaulieu97/gofred/internal/logger"
)

// Vendor installs the project's declared dependencies into the local vendor
// directory so the workflow builds without touching the module cache. The
// generated manifest sets GOFLAGS=-mod=vendor to match.
//
// Success is defined as the installer process exiting with status zero.
func Vendor(ctx context.Context, log *logger.Logger, r Runner, root string) error {
	log.Debugf("vendoring dependencies in %s", root)
	return r.Run(ctx, root, "go", "mod", "vendor")
}
