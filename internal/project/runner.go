package project

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/alexisbeaulieu97/gofred/internal/logger"
	gofrederrors "github.com/alexisbeaulieu97/gofred/pkg/errors"
)

// Runner executes external commands in a working directory. The vendorer
// and packager depend on this seam so tests can observe the exact argv
// without running the toolchain.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

type execRunner struct {
	log *logger.Logger
}

// NewRunner returns a Runner backed by os/exec.
func NewRunner(log *logger.Logger) Runner {
	return &execRunner{log: log}
}

func (r *execRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	r.log.Debugf("running: %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		op := name + " " + strings.Join(args, " ")
		if len(output) > 0 {
			return gofrederrors.NewExecutionError(op, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output))))
		}
		return gofrederrors.NewExecutionError(op, err)
	}

	return nil
}
