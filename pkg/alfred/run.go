package alfred

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/gofred/internal/logger"
	gofrederrors "github.com/alexisbeaulieu97/gofred/pkg/errors"
)

// Handler is the entry point of a script filter. Alfred invokes the
// workflow binary once per keystroke batch; script is the binary's own
// path, args are the trailing process arguments and env is nil when the
// process is not running under Alfred.
type Handler func(script string, args []string, env *Environment) (*ScriptFilterOutput, error)

// Run executes a script filter handler exactly once and prints its output
// as a single line of JSON on stdout.
//
// A handler error, a nil output or an output failing validation is a
// contract violation: it is logged to stderr and the process exits with
// status 1 before anything is written to stdout. Malformed output is never
// forwarded to Alfred.
func Run(h Handler) {
	if err := run(h, os.Args, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(h Handler, argv []string, stdout, stderr io.Writer) error {
	env := FromEnv()

	// Verbose logging both for manual runs outside Alfred and when the
	// Alfred debugger is open.
	log := logger.New(logger.Options{
		Debug:  env == nil || env.Debug,
		Human:  true,
		Writer: stderr,
	})

	if env == nil {
		log.Warnf("not running in an Alfred environment")
	}

	script := ""
	var args []string
	if len(argv) > 0 {
		script = argv[0]
		args = argv[1:]
	}

	output, err := h(script, args, env)
	if err != nil {
		log.Error(err, "script filter handler failed")
		return err
	}

	if output == nil {
		err := gofrederrors.NewValidationError("output", "handler returned no ScriptFilterOutput", nil)
		log.Error(err, "script filter handler returned nil output")
		return err
	}

	if err := output.Validate(); err != nil {
		log.Error(err, "script filter output is invalid")
		return err
	}

	data, err := json.Marshal(output)
	if err != nil {
		log.Error(err, "cannot serialize script filter output")
		return err
	}

	fmt.Fprintln(stdout, string(data))
	return nil
}
