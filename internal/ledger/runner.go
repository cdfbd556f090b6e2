package ledger

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes one engine invocation and returns its stdout. Implemented
// by ExecRunner in production and by fakes in tests.
type Runner interface {
	Run(args []string) ([]byte, error)
}

// CommandError reports a failed engine invocation: the process could not be
// started or exited non-zero. Output carries the combined stdout+stderr
// diagnostics.
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("ledger %s: %v", strings.Join(e.Args, " "), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExecRunner runs the engine binary synchronously, blocking until it exits.
type ExecRunner struct {
	Binary string
}

// Run executes the binary with args. Both output streams are fully drained
// before returning so the child is always reaped, including on failure.
func (r ExecRunner) Run(args []string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(r.Binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &CommandError{
			Args:   args,
			Output: stdout.String() + stderr.String(),
			Err:    err,
		}
	}
	return stdout.Bytes(), nil
}
