package hostfuncs

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	derrors "github.com/geeksperiments/elm-script/domain/errors"
	"github.com/geeksperiments/elm-script/domain/ports"
)

// Compile-time interface compliance check
var _ ports.CommandRunner = Runner{}

// Runner is the host-process implementation of ports.CommandRunner.
type Runner struct{}

// Run implements ports.CommandRunner.
func (Runner) Run(ctx context.Context, req ports.CommandRequest) (string, error) {
	return PerformExecCommand(ctx, req)
}

// PerformExecCommand spawns an external command, waits for it to terminate,
// and classifies the outcome. No timeout is applied: a hung command hangs
// the request that issued it.
//
// Classification, in priority order: exit status 0 returns the captured
// stdout text; a nonzero status is a ProcessExitError; termination by
// signal is a ProcessSignaledError; anything else (spawn failure, stream
// failure) is a ProcessSpawnError whose message prefers captured stderr
// content when any was produced.
func PerformExecCommand(ctx context.Context, req ports.CommandRequest) (string, error) {
	//nolint:gosec // G204: command execution is the purpose of this function
	cmd := exec.CommandContext(ctx, req.Command, req.Arguments...)
	if len(req.WorkingDirectory) > 0 {
		dir, err := ResolvePath(req.WorkingDirectory)
		if err != nil {
			return "", err
		}
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ProcessState != nil && exitErr.ProcessState.Exited() {
			return "", &derrors.ProcessExitError{Code: exitErr.ExitCode()}
		}
		return "", &derrors.ProcessSignaledError{}
	}

	message := strings.TrimSpace(stderr.String())
	if message == "" {
		message = err.Error()
	}
	return "", &derrors.ProcessSpawnError{Message: message}
}
