package ports

import "context"

// CommandRunner executes one external command and classifies its
// termination.
type CommandRunner interface {
	// Run blocks until the command terminates; no timeout is applied.
	// Success returns the captured stdout text. Every other outcome is one
	// of the process error types in domain/errors: ProcessExitError,
	// ProcessSignaledError, or ProcessSpawnError. A working-directory
	// resolution failure surfaces as InvalidPathError without spawning.
	Run(ctx context.Context, req CommandRequest) (string, error)
}

// CommandRequest holds the parameters of one process invocation.
type CommandRequest struct {
	Command   string
	Arguments []string

	// WorkingDirectory is a sandbox fragment sequence, resolved through the
	// path sandbox before the command is spawned. Empty means the command
	// inherits the bridge's working directory.
	WorkingDirectory []string
}
