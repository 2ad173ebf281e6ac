// Package errors provides the bridge's error taxonomy. All types support
// unwrapping via errors.As, and errors that map to a non-generic wire shape
// implement BodiedError so ToBody can pick the right structured body.
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/geeksperiments/elm-script/domain/entities"
)

// BodiedError is implemented by errors that convert themselves into a
// specific structured response body instead of the generic {"message"}
// shape.
type BodiedError interface {
	error
	ToBody() any
}

// ToBody converts a handler error into the structured body sent back to the
// guest. Errors without their own body shape become an ErrorBody carrying
// the error text.
func ToBody(err error) any {
	if err == nil {
		return nil
	}
	var be BodiedError
	if stdErrors.As(err, &be) {
		return be.ToBody()
	}
	return entities.ErrorBody{Message: err.Error()}
}

// InvalidPathError reports a containment violation or an empty fragment
// sequence. Fragment is the offending element, empty when the sequence
// itself was empty.
type InvalidPathError struct {
	Fragment string
}

func (e *InvalidPathError) Error() string {
	if e.Fragment == "" {
		return "invalid path: empty fragment sequence"
	}
	return fmt.Sprintf("invalid path: %q escapes its parent directory", e.Fragment)
}

// ProcessExitError reports a command that ran to completion but exited with
// a nonzero status.
type ProcessExitError struct {
	Code int
}

func (e *ProcessExitError) Error() string {
	return fmt.Sprintf("process exited with status %d", e.Code)
}

// ToBody implements BodiedError.
func (e *ProcessExitError) ToBody() any {
	return entities.ExecExitedBody{Error: "exited", Code: e.Code}
}

// ProcessSignaledError reports a command killed by a signal, leaving no
// exit code.
type ProcessSignaledError struct{}

func (e *ProcessSignaledError) Error() string {
	return "process terminated by a signal"
}

// ToBody implements BodiedError.
func (e *ProcessSignaledError) ToBody() any {
	return entities.ExecTerminatedBody{Error: "terminated"}
}

// ProcessSpawnError reports a command that could not be spawned or whose
// output streams could not be read. Message prefers captured stderr text
// when any was produced.
type ProcessSpawnError struct {
	Message string
}

func (e *ProcessSpawnError) Error() string {
	return fmt.Sprintf("process failed: %s", e.Message)
}

// ToBody implements BodiedError.
func (e *ProcessSpawnError) ToBody() any {
	return entities.ExecFailedBody{Error: "failed", Message: e.Message}
}

// VersionMismatchError reports an incompatible checkVersion requirement.
// It is fatal: no response is sent and the bridge terminates after cleanup.
// The message names which side needs upgrading.
type VersionMismatchError struct {
	Required entities.Version
	Running  entities.Version
}

func (e *VersionMismatchError) Error() string {
	switch {
	case e.Required.Major > e.Running.Major:
		return fmt.Sprintf("script requires elm-script %s but this bridge implements %s: upgrade the bridge",
			e.Required, e.Running)
	case e.Required.Major < e.Running.Major:
		return fmt.Sprintf("script was built for elm-script %s but this bridge implements %s: upgrade the script's elm-script dependency",
			e.Required, e.Running)
	default:
		return fmt.Sprintf("script requires elm-script %s but this bridge implements %s: upgrade the bridge",
			e.Required, e.Running)
	}
}

// UnknownRequestKindError reports a request kind outside the protocol's
// closed enumeration. It is fatal: the script speaks a newer protocol than
// this bridge.
type UnknownRequestKindError struct {
	Kind string
}

func (e *UnknownRequestKindError) Error() string {
	return fmt.Sprintf("unrecognized request kind %q: the script was likely built against a newer elm-script, upgrade this bridge", e.Kind)
}
