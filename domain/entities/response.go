package entities

// Response is one bridge-to-guest message. Body is either the success
// payload for the request's kind (nil for unit results, encoded as JSON
// null on the wire) or one of the structured error bodies below. Exactly
// one Response is sent per handled Request, always before the next Request
// is accepted.
type Response struct {
	Body any
}

// ErrorBody is the generic structured error shape returned for recoverable
// filesystem and path failures.
type ErrorBody struct {
	Message string `json:"message"`
}

// ExecExitedBody reports an execute request whose command ran but exited
// with a nonzero status.
type ExecExitedBody struct {
	Error string `json:"error"` // always "exited"
	Code  int    `json:"code"`
}

// ExecTerminatedBody reports an execute request whose command was killed by
// a signal, so no exit code is available.
type ExecTerminatedBody struct {
	Error string `json:"error"` // always "terminated"
}

// ExecFailedBody reports an execute request whose command could not be
// spawned or whose output could not be read.
type ExecFailedBody struct {
	Error   string `json:"error"` // always "failed"
	Message string `json:"message"`
}

// FileKind is the success payload of a stat request.
type FileKind string

const (
	FileKindFile        FileKind = "file"
	FileKindDirectory   FileKind = "directory"
	FileKindOther       FileKind = "other"
	FileKindNonexistent FileKind = "nonexistent"
)
