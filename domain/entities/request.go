package entities

import (
	"encoding/json"
	"fmt"
)

// RequestKind identifies the operation a guest program asks the bridge to
// perform. The set is closed: the dispatcher matches kinds exhaustively and
// treats anything outside it as fatal, because an unknown kind means the
// script was built against a protocol this bridge does not speak.
type RequestKind string

const (
	KindCheckVersion             RequestKind = "checkVersion"
	KindWriteStdout              RequestKind = "writeStdout"
	KindExit                     RequestKind = "exit"
	KindReadFile                 RequestKind = "readFile"
	KindWriteFile                RequestKind = "writeFile"
	KindListFiles                RequestKind = "listFiles"
	KindListSubdirectories       RequestKind = "listSubdirectories"
	KindExecute                  RequestKind = "execute"
	KindCopyFile                 RequestKind = "copyFile"
	KindMoveFile                 RequestKind = "moveFile"
	KindDeleteFile               RequestKind = "deleteFile"
	KindStat                     RequestKind = "stat"
	KindCreateDirectory          RequestKind = "createDirectory"
	KindRemoveDirectory          RequestKind = "removeDirectory"
	KindObliterateDirectory      RequestKind = "obliterateDirectory"
	KindCreateTemporaryDirectory RequestKind = "createTemporaryDirectory"
)

// KnownKinds returns every request kind the bridge understands, in protocol
// order.
func KnownKinds() []RequestKind {
	return []RequestKind{
		KindCheckVersion,
		KindWriteStdout,
		KindExit,
		KindReadFile,
		KindWriteFile,
		KindListFiles,
		KindListSubdirectories,
		KindExecute,
		KindCopyFile,
		KindMoveFile,
		KindDeleteFile,
		KindStat,
		KindCreateDirectory,
		KindRemoveDirectory,
		KindObliterateDirectory,
		KindCreateTemporaryDirectory,
	}
}

// Request is one guest-to-bridge message. Value holds the payload encoded
// per Kind; the dispatcher decodes it into the matching typed value.
type Request struct {
	Kind  RequestKind     `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

// NewRequest builds a Request with its payload already encoded. A nil
// payload produces a request with no value, as used by
// createTemporaryDirectory.
func NewRequest(kind RequestKind, payload any) (Request, error) {
	if payload == nil {
		return Request{Kind: kind}, nil
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return Request{}, fmt.Errorf("failed to encode %s payload: %w", kind, err)
	}
	return Request{Kind: kind, Value: value}, nil
}

// WriteFileValue is the payload of a writeFile request.
type WriteFileValue struct {
	Path     []string `json:"path"`
	Contents string   `json:"contents"`
}

// TransferValue is the payload of copyFile and moveFile requests.
type TransferValue struct {
	SourcePath      []string `json:"sourcePath"`
	DestinationPath []string `json:"destinationPath"`
}

// ExecuteValue is the payload of an execute request.
type ExecuteValue struct {
	Command   string         `json:"command"`
	Arguments []string       `json:"arguments"`
	Options   ExecuteOptions `json:"options"`
}

// ExecuteOptions carries the optional settings of an execute request. An
// absent working directory means the command inherits the bridge's own.
type ExecuteOptions struct {
	WorkingDirectory []string `json:"workingDirectory,omitempty"`
}
