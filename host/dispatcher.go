package host

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/geeksperiments/elm-script/domain/entities"
	derrors "github.com/geeksperiments/elm-script/domain/errors"
	"github.com/geeksperiments/elm-script/domain/ports"
	"github.com/geeksperiments/elm-script/hostfuncs"
)

// Dispatcher drives the bridge's request/response loop. It alternates
// between awaiting a request and handling it: the response for request N is
// always sent before request N+1 is received, and at most one request is in
// flight at any instant.
type Dispatcher struct {
	requests  <-chan entities.Request
	responses chan<- entities.Response

	registry ports.TempRegistry
	runner   ports.CommandRunner
	stdout   io.Writer
	logger   *slog.Logger
	version  entities.Version
}

// NewDispatcher creates a dispatcher over the given channel pair with host
// defaults: a fresh temporary-directory registry, the host-process command
// runner, standard output for writeStdout, and the bridge's own protocol
// version.
func NewDispatcher(requests <-chan entities.Request, responses chan<- entities.Response, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		requests:  requests,
		responses: responses,
		registry:  hostfuncs.NewTempDirRegistry(),
		runner:    hostfuncs.Runner{},
		stdout:    os.Stdout,
		logger:    slog.Default(),
		version:   entities.BridgeVersion,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Serve processes requests until the script asks to exit, a fatal condition
// occurs, the request channel closes, or the context is canceled. It
// returns the process exit code rather than terminating itself, and runs
// registry cleanup on every return path.
//
// Fatal conditions (version mismatch, unrecognized request kind) log a
// diagnostic and return without responding; no further protocol progress is
// meaningful then. Every recoverable failure becomes a structured error
// response and the loop continues.
func (d *Dispatcher) Serve(ctx context.Context) int {
	defer d.registry.CleanupAll()

	for {
		var req entities.Request
		var ok bool
		select {
		case <-ctx.Done():
			return 1
		case req, ok = <-d.requests:
			if !ok {
				// Guest finished without an explicit exit request.
				return 0
			}
		}

		switch req.Kind {
		case entities.KindCheckVersion:
			var required entities.Version
			if err := decode(req.Value, &required); err != nil {
				d.respond(derrors.ToBody(err))
				continue
			}
			if err := hostfuncs.CheckVersion(required, d.version); err != nil {
				d.logger.Error(err.Error())
				return 1
			}
			d.respond(nil)

		case entities.KindExit:
			var code int
			if err := decode(req.Value, &code); err != nil {
				d.respond(derrors.ToBody(err))
				continue
			}
			return code

		default:
			body, fatal := d.handle(ctx, req)
			if fatal != nil {
				d.logger.Error(fatal.Error())
				return 1
			}
			d.respond(body)
		}
	}
}

// handle runs one recoverable request. Internal failures, including panics,
// never escape the dispatch boundary: they become the structured error body
// of the response. The returned error is non-nil only for request kinds
// outside the protocol, which the caller treats as fatal.
func (d *Dispatcher) handle(ctx context.Context, req entities.Request) (body any, fatal error) {
	defer func() {
		if r := recover(); r != nil {
			body = entities.ErrorBody{Message: fmt.Sprintf("panic: %v", r)}
			fatal = nil
		}
	}()

	body, err := d.dispatch(ctx, req)
	if err != nil {
		var unknown *derrors.UnknownRequestKindError
		if errors.As(err, &unknown) {
			return nil, err
		}
		body = derrors.ToBody(err)
	}
	return body, nil
}

// dispatch routes one request to its capability. The switch is exhaustive
// over the closed kind enumeration; checkVersion and exit never reach it
// because Serve intercepts them before dispatch.
func (d *Dispatcher) dispatch(ctx context.Context, req entities.Request) (any, error) {
	switch req.Kind {
	case entities.KindWriteStdout:
		var text string
		if err := decode(req.Value, &text); err != nil {
			return nil, err
		}
		// writeStdout has no structured error shape; a write failure is
		// logged and the request still succeeds from the guest's view.
		if _, err := io.WriteString(d.stdout, text); err != nil {
			d.logger.Warn("failed to write script output", "error", err)
		}
		return nil, nil

	case entities.KindReadFile:
		path, err := decodePath(req.Value)
		if err != nil {
			return nil, err
		}
		contents, err := hostfuncs.PerformReadFile(path)
		return contents, err

	case entities.KindWriteFile:
		var value entities.WriteFileValue
		if err := decode(req.Value, &value); err != nil {
			return nil, err
		}
		return nil, hostfuncs.PerformWriteFile(value.Path, value.Contents)

	case entities.KindListFiles:
		path, err := decodePath(req.Value)
		if err != nil {
			return nil, err
		}
		names, err := hostfuncs.PerformListFiles(path)
		return names, err

	case entities.KindListSubdirectories:
		path, err := decodePath(req.Value)
		if err != nil {
			return nil, err
		}
		names, err := hostfuncs.PerformListSubdirectories(path)
		return names, err

	case entities.KindExecute:
		var value entities.ExecuteValue
		if err := decode(req.Value, &value); err != nil {
			return nil, err
		}
		output, err := d.runner.Run(ctx, ports.CommandRequest{
			Command:          value.Command,
			Arguments:        value.Arguments,
			WorkingDirectory: value.Options.WorkingDirectory,
		})
		return output, err

	case entities.KindCopyFile:
		var value entities.TransferValue
		if err := decode(req.Value, &value); err != nil {
			return nil, err
		}
		return nil, hostfuncs.PerformCopyFile(value.SourcePath, value.DestinationPath)

	case entities.KindMoveFile:
		var value entities.TransferValue
		if err := decode(req.Value, &value); err != nil {
			return nil, err
		}
		return nil, hostfuncs.PerformMoveFile(value.SourcePath, value.DestinationPath)

	case entities.KindDeleteFile:
		path, err := decodePath(req.Value)
		if err != nil {
			return nil, err
		}
		return nil, hostfuncs.PerformDeleteFile(path)

	case entities.KindStat:
		path, err := decodePath(req.Value)
		if err != nil {
			return nil, err
		}
		kind, err := hostfuncs.PerformStat(path)
		if err != nil {
			return nil, err
		}
		return kind, nil

	case entities.KindCreateDirectory:
		path, err := decodePath(req.Value)
		if err != nil {
			return nil, err
		}
		return nil, hostfuncs.PerformCreateDirectory(path)

	case entities.KindRemoveDirectory:
		path, err := decodePath(req.Value)
		if err != nil {
			return nil, err
		}
		return nil, hostfuncs.PerformRemoveDirectory(path)

	case entities.KindObliterateDirectory:
		path, err := decodePath(req.Value)
		if err != nil {
			return nil, err
		}
		return nil, hostfuncs.PerformObliterateDirectory(path)

	case entities.KindCreateTemporaryDirectory:
		dir, err := d.registry.Create()
		return dir, err

	case entities.KindCheckVersion, entities.KindExit:
		// Intercepted by Serve; unreachable through the loop.
		return nil, fmt.Errorf("%s must be handled before dispatch", req.Kind)
	}

	return nil, &derrors.UnknownRequestKindError{Kind: string(req.Kind)}
}

func (d *Dispatcher) respond(body any) {
	d.responses <- entities.Response{Body: body}
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return fmt.Errorf("missing request payload")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("malformed request payload: %w", err)
	}
	return nil
}

func decodePath(raw json.RawMessage) ([]string, error) {
	var path []string
	if err := decode(raw, &path); err != nil {
		return nil, err
	}
	return path, nil
}
