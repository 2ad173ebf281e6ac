package host

import (
	"io"
	"log/slog"

	"github.com/geeksperiments/elm-script/domain/entities"
	"github.com/geeksperiments/elm-script/domain/ports"
)

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithTempRegistry substitutes the temporary-directory registry.
func WithTempRegistry(registry ports.TempRegistry) DispatcherOption {
	return func(d *Dispatcher) {
		if registry != nil {
			d.registry = registry
		}
	}
}

// WithCommandRunner substitutes the command runner. This is useful for
// injecting fakes during testing.
func WithCommandRunner(runner ports.CommandRunner) DispatcherOption {
	return func(d *Dispatcher) {
		if runner != nil {
			d.runner = runner
		}
	}
}

// WithStdout redirects writeStdout output.
func WithStdout(w io.Writer) DispatcherOption {
	return func(d *Dispatcher) {
		if w != nil {
			d.stdout = w
		}
	}
}

// WithLogger sets the logger used for fatal diagnostics.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithBridgeVersion overrides the version checkVersion requests are
// compared against. The default is entities.BridgeVersion.
func WithBridgeVersion(v entities.Version) DispatcherOption {
	return func(d *Dispatcher) {
		d.version = v
	}
}
