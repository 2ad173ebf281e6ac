package host

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/geeksperiments/elm-script/domain/ports"
)

// Compile-time interface compliance check
var _ ports.ProgramLoader = (*Loader)(nil)

// Loader compiles guest program artifacts with a shared wazero runtime.
type Loader struct {
	runtime wazero.Runtime
}

// NewLoader creates a loader with WASI available to guest programs.
func NewLoader(ctx context.Context) *Loader {
	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	return &Loader{runtime: rt}
}

// Close releases the underlying runtime and every module instantiated
// through it.
func (l *Loader) Close(ctx context.Context) error {
	return l.runtime.Close(ctx)
}

// abiExports are the functions every guest artifact exports for the memory
// protocol; they are never program entry points.
var abiExports = map[string]bool{
	"allocate":    true,
	"deallocate":  true,
	"_initialize": true,
	"_start":      true,
}

// Load compiles an artifact and locates its single program entry point: the
// one exported function left after discarding the memory-protocol exports.
// Artifacts exporting zero or several candidates are rejected.
func (l *Loader) Load(ctx context.Context, artifact []byte) (ports.GuestProgram, error) {
	compiled, err := l.runtime.CompileModule(ctx, artifact)
	if err != nil {
		return nil, fmt.Errorf("failed to compile program artifact: %w", err)
	}

	var entries []string
	for name := range compiled.ExportedFunctions() {
		if !abiExports[name] {
			entries = append(entries, name)
		}
	}
	sort.Strings(entries)

	switch len(entries) {
	case 1:
		return &Program{loader: l, compiled: compiled, entry: entries[0]}, nil
	case 0:
		return nil, fmt.Errorf("program artifact exports no program entry point")
	default:
		return nil, fmt.Errorf("program artifact exports %d candidate entry points (%s); exactly one is required",
			len(entries), strings.Join(entries, ", "))
	}
}
