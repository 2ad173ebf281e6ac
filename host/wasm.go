package host

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/geeksperiments/elm-script/domain/entities"
	"github.com/geeksperiments/elm-script/domain/ports"
)

// Compile-time interface compliance check
var _ ports.GuestProgram = (*Program)(nil)

// Program is a compiled guest program ready to run.
type Program struct {
	loader   *Loader
	compiled wazero.CompiledModule
	entry    string
}

// Entry returns the name of the program's entry point export.
func (p *Program) Entry() string {
	return p.entry
}

// Run instantiates the program and calls its entry point with the encoded
// run configuration. Each guest call to script_request forwards exactly one
// Request on the channel and blocks until the matching Response arrives, so
// requests reach the dispatcher strictly one at a time.
func (p *Program) Run(ctx context.Context, cfg entities.RunConfig, requests chan<- entities.Request, responses <-chan entities.Response) error {
	builder := p.loader.runtime.NewHostModuleBuilder("elm_script_bridge")
	builder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, packed uint64) uint64 {
			ptr := uint32(packed >> 32)
			length := uint32(packed)
			payload, ok := m.Memory().Read(ptr, length)
			if !ok {
				return 0
			}

			var req entities.Request
			if err := json.Unmarshal(payload, &req); err != nil {
				// A malformed envelope never reaches the dispatcher; answer
				// the guest directly with a structured error.
				return writeBody(ctx, m, entities.ErrorBody{Message: "malformed request envelope: " + err.Error()})
			}

			requests <- req
			resp := <-responses
			return writeBody(ctx, m, resp.Body)
		}).
		Export("script_request")

	env, err := builder.Instantiate(ctx)
	if err != nil {
		return fmt.Errorf("failed to register bridge host functions: %w", err)
	}
	defer env.Close(ctx)

	mod, err := p.loader.runtime.InstantiateModule(ctx, p.compiled, wazero.NewModuleConfig().WithName("program"))
	if err != nil {
		return fmt.Errorf("failed to instantiate program: %w", err)
	}
	defer mod.Close(ctx)

	if initialize := mod.ExportedFunction("_initialize"); initialize != nil {
		if _, err := initialize.Call(ctx); err != nil {
			return fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	cfgBytes, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode run configuration: %w", err)
	}

	allocate := mod.ExportedFunction("allocate")
	if allocate == nil {
		return fmt.Errorf("program does not export 'allocate'")
	}
	allocated, err := allocate.Call(ctx, uint64(len(cfgBytes)))
	if err != nil {
		return fmt.Errorf("failed to allocate in program memory: %w", err)
	}
	if len(allocated) == 0 {
		return fmt.Errorf("allocate returned no results")
	}
	cfgPtr := uint32(allocated[0])
	if !mod.Memory().Write(cfgPtr, cfgBytes) {
		return fmt.Errorf("failed to write run configuration to program memory")
	}

	entry := mod.ExportedFunction(p.entry)
	if entry == nil {
		return fmt.Errorf("export %q not found", p.entry)
	}
	if _, err := entry.Call(ctx, uint64(cfgPtr), uint64(len(cfgBytes))); err != nil {
		return fmt.Errorf("program %q failed: %w", p.entry, err)
	}
	return nil
}

// writeBody marshals a response body into guest memory and returns the
// packed pointer/length. A zero return tells the guest the bridge could not
// deliver the response.
func writeBody(ctx context.Context, m api.Module, body any) uint64 {
	data, err := json.Marshal(body)
	if err != nil {
		return 0
	}
	allocate := m.ExportedFunction("allocate")
	if allocate == nil {
		return 0
	}
	results, err := allocate.Call(ctx, uint64(len(data)))
	if err != nil || len(results) == 0 {
		return 0
	}
	ptr := uint32(results[0])
	if !m.Memory().Write(ptr, data) {
		return 0
	}
	return (uint64(ptr) << 32) | uint64(len(data))
}
