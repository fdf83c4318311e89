package wasm

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// Run instantiates an encoded module and calls the exported zero-argument
// function export, returning its i32 result. The runtime is closed before
// Run returns; cancelling ctx stops a running call.
func Run(ctx context.Context, bin []byte, export string) (int32, error) {
	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().WithCloseOnContextDone(true))
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, bin)
	if err != nil {
		return 0, fmt.Errorf("wasm: instantiate: %w", err)
	}

	fn := mod.ExportedFunction(export)
	if fn == nil {
		return 0, fmt.Errorf("wasm: no exported function %q", export)
	}
	def := fn.Definition()
	if len(def.ParamTypes()) != 0 {
		return 0, fmt.Errorf("wasm: %q takes %d parameters, want none", export, len(def.ParamTypes()))
	}
	results := def.ResultTypes()
	if len(results) != 1 || results[0] != api.ValueTypeI32 {
		return 0, fmt.Errorf("wasm: %q does not return an i32", export)
	}

	res, err := fn.Call(ctx)
	if err != nil {
		return 0, fmt.Errorf("wasm: call %q: %w", export, err)
	}
	return api.DecodeI32(res[0]), nil
}
