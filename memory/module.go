package memory

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"github.com/wippyai/utf8scan/errors"
)

// Module is an instantiated core module whose memory can be inspected.
type Module struct {
	rt     wazero.Runtime
	Memory *Wrapper
}

// Open compiles and instantiates wasm and looks up the memory exported as
// memoryName. Start functions are not run.
func Open(ctx context.Context, wasm []byte, memoryName string) (*Module, error) {
	rt := wazero.NewRuntime(ctx)

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
		rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "instantiate WASI preview1")
	}

	compiled, err := rt.CompileModule(ctx, wasm)
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "compile module")
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithStartFunctions())
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "instantiate module")
	}

	mem := mod.ExportedMemory(memoryName)
	if mem == nil {
		rt.Close(ctx)
		return nil, errors.NotFound(errors.PhaseLoad, "memory export", memoryName)
	}

	Logger().Debug("module opened",
		zap.String("memory", memoryName),
		zap.Uint32("size", mem.Size()))

	return &Module{rt: rt, Memory: WrapMemory(mem)}, nil
}

// Close releases the module and its runtime.
func (m *Module) Close(ctx context.Context) error {
	if m == nil || m.rt == nil {
		return nil
	}
	return m.rt.Close(ctx)
}
