package memory

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"

	utf8scan "github.com/wippyai/utf8scan"
	"github.com/wippyai/utf8scan/errors"
)

var (
	_ utf8scan.Memory      = (*Wrapper)(nil)
	_ utf8scan.MemorySizer = (*Wrapper)(nil)
)

func TestWrapMemory_Nil(t *testing.T) {
	mem := WrapMemory(nil)
	if mem != nil {
		t.Error("expected nil for nil memory")
	}
}

func TestWrapper_NilReceiver(t *testing.T) {
	var mem *Wrapper
	if mem.Size() != 0 {
		t.Error("expected size 0 for nil wrapper")
	}
	_, err := mem.Read(0, 1)
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindNilPointer}) {
		t.Errorf("expected nil pointer error, got %v", err)
	}
	if _, err := mem.ReadU8(0); err == nil {
		t.Error("expected error from ReadU8")
	}
	if _, err := mem.ReadU32(0); err == nil {
		t.Error("expected error from ReadU32")
	}
}

func TestWrapper_Read(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, dataWASM(8, []byte{1, 2, 3, 4, 0x78, 0x56, 0x34, 0x12}))
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}
	defer compiled.Close(ctx)

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}
	defer mod.Close(ctx)

	mem := WrapMemory(mod.ExportedMemory("memory"))
	if mem == nil {
		t.Fatal("expected non-nil wrapped memory")
	}

	if mem.Size() != 65536 {
		t.Errorf("expected size 65536, got %d", mem.Size())
	}

	read, err := mem.Read(8, 4)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	for i, b := range read {
		if b != byte(i+1) {
			t.Errorf("byte %d: expected %d, got %d", i, i+1, b)
		}
	}

	v8, err := mem.ReadU8(10)
	if err != nil {
		t.Fatalf("ReadU8 failed: %v", err)
	}
	if v8 != 3 {
		t.Errorf("ReadU8: expected 3, got %d", v8)
	}

	v32, err := mem.ReadU32(12)
	if err != nil {
		t.Fatalf("ReadU32 failed: %v", err)
	}
	if v32 != 0x12345678 {
		t.Errorf("ReadU32: expected 0x12345678, got 0x%x", v32)
	}
}

func TestWrapper_ReadOutOfBounds(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, memoryWASM)
	if err != nil {
		t.Fatalf("failed to compile: %v", err)
	}
	defer compiled.Close(ctx)

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}
	defer mod.Close(ctx)

	mem := WrapMemory(mod.ExportedMemory("memory"))

	oob := &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds}

	_, err = mem.Read(65530, 10)
	if !errors.Is(err, oob) {
		t.Errorf("Read: expected out of bounds error, got %v", err)
	}

	_, err = mem.ReadU8(65536)
	if !errors.Is(err, oob) {
		t.Errorf("ReadU8: expected out of bounds error, got %v", err)
	}

	_, err = mem.ReadU32(65534)
	if !errors.Is(err, oob) {
		t.Errorf("ReadU32: expected out of bounds error, got %v", err)
	}
}
