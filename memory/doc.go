// Package memory validates and lifts UTF-8 strings stored in WebAssembly
// linear memory.
//
// This package bridges wazero's memory API with the utf8 validator, so guest
// supplied strings are checked in place before they become Go strings.
//
// # Memory Wrapper
//
// Wraps wazero api.Memory as a read-only utf8scan.Memory:
//
//	mem := memory.WrapMemory(mod.ExportedMemory("memory"))
//
// # Strings
//
// Canonical ABI strings are a (ptr, len) pair of little-endian u32 values:
//
//	s, err := memory.LiftString(mem, ptr, length)   // pair already known
//	s, err := memory.LiftStringAt(mem, addr)        // pair stored at addr
//	reason, ok, err := memory.Validate(mem, ptr, length)
//	ptr, length, err := memory.ReadPair(mem, addr)     // pair only
//
// Invalid UTF-8 is reported as an *errors.Error of kind KindInvalidUTF8 whose
// Offset is relative to ptr.
//
// # Modules
//
// Open instantiates a module with WASI preview1 available but without running
// its start functions, which is enough to inspect data segments:
//
//	m, err := memory.Open(ctx, wasmBytes, "memory")
//	defer m.Close(ctx)
package memory
