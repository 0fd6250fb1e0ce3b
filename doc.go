// Package utf8scan validates and decodes UTF-8 text coming from untrusted
// buffers: Go strings, byte slices, and WebAssembly linear memory.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	utf8scan/            Root package with the read-only Memory interfaces
//	├── utf8/            Validator, failure reasons and the codepoint Cursor
//	├── memory/          wazero adapters: validate and lift guest strings in place
//	├── report/          Validation reports (text and JSON) with character names
//	├── errors/          Structured error types for debugging
//	└── cmd/utf8scan/    Command line tool and interactive inspector
//
// # Quick Start
//
// Validate a buffer and find out why it was rejected:
//
//	var reason utf8.Reason
//	if !utf8.ValidReason(buf, &reason) {
//	    log.Printf("byte %d: %s", reason.Position, reason.Explanation)
//	}
//
// Walk the codepoints of validated input:
//
//	for it := utf8.NewCursor(buf); !it.Done(); it.Next() {
//	    fmt.Printf("%U\n", it.Value())
//	}
//
// Lift a canonical ABI string out of a wazero module:
//
//	mem := memory.WrapMemory(mod.ExportedMemory("memory"))
//	s, err := memory.LiftString(mem, ptr, length)
//
// # Thread Safety
//
// Validation and decoding never mutate their input and keep no shared state,
// so they may run concurrently. A utf8.Cursor belongs to one goroutine.
//
// # Memory Model
//
// Guest strings are validated through a view of linear memory without
// copying. The view is only valid until the guest grows or writes its memory,
// so LiftString copies the bytes into a Go string after validation.
package utf8scan
