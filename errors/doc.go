// Package errors provides structured error types for the utf8scan module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the byte offset of the failure, the fixed explanation
// text of the violated rule, an optional field path and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOverflow).
//		Path("request", "body").
//		Detail("string size %d exceeds maximum %d", n, max).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidUTF8(errors.PhaseValidate, nil, 4, "Invalid initial byte seen", window)
//	err := errors.OutOfBounds(errors.PhaseDecode, path, ptr, length, size)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
