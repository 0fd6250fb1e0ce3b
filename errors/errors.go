package errors

import (
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseValidate Phase = "validate" // byte sequence validation
	PhaseDecode   Phase = "decode"   // reading guest memory
	PhaseLoad     Phase = "load"     // module loading and instantiation
	PhaseConfig   Phase = "config"   // configuration and flags
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidUTF8  Kind = "invalid_utf8"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindOverflow     Kind = "overflow"
	KindNilPointer   Kind = "nil_pointer"
	KindNotFound     Kind = "not_found"
	KindInvalidInput Kind = "invalid_input"
)

// NoOffset marks an Error that is not tied to a byte position.
const NoOffset = -1

// maxPreview bounds the number of bytes rendered by InvalidUTF8.
const maxPreview = 32

// Error is the structured error type used throughout the module
type Error struct {
	Value       any
	Cause       error
	Phase       Phase
	Kind        Kind
	Explanation string
	Detail      string
	Path        []string
	Offset      int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Explanation != "" {
		b.WriteString(": ")
		b.WriteString(e.Explanation)
	}

	if e.Offset >= 0 {
		b.WriteString(" (offset ")
		b.WriteString(strconv.Itoa(e.Offset))
		b.WriteByte(')')
	}

	if e.Detail != "" {
		if e.Explanation != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Offset sets the byte offset the error refers to
func (b *Builder) Offset(offset int) *Builder {
	b.err.Offset = offset
	return b
}

// Explanation sets the fixed, machine-comparable reason text
func (b *Builder) Explanation(s string) *Builder {
	b.err.Explanation = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidUTF8 creates an invalid UTF-8 error. window holds the bytes around
// the failure and is rendered as hex, truncated to 32 bytes.
func InvalidUTF8(phase Phase, path []string, offset int, explanation string, window []byte) *Error {
	preview := window
	if len(preview) > maxPreview {
		preview = preview[:maxPreview]
	}
	return &Error{
		Phase:       phase,
		Kind:        KindInvalidUTF8,
		Path:        path,
		Offset:      offset,
		Explanation: explanation,
		Detail:      "near " + hex.EncodeToString(preview),
		Value:       offset,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, offset, length, size uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Offset: NoOffset,
		Detail: fmt.Sprintf("range [%d, %d) out of bounds (size %d)", offset, uint64(offset)+uint64(length), size),
		Value:  offset,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, limit any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Offset: NoOffset,
		Detail: fmt.Sprintf("value %v exceeds maximum %v", value, limit),
		Value:  value,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Path:   path,
		Offset: NoOffset,
		Detail: "nil " + what,
	}
}

// NotFound creates a not found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Offset: NoOffset,
		Detail: fmt.Sprintf("%s %q not found", what, name),
		Value:  name,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Path:   path,
		Offset: NoOffset,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
