// Package faults defines the structured error taxonomy for composition
// requests. Every failure that escapes the pipeline is one of these,
// so callers can report a single classified error instead of a partial
// artifact.
package faults

import (
	"errors"
	"fmt"
)

// Code classifies a composition failure.
type Code string

const (
	// CodeInput marks invalid caller input: missing required values or
	// an unknown template id. Not retryable.
	CodeInput Code = "INPUT"

	// CodeResourceMissing marks a registered template whose file is
	// absent from storage (stale registry entry). Not retryable.
	CodeResourceMissing Code = "RESOURCE_MISSING"

	// CodeFetch marks a photo reference that could not be retrieved.
	CodeFetch Code = "FETCH"

	// CodeInternal marks any other recognition or composition failure.
	CodeInternal Code = "INTERNAL"
)

// Fault is a structured composition error.
type Fault struct {
	Code    Code
	Message string
	Cause   error
}

func (f *Fault) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Code, f.Message, f.Cause)
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

func (f *Fault) Unwrap() error { return f.Cause }

// Input reports invalid caller input.
func Input(format string, args ...interface{}) *Fault {
	return &Fault{Code: CodeInput, Message: fmt.Sprintf(format, args...)}
}

// ResourceMissing reports a resolvable template whose backing file is gone.
func ResourceMissing(format string, args ...interface{}) *Fault {
	return &Fault{Code: CodeResourceMissing, Message: fmt.Sprintf(format, args...)}
}

// Fetch reports a photo reference that could not be retrieved. The
// failing reference belongs in the message.
func Fetch(ref string, cause error) *Fault {
	return &Fault{Code: CodeFetch, Message: fmt.Sprintf("failed to fetch photo %q", ref), Cause: cause}
}

// Internal wraps any other pipeline failure.
func Internal(msg string, cause error) *Fault {
	return &Fault{Code: CodeInternal, Message: msg, Cause: cause}
}

// CodeOf returns the Code carried by err, or CodeInternal when err is
// not a Fault.
func CodeOf(err error) Code {
	var f *Fault
	if errors.As(err, &f) {
		return f.Code
	}
	return CodeInternal
}
