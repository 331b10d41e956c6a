package vector

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every error returned by this package is an *Error that
// matches one of these (or the element's own error) with errors.Is.
var (
	// ErrOutOfMemory is returned when a storage block cannot be allocated.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrNotCopyable is returned when a copy is requested for an element
	// type that declares itself NonCopyable.
	ErrNotCopyable = errors.New("element type is not copy-constructible")
)

// Kind categorizes an Error.
type Kind string

const (
	KindAllocation   Kind = "allocation"   // backing block could not be obtained
	KindConstruction Kind = "construction" // element construct, copy or move failed
	KindUnsupported  Kind = "unsupported"  // element lacks a required capability
)

// Error describes a failed container operation. The container is left in
// the state documented for the operation (unchanged for growth and
// relocation failures).
type Error struct {
	Cause error
	Op    string
	Kind  Kind
	// Index is the slot being constructed when the failure happened, or -1.
	Index int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("vector: ")
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(string(e.Kind))
	if e.Index >= 0 {
		fmt.Fprintf(&b, " at slot %d", e.Index)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind && (t.Op == "" || t.Op == e.Op)
	}
	return false
}

func allocError(capacity int, cause error) *Error {
	if cause == nil {
		cause = ErrOutOfMemory
	} else if !errors.Is(cause, ErrOutOfMemory) {
		cause = fmt.Errorf("%w: %w", ErrOutOfMemory, cause)
	}
	return &Error{
		Op:    "allocate",
		Kind:  KindAllocation,
		Index: -1,
		Cause: fmt.Errorf("%d slots: %w", capacity, cause),
	}
}

func constructError(op string, index int, cause error) *Error {
	var e *Error
	if errors.As(cause, &e) && e.Op == op {
		return e
	}
	return &Error{Op: op, Kind: KindConstruction, Index: index, Cause: cause}
}

func notCopyable(op string) *Error {
	return &Error{Op: op, Kind: KindUnsupported, Index: -1, Cause: ErrNotCopyable}
}
