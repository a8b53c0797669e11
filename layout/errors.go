package layout

import (
	"errors"
	"fmt"
)

// Kind separates bad invocations from bad debug info from internal faults,
// so the caller can pick a process exit status without parsing messages.
type Kind int

const (
	// KindUsage covers bad invocations and unopenable inputs.
	KindUsage Kind = iota
	// KindData covers malformed or unexpected debug-info shapes.
	KindData
	// KindSoftware covers internal faults such as session teardown failing
	// after a clean run.
	KindSoftware
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindData:
		return "data"
	case KindSoftware:
		return "software"
	}
	return "unknown"
}

// Error carries the failing operation and the underlying cause alongside
// its Kind. Every failure in this package and its providers is one of
// these; nothing terminates the process directly.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// DataErr wraps err as a data-integrity failure of op.
func DataErr(op string, err error) error {
	return &Error{Kind: KindData, Op: op, Err: err}
}

// Dataf builds a data-integrity failure of op from a format string.
func Dataf(op, format string, args ...any) error {
	return &Error{Kind: KindData, Op: op, Err: fmt.Errorf(format, args...)}
}

// UsageErr wraps err as an invocation/resource failure of op.
func UsageErr(op string, err error) error {
	return &Error{Kind: KindUsage, Op: op, Err: err}
}

// SoftwareErr wraps err as an internal failure of op.
func SoftwareErr(op string, err error) error {
	return &Error{Kind: KindSoftware, Op: op, Err: err}
}

// KindOf extracts the Kind of err, defaulting to KindSoftware for errors
// that did not come out of this taxonomy.
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindSoftware
}

// errUnsupportedLocation marks a member whose location attribute uses an
// encoding the walker does not decode. It stays internal: the walker turns
// it into a skip marker in the report instead of failing the run.
var errUnsupportedLocation = errors.New("unsupported location encoding")
