// Package landquaderr defines the error kinds a cluster analysis pass can
// surface. Every pass-level error aborts the whole pass; no partial cluster
// set is ever returned alongside one of these.
package landquaderr

import (
	"strconv"

	"github.com/pkg/errors"
)

// Kind classifies why an analysis pass failed.
type Kind int

const (
	// InvalidInput means the raster shape, category, or option was malformed:
	// mismatched dimensions, a category out of range, or an empty mask
	// for a category the caller asked about explicitly.
	InvalidInput Kind = iota
	// ResolutionOverflow means the quadtree resolution r = ceil(log2(max(W,H)))
	// exceeds 31, the largest resolution a uint64-backed location code
	// can address.
	ResolutionOverflow
	// Cancelled means a cooperative cancel fired mid-pass.
	Cancelled
	// Internal means a neighbor-finder or label invariant was violated.
	// This should never occur for well-formed input.
	Internal
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case ResolutionOverflow:
		return "resolution_overflow"
	case Cancelled:
		return "cancelled"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error carries a Kind plus the diagnostic context spec'd for this system:
// the category under analysis and, when available, the last quad processed
// before the failure.
type Error struct {
	Kind     Kind
	Category uint8
	HaveQuad bool
	QuadN    uint64
	QuadL    int
	cause    error
}

func (e *Error) Error() string {
	msg := "landquad: " + e.Kind.String()
	if e.HaveQuad {
		msg += " (category=" + strconv.Itoa(int(e.Category)) + " n=" + strconv.FormatUint(e.QuadN, 10) + " l=" + strconv.Itoa(e.QuadL) + ")"
	} else {
		msg += " (category=" + strconv.Itoa(int(e.Category)) + ")"
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap lets errors.Is/errors.As from both stdlib and pkg/errors see through
// to the underlying cause.
func (e *Error) Unwrap() error { return e.cause }

// Cause satisfies github.com/pkg/errors' Causer interface.
func (e *Error) Cause() error { return e.cause }

// New builds a bare Error of the given kind for a category.
func New(kind Kind, category uint8) *Error {
	return &Error{Kind: kind, Category: category}
}

// Wrap attaches a kind and category to an underlying cause, the way
// errors.Wrap attaches a message; Cause() and Unwrap() both reach `cause`.
func Wrap(cause error, kind Kind, category uint8) *Error {
	return &Error{Kind: kind, Category: category, cause: errors.WithStack(cause)}
}

// WithQuad returns a copy of e annotated with the last-processed quad's
// location code and level, so a failure names where the pass stopped.
func (e *Error) WithQuad(n uint64, l int) *Error {
	cp := *e
	cp.HaveQuad = true
	cp.QuadN = n
	cp.QuadL = l
	return &cp
}

// WithCategory returns a copy of e annotated with the category whose pass
// failed. The inner engines don't know which category they're running for,
// so the facade stamps it on the way out.
func (e *Error) WithCategory(c uint8) *Error {
	cp := *e
	cp.Category = c
	return &cp
}
