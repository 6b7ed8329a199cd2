package sympy

import "github.com/pkg/errors"

// ErrorKind tags the taxonomy of §7. The simplifier never surfaces
// errors; the solver layer turns recoverable cases into NoSolution or
// Partial results and raises InvalidEquation or UnsupportedType to the
// caller. NumericalInstability, ComplexityLimit and DomainError are
// defined but no solver raises them.
type ErrorKind int

const (
	// InvalidEquation: the input is malformed for the solver selected.
	InvalidEquation ErrorKind = iota
	// UnsupportedType: the solver does not handle this shape.
	UnsupportedType
	// NumericalInstability: the floating-point path produced NaN/Inf.
	NumericalInstability
	// ComplexityLimit: the problem exceeded a configured bound.
	ComplexityLimit
	// DomainError: the operation is undefined for its operands.
	DomainError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidEquation:
		return "InvalidEquation"
	case UnsupportedType:
		return "UnsupportedType"
	case NumericalInstability:
		return "NumericalInstability"
	case ComplexityLimit:
		return "ComplexityLimit"
	case DomainError:
		return "DomainError"
	}
	return "Unknown"
}

// SolverError is the core's only error type, carrying a Kind from the
// taxonomy above plus a human-readable message. Use errors.Wrap (as
// the teacher corpus's engine.go wraps internal failures) to add
// context without losing the Kind via Unwrap/errors.Cause.
type SolverError struct {
	Kind ErrorKind
	msg  string
	err  error
}

func (e *SolverError) Error() string {
	if e.err != nil {
		return e.Kind.String() + ": " + e.msg + ": " + e.err.Error()
	}
	return e.Kind.String() + ": " + e.msg
}

func (e *SolverError) Unwrap() error { return e.err }

// NewSolverError builds a SolverError of the given kind.
func NewSolverError(kind ErrorKind, msg string) *SolverError {
	return &SolverError{Kind: kind, msg: msg}
}

// WrapSolverError attaches additional context to err, preserving kind
// if err is already a *SolverError, otherwise defaulting to
// UnsupportedType.
func WrapSolverError(err error, msg string) *SolverError {
	var se *SolverError
	if errors.As(err, &se) {
		return &SolverError{Kind: se.Kind, msg: msg, err: err}
	}
	return &SolverError{Kind: UnsupportedType, msg: msg, err: err}
}

// IsKind reports whether err is a *SolverError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *SolverError
	if !errors.As(err, &se) {
		return false
	}
	return se.Kind == kind
}
