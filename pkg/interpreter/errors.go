package interpreter

import (
	"errors"
	"fmt"
)

// ErrorCode enumerates the flat evaluation failure taxonomy.
type ErrorCode int

const (
	ErrUnboundIdentifier ErrorCode = iota
	ErrTypeMismatch
	ErrDivisionByZero
	ErrUnsupportedOperation
	ErrMatchFailure
	ErrNotImplemented
)

func (c ErrorCode) String() string {
	switch c {
	case ErrUnboundIdentifier:
		return "unbound_identifier"
	case ErrTypeMismatch:
		return "type_mismatch"
	case ErrDivisionByZero:
		return "division_by_zero"
	case ErrUnsupportedOperation:
		return "unsupported_operation"
	case ErrMatchFailure:
		return "match_failure"
	case ErrNotImplemented:
		return "not_implemented"
	default:
		return fmt.Sprintf("unknown_error_%d", int(c))
	}
}

// EvalError is the single error type every evaluation failure is reported
// through. Name is populated only for ErrUnboundIdentifier.
type EvalError struct {
	Code ErrorCode
	Name string
}

func (e *EvalError) Error() string {
	switch e.Code {
	case ErrUnboundIdentifier:
		return fmt.Sprintf("unbound identifier '%s'", e.Name)
	case ErrTypeMismatch:
		return "type mismatch"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrUnsupportedOperation:
		return "unsupported operation"
	case ErrMatchFailure:
		return "match failure"
	case ErrNotImplemented:
		return "not implemented"
	default:
		return fmt.Sprintf("evaluation error %d", int(e.Code))
	}
}

// Is reports code equality so errors.Is can compare against the sentinel
// form &EvalError{Code: ...}.
func (e *EvalError) Is(target error) bool {
	other, ok := target.(*EvalError)
	return ok && other.Code == e.Code
}

// CodeOf extracts the evaluation error code from an error chain.
func CodeOf(err error) (ErrorCode, bool) {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return evalErr.Code, true
	}
	return 0, false
}

func errUnbound(name string) *EvalError {
	return &EvalError{Code: ErrUnboundIdentifier, Name: name}
}

func errTypeMismatch() *EvalError {
	return &EvalError{Code: ErrTypeMismatch}
}

func errDivisionByZero() *EvalError {
	return &EvalError{Code: ErrDivisionByZero}
}

func errUnsupportedOperation() *EvalError {
	return &EvalError{Code: ErrUnsupportedOperation}
}

func errMatchFailure() *EvalError {
	return &EvalError{Code: ErrMatchFailure}
}

func errNotImplemented() *EvalError {
	return &EvalError{Code: ErrNotImplemented}
}

// Effect chooses how evaluation failures surface to the host. Sequencing is
// ordinary error propagation; only the failure constructor is pluggable.
type Effect interface {
	Fail(err *EvalError) error
}

type defaultEffect struct{}

func (defaultEffect) Fail(err *EvalError) error { return err }
