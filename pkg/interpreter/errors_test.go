package interpreter

import (
	"errors"
	"fmt"
	"testing"
)

func TestEvalErrorMessages(t *testing.T) {
	cases := []struct {
		err  *EvalError
		want string
	}{
		{errUnbound("x"), "unbound identifier 'x'"},
		{errTypeMismatch(), "type mismatch"},
		{errDivisionByZero(), "division by zero"},
		{errUnsupportedOperation(), "unsupported operation"},
		{errMatchFailure(), "match failure"},
		{errNotImplemented(), "not implemented"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestErrorCodeComparison(t *testing.T) {
	err := fmt.Errorf("while evaluating: %w", errDivisionByZero())
	if !errors.Is(err, &EvalError{Code: ErrDivisionByZero}) {
		t.Fatalf("errors.Is should match by code through wrapping")
	}
	if errors.Is(err, &EvalError{Code: ErrTypeMismatch}) {
		t.Fatalf("errors.Is must not match a different code")
	}
	code, ok := CodeOf(err)
	if !ok || code != ErrDivisionByZero {
		t.Fatalf("CodeOf failed on wrapped error: %v %v", code, ok)
	}
	if _, ok := CodeOf(errors.New("plain")); ok {
		t.Fatalf("CodeOf must reject non-eval errors")
	}
}

func TestErrorCodeNames(t *testing.T) {
	names := map[ErrorCode]string{
		ErrUnboundIdentifier:    "unbound_identifier",
		ErrTypeMismatch:         "type_mismatch",
		ErrDivisionByZero:       "division_by_zero",
		ErrUnsupportedOperation: "unsupported_operation",
		ErrMatchFailure:         "match_failure",
		ErrNotImplemented:       "not_implemented",
	}
	for code, want := range names {
		if got := code.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
