package interpreter

import (
	"errors"
	"testing"

	"minml/interpreter-go/pkg/runtime"
)

func TestBuiltinTable(t *testing.T) {
	intv := func(n int64) runtime.Value { return runtime.IntegerValue{Val: n} }
	fltv := func(f float64) runtime.Value { return runtime.FloatValue{Val: f} }
	boolv := func(b bool) runtime.Value { return runtime.BoolValue{Val: b} }

	cases := []struct {
		name     string
		symbol   string
		left     runtime.Value
		right    runtime.Value
		want     runtime.Value
		wantCode ErrorCode
		wantErr  bool
	}{
		{name: "int add", symbol: "+", left: intv(2), right: intv(3), want: intv(5)},
		{name: "int sub", symbol: "-", left: intv(2), right: intv(3), want: intv(-1)},
		{name: "int mul", symbol: "*", left: intv(4), right: intv(3), want: intv(12)},
		{name: "int div", symbol: "/", left: intv(7), right: intv(2), want: intv(3)},
		{name: "int div zero", symbol: "/", left: intv(1), right: intv(0), wantErr: true, wantCode: ErrDivisionByZero},
		{name: "float add", symbol: "+.", left: fltv(1.5), right: fltv(2.5), want: fltv(4)},
		{name: "float div", symbol: "/.", left: fltv(1), right: fltv(4), want: fltv(0.25)},
		{name: "float div zero", symbol: "/.", left: fltv(1), right: fltv(0), wantErr: true, wantCode: ErrDivisionByZero},
		{name: "int lt", symbol: "<", left: intv(1), right: intv(2), want: boolv(true)},
		{name: "int eq", symbol: "=", left: intv(2), right: intv(2), want: boolv(true)},
		{name: "int neq", symbol: "<>", left: intv(2), right: intv(2), want: boolv(false)},
		{name: "float ge", symbol: ">=", left: fltv(2), right: fltv(2), want: boolv(true)},
		{name: "bool and", symbol: "&&", left: boolv(true), right: boolv(true), want: boolv(true)},
		{name: "bool or", symbol: "||", left: boolv(false), right: boolv(true), want: boolv(true)},
		{name: "mixed numeric", symbol: "+", left: intv(1), right: fltv(2), wantErr: true, wantCode: ErrUnsupportedOperation},
		{name: "dotted op on ints", symbol: "+.", left: intv(1), right: intv(2), wantErr: true, wantCode: ErrUnsupportedOperation},
		{name: "eq on bools", symbol: "=", left: boolv(true), right: boolv(true), wantErr: true, wantCode: ErrUnsupportedOperation},
		{name: "and on ints", symbol: "&&", left: intv(1), right: intv(1), wantErr: true, wantCode: ErrUnsupportedOperation},
		{name: "string add", symbol: "+", left: runtime.StringValue{Val: "a"}, right: runtime.StringValue{Val: "b"}, wantErr: true, wantCode: ErrUnsupportedOperation},
	}

	interp := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := interp.applyBuiltin(tc.symbol, tc.left, tc.right)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected failure, got %#v", got)
				}
				if !errors.Is(err, &EvalError{Code: tc.wantCode}) {
					t.Fatalf("expected %s, got %v", tc.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestConsPrependsToList(t *testing.T) {
	interp := New()
	list := &runtime.ListValue{Elements: []runtime.Value{runtime.IntegerValue{Val: 2}}}
	got, err := interp.applyBuiltin("::", runtime.IntegerValue{Val: 1}, list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cons, ok := got.(*runtime.ListValue)
	if !ok || len(cons.Elements) != 2 {
		t.Fatalf("unexpected cons result %#v", got)
	}
	if head := cons.Elements[0].(runtime.IntegerValue); head.Val != 1 {
		t.Fatalf("unexpected head %#v", cons.Elements[0])
	}
	// The original list is untouched.
	if len(list.Elements) != 1 {
		t.Fatalf("cons mutated its operand: %#v", list.Elements)
	}
}

func TestConsRequiresListOnRight(t *testing.T) {
	interp := New()
	_, err := interp.applyBuiltin("::", runtime.IntegerValue{Val: 1}, runtime.IntegerValue{Val: 2})
	if !errors.Is(err, &EvalError{Code: ErrUnsupportedOperation}) {
		t.Fatalf("expected unsupported operation, got %v", err)
	}
}

func TestOperatorSymbolRecognition(t *testing.T) {
	for _, symbol := range []string{"+", "-", "*", "/", "+.", "-.", "*.", "/.", "<=", "<", ">=", ">", "=", "<>", "&&", "||", "::"} {
		if !isBuiltinOperator(symbol) {
			t.Fatalf("expected %q to be a builtin operator", symbol)
		}
	}
	for _, name := range []string{"fact", "cons", "", "+++"} {
		if isBuiltinOperator(name) {
			t.Fatalf("%q must not be a builtin operator", name)
		}
	}
}
