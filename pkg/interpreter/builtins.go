package interpreter

import (
	"minml/interpreter-go/pkg/runtime"
)

// The builtin operator table is closed: it is keyed by operator symbol and
// the concrete kinds of both operands, and any combination absent from it is
// an unsupported operation. Integer and float operands never mix.

type opKey struct {
	symbol string
	left   runtime.Kind
	right  runtime.Kind
}

type binaryOp func(left, right runtime.Value) (runtime.Value, *EvalError)

var builtinOps = buildOpTable()

var builtinSymbols = map[string]struct{}{
	"+": {}, "-": {}, "*": {}, "/": {},
	"+.": {}, "-.": {}, "*.": {}, "/.": {},
	"<=": {}, "<": {}, ">=": {}, ">": {}, "=": {}, "<>": {},
	"&&": {}, "||": {},
	"::": {},
}

// isBuiltinOperator reports whether name is recognized in curried operator
// position. The symbols are never bound in the environment.
func isBuiltinOperator(name string) bool {
	_, ok := builtinSymbols[name]
	return ok
}

// applyBuiltin routes two already-evaluated operands through the table.
func (i *Interpreter) applyBuiltin(symbol string, left, right runtime.Value) (runtime.Value, error) {
	if symbol == "::" {
		// Cons accepts any element kind on the left, so it sits outside the
		// kind-keyed table.
		list, ok := right.(*runtime.ListValue)
		if !ok {
			return nil, i.fail(errUnsupportedOperation())
		}
		elements := make([]runtime.Value, 0, len(list.Elements)+1)
		elements = append(elements, left)
		elements = append(elements, list.Elements...)
		return &runtime.ListValue{Elements: elements}, nil
	}
	op, ok := builtinOps[opKey{symbol: symbol, left: left.Kind(), right: right.Kind()}]
	if !ok {
		return nil, i.fail(errUnsupportedOperation())
	}
	result, evalErr := op(left, right)
	if evalErr != nil {
		return nil, i.fail(evalErr)
	}
	return result, nil
}

func buildOpTable() map[opKey]binaryOp {
	table := make(map[opKey]binaryOp)

	intOp := func(symbol string, fn func(a, b int64) (runtime.Value, *EvalError)) {
		table[opKey{symbol, runtime.KindInteger, runtime.KindInteger}] = func(left, right runtime.Value) (runtime.Value, *EvalError) {
			return fn(left.(runtime.IntegerValue).Val, right.(runtime.IntegerValue).Val)
		}
	}
	floatOp := func(symbol string, fn func(a, b float64) (runtime.Value, *EvalError)) {
		table[opKey{symbol, runtime.KindFloat, runtime.KindFloat}] = func(left, right runtime.Value) (runtime.Value, *EvalError) {
			return fn(left.(runtime.FloatValue).Val, right.(runtime.FloatValue).Val)
		}
	}
	boolOp := func(symbol string, fn func(a, b bool) bool) {
		table[opKey{symbol, runtime.KindBool, runtime.KindBool}] = func(left, right runtime.Value) (runtime.Value, *EvalError) {
			return runtime.BoolValue{Val: fn(left.(runtime.BoolValue).Val, right.(runtime.BoolValue).Val)}, nil
		}
	}

	// Integer arithmetic.
	intOp("+", func(a, b int64) (runtime.Value, *EvalError) { return runtime.IntegerValue{Val: a + b}, nil })
	intOp("-", func(a, b int64) (runtime.Value, *EvalError) { return runtime.IntegerValue{Val: a - b}, nil })
	intOp("*", func(a, b int64) (runtime.Value, *EvalError) { return runtime.IntegerValue{Val: a * b}, nil })
	intOp("/", func(a, b int64) (runtime.Value, *EvalError) {
		if b == 0 {
			return nil, errDivisionByZero()
		}
		return runtime.IntegerValue{Val: a / b}, nil
	})

	// Float arithmetic uses the dotted symbols.
	floatOp("+.", func(a, b float64) (runtime.Value, *EvalError) { return runtime.FloatValue{Val: a + b}, nil })
	floatOp("-.", func(a, b float64) (runtime.Value, *EvalError) { return runtime.FloatValue{Val: a - b}, nil })
	floatOp("*.", func(a, b float64) (runtime.Value, *EvalError) { return runtime.FloatValue{Val: a * b}, nil })
	floatOp("/.", func(a, b float64) (runtime.Value, *EvalError) {
		if b == 0 {
			return nil, errDivisionByZero()
		}
		return runtime.FloatValue{Val: a / b}, nil
	})

	// Comparisons on integers and floats.
	intCmp := func(symbol string, fn func(a, b int64) bool) {
		intOp(symbol, func(a, b int64) (runtime.Value, *EvalError) {
			return runtime.BoolValue{Val: fn(a, b)}, nil
		})
	}
	floatCmp := func(symbol string, fn func(a, b float64) bool) {
		floatOp(symbol, func(a, b float64) (runtime.Value, *EvalError) {
			return runtime.BoolValue{Val: fn(a, b)}, nil
		})
	}
	intCmp("<=", func(a, b int64) bool { return a <= b })
	intCmp("<", func(a, b int64) bool { return a < b })
	intCmp(">=", func(a, b int64) bool { return a >= b })
	intCmp(">", func(a, b int64) bool { return a > b })
	intCmp("=", func(a, b int64) bool { return a == b })
	intCmp("<>", func(a, b int64) bool { return a != b })
	floatCmp("<=", func(a, b float64) bool { return a <= b })
	floatCmp("<", func(a, b float64) bool { return a < b })
	floatCmp(">=", func(a, b float64) bool { return a >= b })
	floatCmp(">", func(a, b float64) bool { return a > b })
	floatCmp("=", func(a, b float64) bool { return a == b })
	floatCmp("<>", func(a, b float64) bool { return a != b })

	// Boolean connectives. Both operands are already evaluated by the time
	// the table is consulted, so these do not short-circuit.
	boolOp("&&", func(a, b bool) bool { return a && b })
	boolOp("||", func(a, b bool) bool { return a || b })

	return table
}
