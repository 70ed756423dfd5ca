package interpreter

import (
	"minml/interpreter-go/pkg/ast"
	"minml/interpreter-go/pkg/runtime"
)

// evaluateExpression reduces sub-expressions strictly left-to-right; the
// first failure aborts the enclosing construct.
func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case ast.Literal:
		return i.evaluateLiteral(n)
	case *ast.Identifier:
		val, ok := env.Find(n.Name)
		if !ok {
			return nil, i.fail(errUnbound(n.Name))
		}
		return val, nil
	case *ast.TypedExpression:
		return i.evaluateExpression(n.Expression, env)
	case *ast.ListLiteral:
		elements, err := i.evaluateElements(n.Elements, env)
		if err != nil {
			return nil, err
		}
		return &runtime.ListValue{Elements: elements}, nil
	case *ast.TupleLiteral:
		if len(n.Elements) < 2 {
			return nil, i.fail(errTypeMismatch())
		}
		elements, err := i.evaluateElements(n.Elements, env)
		if err != nil {
			return nil, err
		}
		return &runtime.TupleValue{Elements: elements}, nil
	case *ast.SomeLiteral:
		inner, err := i.evaluateExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		return runtime.OptionValue{Inner: inner}, nil
	case *ast.NoneLiteral:
		return runtime.OptionValue{}, nil
	case *ast.LambdaExpression:
		return &runtime.ClosureValue{Param: n.Param, Body: n.Body, Env: env}, nil
	case *ast.ClauseFunctionLiteral:
		return &runtime.ClauseFunctionValue{Clauses: n.Clauses, Env: env}, nil
	case *ast.IfExpression:
		return i.evaluateIfExpression(n, env)
	case *ast.MatchExpression:
		subject, err := i.evaluateExpression(n.Subject, env)
		if err != nil {
			return nil, err
		}
		return i.dispatchClauses(subject, n.Clauses, env)
	case *ast.ApplyExpression:
		return i.evaluateApplication(n, env)
	case *ast.LetExpression:
		bound, err := i.evaluateBinding(n.Recursive, n.Pattern, n.Value, env)
		if err != nil {
			return nil, err
		}
		return i.evaluateExpression(n.Body, bound)
	default:
		return nil, i.fail(errTypeMismatch())
	}
}

// evaluateLiteral covers the five constant kinds; anything else in literal
// position is malformed.
func (i *Interpreter) evaluateLiteral(node ast.Literal) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}, nil
	case *ast.FloatLiteral:
		return runtime.FloatValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.CharLiteral:
		if len(n.Value) == 0 {
			return nil, i.fail(errTypeMismatch())
		}
		return runtime.CharValue{Val: []rune(n.Value)[0]}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	default:
		return nil, i.fail(errTypeMismatch())
	}
}

func (i *Interpreter) evaluateElements(elements []ast.Expression, env *runtime.Environment) ([]runtime.Value, error) {
	values := make([]runtime.Value, 0, len(elements))
	for _, el := range elements {
		val, err := i.evaluateExpression(el, env)
		if err != nil {
			return nil, err
		}
		values = append(values, val)
	}
	return values, nil
}

func (i *Interpreter) evaluateIfExpression(expr *ast.IfExpression, env *runtime.Environment) (runtime.Value, error) {
	cond, err := i.evaluateExpression(expr.Condition, env)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(runtime.BoolValue)
	if !ok {
		return nil, i.fail(errTypeMismatch())
	}
	if b.Val {
		return i.evaluateExpression(expr.Then, env)
	}
	if expr.Else == nil {
		return runtime.UnitValue{}, nil
	}
	return i.evaluateExpression(expr.Else, env)
}

// evaluateApplication handles curried application. A recognized operator
// symbol applied to two arguments routes to the builtin table without the
// symbol ever being looked up in the environment; everything else is generic
// application, evaluating the function position before the argument.
func (i *Interpreter) evaluateApplication(expr *ast.ApplyExpression, env *runtime.Environment) (runtime.Value, error) {
	if inner, ok := expr.Function.(*ast.ApplyExpression); ok {
		if ident, ok := inner.Function.(*ast.Identifier); ok && isBuiltinOperator(ident.Name) {
			left, err := i.evaluateExpression(inner.Argument, env)
			if err != nil {
				return nil, err
			}
			right, err := i.evaluateExpression(expr.Argument, env)
			if err != nil {
				return nil, err
			}
			return i.applyBuiltin(ident.Name, left, right)
		}
	}
	fnVal, err := i.evaluateExpression(expr.Function, env)
	if err != nil {
		return nil, err
	}
	arg, err := i.evaluateExpression(expr.Argument, env)
	if err != nil {
		return nil, err
	}
	switch fn := fnVal.(type) {
	case *runtime.ClosureValue:
		bound, matched := matchPattern(fn.Param, arg, fn.Env)
		if !matched {
			return nil, i.fail(errMatchFailure())
		}
		return i.evaluateExpression(fn.Body, bound)
	case *runtime.ClauseFunctionValue:
		return i.dispatchClauses(arg, fn.Clauses, fn.Env)
	default:
		return nil, i.fail(errTypeMismatch())
	}
}
