package interpreter

import (
	"minml/interpreter-go/pkg/ast"
	"minml/interpreter-go/pkg/runtime"
)

// Interpreter drives evaluation of minml AST nodes. Evaluation is
// single-threaded and purely recursive; deep programs consume call stack in
// proportion to their nesting depth.
type Interpreter struct {
	effect Effect
}

// New returns an interpreter whose failures surface as *EvalError.
func New() *Interpreter {
	return &Interpreter{effect: defaultEffect{}}
}

// NewWithEffect returns an interpreter routing every failure through effect.
func NewWithEffect(effect Effect) *Interpreter {
	if effect == nil {
		effect = defaultEffect{}
	}
	return &Interpreter{effect: effect}
}

func (i *Interpreter) fail(err *EvalError) error {
	return i.effect.Fail(err)
}

// EvaluateProgram executes the top-level statements in order against the
// empty environment. Bindings introduced by let declarations stay visible to
// the rest of the program; the returned environment holds them all. The
// value is the result of the last bare expression (unit when the program
// ends on a declaration or is empty).
func (i *Interpreter) EvaluateProgram(program *ast.Program) (runtime.Value, *runtime.Environment, error) {
	env := runtime.EmptyEnvironment()
	var last runtime.Value = runtime.UnitValue{}
	for _, stmt := range program.Body {
		switch n := stmt.(type) {
		case *ast.LetDeclaration:
			bound, err := i.evaluateBinding(n.Recursive, n.Pattern, n.Value, env)
			if err != nil {
				return nil, nil, err
			}
			env = bound
			last = runtime.UnitValue{}
		case ast.Expression:
			val, err := i.evaluateExpression(n, env)
			if err != nil {
				return nil, nil, err
			}
			last = val
		default:
			return nil, nil, i.fail(errTypeMismatch())
		}
	}
	return last, env, nil
}

// EvaluateExpression evaluates a single expression against env.
func (i *Interpreter) EvaluateExpression(expr ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	return i.evaluateExpression(expr, env)
}

// evaluateBinding evaluates the right-hand side of a let form and matches
// the binding pattern against it, returning the extended environment.
//
// The recursive form is restricted to a bare identifier bound to a function
// form: the closure is built against the outer environment, the environment
// is extended with it, and the closure's snapshot is back-patched to the
// extended environment before the value escapes. Other recursive shapes fail
// not-implemented.
func (i *Interpreter) evaluateBinding(recursive bool, pattern ast.Pattern, value ast.Expression, env *runtime.Environment) (*runtime.Environment, error) {
	if recursive {
		ident, ok := pattern.(*ast.Identifier)
		if !ok {
			return nil, i.fail(errNotImplemented())
		}
		switch fn := value.(type) {
		case *ast.LambdaExpression:
			closure := &runtime.ClosureValue{Param: fn.Param, Body: fn.Body, Env: env, Recursive: true}
			recEnv := env.Extend(ident.Name, closure)
			closure.Env = recEnv
			return recEnv, nil
		case *ast.ClauseFunctionLiteral:
			closure := &runtime.ClauseFunctionValue{Clauses: fn.Clauses, Env: env}
			recEnv := env.Extend(ident.Name, closure)
			closure.Env = recEnv
			return recEnv, nil
		default:
			return nil, i.fail(errNotImplemented())
		}
	}
	val, err := i.evaluateExpression(value, env)
	if err != nil {
		return nil, err
	}
	bound, ok := matchPattern(pattern, val, env)
	if !ok {
		return nil, i.fail(errMatchFailure())
	}
	return bound, nil
}

// dispatchClauses is the shared first-match-wins rule dispatch used by match
// expressions and clause-function application. Clause order is a language
// property: the first matching clause's body is evaluated in the matched
// environment and later clauses are never attempted. Exhausting the list is
// a match failure.
func (i *Interpreter) dispatchClauses(value runtime.Value, clauses []*ast.MatchClause, env *runtime.Environment) (runtime.Value, error) {
	for _, clause := range clauses {
		clauseEnv, matched := matchPattern(clause.Pattern, value, env)
		if !matched {
			continue
		}
		return i.evaluateExpression(clause.Body, clauseEnv)
	}
	return nil, i.fail(errMatchFailure())
}
