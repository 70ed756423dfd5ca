package interpreter

import (
	"minml/interpreter-go/pkg/ast"
	"minml/interpreter-go/pkg/runtime"
)

// matchPattern structurally matches value against pattern on top of base.
// It is pure and total: a non-match is an ordinary false, never an error,
// because failed matches are expected control flow during clause dispatch.
// The returned environment is atomic — on any element mismatch the whole
// pattern fails and no partial bindings survive.
func matchPattern(pattern ast.Pattern, value runtime.Value, base *runtime.Environment) (*runtime.Environment, bool) {
	switch p := pattern.(type) {
	case *ast.WildcardPattern:
		return base, true
	case *ast.Identifier:
		return base.Extend(p.Name, value), true
	case *ast.LiteralPattern:
		if literalMatches(p.Literal, value) {
			return base, true
		}
		return nil, false
	case *ast.TypedPattern:
		return matchPattern(p.Pattern, value, base)
	case *ast.SomePattern:
		opt, ok := value.(runtime.OptionValue)
		if !ok || !opt.IsSome() {
			return nil, false
		}
		return matchPattern(p.Pattern, opt.Inner, base)
	case *ast.NonePattern:
		opt, ok := value.(runtime.OptionValue)
		if !ok || opt.IsSome() {
			return nil, false
		}
		return base, true
	case *ast.OrPattern:
		if env, ok := matchPattern(p.Left, value, base); ok {
			return env, true
		}
		return matchPattern(p.Right, value, base)
	case *ast.ListPattern:
		list, ok := value.(*runtime.ListValue)
		if !ok {
			return nil, false
		}
		return matchElements(p.Elements, list.Elements, base)
	case *ast.TuplePattern:
		tuple, ok := value.(*runtime.TupleValue)
		if !ok {
			return nil, false
		}
		return matchElements(p.Elements, tuple.Elements, base)
	default:
		return nil, false
	}
}

// matchElements is arity-strict and threads the environment accumulated by
// earlier elements into the matching of later ones.
func matchElements(patterns []ast.Pattern, values []runtime.Value, base *runtime.Environment) (*runtime.Environment, bool) {
	if len(patterns) != len(values) {
		return nil, false
	}
	env := base
	for idx, elem := range patterns {
		next, ok := matchPattern(elem, values[idx], env)
		if !ok {
			return nil, false
		}
		env = next
	}
	return env, true
}

// literalMatches compares a literal pattern against a value of the same
// constant kind by native equality. Floats compare exactly; no tolerance is
// applied.
func literalMatches(literal ast.Literal, value runtime.Value) bool {
	switch lit := literal.(type) {
	case *ast.IntegerLiteral:
		v, ok := value.(runtime.IntegerValue)
		return ok && v.Val == lit.Value
	case *ast.FloatLiteral:
		v, ok := value.(runtime.FloatValue)
		return ok && v.Val == lit.Value
	case *ast.BooleanLiteral:
		v, ok := value.(runtime.BoolValue)
		return ok && v.Val == lit.Value
	case *ast.CharLiteral:
		v, ok := value.(runtime.CharValue)
		if !ok || len(lit.Value) == 0 {
			return false
		}
		return v.Val == []rune(lit.Value)[0]
	case *ast.StringLiteral:
		v, ok := value.(runtime.StringValue)
		return ok && v.Val == lit.Value
	default:
		return false
	}
}
