package runtime

import (
	"fmt"

	"minml/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindBool
	KindChar
	KindString
	KindList
	KindTuple
	KindOption
	KindUnit
	KindClosure
	KindClauseFunction
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindOption:
		return "option"
	case KindUnit:
		return "unit"
	case KindClosure:
		return "closure"
	case KindClauseFunction:
		return "clause_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind { return KindInteger }

type FloatValue struct {
	Val float64
}

func (v FloatValue) Kind() Kind { return KindFloat }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type CharValue struct {
	Val rune
}

func (v CharValue) Kind() Kind { return KindChar }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// UnitValue is the result of an if expression whose condition is false and
// which has no else branch.
type UnitValue struct{}

func (UnitValue) Kind() Kind { return KindUnit }

//-----------------------------------------------------------------------------
// Collections
//-----------------------------------------------------------------------------

type ListValue struct {
	Elements []Value
}

func (v *ListValue) Kind() Kind { return KindList }

// TupleValue always carries at least two elements.
type TupleValue struct {
	Elements []Value
}

func (v *TupleValue) Kind() Kind { return KindTuple }

// OptionValue wraps a present value; a nil Inner is the absent case.
type OptionValue struct {
	Inner Value
}

func (v OptionValue) Kind() Kind { return KindOption }

func (v OptionValue) IsSome() bool { return v.Inner != nil }

//-----------------------------------------------------------------------------
// Function values
//-----------------------------------------------------------------------------

// ClosureValue is a single-clause function: one parameter pattern, one body,
// and an immutable snapshot of the defining environment. The snapshot is
// patched exactly once, before the value escapes, when the closure is bound
// recursively.
type ClosureValue struct {
	Param     ast.Pattern
	Body      ast.Expression
	Env       *Environment
	Recursive bool
}

func (v *ClosureValue) Kind() Kind { return KindClosure }

// ClauseFunctionValue is a multi-clause function: an ordered clause list
// dispatched first-match-wins against the argument, plus the snapshot of the
// environment where the literal was evaluated.
type ClauseFunctionValue struct {
	Clauses []*ast.MatchClause
	Env     *Environment
}

func (v *ClauseFunctionValue) Kind() Kind { return KindClauseFunction }
