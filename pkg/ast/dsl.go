package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Flt(value float64) *FloatLiteral {
	return NewFloatLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Chr(value string) *CharLiteral {
	return NewCharLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func List(elements ...Expression) *ListLiteral {
	return NewListLiteral(elements)
}

func Tup(elements ...Expression) *TupleLiteral {
	return NewTupleLiteral(elements)
}

func Some(value Expression) *SomeLiteral {
	return NewSomeLiteral(value)
}

func None() *NoneLiteral {
	return NewNoneLiteral()
}

// Type expression helpers.

func Ty(name string) *SimpleTypeExpression {
	return NewSimpleTypeExpression(ID(name))
}

func Typed(expression Expression, typeAnnotation TypeExpression) *TypedExpression {
	return NewTypedExpression(expression, typeAnnotation)
}

// Function and control-flow helpers.

func Lam(param Pattern, body Expression) *LambdaExpression {
	return NewLambdaExpression(param, body)
}

func If(condition, then Expression, els ...Expression) *IfExpression {
	var alt Expression
	if len(els) > 0 {
		alt = els[0]
	}
	return NewIfExpression(condition, then, alt)
}

func Clause(pattern Pattern, body Expression) *MatchClause {
	return NewMatchClause(pattern, body)
}

func Match(subject Expression, clauses ...*MatchClause) *MatchExpression {
	return NewMatchExpression(subject, clauses)
}

func ClauseFn(clauses ...*MatchClause) *ClauseFunctionLiteral {
	return NewClauseFunctionLiteral(clauses)
}

func App(function, argument Expression) *ApplyExpression {
	return NewApplyExpression(function, argument)
}

// Op builds the curried application of a builtin operator symbol.
func Op(symbol string, left, right Expression) *ApplyExpression {
	return App(App(ID(symbol), left), right)
}

// Let binding helpers.

func Let(pattern Pattern, value, body Expression) *LetExpression {
	return NewLetExpression(false, pattern, value, body)
}

func LetRec(name string, value, body Expression) *LetExpression {
	return NewLetExpression(true, ID(name), value, body)
}

func LetDecl(pattern Pattern, value Expression) *LetDeclaration {
	return NewLetDeclaration(false, pattern, value)
}

func LetRecDecl(name string, value Expression) *LetDeclaration {
	return NewLetDeclaration(true, ID(name), value)
}

func Prog(body ...Statement) *Program {
	return NewProgram(body)
}

// Pattern helpers.

func Wc() *WildcardPattern {
	return NewWildcardPattern()
}

func LitP(literal Literal) *LiteralPattern {
	return NewLiteralPattern(literal)
}

func TypedP(pattern Pattern, typeAnnotation TypeExpression) *TypedPattern {
	return NewTypedPattern(pattern, typeAnnotation)
}

func SomeP(pattern Pattern) *SomePattern {
	return NewSomePattern(pattern)
}

func NoneP() *NonePattern {
	return NewNonePattern()
}

func OrP(left, right Pattern) *OrPattern {
	return NewOrPattern(left, right)
}

func ListP(elements ...Pattern) *ListPattern {
	return NewListPattern(elements)
}

func TupP(elements ...Pattern) *TuplePattern {
	return NewTuplePattern(elements)
}
