package ast

type NodeType string

const (
	NodeIdentifier            NodeType = "Identifier"
	NodeIntegerLiteral        NodeType = "IntegerLiteral"
	NodeFloatLiteral          NodeType = "FloatLiteral"
	NodeBooleanLiteral        NodeType = "BooleanLiteral"
	NodeCharLiteral           NodeType = "CharLiteral"
	NodeStringLiteral         NodeType = "StringLiteral"
	NodeListLiteral           NodeType = "ListLiteral"
	NodeTupleLiteral          NodeType = "TupleLiteral"
	NodeSomeLiteral           NodeType = "SomeLiteral"
	NodeNoneLiteral           NodeType = "NoneLiteral"
	NodeTypedExpression       NodeType = "TypedExpression"
	NodeLambdaExpression      NodeType = "LambdaExpression"
	NodeIfExpression          NodeType = "IfExpression"
	NodeMatchClause           NodeType = "MatchClause"
	NodeMatchExpression       NodeType = "MatchExpression"
	NodeClauseFunctionLiteral NodeType = "ClauseFunctionLiteral"
	NodeApplyExpression       NodeType = "ApplyExpression"
	NodeLetExpression         NodeType = "LetExpression"
	NodeLetDeclaration        NodeType = "LetDeclaration"
	NodeProgram               NodeType = "Program"
	NodeSimpleTypeExpression  NodeType = "SimpleTypeExpression"
	NodeWildcardPattern       NodeType = "WildcardPattern"
	NodeLiteralPattern        NodeType = "LiteralPattern"
	NodeTypedPattern          NodeType = "TypedPattern"
	NodeSomePattern           NodeType = "SomePattern"
	NodeNonePattern           NodeType = "NonePattern"
	NodeOrPattern             NodeType = "OrPattern"
	NodeListPattern           NodeType = "ListPattern"
	NodeTuplePattern          NodeType = "TuplePattern"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type" yaml:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Pattern interface {
	Node
	patternNode()
}

type patternMarker struct{}

func (patternMarker) patternNode() {}

type TypeExpression interface {
	Node
	typeExpressionNode()
}

type typeExpressionMarker struct{}

func (typeExpressionMarker) typeExpressionNode() {}

type Literal interface {
	Expression
	literalNode()
}

type literalMarker struct{}

func (literalMarker) literalNode() {}

// Identifier doubles as an expression (variable reference) and a pattern
// (binding occurrence).

type Identifier struct {
	nodeImpl
	expressionMarker
	statementMarker
	patternMarker

	Name string `json:"name" yaml:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type IntegerLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value int64 `json:"value" yaml:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type FloatLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value float64 `json:"value" yaml:"value"`
}

func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{nodeImpl: newNodeImpl(NodeFloatLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value bool `json:"value" yaml:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

// CharLiteral carries its rune as a one-character string so fixture
// documents stay plain text.
type CharLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value string `json:"value" yaml:"value"`
}

func NewCharLiteral(value string) *CharLiteral {
	return &CharLiteral{nodeImpl: newNodeImpl(NodeCharLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
	literalMarker

	Value string `json:"value" yaml:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type ListLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Elements []Expression `json:"elements" yaml:"elements"`
}

func NewListLiteral(elements []Expression) *ListLiteral {
	return &ListLiteral{nodeImpl: newNodeImpl(NodeListLiteral), Elements: elements}
}

// TupleLiteral requires arity >= 2 by construction; the evaluator treats
// anything smaller as malformed.
type TupleLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Elements []Expression `json:"elements" yaml:"elements"`
}

func NewTupleLiteral(elements []Expression) *TupleLiteral {
	return &TupleLiteral{nodeImpl: newNodeImpl(NodeTupleLiteral), Elements: elements}
}

type SomeLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value Expression `json:"value" yaml:"value"`
}

func NewSomeLiteral(value Expression) *SomeLiteral {
	return &SomeLiteral{nodeImpl: newNodeImpl(NodeSomeLiteral), Value: value}
}

type NoneLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
}

func NewNoneLiteral() *NoneLiteral {
	return &NoneLiteral{nodeImpl: newNodeImpl(NodeNoneLiteral)}
}

// Type expressions exist only as annotations; evaluation erases them.

type SimpleTypeExpression struct {
	nodeImpl
	typeExpressionMarker

	Name *Identifier `json:"name" yaml:"name"`
}

func NewSimpleTypeExpression(name *Identifier) *SimpleTypeExpression {
	return &SimpleTypeExpression{nodeImpl: newNodeImpl(NodeSimpleTypeExpression), Name: name}
}

type TypedExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Expression     Expression     `json:"expression" yaml:"expression"`
	TypeAnnotation TypeExpression `json:"typeAnnotation" yaml:"typeAnnotation"`
}

func NewTypedExpression(expression Expression, typeAnnotation TypeExpression) *TypedExpression {
	return &TypedExpression{nodeImpl: newNodeImpl(NodeTypedExpression), Expression: expression, TypeAnnotation: typeAnnotation}
}

// Functions and control flow

type LambdaExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Param Pattern    `json:"param" yaml:"param"`
	Body  Expression `json:"body" yaml:"body"`
}

func NewLambdaExpression(param Pattern, body Expression) *LambdaExpression {
	return &LambdaExpression{nodeImpl: newNodeImpl(NodeLambdaExpression), Param: param, Body: body}
}

type IfExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Condition Expression `json:"condition" yaml:"condition"`
	Then      Expression `json:"then" yaml:"then"`
	Else      Expression `json:"else,omitempty" yaml:"else,omitempty"`
}

func NewIfExpression(condition, then, els Expression) *IfExpression {
	return &IfExpression{nodeImpl: newNodeImpl(NodeIfExpression), Condition: condition, Then: then, Else: els}
}

// MatchClause pairs a pattern with the body evaluated when it matches. The
// same clause shape backs match expressions and clause-function literals.
type MatchClause struct {
	nodeImpl

	Pattern Pattern    `json:"pattern" yaml:"pattern"`
	Body    Expression `json:"body" yaml:"body"`
}

func NewMatchClause(pattern Pattern, body Expression) *MatchClause {
	return &MatchClause{nodeImpl: newNodeImpl(NodeMatchClause), Pattern: pattern, Body: body}
}

type MatchExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Subject Expression     `json:"subject" yaml:"subject"`
	Clauses []*MatchClause `json:"clauses" yaml:"clauses"`
}

func NewMatchExpression(subject Expression, clauses []*MatchClause) *MatchExpression {
	return &MatchExpression{nodeImpl: newNodeImpl(NodeMatchExpression), Subject: subject, Clauses: clauses}
}

// ClauseFunctionLiteral is an anonymous function written directly as an
// ordered clause list, dispatching its argument like a match expression.
type ClauseFunctionLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Clauses []*MatchClause `json:"clauses" yaml:"clauses"`
}

func NewClauseFunctionLiteral(clauses []*MatchClause) *ClauseFunctionLiteral {
	return &ClauseFunctionLiteral{nodeImpl: newNodeImpl(NodeClauseFunctionLiteral), Clauses: clauses}
}

// ApplyExpression is curried single-argument application.
type ApplyExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Function Expression `json:"function" yaml:"function"`
	Argument Expression `json:"argument" yaml:"argument"`
}

func NewApplyExpression(function, argument Expression) *ApplyExpression {
	return &ApplyExpression{nodeImpl: newNodeImpl(NodeApplyExpression), Function: function, Argument: argument}
}

// Let bindings

type LetExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Recursive bool       `json:"recursive" yaml:"recursive"`
	Pattern   Pattern    `json:"pattern" yaml:"pattern"`
	Value     Expression `json:"value" yaml:"value"`
	Body      Expression `json:"body" yaml:"body"`
}

func NewLetExpression(recursive bool, pattern Pattern, value, body Expression) *LetExpression {
	return &LetExpression{nodeImpl: newNodeImpl(NodeLetExpression), Recursive: recursive, Pattern: pattern, Value: value, Body: body}
}

// LetDeclaration is the top-level binding form; its bindings stay visible to
// the rest of the program.
type LetDeclaration struct {
	nodeImpl
	statementMarker

	Recursive bool       `json:"recursive" yaml:"recursive"`
	Pattern   Pattern    `json:"pattern" yaml:"pattern"`
	Value     Expression `json:"value" yaml:"value"`
}

func NewLetDeclaration(recursive bool, pattern Pattern, value Expression) *LetDeclaration {
	return &LetDeclaration{nodeImpl: newNodeImpl(NodeLetDeclaration), Recursive: recursive, Pattern: pattern, Value: value}
}

// Program is an ordered sequence of top-level statements.
type Program struct {
	nodeImpl

	Body []Statement `json:"body" yaml:"body"`
}

func NewProgram(body []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Body: body}
}

// Patterns

type WildcardPattern struct {
	nodeImpl
	patternMarker
}

func NewWildcardPattern() *WildcardPattern {
	return &WildcardPattern{nodeImpl: newNodeImpl(NodeWildcardPattern)}
}

type LiteralPattern struct {
	nodeImpl
	patternMarker

	Literal Literal `json:"literal" yaml:"literal"`
}

func NewLiteralPattern(literal Literal) *LiteralPattern {
	return &LiteralPattern{nodeImpl: newNodeImpl(NodeLiteralPattern), Literal: literal}
}

type TypedPattern struct {
	nodeImpl
	patternMarker

	Pattern        Pattern        `json:"pattern" yaml:"pattern"`
	TypeAnnotation TypeExpression `json:"typeAnnotation" yaml:"typeAnnotation"`
}

func NewTypedPattern(pattern Pattern, typeAnnotation TypeExpression) *TypedPattern {
	return &TypedPattern{nodeImpl: newNodeImpl(NodeTypedPattern), Pattern: pattern, TypeAnnotation: typeAnnotation}
}

type SomePattern struct {
	nodeImpl
	patternMarker

	Pattern Pattern `json:"pattern" yaml:"pattern"`
}

func NewSomePattern(pattern Pattern) *SomePattern {
	return &SomePattern{nodeImpl: newNodeImpl(NodeSomePattern), Pattern: pattern}
}

type NonePattern struct {
	nodeImpl
	patternMarker
}

func NewNonePattern() *NonePattern {
	return &NonePattern{nodeImpl: newNodeImpl(NodeNonePattern)}
}

// OrPattern tries Left first and falls back to Right against the same value.
type OrPattern struct {
	nodeImpl
	patternMarker

	Left  Pattern `json:"left" yaml:"left"`
	Right Pattern `json:"right" yaml:"right"`
}

func NewOrPattern(left, right Pattern) *OrPattern {
	return &OrPattern{nodeImpl: newNodeImpl(NodeOrPattern), Left: left, Right: right}
}

type ListPattern struct {
	nodeImpl
	patternMarker

	Elements []Pattern `json:"elements" yaml:"elements"`
}

func NewListPattern(elements []Pattern) *ListPattern {
	return &ListPattern{nodeImpl: newNodeImpl(NodeListPattern), Elements: elements}
}

type TuplePattern struct {
	nodeImpl
	patternMarker

	Elements []Pattern `json:"elements" yaml:"elements"`
}

func NewTuplePattern(elements []Pattern) *TuplePattern {
	return &TuplePattern{nodeImpl: newNodeImpl(NodeTuplePattern), Elements: elements}
}
