package interpreter

import (
	"fmt"

	"minml/interpreter-go/pkg/ast"
)

// The fixture corpus stores programs as YAML node documents; decodeStatement
// and friends rebuild the AST from the generic form yaml.v3 produces.

func decodeProgram(raw []map[string]any) (*ast.Program, error) {
	body := make([]ast.Statement, 0, len(raw))
	for idx, node := range raw {
		stmt, err := decodeStatement(node)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", idx, err)
		}
		body = append(body, stmt)
	}
	return ast.NewProgram(body), nil
}

func decodeStatement(node map[string]any) (ast.Statement, error) {
	typ, _ := node["type"].(string)
	if typ == string(ast.NodeLetDeclaration) {
		recursive, _ := node["recursive"].(bool)
		pattern, err := decodeChildPattern(node, "pattern")
		if err != nil {
			return nil, err
		}
		value, err := decodeChildExpression(node, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewLetDeclaration(recursive, pattern, value), nil
	}
	return decodeExpression(node)
}

func decodeExpression(node map[string]any) (ast.Expression, error) {
	typ, _ := node["type"].(string)
	switch ast.NodeType(typ) {
	case ast.NodeIdentifier:
		name, _ := node["name"].(string)
		return ast.NewIdentifier(name), nil
	case ast.NodeIntegerLiteral:
		val, err := intField(node, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewIntegerLiteral(val), nil
	case ast.NodeFloatLiteral:
		val, err := floatField(node, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewFloatLiteral(val), nil
	case ast.NodeBooleanLiteral:
		val, _ := node["value"].(bool)
		return ast.NewBooleanLiteral(val), nil
	case ast.NodeCharLiteral:
		val, _ := node["value"].(string)
		return ast.NewCharLiteral(val), nil
	case ast.NodeStringLiteral:
		val, _ := node["value"].(string)
		return ast.NewStringLiteral(val), nil
	case ast.NodeListLiteral:
		elements, err := decodeExpressionList(node, "elements")
		if err != nil {
			return nil, err
		}
		return ast.NewListLiteral(elements), nil
	case ast.NodeTupleLiteral:
		elements, err := decodeExpressionList(node, "elements")
		if err != nil {
			return nil, err
		}
		return ast.NewTupleLiteral(elements), nil
	case ast.NodeSomeLiteral:
		value, err := decodeChildExpression(node, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewSomeLiteral(value), nil
	case ast.NodeNoneLiteral:
		return ast.NewNoneLiteral(), nil
	case ast.NodeTypedExpression:
		inner, err := decodeChildExpression(node, "expression")
		if err != nil {
			return nil, err
		}
		return ast.NewTypedExpression(inner, decodeTypeAnnotation(node)), nil
	case ast.NodeLambdaExpression:
		param, err := decodeChildPattern(node, "param")
		if err != nil {
			return nil, err
		}
		body, err := decodeChildExpression(node, "body")
		if err != nil {
			return nil, err
		}
		return ast.NewLambdaExpression(param, body), nil
	case ast.NodeIfExpression:
		condition, err := decodeChildExpression(node, "condition")
		if err != nil {
			return nil, err
		}
		then, err := decodeChildExpression(node, "then")
		if err != nil {
			return nil, err
		}
		var els ast.Expression
		if _, ok := node["else"]; ok {
			els, err = decodeChildExpression(node, "else")
			if err != nil {
				return nil, err
			}
		}
		return ast.NewIfExpression(condition, then, els), nil
	case ast.NodeMatchExpression:
		subject, err := decodeChildExpression(node, "subject")
		if err != nil {
			return nil, err
		}
		clauses, err := decodeClauses(node)
		if err != nil {
			return nil, err
		}
		return ast.NewMatchExpression(subject, clauses), nil
	case ast.NodeClauseFunctionLiteral:
		clauses, err := decodeClauses(node)
		if err != nil {
			return nil, err
		}
		return ast.NewClauseFunctionLiteral(clauses), nil
	case ast.NodeApplyExpression:
		function, err := decodeChildExpression(node, "function")
		if err != nil {
			return nil, err
		}
		argument, err := decodeChildExpression(node, "argument")
		if err != nil {
			return nil, err
		}
		return ast.NewApplyExpression(function, argument), nil
	case ast.NodeLetExpression:
		recursive, _ := node["recursive"].(bool)
		pattern, err := decodeChildPattern(node, "pattern")
		if err != nil {
			return nil, err
		}
		value, err := decodeChildExpression(node, "value")
		if err != nil {
			return nil, err
		}
		body, err := decodeChildExpression(node, "body")
		if err != nil {
			return nil, err
		}
		return ast.NewLetExpression(recursive, pattern, value, body), nil
	default:
		return nil, fmt.Errorf("unknown expression type %q", typ)
	}
}

func decodePattern(node map[string]any) (ast.Pattern, error) {
	typ, _ := node["type"].(string)
	switch ast.NodeType(typ) {
	case ast.NodeWildcardPattern:
		return ast.NewWildcardPattern(), nil
	case ast.NodeIdentifier:
		name, _ := node["name"].(string)
		return ast.NewIdentifier(name), nil
	case ast.NodeLiteralPattern:
		litNode, ok := node["literal"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("literal pattern missing literal")
		}
		expr, err := decodeExpression(litNode)
		if err != nil {
			return nil, err
		}
		lit, ok := expr.(ast.Literal)
		if !ok {
			return nil, fmt.Errorf("literal pattern holds non-literal %T", expr)
		}
		return ast.NewLiteralPattern(lit), nil
	case ast.NodeTypedPattern:
		inner, err := decodeChildPattern(node, "pattern")
		if err != nil {
			return nil, err
		}
		return ast.NewTypedPattern(inner, decodeTypeAnnotation(node)), nil
	case ast.NodeSomePattern:
		inner, err := decodeChildPattern(node, "pattern")
		if err != nil {
			return nil, err
		}
		return ast.NewSomePattern(inner), nil
	case ast.NodeNonePattern:
		return ast.NewNonePattern(), nil
	case ast.NodeOrPattern:
		left, err := decodeChildPattern(node, "left")
		if err != nil {
			return nil, err
		}
		right, err := decodeChildPattern(node, "right")
		if err != nil {
			return nil, err
		}
		return ast.NewOrPattern(left, right), nil
	case ast.NodeListPattern:
		elements, err := decodePatternList(node)
		if err != nil {
			return nil, err
		}
		return ast.NewListPattern(elements), nil
	case ast.NodeTuplePattern:
		elements, err := decodePatternList(node)
		if err != nil {
			return nil, err
		}
		return ast.NewTuplePattern(elements), nil
	default:
		return nil, fmt.Errorf("unknown pattern type %q", typ)
	}
}

func decodeClauses(node map[string]any) ([]*ast.MatchClause, error) {
	raw, _ := node["clauses"].([]any)
	clauses := make([]*ast.MatchClause, 0, len(raw))
	for idx, entry := range raw {
		child, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("clause %d is not a mapping", idx)
		}
		pattern, err := decodeChildPattern(child, "pattern")
		if err != nil {
			return nil, err
		}
		body, err := decodeChildExpression(child, "body")
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, ast.NewMatchClause(pattern, body))
	}
	return clauses, nil
}

func decodeChildExpression(node map[string]any, key string) (ast.Expression, error) {
	child, ok := node[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("missing %q node", key)
	}
	return decodeExpression(child)
}

func decodeChildPattern(node map[string]any, key string) (ast.Pattern, error) {
	child, ok := node[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("missing %q node", key)
	}
	return decodePattern(child)
}

func decodeExpressionList(node map[string]any, key string) ([]ast.Expression, error) {
	raw, _ := node[key].([]any)
	elements := make([]ast.Expression, 0, len(raw))
	for idx, entry := range raw {
		child, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d is not a mapping", idx)
		}
		expr, err := decodeExpression(child)
		if err != nil {
			return nil, err
		}
		elements = append(elements, expr)
	}
	return elements, nil
}

func decodePatternList(node map[string]any) ([]ast.Pattern, error) {
	raw, _ := node["elements"].([]any)
	elements := make([]ast.Pattern, 0, len(raw))
	for idx, entry := range raw {
		child, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d is not a mapping", idx)
		}
		pattern, err := decodePattern(child)
		if err != nil {
			return nil, err
		}
		elements = append(elements, pattern)
	}
	return elements, nil
}

// decodeTypeAnnotation tolerates a missing annotation: fixtures may write
// typed nodes with just a name string, and evaluation erases the annotation
// anyway.
func decodeTypeAnnotation(node map[string]any) ast.TypeExpression {
	if name, ok := node["typeAnnotation"].(string); ok {
		return ast.Ty(name)
	}
	if child, ok := node["typeAnnotation"].(map[string]any); ok {
		if name, ok := child["name"].(string); ok {
			return ast.Ty(name)
		}
	}
	return ast.Ty("_")
}

func intField(node map[string]any, key string) (int64, error) {
	switch v := node[key].(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("field %q is not an integer (%T)", key, node[key])
	}
}

func floatField(node map[string]any, key string) (float64, error) {
	switch v := node[key].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("field %q is not a float (%T)", key, node[key])
	}
}
