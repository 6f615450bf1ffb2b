package parser

import (
	"errors"
	"testing"

	"github.com/conneroisu/yamlex/internal/ast"
	"github.com/conneroisu/yamlex/internal/literal"
)

func num(n int32) ast.Expression { return &ast.Lit{Value: literal.Number(n)} }

func TestCollapseStacksOperatorPrecedence(t *testing.T) {
	// 1 * (2 + 3)
	//
	//      *
	//    /   \
	//   1     +
	//        / \
	//       2   3
	p := &parser{}

	p.varStack = prependExpr(p.varStack, num(1))
	p.varStack = prependExpr(p.varStack, num(2))
	p.varStack = prependExpr(p.varStack, num(3))

	p.opStack = prependOp(p.opStack, "*")
	p.opStack = prependOp(p.opStack, "(")
	p.opStack = prependOp(p.opStack, "+")
	p.opStack = prependOp(p.opStack, ")")

	if err := p.collapseStacks(-2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.varStack) != 1 {
		t.Fatalf("expected 1 remaining value, got %d", len(p.varStack))
	}

	want := &ast.BinaryOp{
		Op:   ast.Times,
		Left: num(1),
		Right: &ast.BinaryOp{
			Op:    ast.Plus,
			Left:  num(2),
			Right: num(3),
		},
	}

	if got := p.varStack[0].String(); got != want.String() {
		t.Fatalf("tree = %s, want %s", got, want.String())
	}
}

func TestParseErrorMissingRightOperand(t *testing.T) {
	// "1 +"
	values := []ast.Expression{num(1)}
	operators := []string{"+"}

	_, err := Parse(values, operators)

	var parseErr *Error
	if !errors.As(err, &parseErr) || parseErr.Kind != VariableStackError {
		t.Fatalf("expected VariableStackError, got %v", err)
	}
}

func TestParseErrorMissingOperator(t *testing.T) {
	// "1 2"
	values := []ast.Expression{num(1), num(2)}
	var operators []string

	_, err := Parse(values, operators)

	var parseErr *Error
	if !errors.As(err, &parseErr) || parseErr.Kind != Incomplete {
		t.Fatalf("expected Incomplete, got %v", err)
	}
}

func TestParseToAstSimple(t *testing.T) {
	// "1 + 2"
	values := []ast.Expression{num(1), num(2)}
	operators := []string{"+"}

	got, err := Parse(values, operators)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &ast.BinaryOp{Op: ast.Plus, Left: num(1), Right: num(2)}

	if got.String() != want.String() {
		t.Fatalf("tree = %s, want %s", got.String(), want.String())
	}
}

func TestParseToAst(t *testing.T) {
	// "1 + !5 ^ (2 && 6) * 2"
	//
	//     +
	//   /   \
	//  1     *
	//      /   \
	//    ^       2
	//  /   \
	// !     &&
	// |    /  \
	// 5   2    6
	values := []ast.Expression{num(1), num(5), num(2), num(6), num(2)}
	operators := []string{"+", "!", "^", "(", "&&", ")", "*"}

	got, err := Parse(values, operators)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notTree := &ast.UnaryOp{Op: ast.Not, Operand: num(5)}
	andTree := &ast.BinaryOp{Op: ast.And, Left: num(2), Right: num(6)}
	powTree := &ast.BinaryOp{Op: ast.Exponent, Left: notTree, Right: andTree}
	timesTree := &ast.BinaryOp{Op: ast.Times, Left: powTree, Right: num(2)}
	want := &ast.BinaryOp{Op: ast.Plus, Left: num(1), Right: timesTree}

	if got.String() != want.String() {
		t.Fatalf("tree = %s, want %s", got.String(), want.String())
	}
}

func TestParseDeclareRequiresVariableOnLeft(t *testing.T) {
	// "1 := 2"
	values := []ast.Expression{num(1), num(2)}
	operators := []string{":="}

	_, err := Parse(values, operators)

	var parseErr *Error
	if !errors.As(err, &parseErr) || parseErr.Kind != NameNotString {
		t.Fatalf("expected NameNotString, got %v", err)
	}
}

func TestParseAssignBuildsAssignNode(t *testing.T) {
	// "x = 1 + 2"
	values := []ast.Expression{&ast.Variable{Name: "x"}, num(1), num(2)}
	operators := []string{"=", "+"}

	got, err := Parse(values, operators)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assign, ok := got.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", got)
	}

	if assign.Name != "x" {
		t.Fatalf("assign target = %s, want x", assign.Name)
	}

	want := &ast.BinaryOp{Op: ast.Plus, Left: num(1), Right: num(2)}
	if assign.Value.String() != want.String() {
		t.Fatalf("assign value = %s, want %s", assign.Value.String(), want.String())
	}
}

func TestParseUnbalancedParenthesis(t *testing.T) {
	values := []ast.Expression{num(1), num(2)}
	operators := []string{"(", "+"}

	_, err := Parse(values, operators)

	var parseErr *Error
	if !errors.As(err, &parseErr) || parseErr.Kind != ParenthesisNotMatch {
		t.Fatalf("expected ParenthesisNotMatch, got %v", err)
	}
}
