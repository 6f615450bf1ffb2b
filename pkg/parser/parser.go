package parser

import "github.com/conneroisu/yamlex/internal/ast"

// parser holds the value and operator stacks used while collapsing a
// token stream into a tree. Both stacks are kept front = top.
type parser struct {
	varStack []ast.Expression
	opStack  []string
}

func prependExpr(stack []ast.Expression, v ast.Expression) []ast.Expression {
	return append([]ast.Expression{v}, stack...)
}

func prependOp(stack []string, op string) []string {
	return append([]string{op}, stack...)
}

// Parse consumes values and operators, both already in left-to-right
// source order, and produces the single expression tree they describe.
func Parse(values []ast.Expression, operators []string) (ast.Expression, error) {
	p := &parser{}

	vi, oi := 0, 0

	for oi < len(operators) {
		operator := operators[oi]
		oi++

		if vi < len(values) && operator != "(" && operator != ")" && operator != "!" {
			p.varStack = prependExpr(p.varStack, values[vi])
			vi++
		}

		lowerPrecedence := false
		opPrecedence := -2

		if len(p.opStack) > 0 {
			front := p.opStack[0]
			threshold := precedence(operator)

			switch operator {
			case "*", "/", "%", "+", "-", "==", "!=", "&&", "||":
				threshold-- // left-associative: equal precedence collapses too
			}

			if threshold < precedence(front) && precedence(operator) != -1 {
				lowerPrecedence = true
				opPrecedence = threshold
			}
		}

		if lowerPrecedence {
			if err := p.collapseStacks(opPrecedence); err != nil {
				return nil, err
			}
		}

		p.opStack = prependOp(p.opStack, operator)
	}

	for vi < len(values) {
		p.varStack = prependExpr(p.varStack, values[vi])
		vi++
	}

	if len(p.opStack) > 0 {
		if err := p.collapseStacks(-2); err != nil {
			return nil, err
		}
	}

	switch {
	case len(p.varStack) > 1:
		return nil, newError(Incomplete, "")
	case len(p.varStack) == 1:
		return p.varStack[0], nil
	default:
		return nil, newError(ResultNotLiteral, "")
	}
}

// collapseStacks pops operators off the operator stack, building
// UnaryOp/BinaryOp nodes from the value stack, until either the stack
// empties or addOpPrecedence no longer yields to the operator on top.
// A non-zero running parenthesis count forces the unwind to continue
// past its normal stopping point until the matching "(" is consumed.
func (p *parser) collapseStacks(addOpPrecedence int) error {
	parenCount := 0

	for len(p.opStack) > 0 && (addOpPrecedence < precedence(p.opStack[0]) || parenCount > 0) {
		operator := p.opStack[0]
		p.opStack = p.opStack[1:]

		switch operator {
		case ")":
			parenCount++
		case "(":
			parenCount--
		case "!":
			if len(p.varStack) < 1 {
				return newError(VariableStackError, operator)
			}

			operand := p.varStack[0]
			p.varStack = p.varStack[1:]
			p.varStack = prependExpr(p.varStack, &ast.UnaryOp{Op: ast.Not, Operand: operand})
		default:
			if len(p.varStack) < 2 {
				return newError(VariableStackError, operator)
			}

			right := p.varStack[0]
			left := p.varStack[1]
			p.varStack = p.varStack[2:]

			node, err := operatorToExpr(operator, left, right)
			if err != nil {
				return err
			}

			p.varStack = prependExpr(p.varStack, node)
		}
	}

	if parenCount != 0 {
		return newError(ParenthesisNotMatch, "")
	}

	return nil
}

// operatorToExpr builds the ast node an operator string denotes, given
// its already-popped left and right operands.
func operatorToExpr(operator string, left, right ast.Expression) (ast.Expression, error) {
	switch operator {
	case "+":
		return &ast.BinaryOp{Op: ast.Plus, Left: left, Right: right}, nil
	case "-":
		return &ast.BinaryOp{Op: ast.Minus, Left: left, Right: right}, nil
	case "*":
		return &ast.BinaryOp{Op: ast.Times, Left: left, Right: right}, nil
	case "/":
		return &ast.BinaryOp{Op: ast.Divide, Left: left, Right: right}, nil
	case "%":
		return &ast.BinaryOp{Op: ast.Modulo, Left: left, Right: right}, nil
	case "^":
		return &ast.BinaryOp{Op: ast.Exponent, Left: left, Right: right}, nil
	case "&&":
		return &ast.BinaryOp{Op: ast.And, Left: left, Right: right}, nil
	case "||":
		return &ast.BinaryOp{Op: ast.Or, Left: left, Right: right}, nil
	case "==":
		return &ast.BinaryOp{Op: ast.Equal, Left: left, Right: right}, nil
	case "!=":
		return &ast.BinaryOp{Op: ast.NotEqual, Left: left, Right: right}, nil
	case "=":
		name, ok := left.(*ast.Variable)
		if !ok {
			return nil, newError(NameNotString, left.String())
		}

		return &ast.Assign{Name: name.Name, Value: right}, nil
	case ":=":
		name, ok := left.(*ast.Variable)
		if !ok {
			return nil, newError(NameNotString, left.String())
		}

		return &ast.Declare{Name: name.Name, Value: right}, nil
	default:
		return nil, newError(OperatorStackError, operator)
	}
}
