package eval

import (
	"errors"

	"github.com/conneroisu/yamlex/internal/ast"
	"github.com/conneroisu/yamlex/internal/literal"
)

// applyUnary dispatches a unary ast.Operator to its internal/literal
// method, translating sentinel errors into typed eval errors.
func applyUnary(op ast.Operator, operand literal.Literal) (literal.Literal, error) {
	switch op {
	case ast.Not:
		result, err := operand.Not()
		if err != nil {
			return literal.Nil, newError(InvalidUnOp, op.String()+operand.String())
		}

		return result, nil
	default:
		return literal.Nil, newError(NotUnOp, op.String())
	}
}

// applyBinary dispatches a binary ast.Operator to its internal/literal
// method, translating sentinel errors into typed eval errors.
func applyBinary(op ast.Operator, left, right literal.Literal) (literal.Literal, error) {
	var (
		result literal.Literal
		err    error
	)

	switch op {
	case ast.Plus:
		result, err = left.Add(right)
	case ast.Minus:
		result, err = left.Sub(right)
	case ast.Times:
		result, err = left.Mul(right)
	case ast.Divide:
		result, err = left.Div(right)
	case ast.Modulo:
		result, err = left.Mod(right)
	case ast.Exponent:
		result, err = left.Pow(right)
	case ast.And:
		result, err = left.And(right)
	case ast.Or:
		result, err = left.Or(right)
	case ast.Equal:
		return left.Equal(right), nil
	case ast.NotEqual:
		return left.NotEqual(right), nil
	default:
		return literal.Nil, newError(NotBinOp, op.String())
	}

	if err != nil {
		if errors.Is(err, literal.ErrDivisionByZero) {
			return literal.Nil, newError(DivisionByZero, op.String())
		}

		return literal.Nil, newError(InvalidBinOp, left.String()+" "+op.String()+" "+right.String())
	}

	return result, nil
}
