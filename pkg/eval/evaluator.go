package eval

import (
	"fmt"

	"github.com/conneroisu/yamlex/internal/ast"
	"github.com/conneroisu/yamlex/internal/environment"
	"github.com/conneroisu/yamlex/internal/literal"
)

// Eval reduces expr to a literal value against env, mutating env for
// Declare and Assign nodes.
func Eval(expr ast.Expression, env *environment.Environment) (literal.Literal, error) {
	switch e := expr.(type) {
	case *ast.Lit:
		return e.Value, nil

	case *ast.Variable:
		value, ok := env.Get(e.Name)
		if !ok {
			return literal.Nil, newError(VarNotInEnv, e.Name)
		}

		return value, nil

	case *ast.Declare:
		value, err := Eval(e.Value, env)
		if err != nil {
			return literal.Nil, err
		}

		env.Set(e.Name, value)

		return value, nil

	case *ast.Assign:
		value, err := Eval(e.Value, env)
		if err != nil {
			return literal.Nil, err
		}

		env.Assign(e.Name, value)

		return value, nil

	case *ast.UnaryOp:
		operand, err := Eval(e.Operand, env)
		if err != nil {
			return literal.Nil, err
		}

		return applyUnary(e.Op, operand)

	case *ast.BinaryOp:
		left, err := Eval(e.Left, env)
		if err != nil {
			return literal.Nil, err
		}

		right, err := Eval(e.Right, env)
		if err != nil {
			return literal.Nil, err
		}

		return applyBinary(e.Op, left, right)

	default:
		return literal.Nil, fmt.Errorf("eval: unhandled expression node %T", expr)
	}
}
