package ast

import (
	"fmt"

	"github.com/conneroisu/yamlex/internal/literal"
)

// Operator enumerates the unary and binary operators an Expression can
// carry. Its surface-syntax string form (see String) is also what the
// lexer emits into the operator deque and what the parser's precedence
// table is keyed on.
type Operator int

const (
	// Not is the sole unary operator.
	Not Operator = iota
	Plus
	Minus
	Times
	Divide
	Modulo
	Exponent
	And
	Or
	Equal
	NotEqual
)

// String renders the operator's surface syntax.
func (op Operator) String() string {
	switch op {
	case Not:
		return "!"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Divide:
		return "/"
	case Modulo:
		return "%"
	case Exponent:
		return "^"
	case And:
		return "&&"
	case Or:
		return "||"
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	default:
		return "?"
	}
}

// Expression is the closed sum of expression tree nodes. Only types
// defined in this package implement it.
type Expression interface {
	exprNode()
	String() string
}

// Lit is a literal leaf.
type Lit struct {
	Value literal.Literal
}

func (*Lit) exprNode() {}

func (e *Lit) String() string { return e.Value.String() }

// Variable names a binding to resolve in the environment.
type Variable struct {
	Name string
}

func (*Variable) exprNode() {}

func (e *Variable) String() string { return e.Name }

// Declare introduces Name in the innermost scope, bound to the value of
// Value, shadowing any outer binding of the same name.
type Declare struct {
	Name  string
	Value Expression
}

func (*Declare) exprNode() {}

func (e *Declare) String() string { return fmt.Sprintf("%s := %s", e.Name, e.Value) }

// Assign updates the nearest existing binding of Name; it is a silent
// no-op at evaluation time if no such binding exists.
type Assign struct {
	Name  string
	Value Expression
}

func (*Assign) exprNode() {}

func (e *Assign) String() string { return fmt.Sprintf("%s = %s", e.Name, e.Value) }

// UnaryOp applies Op (only Not is valid) to Operand.
type UnaryOp struct {
	Op      Operator
	Operand Expression
}

func (*UnaryOp) exprNode() {}

func (e *UnaryOp) String() string { return fmt.Sprintf("%s%s", e.Op, e.Operand) }

// BinaryOp applies Op to Left and Right, evaluated in that order.
type BinaryOp struct {
	Op    Operator
	Left  Expression
	Right Expression
}

func (*BinaryOp) exprNode() {}

func (e *BinaryOp) String() string { return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right) }
