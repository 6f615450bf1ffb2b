// Package parser turns the two token deques the lexer produces into a
// single internal/ast.Expression tree using a shunting-yard algorithm.
//
// Both input slices are read front-first, left to right, exactly as the
// lexer produced them. The parser keeps its own two stacks (a value
// stack and an operator stack, both front = top). Each incoming binary
// operator first pushes its left operand onto the value stack ("!" and
// the parentheses push none); the stacks are then collapsed while the
// operator on top binds tighter than the incoming one, or equally tight
// when the incoming operator is left-associative (every binary operator
// except "^", "=" and ":="). A ")" is pushed like any other operator;
// since its precedence is the highest, the next lower-precedence
// operator, or the final collapse, unwinds it. The sentinel precedence
// of "(" (-1) makes it immune to being collapsed from outside; only the
// unwind triggered by ")" tears down everything back to its matching "(".
//
// Collapsing pops one operator and, for every operator besides
// parentheses, one or two values to build a internal/ast.UnaryOp or
// internal/ast.BinaryOp node which is pushed back onto the value stack.
// "=" and ":=" are collapsed the same way, but additionally require
// their left-hand value to be a bare internal/ast.Variable, since an
// Assign or Declare node names its target rather than holding an
// arbitrary expression.
package parser
