// Package ast defines the expression tree the parser builds and the
// evaluator consumes.
//
// Expression is a closed sum of six variants, each a small struct
// implementing an unexported marker method so only this package's types
// satisfy the Expression interface: Lit (a literal leaf), Variable (a name
// to resolve), Declare/Assign (binding forms), UnaryOp, and BinaryOp.
// There are no lists, attribute sets, functions, or selection expressions
// — this language has none of those (see the operator set in Operator).
//
// Nodes are produced once by the parser and consumed once by the
// evaluator; they carry no position information because parse errors are
// reported in terms of the lexer's token deques, not source offsets.
package ast
