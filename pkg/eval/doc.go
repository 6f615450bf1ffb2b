// Package eval walks an internal/ast.Expression tree against an
// internal/environment.Environment and produces a literal.Literal.
//
// Eval is a direct type switch over the closed Expression sum, one
// case per concrete node. Every case either returns a literal.Literal
// or an error; there is no intermediate "partially reduced expression"
// state the way the evaluator this package is ported from represents
// results as expressions that must themselves be literals. Because of
// that, several error kinds in the original taxonomy (CannotReduceUnOp
// and friends) describe a state this evaluator cannot reach — they are
// kept in Kind for taxonomy completeness, never constructed.
//
// Declare always binds in the innermost scope; Assign walks outward
// and is a silent no-op if the name is bound nowhere. Both rules live
// in internal/environment, not here.
package eval
