// Package interpreter walks an internal/yamlvalue.Value tree, resolving
// every scalar string containing "~>" as an embedded expression and
// dispatching "return"/"if"/"while" mappings into the structural
// control flow they describe.
//
// Every sub-evaluation produces either a plain value or a Return that
// short-circuits every enclosing sequence: a sequence stops at its
// first Return and yields it directly; a mapping's "return" key wraps
// its sub-value's plain result as a Return, or passes an existing one
// through unchanged. Evaluate unwraps either case to a plain Value.
//
// "if" and "while" share the same sub-value shape: a sequence whose
// leading scalar strings are predicate fragments (joined with "&&"
// into one expression) followed by a mapping carrying "do" and,
// for "if", optionally "else". Each entry into a "do"/"else" branch
// pushes a fresh environment frame and pops it unconditionally,
// including when the branch errors or returns.
package interpreter
