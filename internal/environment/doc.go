// Package environment implements the scoped variable environment the
// evaluator and YAML interpreter share: an ordered stack of frames, each
// mapping a name to a literal.Literal.
//
// Design Principles:
//   - A frame stack, not a parent-pointer chain. Push/Pop are O(1) slice
//     operations with no ownership cycles to manage. Get and Assign scan
//     from the innermost (last) frame outward; Set always targets the
//     innermost frame.
//   - Set (declaring) and Assign (updating) are deliberately distinct:
//     Set always creates or overwrites a binding in the current frame,
//     shadowing any outer binding of the same name. Assign walks outward
//     to find an existing binding and mutates it in place, which is what
//     lets an if/while body update a variable declared in an outer scope.
//   - Assign to a name that exists nowhere in the stack is a silent no-op;
//     it is not an error. This mirrors the interpreter's historical
//     behavior and is documented rather than "fixed" away.
//
// Thread Safety: Environment is not safe for concurrent use. Exactly one
// evaluator invocation owns an Environment at a time (see the evaluator's
// single-threaded execution model).
package environment
