// Package literal implements the fully-reduced value type the evaluator
// produces and the environment stores.
//
// Design Principles:
//   - A Literal is a closed tagged union over five kinds: Number (int32),
//     Decimal (float64), Bool, Str, and Nil. There is no dispatch table;
//     every operator method is an explicit match on the operand kinds.
//   - Arithmetic on a Number/Decimal pair always promotes to Decimal.
//     Number/Number arithmetic stays integral — division truncates toward
//     zero the way Go's integer division already does, and a zero divisor
//     is a DivisionByZero error rather than a runtime panic.
//   - Equal/NotEqual are total: comparing values of different kinds never
//     errors, it yields false/true respectively.
//   - And/Or/Not require Bool operands on both sides; there is no implicit
//     truthiness at this layer (that lives one level up, in the YAML
//     interpreter's predicate evaluation).
//
// Performance: Literal is a small value type (a kind tag plus one field
// per variant) and is copied by value throughout the evaluator; there is
// no allocation on the arithmetic hot path beyond the Str case.
package literal
