// Package lexer turns a flat expression string into the two token deques
// the parser consumes: a values deque of already-typed ast.Expression
// leaves (Lit/Variable) and an operators deque of operator strings,
// including parentheses.
//
// Token Recognition: the lexer is a deterministic character-class state
// machine with six states (None, Variable, Number, Decimal, String,
// Operator). Each incoming character is classified as letter, digit,
// quote, dot, or operator (anything else, excluding whitespace), and the
// classification plus the current state determines whether the character
// extends the in-progress token or flushes it and starts a new one.
//
// Operator Building: operator characters accumulate speculatively — `=`
// followed by `=` becomes `==`, `!` followed by `=` becomes `!=`, `:`
// followed by `=` becomes `:=`, and so on — by checking after each
// appended character whether the extended string is still a recognized
// operator; if not, the previous operator is flushed and a fresh one
// starts with the new character.
//
// String Processing: inside the String state every character, including
// whitespace and characters that would otherwise be operators, is
// appended verbatim until a closing quote. There is no escape processing.
//
// Error Handling: a closed set of lexical errors (see Kind) covers a
// letter following a number, an unrecognized operator character, a dot in
// an invalid position, and a quote in an invalid position or an
// unterminated string at end of input.
package lexer
