// Package yamlvalue defines the typed value tree pkg/interpreter walks:
// the "YAML source" collaborator's in-memory shape, a closed sum of
// Null, Boolean, Integer, Real, String, Array, and Hash.
//
// Real holds decimal text rather than a float64, matching how a Decimal
// literal converts back to YAML (Decimal(d) -> Real(d's shortest
// round-tripping decimal text), not a re-parsed float). internal/loader
// builds Real the same way from the float64 the YAML library decodes, so
// a document's original spelling of a real (trailing zeros, exponent
// form) is not preserved.
//
// Hash is a Go map rather than an ordered association list. The
// interpreter's mapping dispatch therefore checks for "return", then
// "if", then "while" in that fixed priority order rather than true
// first-key-in-document-order — a mapping carrying more than one of
// these reserved words is not a shape any real document produces, so
// the two notions of "first" coincide in practice.
package yamlvalue
