package yamlvalue

import (
	"fmt"
	"strconv"

	"github.com/conneroisu/yamlex/internal/literal"
)

// Kind tags the variant a Value currently holds.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindReal
	KindString
	KindArray
	KindHash
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindHash:
		return "Hash"
	default:
		return "Null"
	}
}

// Value is an immutable node of the YAML value tree.
type Value struct {
	kind Kind
	b    bool
	i    int64
	real string
	s    string
	arr  []Value
	hash map[string]Value
}

// Null is the absent/unit Value.
var Null = Value{kind: KindNull}

// Boolean constructs a Value holding a boolean.
func Boolean(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Integer constructs a Value holding a signed 64-bit integer.
func Integer(i int64) Value { return Value{kind: KindInteger, i: i} }

// Real constructs a Value holding a decimal's canonical text form.
func Real(text string) Value { return Value{kind: KindReal, real: text} }

// String constructs a Value holding a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array constructs a Value holding an ordered sequence.
func Array(items []Value) Value { return Value{kind: KindArray, arr: items} }

// Hash constructs a Value holding a mapping.
func Hash(entries map[string]Value) Value { return Value{kind: KindHash, hash: entries} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the underlying bool; valid only when Kind() == KindBoolean.
func (v Value) AsBool() bool { return v.b }

// AsInteger returns the underlying int64; valid only when Kind() == KindInteger.
func (v Value) AsInteger() int64 { return v.i }

// AsReal returns the underlying decimal text; valid only when Kind() == KindReal.
func (v Value) AsReal() string { return v.real }

// AsString returns the underlying string; valid only when Kind() == KindString.
func (v Value) AsString() string { return v.s }

// AsArray returns the underlying element slice; valid only when Kind() == KindArray.
func (v Value) AsArray() []Value { return v.arr }

// AsHash returns the underlying entry map; valid only when Kind() == KindHash.
func (v Value) AsHash() map[string]Value { return v.hash }

// String renders v for diagnostics and REPL output.
func (v Value) String() string {
	switch v.kind {
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return v.real
	case KindString:
		return v.s
	case KindArray:
		return fmt.Sprintf("%v", v.arr)
	case KindHash:
		return fmt.Sprintf("%v", v.hash)
	default:
		return "null"
	}
}

// FromLiteral converts a fully-reduced expression result into its YAML
// surface form: Number becomes Integer, Decimal becomes Real (keeping
// the shortest round-tripping decimal text), Bool becomes Boolean, and
// Str becomes String.
func FromLiteral(lit literal.Literal) Value {
	switch lit.Kind() {
	case literal.KindNumber:
		return Integer(int64(lit.AsNumber()))
	case literal.KindDecimal:
		return Real(strconv.FormatFloat(lit.AsDecimal(), 'g', -1, 64))
	case literal.KindBool:
		return Boolean(lit.AsBool())
	case literal.KindStr:
		return String(lit.AsStr())
	default:
		return Null
	}
}

// Truthy applies the same predicate duality as literal.Literal.Truthy
// to a YAML value: Boolean(true) is true, Integer(n) is true iff n > 0,
// everything else is false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBoolean:
		return v.b
	case KindInteger:
		return v.i > 0
	default:
		return false
	}
}
