package yamlvalue

import (
	"testing"

	"github.com/conneroisu/yamlex/internal/literal"
	"github.com/stretchr/testify/assert"
)

func TestFromLiteralNumber(t *testing.T) {
	got := FromLiteral(literal.Number(7))

	assert.Equal(t, KindInteger, got.Kind())
	assert.Equal(t, int64(7), got.AsInteger())
}

func TestFromLiteralDecimal(t *testing.T) {
	got := FromLiteral(literal.Decimal(5.5))

	assert.Equal(t, KindReal, got.Kind())
	assert.Equal(t, "5.5", got.AsReal())
}

func TestFromLiteralBool(t *testing.T) {
	got := FromLiteral(literal.Bool(true))

	assert.Equal(t, KindBoolean, got.Kind())
	assert.True(t, got.AsBool())
}

func TestFromLiteralStr(t *testing.T) {
	got := FromLiteral(literal.Str("hi"))

	assert.Equal(t, KindString, got.Kind())
	assert.Equal(t, "hi", got.AsString())
}

func TestFromLiteralNil(t *testing.T) {
	got := FromLiteral(literal.Nil)

	assert.Equal(t, KindNull, got.Kind())
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"true", Boolean(true), true},
		{"false", Boolean(false), false},
		{"positive integer", Integer(1), true},
		{"zero integer", Integer(0), false},
		{"negative integer", Integer(-1), false},
		{"string", String("true"), false},
		{"null", Null, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.v.Truthy(), c.name)
	}
}
