package interpreter

import (
	"testing"

	"github.com/conneroisu/yamlex/internal/environment"
	"github.com/conneroisu/yamlex/internal/literal"
	"github.com/conneroisu/yamlex/internal/yamlvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) yamlvalue.Value { return yamlvalue.String(s) }

func TestEvaluateBareArithmeticExpression(t *testing.T) {
	env := environment.New()

	got, err := Evaluate(str("~> 1 + 2 * 3"), env)
	require.NoError(t, err)

	assert.Equal(t, yamlvalue.KindInteger, got.Kind())
	assert.Equal(t, int64(7), got.AsInteger())
}

func TestEvaluateBareDecimalExpression(t *testing.T) {
	env := environment.New()

	got, err := Evaluate(str("~> 1.5 - 2 + 6"), env)
	require.NoError(t, err)

	assert.Equal(t, yamlvalue.KindReal, got.Kind())
	assert.Equal(t, "5.5", got.AsReal())
}

func TestEvaluateIfDoBranchThenReturn(t *testing.T) {
	// foo:
	//   - '~> a := 2'
	//   - if:
	//     - '~> a == 2'
	//     - do:
	//       - '~> a = 3'
	//   - return: '~> a * (2 + 3)'
	foo := yamlvalue.Array([]yamlvalue.Value{
		str("~> a := 2"),
		yamlvalue.Hash(map[string]yamlvalue.Value{
			"if": yamlvalue.Array([]yamlvalue.Value{
				str("~> a == 2"),
				yamlvalue.Hash(map[string]yamlvalue.Value{
					"do": yamlvalue.Array([]yamlvalue.Value{str("~> a = 3")}),
				}),
			}),
		}),
		yamlvalue.Hash(map[string]yamlvalue.Value{
			"return": str("~> a * (2 + 3)"),
		}),
	})

	env := environment.New()
	env.Set("a", literal.Number(1))
	env.Set("b", literal.Number(2))

	got, err := Evaluate(foo, env)
	require.NoError(t, err)

	assert.Equal(t, yamlvalue.KindInteger, got.Kind())
	assert.Equal(t, int64(15), got.AsInteger())

	a, ok := env.Get("a")
	require.True(t, ok)
	assert.Equal(t, int32(3), a.AsNumber())
}

func TestEvaluateIfElseBranchThenReturn(t *testing.T) {
	// foo:
	//   - '~> a := 2'
	//   - if:
	//     - '~> a == 3'
	//     - do:
	//         - '~> a = 3'
	//       else:
	//         - '~> a = 4'
	//   - return: '~> a * (2 + 3)'
	foo := yamlvalue.Array([]yamlvalue.Value{
		str("~> a := 2"),
		yamlvalue.Hash(map[string]yamlvalue.Value{
			"if": yamlvalue.Array([]yamlvalue.Value{
				str("~> a == 3"),
				yamlvalue.Hash(map[string]yamlvalue.Value{
					"do":   yamlvalue.Array([]yamlvalue.Value{str("~> a = 3")}),
					"else": yamlvalue.Array([]yamlvalue.Value{str("~> a = 4")}),
				}),
			}),
		}),
		yamlvalue.Hash(map[string]yamlvalue.Value{
			"return": str("~> a * (2 + 3)"),
		}),
	})

	env := environment.New()

	got, err := Evaluate(foo, env)
	require.NoError(t, err)

	assert.Equal(t, yamlvalue.KindInteger, got.Kind())
	assert.Equal(t, int64(20), got.AsInteger())
}

func TestEvaluateWhileLoop(t *testing.T) {
	// foo:
	//   - '~> a := 0'
	//   - while:
	//     - '~> a != 5'
	//     - do:
	//       - '~> a = a + 1'
	//   - '~> a'
	foo := yamlvalue.Array([]yamlvalue.Value{
		str("~> a := 0"),
		yamlvalue.Hash(map[string]yamlvalue.Value{
			"while": yamlvalue.Array([]yamlvalue.Value{
				str("~> a != 5"),
				yamlvalue.Hash(map[string]yamlvalue.Value{
					"do": yamlvalue.Array([]yamlvalue.Value{str("~> a = a + 1")}),
				}),
			}),
		}),
		str("~> a"),
	})

	env := environment.New()

	got, err := Evaluate(foo, env)
	require.NoError(t, err)

	assert.Equal(t, yamlvalue.KindInteger, got.Kind())
	assert.Equal(t, int64(5), got.AsInteger())

	a, ok := env.Get("a")
	require.True(t, ok)
	assert.Equal(t, int32(5), a.AsNumber())
}

func TestEvaluateLeadingReturnStopsSequence(t *testing.T) {
	doc := yamlvalue.Array([]yamlvalue.Value{
		yamlvalue.Hash(map[string]yamlvalue.Value{
			"return": str("~> 2 * (2 + 3)"),
		}),
		str("~> a := 2"),
	})

	env := environment.New()

	got, err := Evaluate(doc, env)
	require.NoError(t, err)

	assert.Equal(t, yamlvalue.KindInteger, got.Kind())
	assert.Equal(t, int64(10), got.AsInteger())

	_, ok := env.Get("a")
	assert.False(t, ok, "a should remain unbound: the statement after return must not execute")
}

func TestEvaluateReturnInsideWhilePropagatesPastTheLoop(t *testing.T) {
	// A return inside a while body stops evaluation of the entire
	// enclosing document, not just the loop.
	doc := yamlvalue.Array([]yamlvalue.Value{
		str("~> a := 0"),
		yamlvalue.Hash(map[string]yamlvalue.Value{
			"while": yamlvalue.Array([]yamlvalue.Value{
				str("~> a != 5"),
				yamlvalue.Hash(map[string]yamlvalue.Value{
					"do": yamlvalue.Array([]yamlvalue.Value{
						yamlvalue.Hash(map[string]yamlvalue.Value{
							"return": str("~> a"),
						}),
						str("~> a = a + 1"),
					}),
				}),
			}),
		}),
		str("~> 999"),
	})

	env := environment.New()
	env.Set("a", literal.Number(0))

	got, err := Evaluate(doc, env)
	require.NoError(t, err)

	assert.Equal(t, yamlvalue.KindInteger, got.Kind())
	assert.Equal(t, int64(0), got.AsInteger())

	a, ok := env.Get("a")
	require.True(t, ok)
	assert.Equal(t, int32(0), a.AsNumber(), "the increment after return must not run")
}

func TestEvaluateMappingWithNoReservedKeyPassesThrough(t *testing.T) {
	doc := yamlvalue.Hash(map[string]yamlvalue.Value{
		"plain": str("hello"),
	})

	env := environment.New()

	got, err := Evaluate(doc, env)
	require.NoError(t, err)

	assert.Equal(t, yamlvalue.KindHash, got.Kind())
}

func TestEvaluateIfPredicateNotSequenceErrors(t *testing.T) {
	doc := yamlvalue.Hash(map[string]yamlvalue.Value{
		"if": str("~> true"),
	})

	env := environment.New()

	_, err := Evaluate(doc, env)

	ie, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, PredicateNotSequence, ie.Kind)
}
