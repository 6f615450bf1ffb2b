package interpreter

import (
	"strings"

	"github.com/conneroisu/yamlex/internal/environment"
	"github.com/conneroisu/yamlex/internal/literal"
	"github.com/conneroisu/yamlex/internal/yamlvalue"
	"github.com/conneroisu/yamlex/pkg/eval"
	"github.com/conneroisu/yamlex/pkg/lexer"
	"github.com/conneroisu/yamlex/pkg/parser"
)

// sigil marks a YAML scalar string as an embedded expression; the text
// after its first occurrence is lexed, parsed, and evaluated.
const sigil = "~>"

// outcome is the internal result of evaluating one node: either a
// plain value or a value that must short-circuit every enclosing
// sequence up to the nearest caller of Evaluate.
type outcome struct {
	value    yamlvalue.Value
	isReturn bool
}

// Evaluate walks doc against env, resolving every "~>" scalar as an
// expression and dispatching "return"/"if"/"while" mappings, and
// unwraps the result to a plain Value. It is total over every
// yamlvalue.Value shape: unrecognized mappings and non-string scalars
// pass through unchanged.
func Evaluate(doc yamlvalue.Value, env *environment.Environment) (yamlvalue.Value, error) {
	out, err := evalNode(doc, env)
	if err != nil {
		return yamlvalue.Null, err
	}

	return out.value, nil
}

func evalNode(doc yamlvalue.Value, env *environment.Environment) (outcome, error) {
	switch doc.Kind() {
	case yamlvalue.KindString:
		return evalScalarString(doc.AsString(), env)
	case yamlvalue.KindArray:
		return evalSequence(doc.AsArray(), env)
	case yamlvalue.KindHash:
		return evalMapping(doc, env)
	default:
		return outcome{value: doc}, nil
	}
}

func evalScalarString(s string, env *environment.Environment) (outcome, error) {
	idx := strings.Index(s, sigil)
	if idx < 0 {
		return outcome{value: yamlvalue.String(s)}, nil
	}

	lit, err := evalExpressionText(s[idx+len(sigil):], env)
	if err != nil {
		return outcome{}, err
	}

	return outcome{value: yamlvalue.FromLiteral(lit)}, nil
}

// evalExpressionText runs the full lex/parse/eval pipeline over a bare
// expression string (no sigil).
func evalExpressionText(text string, env *environment.Environment) (literal.Literal, error) {
	values, ops, err := lexer.Lex(text)
	if err != nil {
		return literal.Nil, err
	}

	tree, err := parser.Parse(values, ops)
	if err != nil {
		return literal.Nil, err
	}

	return eval.Eval(tree, env)
}

func evalSequence(items []yamlvalue.Value, env *environment.Environment) (outcome, error) {
	last := outcome{value: yamlvalue.Null}

	for _, item := range items {
		out, err := evalNode(item, env)
		if err != nil {
			return outcome{}, err
		}

		if out.isReturn {
			return out, nil
		}

		last = out
	}

	return last, nil
}

func evalMapping(doc yamlvalue.Value, env *environment.Environment) (outcome, error) {
	h := doc.AsHash()

	if v, ok := h["return"]; ok {
		return evalReturn(v, env)
	}

	if v, ok := h["if"]; ok {
		return evalIf(v, env)
	}

	if v, ok := h["while"]; ok {
		return evalWhile(v, env)
	}

	return outcome{value: doc}, nil
}

func evalReturn(sub yamlvalue.Value, env *environment.Environment) (outcome, error) {
	out, err := evalNode(sub, env)
	if err != nil {
		return outcome{}, err
	}

	if out.isReturn {
		return out, nil
	}

	return outcome{value: out.value, isReturn: true}, nil
}

// evalBranch pushes a fresh frame, evaluates branch inside it, and
// pops unconditionally — even when branch evaluation errors or
// signals a Return — so the frame count always returns to what it was
// before the call.
func evalBranch(branch yamlvalue.Value, env *environment.Environment) (outcome, error) {
	env.Push()
	out, err := evalNode(branch, env)
	env.Pop()

	return out, err
}
