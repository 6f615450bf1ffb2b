package interpreter

import (
	"strings"

	"github.com/conneroisu/yamlex/internal/environment"
	"github.com/conneroisu/yamlex/internal/yamlvalue"
)

// conditional holds the joined predicate expression text and the
// branch mapping ("do"/"else") an "if" or "while" sequence unpacks to.
type conditional struct {
	predicate string
	branches  map[string]yamlvalue.Value
}

// splitConditional reads every scalar string item of seq as a
// predicate fragment, joining them with "&&" into one expression text,
// and merges the keys of every mapping item into its branches (a later
// mapping's key replaces an earlier one's).
func splitConditional(seq []yamlvalue.Value) conditional {
	var fragments []string

	branches := make(map[string]yamlvalue.Value)

	for _, item := range seq {
		switch item.Kind() {
		case yamlvalue.KindString:
			fragments = append(fragments, stripSigil(item.AsString()))
		case yamlvalue.KindHash:
			for k, v := range item.AsHash() {
				branches[k] = v
			}
		}
	}

	return conditional{predicate: strings.Join(fragments, " && "), branches: branches}
}

func stripSigil(s string) string {
	if idx := strings.Index(s, sigil); idx >= 0 {
		return strings.TrimSpace(s[idx+len(sigil):])
	}

	return strings.TrimSpace(s)
}

// evalIf evaluates the joined predicate once; on a truthy result it
// runs the "do" branch in a new scope, on a falsy result the "else"
// branch if one exists, and otherwise yields Null.
func evalIf(seq yamlvalue.Value, env *environment.Environment) (outcome, error) {
	if seq.Kind() != yamlvalue.KindArray {
		return outcome{}, newError(PredicateNotSequence, "if")
	}

	cond := splitConditional(seq.AsArray())

	lit, err := evalExpressionText(cond.predicate, env)
	if err != nil {
		return outcome{}, err
	}

	if lit.Truthy() {
		if do, ok := cond.branches["do"]; ok {
			return evalBranch(do, env)
		}

		return outcome{value: yamlvalue.Null}, nil
	}

	if els, ok := cond.branches["else"]; ok {
		return evalBranch(els, env)
	}

	return outcome{value: yamlvalue.Null}, nil
}

// evalWhile re-evaluates the joined predicate before every iteration,
// running the "do" branch in a new scope while it stays truthy. A
// Return signaled from inside the body stops the loop and propagates
// out immediately; otherwise the loop's own value is Null, unit-like,
// since it is the statement following it in an enclosing sequence
// that carries any visible result.
func evalWhile(seq yamlvalue.Value, env *environment.Environment) (outcome, error) {
	if seq.Kind() != yamlvalue.KindArray {
		return outcome{}, newError(PredicateNotSequence, "while")
	}

	cond := splitConditional(seq.AsArray())

	do, hasDo := cond.branches["do"]
	if !hasDo {
		return outcome{value: yamlvalue.Null}, nil
	}

	for {
		lit, err := evalExpressionText(cond.predicate, env)
		if err != nil {
			return outcome{}, err
		}

		if !lit.Truthy() {
			break
		}

		out, err := evalBranch(do, env)
		if err != nil {
			return outcome{}, err
		}

		if out.isReturn {
			return out, nil
		}
	}

	return outcome{value: yamlvalue.Null}, nil
}
