package main

import (
	"fmt"
	"strings"

	"github.com/conneroisu/yamlex/internal/environment"
	"github.com/conneroisu/yamlex/internal/literal"
	"github.com/conneroisu/yamlex/pkg/eval"
	"github.com/conneroisu/yamlex/pkg/lexer"
	"github.com/conneroisu/yamlex/pkg/parser"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr>",
		Short: "Evaluate a single bare expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(strings.Join(args, " "))
		},
	}
}

func runEval(expr string) error {
	env := environment.New()
	if err := seedEnvironment(env); err != nil {
		return err
	}

	lit, err := evalExpression(expr, env)
	if err != nil {
		return err
	}

	fmt.Println(lit.String())

	return nil
}

// evalExpression runs the full lex/parse/eval pipeline over a single bare
// expression, mirroring the teacher's -e flag.
func evalExpression(expr string, env *environment.Environment) (literal.Literal, error) {
	values, ops, err := lexer.Lex(expr)
	if err != nil {
		return literal.Literal{}, fmt.Errorf("lex error: %w", err)
	}

	tree, err := parser.Parse(values, ops)
	if err != nil {
		return literal.Literal{}, fmt.Errorf("parse error: %w", err)
	}

	lit, err := eval.Eval(tree, env)
	if err != nil {
		return literal.Literal{}, fmt.Errorf("eval error: %w", err)
	}

	return lit, nil
}
