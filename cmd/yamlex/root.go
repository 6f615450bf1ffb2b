package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/conneroisu/yamlex/internal/environment"
	"github.com/conneroisu/yamlex/internal/literal"
	"github.com/conneroisu/yamlex/internal/loader"
	"github.com/conneroisu/yamlex/internal/yamlvalue"
	"github.com/spf13/cobra"
)

var (
	varFlags []string
	varsFile string
	logLevel string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "yamlex",
		Short: "Evaluate the expression language embedded in YAML documents",
		Long: `yamlex lexes, parses, and evaluates the "~>" expression language
embedded in YAML scalars, and interprets the if/while/return control
flow described by YAML sequences and mappings around them.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringArrayVar(&varFlags, "var", nil, "seed an environment binding as name=value (repeatable)")
	root.PersistentFlags().StringVar(&varsFile, "vars", "", "seed environment bindings from a YAML mapping file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newWatchCmd())

	return root
}

// newLogger builds the host-level structured logger. Core packages never
// log; only the CLI does.
func newLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return slog.New(handler)
}

// seedEnvironment applies --vars then --var, in that order, so a repeated
// --var overrides a same-named binding loaded from the file.
func seedEnvironment(env *environment.Environment) error {
	if varsFile != "" {
		val, err := loader.Load(varsFile)
		if err != nil {
			return fmt.Errorf("loading --vars file: %w", err)
		}

		if val.Kind() != yamlvalue.KindHash {
			return fmt.Errorf("--vars file %s must contain a YAML mapping", varsFile)
		}

		for name, v := range val.AsHash() {
			env.Set(name, valueToLiteral(v))
		}
	}

	for _, raw := range varFlags {
		name, lit, err := parseVarFlag(raw)
		if err != nil {
			return err
		}

		env.Set(name, lit)
	}

	return nil
}

func parseVarFlag(raw string) (string, literal.Literal, error) {
	name, value, ok := strings.Cut(raw, "=")
	if !ok {
		return "", literal.Literal{}, fmt.Errorf("--var %q must have the form name=value", raw)
	}

	return name, parseLiteralText(value), nil
}

// parseLiteralText guesses a scalar's kind from its text: integer, float,
// bool, else a plain string. There is no quoting convention for --var, so
// a literal string that happens to look numeric cannot be forced.
func parseLiteralText(text string) literal.Literal {
	if n, err := strconv.ParseInt(text, 10, 32); err == nil {
		return literal.Number(int32(n))
	}

	if d, err := strconv.ParseFloat(text, 64); err == nil {
		return literal.Decimal(d)
	}

	if b, err := strconv.ParseBool(text); err == nil {
		return literal.Bool(b)
	}

	return literal.Str(text)
}

// valueToLiteral narrows a decoded YAML scalar down to the Literal kinds
// --var bindings can hold. Array and Hash values have no Literal
// counterpart and are dropped to Nil.
func valueToLiteral(v yamlvalue.Value) literal.Literal {
	switch v.Kind() {
	case yamlvalue.KindBoolean:
		return literal.Bool(v.AsBool())
	case yamlvalue.KindInteger:
		return literal.Number(int32(v.AsInteger()))
	case yamlvalue.KindReal:
		d, err := strconv.ParseFloat(v.AsReal(), 64)
		if err != nil {
			return literal.Literal{}
		}

		return literal.Decimal(d)
	case yamlvalue.KindString:
		return literal.Str(v.AsString())
	default:
		return literal.Literal{}
	}
}
