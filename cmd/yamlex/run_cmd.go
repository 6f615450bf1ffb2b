package main

import (
	"fmt"
	"sort"

	"github.com/conneroisu/yamlex/internal/environment"
	"github.com/conneroisu/yamlex/internal/loader"
	"github.com/conneroisu/yamlex/pkg/interpreter"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var showEnv bool

	cmd := &cobra.Command{
		Use:   "run <file.yaml>",
		Short: "Load and interpret a full YAML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], showEnv)
		},
	}

	cmd.Flags().BoolVar(&showEnv, "show-env", false, "print the final environment bindings after evaluation")

	return cmd
}

func runFile(path string, showEnv bool) error {
	logger := newLogger()
	logger.Info("loading document", "path", path)

	doc, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	env := environment.New()
	if err := seedEnvironment(env); err != nil {
		return err
	}

	result, err := interpreter.Evaluate(doc, env)
	if err != nil {
		return fmt.Errorf("interpreting %s: %w", path, err)
	}

	fmt.Println(result.String())

	if showEnv {
		printEnv(env)
	}

	return nil
}

func printEnv(env *environment.Environment) {
	flat := env.Dump()

	names := make([]string, 0, len(flat))
	for name := range flat {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s = %s\n", name, flat[name].String())
	}
}
