package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/conneroisu/yamlex/internal/environment"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := environment.New()
			if err := seedEnvironment(env); err != nil {
				return err
			}

			return startRepl(env)
		},
	}
}

// startRepl runs a colored, history-backed prompt over bare expressions
// against one persistent environment. Type :quit or :q, or send EOF, to
// exit.
func startRepl(env *environment.Environment) error {
	blueColor.Println("yamlex repl - Type :quit to exit")

	rl, err := readline.New("yamlex> ")
	if err != nil {
		return fmt.Errorf("starting repl: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}

			return fmt.Errorf("reading line: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == ":quit" || line == ":q" {
			return nil
		}

		if strings.HasPrefix(line, ":") {
			handleReplCommand(line)

			continue
		}

		evalWithRecovery(line, env)
	}
}

// evalWithRecovery guards a single REPL line: a panic deep in evaluation
// (e.g. from a malformed AST node the parser should never produce) is
// reported rather than killing the session.
func evalWithRecovery(line string, env *environment.Environment) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Printf("[runtime error] %v\n", r)
		}
	}()

	lit, err := evalExpression(line, env)
	if err != nil {
		redColor.Printf("error: %v\n", err)

		return
	}

	yellowColor.Println(lit.String())
}

func handleReplCommand(cmd string) {
	switch cmd {
	case ":help", ":h":
		greenColor.Println("Available commands:")
		greenColor.Println("  :help, :h    Show this help")
		greenColor.Println("  :quit, :q    Exit the repl")
	default:
		redColor.Printf("unknown command: %s\n", cmd)
		greenColor.Println("Type :help for available commands")
	}
}
