// Command yamlex evaluates the embedded expression language carried
// inside YAML documents.
//
// It supports four modes of operation:
//   - eval: evaluate a single bare expression
//   - run: load and interpret a full YAML document
//   - repl: an interactive read-eval-print loop
//   - watch: re-run a document every time its file changes
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
