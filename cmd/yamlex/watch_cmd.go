package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var showEnv bool

	cmd := &cobra.Command{
		Use:   "watch <file.yaml>",
		Short: "Re-run a document every time its file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchFile(args[0], showEnv)
		},
	}

	cmd.Flags().BoolVar(&showEnv, "show-env", false, "print the final environment bindings after each run")

	return cmd
}

// watchFile re-runs the file every time it changes, debouncing bursts of
// fsnotify events (editors commonly emit several writes per save) into a
// single re-evaluation.
func watchFile(path string, showEnv bool) error {
	logger := newLogger()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	fmt.Printf("watching %s for changes\n", path)

	runOnce := func() {
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("running %s (%s)\n", path, time.Now().Format("15:04:05"))

		if err := runFile(path, showEnv); err != nil {
			fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
		}
	}

	runOnce()

	var (
		mu    sync.Mutex
		timer *time.Timer
	)

	schedule := func() {
		mu.Lock()
		defer mu.Unlock()

		if timer != nil {
			timer.Stop()
		}

		timer = time.AfterFunc(300*time.Millisecond, runOnce)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}

			if event.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}

			logger.Debug("watch event", "op", event.Op.String(), "name", event.Name)
			schedule()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}
