package cli

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"
)

type WatchCmd struct {
	InsightsCmd
}

// Run renders insights once and then re-renders whenever the store file
// or the goal file changes. Editors often save in multiple steps
// (write, or remove and rename), so events are debounced and removed
// paths are re-added.
func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	paths := []string{cmd.Store}
	if cmd.Goal != "" {
		paths = append(paths, cmd.Goal)
	}
	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			printWarnf(ctx.Stderr, "failed to watch %s: %v", path, err)
		}
	}

	render := func() {
		if err := cmd.InsightsCmd.Run(ctx, globals); err != nil {
			printError(ctx.Stderr, err.Error())
		}
	}

	render()
	printInfof(ctx.Stderr, "watching %d file(s), press ctrl-c to stop", len(paths))

	const debounceDelay = 100 * time.Millisecond
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				// Atomic saves replace the inode; re-add the path.
				_ = watcher.Add(event.Name)
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				_, _ = fmt.Fprintln(ctx.Stdout)
				render()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printWarnf(ctx.Stderr, "file watcher error: %v", err)
		}
	}
}
