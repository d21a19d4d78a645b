package commands

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/termlint/pkg/lint"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces editor save bursts into one re-lint.
const watchDebounce = 200 * time.Millisecond

// watchDocuments lints docs once, then re-lints each document that changes
// until the command context is cancelled.
func watchDocuments(cmd *cobra.Command, cmdCtx *CommandContext, analyzer *lint.Analyzer, docs []string, severity string) error {
	logger := cmdCtx.Logger
	r := cmdCtx.Renderer

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch parent directories: editors often replace files on save.
	watched := make(map[string]bool)
	tracked := make(map[string]bool)
	for _, doc := range docs {
		if doc == stdinPath {
			continue
		}
		tracked[filepath.Clean(doc)] = true
		dir := filepath.Dir(doc)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
		watched[dir] = true
	}

	relint := func(paths []string) {
		results, err := lintDocuments(cmd, analyzer, paths, cmdCtx.Cfg.Jobs)
		if err != nil {
			r.Error(err.Error())
			return
		}
		renderLintResults(r, filterBySeverity(results, severity), len(paths), cmdCtx.Cfg.Verbose)
	}

	relint(sortedKeys(tracked))
	r.Muted("Watching for changes (Ctrl+C to stop)...")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return watchLoop(ctx, watcher.Events, watcher.Errors, watchDebounce, func(name string) bool {
		return tracked[filepath.Clean(name)]
	}, func(changed []string) {
		logger.Debug("documents changed", "paths", changed)
		relint(changed)
	}, func(err error) {
		logger.Warn("watch error", "error", err)
	})
}

// watchLoop collects write and create events for accepted paths and calls
// onChange with the sorted set once no event arrived for debounce.
func watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	debounce time.Duration,
	accept func(string) bool,
	onChange func([]string),
	onError func(error),
) error {
	pending := make(map[string]bool)
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !accept(ev.Name) {
				continue
			}
			pending[filepath.Clean(ev.Name)] = true
			timer.Reset(debounce)
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			onError(err)
		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := sortedKeys(pending)
			clear(pending)
			onChange(changed)
		}
	}
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
