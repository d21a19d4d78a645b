package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchLoop_DebouncesAndFilters(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	changes := make(chan []string, 4)
	var watchErrs []error

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, events, errs, 100*time.Millisecond,
			func(name string) bool { return name != "ignored.md" },
			func(paths []string) { changes <- paths },
			func(err error) { watchErrs = append(watchErrs, err) },
		)
	}()

	events <- fsnotify.Event{Name: "b.md", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "./a.md", Op: fsnotify.Create}
	events <- fsnotify.Event{Name: "b.md", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "ignored.md", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "c.md", Op: fsnotify.Remove}
	errs <- errors.New("queue overflow")

	select {
	case got := <-changes:
		assert.Equal(t, []string{"a.md", "b.md"}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no change batch delivered")
	}

	cancel()
	require.NoError(t, <-done)
	require.Len(t, watchErrs, 1)
	assert.EqualError(t, watchErrs[0], "queue overflow")
	assert.Empty(t, changes, "one burst yields one batch")
}

func TestWatchLoop_ClosedChannelsStop(t *testing.T) {
	events := make(chan fsnotify.Event)
	close(events)

	err := watchLoop(context.Background(), events, nil, time.Millisecond,
		func(string) bool { return true }, func([]string) {}, func(error) {})
	assert.NoError(t, err)
}
