// Package sync bridges the checklist store's synchronous change
// notifications into the Bubble Tea message loop.
package sync

import (
	gosync "sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lockin-app/lockin/internal/store"
)

// ChangedMsg is a tea.Msg sent when the checklist store reports a mutation.
// Views that render checklist or feed state should reload on it.
type ChangedMsg struct{}

// Watcher subscribes to a checklist store and republishes its callbacks
// as messages. Store callbacks run inline on the mutating goroutine, so
// the watcher only does a non-blocking channel send; pending signals
// coalesce when the UI is slow to drain them.
type Watcher struct {
	checklist store.ChecklistStore

	mu          gosync.Mutex
	ch          chan struct{}
	unsubscribe func()
	running     bool
}

// NewWatcher creates a Watcher over the given checklist store.
func NewWatcher(checklist store.ChecklistStore) *Watcher {
	return &Watcher{
		checklist: checklist,
		ch:        make(chan struct{}, 16),
	}
}

// Start subscribes to the store and returns a command that waits for the
// first change. Calling Start twice is a no-op.
func (w *Watcher) Start() tea.Cmd {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.unsubscribe = w.checklist.Subscribe(w.signal)
	w.mu.Unlock()

	return w.waitForChange()
}

// Stop deregisters the store subscription.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false
	w.unsubscribe()
}

// WaitForNext returns a command that waits for the next change. Call it
// after handling a ChangedMsg to keep listening.
func (w *Watcher) WaitForNext() tea.Cmd {
	return w.waitForChange()
}

// signal is the store callback. It must never block the mutating call.
func (w *Watcher) signal() {
	select {
	case w.ch <- struct{}{}:
	default:
		// A signal is already pending; one reload covers both.
	}
}

func (w *Watcher) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-w.ch
		return ChangedMsg{}
	}
}
