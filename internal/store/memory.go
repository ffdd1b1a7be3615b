package store

import (
	"sync"

	"github.com/lockin-app/lockin/internal/model"
)

// MemoryStore holds all application state for the lifetime of the process.
// Nothing is persisted: restarting the app starts from whatever the caller
// seeds.
//
// A single mutex serializes access to every collection. The execution
// model is a UI event loop, so contention is nil; the lock exists so that
// background goroutines (the Bubble Tea runtime runs commands off the main
// loop) can never observe a half-applied mutation.
type MemoryStore struct {
	mu sync.Mutex

	items         []model.ChecklistItem
	posts         []model.Post
	users         []model.User
	messages      []model.Message
	notifications []model.Notification

	checklistChanges notifier
}

// Interface conformance.
var (
	_ ChecklistStore = (*MemoryStore)(nil)
	_ PostStore      = (*MemoryStore)(nil)
	_ UserStore      = (*MemoryStore)(nil)
	_ InboxStore     = (*MemoryStore)(nil)
)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}
