package testutil

import (
	"testing"

	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/internal/store"
)

// NewTestStore creates a fresh in-memory store. State lives for the test
// only; there is nothing to migrate or close.
func NewTestStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	return store.NewMemoryStore()
}

// AddTestUser registers a user with the given handle and fails the test
// on error.
func AddTestUser(t *testing.T, s *store.MemoryStore, username string) model.User {
	t.Helper()

	u, err := s.AddUser(model.User{Username: username})
	if err != nil {
		t.Fatalf("adding test user %s: %v", username, err)
	}
	return u
}

// AddTestItem adds a checklist item for the user and fails the test on
// error.
func AddTestItem(t *testing.T, s *store.MemoryStore, userID, text string, public bool) model.ChecklistItem {
	t.Helper()

	item, err := s.Add(model.ChecklistItem{
		UserID:   userID,
		Text:     text,
		IsPublic: public,
	})
	if err != nil {
		t.Fatalf("adding test item %q: %v", text, err)
	}
	return item
}
