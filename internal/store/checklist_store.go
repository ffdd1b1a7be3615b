package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lockin-app/lockin/internal/model"
)

// Items returns all checklist items owned by userID in insertion order.
func (s *MemoryStore) Items(userID string) []model.ChecklistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []model.ChecklistItem
	for _, it := range s.items {
		if it.UserID == userID {
			items = append(items, cloneItem(it))
		}
	}
	return items
}

// Add appends a new checklist item. Generates an ID and CreatedAt when
// they are unset. Fails on empty text or a duplicate ID; nothing is
// notified on failure.
func (s *MemoryStore) Add(item model.ChecklistItem) (model.ChecklistItem, error) {
	if strings.TrimSpace(item.Text) == "" {
		return model.ChecklistItem{}, fmt.Errorf("checklist item text must not be empty")
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	if item.Type == "" {
		item.Type = model.ItemTypeDaily
	}

	s.mu.Lock()
	for _, it := range s.items {
		if it.ID == item.ID {
			s.mu.Unlock()
			return model.ChecklistItem{}, fmt.Errorf("checklist item %s already exists", item.ID)
		}
	}
	s.items = append(s.items, cloneItem(item))
	s.mu.Unlock()

	s.checklistChanges.notify()
	return item, nil
}

// Toggle flips IsCompleted on the item and keeps CompletedAt in step:
// set to now on the false→true transition, cleared on true→false. Returns
// the updated item; a missing ID returns ErrNotFound and fires no
// notification.
func (s *MemoryStore) Toggle(itemID string) (model.ChecklistItem, error) {
	s.mu.Lock()
	var updated model.ChecklistItem
	found := false
	for i := range s.items {
		if s.items[i].ID != itemID {
			continue
		}
		s.items[i].IsCompleted = !s.items[i].IsCompleted
		if s.items[i].IsCompleted {
			now := time.Now().UTC()
			s.items[i].CompletedAt = &now
		} else {
			s.items[i].CompletedAt = nil
		}
		updated = cloneItem(s.items[i])
		found = true
		break
	}
	s.mu.Unlock()

	if !found {
		return model.ChecklistItem{}, fmt.Errorf("checklist item %s: %w", itemID, ErrNotFound)
	}

	s.checklistChanges.notify()
	return updated, nil
}

// Remove deletes the item if present and reports whether it did. Only a
// successful removal notifies subscribers.
func (s *MemoryStore) Remove(itemID string) bool {
	s.mu.Lock()
	removed := false
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.checklistChanges.notify()
	}
	return removed
}

// Subscribe registers a callback invoked after every successful checklist
// mutation and returns its unsubscribe function. Callbacks run
// synchronously, in subscription order, on the mutating goroutine.
func (s *MemoryStore) Subscribe(fn func()) func() {
	return s.checklistChanges.subscribe(fn)
}

// cloneItem copies an item so callers never alias store-owned state.
func cloneItem(it model.ChecklistItem) model.ChecklistItem {
	if it.CompletedAt != nil {
		at := *it.CompletedAt
		it.CompletedAt = &at
	}
	return it
}
