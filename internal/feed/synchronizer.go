// Package feed links checklist item lifecycle transitions to feed posts.
//
// The rules are deliberately asymmetric: completing an item publishes a
// post, un-completing it leaves the post standing, and only deleting the
// item retracts its posts.
package feed

import (
	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/internal/store"
)

// Synchronizer reacts to checklist transitions by creating and retracting
// posts in the post store. Every operation is total; unknown IDs simply
// affect zero posts.
type Synchronizer struct {
	posts store.PostStore
}

// NewSynchronizer creates a Synchronizer backed by the given post store.
func NewSynchronizer(posts store.PostStore) *Synchronizer {
	return &Synchronizer{posts: posts}
}

// ItemCompleted publishes the completion post for item and returns it.
// The post content is "Completed: " plus the item text, and its
// visibility is the item's visibility at completion time.
//
// At most one post exists per item: if the item's post is still in the
// feed (toggle off, toggle on), that post is returned unchanged.
func (s *Synchronizer) ItemCompleted(item model.ChecklistItem, username string) model.Post {
	return s.posts.CreateChecklistPost(item, username)
}

// CompletionRevoked is called when an item is toggled back to incomplete.
// It does nothing: a published completion stays in the feed until the
// item itself is deleted.
func (s *Synchronizer) CompletionRevoked(itemID string) {
	_ = itemID
}

// ItemDeleted retracts every post originating from the deleted item and
// returns the exact count removed. An item that never completed yields 0.
func (s *Synchronizer) ItemDeleted(itemID string) int {
	return s.posts.DeletePostsForItem(itemID)
}
