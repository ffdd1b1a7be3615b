package store

import (
	"errors"

	"github.com/lockin-app/lockin/internal/model"
)

// ErrNotFound is returned when an operation targets an ID that does not
// exist in the store. It is the only failure kind besides invalid input;
// callers match it with errors.Is.
var ErrNotFound = errors.New("not found")

// PostFilter controls filtering for post queries. Nil fields match
// everything. Results are always newest first.
type PostFilter struct {
	UserID *string // posts owned by this user
	Public *bool   // restrict to the public or the private feed
	Query  *string // case-insensitive substring match on content or username
}

// ChecklistStore owns the authoritative mutable collection of checklist
// items for all users in the process and broadcasts change notifications.
//
// All operations are synchronous and run to completion before returning.
// Subscribed callbacks fire once per successful mutation, in subscription
// order, on the mutating goroutine, after the mutation is applied. There
// is no batching and no replay on subscribe.
type ChecklistStore interface {
	// Items returns all items owned by userID in store insertion order.
	Items(userID string) []model.ChecklistItem

	// Add appends a new item. It generates an ID and CreatedAt when they
	// are unset, and fails on empty text or a duplicate ID.
	Add(item model.ChecklistItem) (model.ChecklistItem, error)

	// Toggle flips IsCompleted and keeps CompletedAt in step: set on the
	// false→true transition, cleared on true→false.
	Toggle(itemID string) (model.ChecklistItem, error)

	// Remove deletes the item if present and reports whether it did.
	Remove(itemID string) bool

	// Subscribe registers a change callback and returns its unsubscribe
	// function.
	Subscribe(fn func()) (unsubscribe func())
}

// PostStore owns the feed post collection.
type PostStore interface {
	// CreateChecklistPost publishes the completion post for a checklist
	// item. At most one post exists per item: if one is already there it
	// is returned unchanged instead of duplicated.
	CreateChecklistPost(item model.ChecklistItem, username string) model.Post

	// Posts returns posts matching the filter, newest first.
	Posts(filter PostFilter) []model.Post

	PostByID(id string) (model.Post, error)

	// DeletePost deletes one post by ID and reports whether it existed.
	DeletePost(id string) bool

	// DeletePostsForItem deletes every post originating from the given
	// checklist item and returns the exact count removed.
	DeletePostsForItem(itemID string) int

	// ToggleLike adds userID to the post's likes, or removes it if already
	// present, and returns the updated post.
	ToggleLike(postID, userID string) (model.Post, error)

	// AddComment appends a comment to the post and returns the updated
	// post. Comments are append-only.
	AddComment(postID string, c model.Comment) (model.Post, error)
}

// UserStore owns user accounts and the follow graph.
type UserStore interface {
	// AddUser registers a new account. Usernames are unique.
	AddUser(u model.User) (model.User, error)

	// Users returns all accounts in registration order.
	Users() []model.User

	UserByID(id string) (model.User, error)
	UserByUsername(username string) (model.User, error)

	// Follow records followerID following targetID, updating both sides
	// of the graph. Following an already-followed user is a no-op.
	Follow(followerID, targetID string) error

	// Unfollow removes the relationship on both sides.
	Unfollow(followerID, targetID string) error
}

// InboxStore owns direct messages and activity notifications.
type InboxStore interface {
	// SendMessage delivers a direct message; ID and CreatedAt are
	// generated when unset.
	SendMessage(m model.Message) (model.Message, error)

	// MessagesFor returns messages received by userID, newest first.
	MessagesFor(userID string) []model.Message

	// AddNotification records an activity notification for a user.
	AddNotification(n model.Notification) model.Notification

	// NotificationsFor returns userID's notifications, newest first.
	NotificationsFor(userID string) []model.Notification

	// UnreadMessageCount and UnreadNotificationCount back the inbox tab
	// badges.
	UnreadMessageCount(userID string) int
	UnreadNotificationCount(userID string) int

	// MarkAllRead marks every message and notification for userID as read.
	MarkAllRead(userID string)
}
