package model

import "time"

// Checklist item type constants.
const (
	ItemTypeDaily  = "daily"
	ItemTypeOneOff = "oneoff"
)

// ChecklistItem is a single trackable task on a user's checklist.
//
// IsPublic is fixed at creation and decides which feed the completion post
// lands in. CompletedAt is set when IsCompleted flips false→true and cleared
// on the way back; the two fields always agree.
type ChecklistItem struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Text        string     `json:"text"`
	IsCompleted bool       `json:"is_completed"`
	IsPublic    bool       `json:"is_public"`
	Type        string     `json:"type"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
