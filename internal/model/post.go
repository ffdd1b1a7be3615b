package model

import "time"

// Post type constants.
const (
	// PostTypeChecklist marks a post generated from a completed checklist
	// item. ChecklistItemID is set only for this type.
	PostTypeChecklist = "checklist"

	// PostTypeManual marks a free-form post. Modeled for the feed renderer;
	// nothing in the app currently produces one.
	PostTypeManual = "manual"
)

// Post is a feed entry. Username is denormalized so the feed renders
// without a user lookup. IsPublic is copied from the originating checklist
// item at creation time and does not track later changes.
type Post struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Username        string    `json:"username"`
	Content         string    `json:"content"`
	Type            string    `json:"type"`
	ChecklistItemID string    `json:"checklist_item_id,omitempty"`
	IsPublic        bool      `json:"is_public"`
	CreatedAt       time.Time `json:"created_at"`

	// Likes holds the IDs of users who liked the post. Membership is what
	// matters; order is only used for display.
	Likes []string `json:"likes"`

	// Comments are append-only.
	Comments []Comment `json:"comments"`

	PinnedCommentID string `json:"pinned_comment_id,omitempty"`
}

// LikedBy reports whether the given user has liked the post.
func (p Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// Comment is a single comment on a post. IsCreator marks comments written
// by the post author.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	IsCreator bool      `json:"is_creator"`
}
