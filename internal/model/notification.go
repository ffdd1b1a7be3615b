package model

import "time"

// Notification type constants.
const (
	NotificationLike    = "like"
	NotificationComment = "comment"
	NotificationFollow  = "follow"
	NotificationMention = "mention"
)

// Notification is an inbox entry describing activity aimed at a user:
// someone liked or commented on their post, followed them, or mentioned
// them. FromUsername is denormalized for rendering.
type Notification struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	FromUserID   string    `json:"from_user_id"`
	FromUsername string    `json:"from_username"`
	PostID       string    `json:"post_id,omitempty"`
	Content      string    `json:"content"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}
