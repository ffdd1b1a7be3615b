// Package seed populates a fresh store with the demo community. State is
// process-lifetime only, so every run starts from this baseline plus
// whatever the session creates.
package seed

import (
	"fmt"
	"time"

	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/internal/store"
)

// Demo account IDs, referenced by the inbox seed.
const (
	jennieID = "user-jennie"
	alexID   = "user-alexsmith"
	sarahID  = "user-sarahj"
)

// Community seeds the demo users, their completed checklist items, and
// the posts those completions published.
func Community(s *store.MemoryStore) error {
	users := []model.User{
		{
			ID:          jennieID,
			Username:    "jennie",
			DisplayName: "Jennie",
			Bio:         "Lock in or log off.",
			IsVerified:  true,
			Streak:      47,
			TotalLikes:  234,
		},
		{
			ID:          alexID,
			Username:    "alexsmith",
			DisplayName: "Alex Smith",
			Streak:      23,
			TotalLikes:  156,
		},
		{
			ID:          sarahID,
			Username:    "sarahj",
			DisplayName: "Sarah J",
			Streak:      15,
			TotalLikes:  89,
		},
	}
	for _, u := range users {
		if _, err := s.AddUser(u); err != nil {
			return fmt.Errorf("seeding user %s: %w", u.Username, err)
		}
	}

	// The demo users follow each other so the Friends tab has content.
	for _, pair := range [][2]string{
		{jennieID, alexID},
		{alexID, jennieID},
		{sarahID, jennieID},
	} {
		if err := s.Follow(pair[0], pair[1]); err != nil {
			return fmt.Errorf("seeding follow graph: %w", err)
		}
	}

	if err := seedPosts(s); err != nil {
		return err
	}
	return nil
}

// seedPosts gives the demo users completed checklist items and publishes
// their posts, keeping the one-post-per-item rule intact.
func seedPosts(s *store.MemoryStore) error {
	completions := []struct {
		userID   string
		username string
		text     string
	}{
		{jennieID, "jennie", "Morning meditation (10 minutes)"},
		{alexID, "alexsmith", "5K morning run"},
	}

	for _, c := range completions {
		now := time.Now().UTC()
		item, err := s.Add(model.ChecklistItem{
			UserID:      c.userID,
			Text:        c.text,
			IsCompleted: true,
			IsPublic:    true,
			Type:        model.ItemTypeDaily,
			CompletedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("seeding checklist for %s: %w", c.username, err)
		}
		post := s.CreateChecklistPost(item, c.username)

		switch c.username {
		case "jennie":
			if _, err := s.AddComment(post.ID, model.Comment{
				UserID:   alexID,
				Username: "alexsmith",
				Content:  "Great start to the day! 🧘",
			}); err != nil {
				return fmt.Errorf("seeding comment: %w", err)
			}
		case "alexsmith":
			if _, err := s.ToggleLike(post.ID, jennieID); err != nil {
				return fmt.Errorf("seeding like: %w", err)
			}
		}
	}
	return nil
}

// NewUser creates an account for a first-time handle and gives it the
// starter checklist and a welcome inbox.
func NewUser(s *store.MemoryStore, username string) (model.User, error) {
	user, err := s.AddUser(model.User{Username: username})
	if err != nil {
		return model.User{}, err
	}

	starters := []model.ChecklistItem{
		{UserID: user.ID, Text: "Morning meditation (10 minutes)", IsPublic: true, Type: model.ItemTypeDaily},
		{UserID: user.ID, Text: "5K morning run", IsPublic: true, Type: model.ItemTypeDaily},
		{UserID: user.ID, Text: "Call mom", IsPublic: false, Type: model.ItemTypeOneOff},
	}
	for _, item := range starters {
		if _, err := s.Add(item); err != nil {
			return model.User{}, fmt.Errorf("seeding starter checklist: %w", err)
		}
	}

	if _, err := s.SendMessage(model.Message{
		SenderID:   jennieID,
		ReceiverID: user.ID,
		Content:    "Great job on your daily streak! Keep it up! 🔥",
	}); err != nil {
		return model.User{}, fmt.Errorf("seeding welcome message: %w", err)
	}
	if _, err := s.SendMessage(model.Message{
		SenderID:   alexID,
		ReceiverID: user.ID,
		Content:    "Want to be accountability partners?",
	}); err != nil {
		return model.User{}, fmt.Errorf("seeding welcome message: %w", err)
	}

	s.AddNotification(model.Notification{
		UserID:       user.ID,
		Type:         model.NotificationFollow,
		FromUserID:   sarahID,
		FromUsername: "sarahj",
		Content:      "started following you",
	})
	if err := s.Follow(sarahID, user.ID); err != nil {
		return model.User{}, fmt.Errorf("seeding follower: %w", err)
	}

	return user, nil
}
