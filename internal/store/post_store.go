package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lockin-app/lockin/internal/model"
)

// CreateChecklistPost publishes the completion post for a checklist item.
// Content is derived from the item text and visibility is copied at
// creation time.
//
// Publishing is idempotent per item: re-completing an item whose post is
// still in the feed returns that post unchanged instead of stacking a
// duplicate.
func (s *MemoryStore) CreateChecklistPost(item model.ChecklistItem, username string) model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ChecklistItemID == item.ID && s.posts[i].ChecklistItemID != "" {
			return clonePost(s.posts[i])
		}
	}

	post := model.Post{
		ID:              uuid.New().String(),
		UserID:          item.UserID,
		Username:        username,
		Content:         "Completed: " + item.Text,
		Type:            model.PostTypeChecklist,
		ChecklistItemID: item.ID,
		IsPublic:        item.IsPublic,
		CreatedAt:       time.Now().UTC(),
		Likes:           []string{},
		Comments:        []model.Comment{},
	}
	s.posts = append(s.posts, post)
	return clonePost(post)
}

// Posts returns posts matching the filter, newest first.
func (s *MemoryStore) Posts(filter PostFilter) []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []model.Post
	for _, p := range s.posts {
		if filter.UserID != nil && p.UserID != *filter.UserID {
			continue
		}
		if filter.Public != nil && p.IsPublic != *filter.Public {
			continue
		}
		if filter.Query != nil && !matchesQuery(p, *filter.Query) {
			continue
		}
		posts = append(posts, clonePost(p))
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

// PostByID returns one post by ID.
func (s *MemoryStore) PostByID(id string) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			return clonePost(s.posts[i]), nil
		}
	}
	return model.Post{}, fmt.Errorf("post %s: %w", id, ErrNotFound)
}

// DeletePost deletes one post by ID and reports whether it existed.
func (s *MemoryStore) DeletePost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true
		}
	}
	return false
}

// DeletePostsForItem deletes every post originating from the given
// checklist item and returns the exact count removed. An empty or unknown
// item ID removes nothing.
func (s *MemoryStore) DeletePostsForItem(itemID string) int {
	if itemID == "" {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.posts[:0]
	removed := 0
	for _, p := range s.posts {
		if p.ChecklistItemID == itemID {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.posts = kept
	return removed
}

// ToggleLike adds userID to the post's likes, or removes it if already
// present, and returns the updated post.
func (s *MemoryStore) ToggleLike(postID, userID string) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		likes := s.posts[i].Likes
		removed := false
		for j, id := range likes {
			if id == userID {
				s.posts[i].Likes = append(likes[:j], likes[j+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			s.posts[i].Likes = append(likes, userID)
		}
		return clonePost(s.posts[i]), nil
	}
	return model.Post{}, fmt.Errorf("post %s: %w", postID, ErrNotFound)
}

// AddComment appends a comment to the post and returns the updated post.
// Generates the comment ID and CreatedAt when unset and stamps IsCreator
// from the post author.
func (s *MemoryStore) AddComment(postID string, c model.Comment) (model.Post, error) {
	if strings.TrimSpace(c.Content) == "" {
		return model.Post{}, fmt.Errorf("comment content must not be empty")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.Likes == nil {
		c.Likes = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		c.PostID = postID
		c.IsCreator = c.UserID == s.posts[i].UserID
		s.posts[i].Comments = append(s.posts[i].Comments, c)
		return clonePost(s.posts[i]), nil
	}
	return model.Post{}, fmt.Errorf("post %s: %w", postID, ErrNotFound)
}

// matchesQuery reports whether the post content or author matches the
// search query, case-insensitively.
func matchesQuery(p model.Post, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Content), q) ||
		strings.Contains(strings.ToLower(p.Username), q)
}

// clonePost copies a post, including its like and comment slices, so
// callers never alias store-owned state.
func clonePost(p model.Post) model.Post {
	likes := make([]string, len(p.Likes))
	copy(likes, p.Likes)
	p.Likes = likes

	comments := make([]model.Comment, len(p.Comments))
	copy(comments, p.Comments)
	for i := range comments {
		cl := make([]string, len(comments[i].Likes))
		copy(cl, comments[i].Likes)
		comments[i].Likes = cl
	}
	p.Comments = comments
	return p
}
