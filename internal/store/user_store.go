package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lockin-app/lockin/internal/model"
)

// AddUser registers a new account. Generates an ID and CreatedAt when
// unset and applies default settings. Usernames are unique.
func (s *MemoryStore) AddUser(u model.User) (model.User, error) {
	if strings.TrimSpace(u.Username) == "" {
		return model.User{}, fmt.Errorf("username must not be empty")
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.DisplayName == "" {
		u.DisplayName = u.Username
	}
	if u.Settings == (model.UserSettings{}) {
		u.Settings = model.DefaultUserSettings()
	}
	if u.Followers == nil {
		u.Followers = []string{}
	}
	if u.Following == nil {
		u.Following = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return model.User{}, fmt.Errorf("username %s is taken", u.Username)
		}
		if existing.ID == u.ID {
			return model.User{}, fmt.Errorf("user %s already exists", u.ID)
		}
	}
	s.users = append(s.users, cloneUser(u))
	return u, nil
}

// Users returns all accounts in registration order.
func (s *MemoryStore) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, cloneUser(u))
	}
	return users
}

// UserByID returns one account by ID.
func (s *MemoryStore) UserByID(id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			return cloneUser(s.users[i]), nil
		}
	}
	return model.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
}

// UserByUsername returns one account by username.
func (s *MemoryStore) UserByUsername(username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			return cloneUser(s.users[i]), nil
		}
	}
	return model.User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
}

// Follow records followerID following targetID, updating both sides of
// the graph. Following yourself or an already-followed user is a no-op.
func (s *MemoryStore) Follow(followerID, targetID string) error {
	if followerID == targetID {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	follower, target, err := s.followPairLocked(followerID, targetID)
	if err != nil {
		return err
	}

	if !contains(follower.Following, targetID) {
		follower.Following = append(follower.Following, targetID)
	}
	if !contains(target.Followers, followerID) {
		target.Followers = append(target.Followers, followerID)
	}
	return nil
}

// Unfollow removes the relationship on both sides. Unfollowing a user who
// was never followed is a no-op.
func (s *MemoryStore) Unfollow(followerID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	follower, target, err := s.followPairLocked(followerID, targetID)
	if err != nil {
		return err
	}

	follower.Following = remove(follower.Following, targetID)
	target.Followers = remove(target.Followers, followerID)
	return nil
}

// followPairLocked resolves both ends of a follow mutation. Caller holds
// the store mutex.
func (s *MemoryStore) followPairLocked(followerID, targetID string) (follower, target *model.User, err error) {
	for i := range s.users {
		switch s.users[i].ID {
		case followerID:
			follower = &s.users[i]
		case targetID:
			target = &s.users[i]
		}
	}
	if follower == nil {
		return nil, nil, fmt.Errorf("user %s: %w", followerID, ErrNotFound)
	}
	if target == nil {
		return nil, nil, fmt.Errorf("user %s: %w", targetID, ErrNotFound)
	}
	return follower, target, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// cloneUser copies a user, including the follow lists, so callers never
// alias store-owned state.
func cloneUser(u model.User) model.User {
	followers := make([]string, len(u.Followers))
	copy(followers, u.Followers)
	u.Followers = followers

	following := make([]string, len(u.Following))
	copy(following, u.Following)
	u.Following = following
	return u
}
