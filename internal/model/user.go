package model

import "time"

// Messaging policy values for UserSettings.Messaging.
const (
	MessagingAnyone    = "anyone"
	MessagingFollowers = "followers"
	MessagingFriends   = "friends"
)

// Profile visibility values for UserSettings.ProfileVisibility.
const (
	ProfilePublic  = "public"
	ProfilePrivate = "private"
)

// UserSettings holds per-user preferences surfaced on the profile page.
type UserSettings struct {
	Theme             string `json:"theme"`
	Messaging         string `json:"messaging"`
	AllowTagging      bool   `json:"allow_tagging"`
	ProfileVisibility string `json:"profile_visibility"`
}

// DefaultUserSettings returns the settings applied to newly created accounts.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Theme:             "dark",
		Messaging:         MessagingAnyone,
		AllowTagging:      true,
		ProfileVisibility: ProfilePublic,
	}
}

// User is an account in the accountability network. The core stores only
// read ID and Username; the rest is profile and leaderboard data.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`

	// Followers and Following hold user IDs. A "friend" is a mutual follow.
	Followers []string `json:"followers"`
	Following []string `json:"following"`

	// Streak is the current run of consecutive active days; TotalLikes is
	// the lifetime like count. Both feed the leaderboard ordering.
	Streak     int `json:"streak"`
	TotalLikes int `json:"total_likes"`

	Settings UserSettings `json:"settings"`
}

// IsFollowing reports whether the user follows the given user ID.
func (u User) IsFollowing(userID string) bool {
	for _, id := range u.Following {
		if id == userID {
			return true
		}
	}
	return false
}

// IsFriend reports whether the follow relationship is mutual.
func (u User) IsFriend(other User) bool {
	return u.IsFollowing(other.ID) && other.IsFollowing(u.ID)
}
