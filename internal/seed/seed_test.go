package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockin-app/lockin/internal/seed"
	"github.com/lockin-app/lockin/internal/store"
	"github.com/lockin-app/lockin/tests/testutil"
)

func TestCommunitySeedsUsersAndPosts(t *testing.T) {
	s := testutil.NewTestStore(t)
	require.NoError(t, seed.Community(s))

	users := s.Users()
	require.Len(t, users, 3)

	jennie, err := s.UserByUsername("jennie")
	require.NoError(t, err)
	assert.True(t, jennie.IsVerified)
	assert.Equal(t, 47, jennie.Streak)

	// Every seeded post traces back to a real checklist item.
	posts := s.Posts(store.PostFilter{})
	require.NotEmpty(t, posts)
	for _, p := range posts {
		require.NotEmpty(t, p.ChecklistItemID)
		items := s.Items(p.UserID)
		found := false
		for _, it := range items {
			if it.ID == p.ChecklistItemID {
				found = true
				assert.True(t, it.IsCompleted)
			}
		}
		assert.True(t, found, "post %s has no backing checklist item", p.ID)
	}
}

func TestCommunitySeedsFollowGraphBothSides(t *testing.T) {
	s := testutil.NewTestStore(t)
	require.NoError(t, seed.Community(s))

	jennie, err := s.UserByUsername("jennie")
	require.NoError(t, err)
	alex, err := s.UserByUsername("alexsmith")
	require.NoError(t, err)

	assert.True(t, jennie.IsFriend(alex))
}

func TestNewUserGetsStarterChecklistAndInbox(t *testing.T) {
	s := testutil.NewTestStore(t)
	require.NoError(t, seed.Community(s))

	u, err := seed.NewUser(s, "newbie")
	require.NoError(t, err)

	items := s.Items(u.ID)
	assert.Len(t, items, 3)
	for _, it := range items {
		assert.False(t, it.IsCompleted)
	}

	assert.Equal(t, 2, s.UnreadMessageCount(u.ID))
	assert.Equal(t, 1, s.UnreadNotificationCount(u.ID))

	// sarahj already follows the newcomer.
	fresh, err := s.UserByID(u.ID)
	require.NoError(t, err)
	sarah, err := s.UserByUsername("sarahj")
	require.NoError(t, err)
	assert.True(t, sarah.IsFollowing(u.ID))
	assert.Contains(t, fresh.Followers, sarah.ID)
}

func TestNewUserRejectsTakenHandle(t *testing.T) {
	s := testutil.NewTestStore(t)
	require.NoError(t, seed.Community(s))

	_, err := seed.NewUser(s, "jennie")
	require.Error(t, err)
}
