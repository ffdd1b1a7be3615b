package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/internal/store"
	"github.com/lockin-app/lockin/tests/testutil"
)

func TestAddUserAppliesDefaults(t *testing.T) {
	s := testutil.NewTestStore(t)

	u, err := s.AddUser(model.User{Username: "jennie"})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "jennie", u.DisplayName)
	assert.Equal(t, model.DefaultUserSettings(), u.Settings)
	assert.Empty(t, u.Followers)
	assert.Empty(t, u.Following)
}

func TestAddUserRejectsTakenUsername(t *testing.T) {
	s := testutil.NewTestStore(t)

	testutil.AddTestUser(t, s, "jennie")
	_, err := s.AddUser(model.User{Username: "jennie"})
	require.Error(t, err)
	assert.Len(t, s.Users(), 1)
}

func TestUserLookups(t *testing.T) {
	s := testutil.NewTestStore(t)
	u := testutil.AddTestUser(t, s, "jennie")

	byID, err := s.UserByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Username, byID.Username)

	byName, err := s.UserByUsername("jennie")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = s.UserByID("missing")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.UserByUsername("missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestFollowUpdatesBothSides(t *testing.T) {
	s := testutil.NewTestStore(t)
	a := testutil.AddTestUser(t, s, "jennie")
	b := testutil.AddTestUser(t, s, "alexsmith")

	require.NoError(t, s.Follow(a.ID, b.ID))

	follower, err := s.UserByID(a.ID)
	require.NoError(t, err)
	target, err := s.UserByID(b.ID)
	require.NoError(t, err)

	assert.True(t, follower.IsFollowing(b.ID))
	assert.Contains(t, target.Followers, a.ID)
	assert.False(t, target.IsFollowing(a.ID))
}

func TestFollowIsIdempotent(t *testing.T) {
	s := testutil.NewTestStore(t)
	a := testutil.AddTestUser(t, s, "jennie")
	b := testutil.AddTestUser(t, s, "alexsmith")

	require.NoError(t, s.Follow(a.ID, b.ID))
	require.NoError(t, s.Follow(a.ID, b.ID))

	follower, err := s.UserByID(a.ID)
	require.NoError(t, err)
	assert.Len(t, follower.Following, 1)
}

func TestSelfFollowIsNoOp(t *testing.T) {
	s := testutil.NewTestStore(t)
	a := testutil.AddTestUser(t, s, "jennie")

	require.NoError(t, s.Follow(a.ID, a.ID))

	u, err := s.UserByID(a.ID)
	require.NoError(t, err)
	assert.Empty(t, u.Following)
	assert.Empty(t, u.Followers)
}

func TestUnfollowRemovesBothSides(t *testing.T) {
	s := testutil.NewTestStore(t)
	a := testutil.AddTestUser(t, s, "jennie")
	b := testutil.AddTestUser(t, s, "alexsmith")

	require.NoError(t, s.Follow(a.ID, b.ID))
	require.NoError(t, s.Unfollow(a.ID, b.ID))

	follower, err := s.UserByID(a.ID)
	require.NoError(t, err)
	target, err := s.UserByID(b.ID)
	require.NoError(t, err)

	assert.False(t, follower.IsFollowing(b.ID))
	assert.NotContains(t, target.Followers, a.ID)

	// Unfollowing again is harmless.
	require.NoError(t, s.Unfollow(a.ID, b.ID))
}

func TestFollowUnknownUserFails(t *testing.T) {
	s := testutil.NewTestStore(t)
	a := testutil.AddTestUser(t, s, "jennie")

	require.ErrorIs(t, s.Follow(a.ID, "missing"), store.ErrNotFound)
	require.ErrorIs(t, s.Follow("missing", a.ID), store.ErrNotFound)
}

func TestIsFriendNeedsMutualFollow(t *testing.T) {
	s := testutil.NewTestStore(t)
	a := testutil.AddTestUser(t, s, "jennie")
	b := testutil.AddTestUser(t, s, "alexsmith")

	require.NoError(t, s.Follow(a.ID, b.ID))
	ua, _ := s.UserByID(a.ID)
	ub, _ := s.UserByID(b.ID)
	assert.False(t, ua.IsFriend(ub))

	require.NoError(t, s.Follow(b.ID, a.ID))
	ua, _ = s.UserByID(a.ID)
	ub, _ = s.UserByID(b.ID)
	assert.True(t, ua.IsFriend(ub))
}
