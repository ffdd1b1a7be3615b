package leaderboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockin-app/lockin/internal/leaderboard"
	"github.com/lockin-app/lockin/internal/model"
)

func TestRankOrdersByStreakThenLikes(t *testing.T) {
	users := []model.User{
		{ID: "a", Streak: 5, TotalLikes: 10},
		{ID: "b", Streak: 3, TotalLikes: 1},
		{ID: "c", Streak: 5, TotalLikes: 20},
	}

	ranked := leaderboard.Rank(users)
	require.Len(t, ranked, 3)
	assert.Equal(t, "c", ranked[0].ID)
	assert.Equal(t, "a", ranked[1].ID)
	assert.Equal(t, "b", ranked[2].ID)
}

func TestRankIsStableOnFullTies(t *testing.T) {
	users := []model.User{
		{ID: "first", Streak: 5, TotalLikes: 10},
		{ID: "second", Streak: 5, TotalLikes: 10},
		{ID: "third", Streak: 5, TotalLikes: 10},
	}

	ranked := leaderboard.Rank(users)
	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].ID)
	assert.Equal(t, "second", ranked[1].ID)
	assert.Equal(t, "third", ranked[2].ID)
}

func TestRankDoesNotModifyInput(t *testing.T) {
	users := []model.User{
		{ID: "low", Streak: 1},
		{ID: "high", Streak: 9},
	}

	leaderboard.Rank(users)
	assert.Equal(t, "low", users[0].ID)
	assert.Equal(t, "high", users[1].ID)
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, leaderboard.Rank(nil))
	assert.Empty(t, leaderboard.Rank([]model.User{}))
}
