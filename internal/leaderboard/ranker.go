// Package leaderboard orders users for the community ranking page.
package leaderboard

import (
	"sort"

	"github.com/lockin-app/lockin/internal/model"
)

// Rank returns the users ordered for the leaderboard: streak descending,
// ties broken by total likes descending, remaining ties keep their input
// order. The input slice is not modified.
func Rank(users []model.User) []model.User {
	ranked := make([]model.User, len(users))
	copy(ranked, users)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Streak != ranked[j].Streak {
			return ranked[i].Streak > ranked[j].Streak
		}
		return ranked[i].TotalLikes > ranked[j].TotalLikes
	})
	return ranked
}
