// Package ranking builds the point leaderboard and the quota progress figure.
package ranking

import (
	"math"
	"sort"
)

// Objective is the fixed point target for one billing period.
const Objective = 225

// Entry is one leaderboard row.
type Entry struct {
	Username string  `json:"username"`
	Points   float64 `json:"points"`
}

// Rank sorts entries by points descending, ties broken by username ascending,
// and truncates to the first limit rows. limit <= 0 disables truncation.
// The input slice is not modified.
func Rank(entries []Entry, limit int) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].Username < ranked[j].Username
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// Progress converts a point total into a percentage of the period objective,
// rounded to two decimals.
func Progress(total float64) float64 {
	return math.Round(total/Objective*100*100) / 100
}
