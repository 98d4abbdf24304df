package scoring

import (
	"sort"

	"itpf-legal-backend/models"
)

const (
	// GeneralLimit is the result count for the general template
	GeneralLimit = 5
	// ExpertLimit is the result count for specialised templates
	ExpertLimit = 8
)

// Rank orders entries by descending score, keeping corpus order on ties, and
// truncates to k. A non-positive k keeps everything.
func Rank(entries []models.ScoredEntry, k int) []models.ScoredEntry {
	ranked := make([]models.ScoredEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Position < ranked[j].Position
	})
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// LimitFor returns the truncation count for an intent
func LimitFor(intent models.Intent) int {
	if intent == models.IntentGeneral {
		return GeneralLimit
	}
	return ExpertLimit
}
