package engine

import (
	"sort"

	"github.com/xkazm04/refract/pkg/models"
)

// Score computes the composite priority of a suggestion. Severity
// dominates; impact breaks ties upward and effort downward. Unknown
// impact or effort values rank as medium, so scoring never fails on
// malformed input.
func Score(s models.Suggestion) int {
	return s.Severity.Rank()*10 + s.Impact.Rank() - s.Effort.Rank()
}

// filterBySeverity keeps suggestions at or above the threshold. The
// boundary is inclusive: a suggestion exactly at the threshold survives.
func filterBySeverity(suggestions []models.Suggestion, threshold models.Severity) []models.Suggestion {
	min := threshold.Rank()
	out := make([]models.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.Severity.Rank() >= min {
			out = append(out, s)
		}
	}
	return out
}

// rank orders suggestions by descending score. The sort is stable so that
// equal-score suggestions keep their generation order and repeated runs
// over identical input produce byte-identical output.
func rank(suggestions []models.Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return Score(suggestions[i]) > Score(suggestions[j])
	})
}

// truncate caps the ranked list. It must only run after filtering and
// ranking so the cap always drops the lowest-priority tail, never an
// arbitrary prefix.
func truncate(suggestions []models.Suggestion, max int) []models.Suggestion {
	if max > 0 && len(suggestions) > max {
		return suggestions[:max]
	}
	return suggestions
}
