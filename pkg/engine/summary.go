package engine

import "github.com/xkazm04/refract/pkg/models"

// summarize tallies the final (filtered, ranked, truncated) list in a
// single pass. By construction the category counts, severity counts, and
// total all sum to the list length.
func summarize(suggestions []models.Suggestion) models.Summary {
	summary := models.NewSummary()
	summary.TotalIssues = len(suggestions)
	for _, s := range suggestions {
		summary.ByCategory[s.Category]++
		summary.BySeverity[s.Severity]++
		if s.Severity == models.SeverityCritical || s.Severity == models.SeverityHigh {
			summary.TopPriorityCount++
		}
	}
	return summary
}
