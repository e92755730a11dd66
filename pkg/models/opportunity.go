package models

import "fmt"

// UICategory is the consumer-facing taxonomy used by presentation layers.
type UICategory string

const (
	UICategoryCodeQuality     UICategory = "code-quality"
	UICategoryDuplication     UICategory = "duplication"
	UICategoryArchitecture    UICategory = "architecture"
	UICategoryMaintainability UICategory = "maintainability"
)

// Opportunity is the external adapter shape. It is strictly derived from a
// Suggestion; consumers never construct one independently.
type Opportunity struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Category         UICategory       `json:"category"`
	Severity         Severity         `json:"severity"`
	Impact           string           `json:"impact"`
	Effort           Effort           `json:"effort"`
	Files            []string         `json:"files"`
	LineNumbers      map[string][]int `json:"lineNumbers,omitempty"`
	SuggestedFix     string           `json:"suggestedFix"`
	AutoFixAvailable bool             `json:"autoFixAvailable"`
	EstimatedTime    string           `json:"estimatedTime"`
}

// ToOpportunity maps a suggestion into the consumer taxonomy. The mapping
// is total: unknown categories land in code-quality and unknown efforts get
// the one-hour fallback estimate.
func ToOpportunity(s Suggestion) Opportunity {
	return Opportunity{
		ID:               s.ID,
		Title:            s.Title,
		Description:      s.Description,
		Category:         uiCategory(s.Category),
		Severity:         s.Severity,
		Impact:           impactLabel(s.Impact, s.CleanArchitecturePrinciple),
		Effort:           s.Effort,
		Files:            s.Files,
		LineNumbers:      s.LineNumbers,
		SuggestedFix:     s.SuggestedFix,
		AutoFixAvailable: s.AutoFixAvailable,
		EstimatedTime:    EstimatedTime(s.Effort),
	}
}

// ToOpportunities converts a ranked suggestion list one-to-one.
func ToOpportunities(suggestions []Suggestion) []Opportunity {
	out := make([]Opportunity, len(suggestions))
	for i, s := range suggestions {
		out[i] = ToOpportunity(s)
	}
	return out
}

func uiCategory(c Category) UICategory {
	switch c {
	case CategoryAntiPattern:
		return UICategoryCodeQuality
	case CategoryDuplication:
		return UICategoryDuplication
	case CategoryCoupling:
		return UICategoryArchitecture
	case CategoryComplexity:
		return UICategoryMaintainability
	case CategoryCleanCode:
		return UICategoryCodeQuality
	default:
		return UICategoryCodeQuality
	}
}

func impactLabel(impact Impact, principle string) string {
	if principle == "" {
		return fmt.Sprintf("%s impact", impact)
	}
	return fmt.Sprintf("%s impact (%s)", impact, principle)
}

// EstimatedTime converts an effort level into a human time estimate.
func EstimatedTime(e Effort) string {
	switch e {
	case EffortLow:
		return "15-30 min"
	case EffortMedium:
		return "1-2 hours"
	case EffortHigh:
		return "2-4 hours"
	default:
		return "1 hour"
	}
}
