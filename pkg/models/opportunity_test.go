package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToOpportunityCategoryMapping(t *testing.T) {
	tests := []struct {
		category Category
		want     UICategory
	}{
		{CategoryAntiPattern, UICategoryCodeQuality},
		{CategoryDuplication, UICategoryDuplication},
		{CategoryCoupling, UICategoryArchitecture},
		{CategoryComplexity, UICategoryMaintainability},
		{CategoryCleanCode, UICategoryCodeQuality},
		{Category("mystery"), UICategoryCodeQuality},
	}

	for _, tt := range tests {
		o := ToOpportunity(Suggestion{Category: tt.category})
		assert.Equal(t, tt.want, o.Category, "category %s", tt.category)
	}
}

func TestToOpportunityImpactLabel(t *testing.T) {
	withPrinciple := ToOpportunity(Suggestion{
		Impact:                     ImpactHigh,
		CleanArchitecturePrinciple: "Single Responsibility Principle",
	})
	assert.Equal(t, "high impact (Single Responsibility Principle)", withPrinciple.Impact)

	withoutPrinciple := ToOpportunity(Suggestion{Impact: ImpactLow})
	assert.Equal(t, "low impact", withoutPrinciple.Impact)
}

func TestEstimatedTime(t *testing.T) {
	assert.Equal(t, "15-30 min", EstimatedTime(EffortLow))
	assert.Equal(t, "1-2 hours", EstimatedTime(EffortMedium))
	assert.Equal(t, "2-4 hours", EstimatedTime(EffortHigh))
	assert.Equal(t, "1 hour", EstimatedTime(Effort("unknown")))
}

func TestToOpportunityCarriesFields(t *testing.T) {
	s := Suggestion{
		ID:               "x-1",
		Title:            "title",
		Description:      "desc",
		Severity:         SeverityHigh,
		Effort:           EffortLow,
		Files:            []string{"a.ts"},
		LineNumbers:      map[string][]int{"a.ts": {3, 9}},
		SuggestedFix:     "do it",
		AutoFixAvailable: true,
	}

	o := ToOpportunity(s)
	assert.Equal(t, s.ID, o.ID)
	assert.Equal(t, s.Title, o.Title)
	assert.Equal(t, s.Severity, o.Severity)
	assert.Equal(t, s.Files, o.Files)
	assert.Equal(t, s.LineNumbers, o.LineNumbers)
	assert.True(t, o.AutoFixAvailable)
}

func TestToOpportunitiesLength(t *testing.T) {
	out := ToOpportunities([]Suggestion{{ID: "a"}, {ID: "b"}})
	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)

	assert.Empty(t, ToOpportunities(nil))
}
