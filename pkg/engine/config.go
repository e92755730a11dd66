package engine

import "github.com/xkazm04/refract/pkg/models"

// Config controls one engine run. It is consumed once per scan and never
// mutated mid-scan; callers supply a partial config by starting from
// DefaultConfig and overriding fields.
type Config struct {
	EnableAntiPatternDetection bool            `json:"enableAntiPatternDetection"`
	EnableDuplicationDetection bool            `json:"enableDuplicationDetection"`
	EnableCouplingAnalysis     bool            `json:"enableCouplingAnalysis"`
	EnableComplexityAnalysis   bool            `json:"enableComplexityAnalysis"`
	EnableCleanCodeChecks      bool            `json:"enableCleanCodeChecks"`
	SeverityThreshold          models.Severity `json:"severityThreshold"`
	MaxSuggestions             int             `json:"maxSuggestions"`
}

// DefaultConfig returns the documented defaults: every category enabled,
// threshold low, at most 50 suggestions.
func DefaultConfig() Config {
	return Config{
		EnableAntiPatternDetection: true,
		EnableDuplicationDetection: true,
		EnableCouplingAnalysis:     true,
		EnableComplexityAnalysis:   true,
		EnableCleanCodeChecks:      true,
		SeverityThreshold:          models.SeverityLow,
		MaxSuggestions:             50,
	}
}

// normalize repairs malformed values instead of rejecting them: an unknown
// threshold falls back to low and a non-positive cap falls back to 50.
func (c Config) normalize() Config {
	if !c.SeverityThreshold.Valid() {
		c.SeverityThreshold = models.SeverityLow
	}
	if c.MaxSuggestions <= 0 {
		c.MaxSuggestions = 50
	}
	return c
}
