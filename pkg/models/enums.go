package models

// Severity classifies how urgent a suggestion is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank returns the ordinal position of the severity (low=1 ... critical=4).
// Unknown values rank as medium; ranking never fails on malformed input.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 2
	}
}

// Valid reports whether the severity is one of the known levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// ParseSeverity converts a string into a Severity, falling back to low
// (the documented default threshold) for unknown values.
func ParseSeverity(s string) Severity {
	sev := Severity(s)
	if sev.Valid() {
		return sev
	}
	return SeverityLow
}

// Effort estimates how much work a refactor requires.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// Rank returns the ordinal position on the shared four-level scale.
// Unknown values rank as medium.
func (e Effort) Rank() int {
	switch e {
	case EffortLow:
		return 1
	case EffortMedium:
		return 2
	case EffortHigh:
		return 3
	default:
		return 2
	}
}

// Impact estimates how much a refactor improves the codebase.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Rank returns the ordinal position on the shared four-level scale.
// Unknown values rank as medium.
func (i Impact) Rank() int {
	switch i {
	case ImpactLow:
		return 1
	case ImpactMedium:
		return 2
	case ImpactHigh:
		return 3
	default:
		return 2
	}
}
