package models

// Failure records a scanner that could not complete. A failing category is
// skipped for the run instead of aborting the scan; the trace survives in
// the metadata.
type Failure struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

// Metadata describes the scan that produced a result.
type Metadata struct {
	FilesAnalyzed  int       `json:"filesAnalyzed"`
	TotalLines     int       `json:"totalLines"`
	ScanDurationMS int64     `json:"scanDurationMs"`
	Failures       []Failure `json:"failures,omitempty"`
}

// Summary aggregates the final suggestion list.
type Summary struct {
	TotalIssues      int              `json:"totalIssues"`
	ByCategory       map[Category]int `json:"byCategory"`
	BySeverity       map[Severity]int `json:"bySeverity"`
	TopPriorityCount int              `json:"topPriorityCount"`
}

// NewSummary returns a zero summary with initialized maps, so that empty
// scans serialize as empty objects rather than null.
func NewSummary() Summary {
	return Summary{
		ByCategory: make(map[Category]int),
		BySeverity: make(map[Severity]int),
	}
}

// Result is the complete output of one engine run. It is a pure value with
// no identity beyond the scan invocation and is JSON-serializable with no
// cyclic references.
type Result struct {
	Suggestions []Suggestion `json:"suggestions"`
	Summary     Summary      `json:"summary"`
	Metadata    Metadata     `json:"analysisMetadata"`
}
