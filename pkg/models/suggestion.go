package models

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Category classifies the kind of problem a suggestion addresses.
type Category string

const (
	CategoryAntiPattern Category = "anti-pattern"
	CategoryDuplication Category = "duplication"
	CategoryCoupling    Category = "coupling"
	CategoryComplexity  Category = "complexity"
	CategoryCleanCode   Category = "clean-code"
)

// RefactorType identifies the concrete remediation a suggestion proposes.
// The set is closed; the requirement package maps every type to a template
// through an exhaustive switch.
type RefactorType string

const (
	RefactorGodFunction          RefactorType = "god-function"
	RefactorConsoleCleanup       RefactorType = "console-cleanup"
	RefactorImproveTypeSafety    RefactorType = "improve-type-safety"
	RefactorExtractDuplicates    RefactorType = "extract-duplicates"
	RefactorExtractSharedUtility RefactorType = "extract-shared-utility"
	RefactorReduceCoupling       RefactorType = "reduce-coupling"
	RefactorRemoveUnusedImports  RefactorType = "remove-unused-imports"
	RefactorSimplifyConditionals RefactorType = "simplify-conditionals"
	RefactorReduceComplexity     RefactorType = "reduce-complexity"
	RefactorExtractConstants     RefactorType = "extract-constants"
	RefactorSplitLargeFile       RefactorType = "split-large-file"
)

// Suggestion is a single synthesized refactor recommendation.
// Field names follow the external JSON contract consumed by dashboards
// and downstream automation.
type Suggestion struct {
	ID                         string           `json:"id"`
	Type                       RefactorType     `json:"type"`
	Title                      string           `json:"title"`
	Description                string           `json:"description"`
	Category                   Category         `json:"category"`
	Severity                   Severity         `json:"severity"`
	Effort                     Effort           `json:"effort"`
	Impact                     Impact           `json:"impact"`
	Files                      []string         `json:"files"`
	LineNumbers                map[string][]int `json:"lineNumbers,omitempty"`
	SuggestedFix               string           `json:"suggestedFix"`
	RefactorSteps              []string         `json:"refactorSteps"`
	CleanArchitecturePrinciple string           `json:"cleanArchitecturePrinciple,omitempty"`
	AutoFixAvailable           bool             `json:"autoFixAvailable"`
	RequirementTemplate        string           `json:"requirementTemplate"`
}

// SuggestionID derives the deterministic identity of a suggestion from its
// refactor type and file key. Re-scanning identical input always produces
// the same id.
func SuggestionID(kind RefactorType, fileKey string) string {
	sum := xxhash.Sum64String(string(kind) + "::" + fileKey)
	return fmt.Sprintf("%s-%016x", kind, sum)
}

// PairKey builds an order-independent key for a file pair by sorting the
// two paths before joining them.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "::" + b
}

// SplitPairKey returns the two paths encoded in a pair key, in sorted order.
func SplitPairKey(key string) (string, string) {
	parts := strings.SplitN(key, "::", 2)
	if len(parts) != 2 {
		return key, ""
	}
	return parts[0], parts[1]
}
