// Package cleancode checks clean-code hygiene: magic numbers and oversized
// files.
package cleancode

import (
	"context"
	"fmt"

	"github.com/xkazm04/refract/pkg/analyzer"
	"github.com/xkazm04/refract/pkg/detector"
	"github.com/xkazm04/refract/pkg/models"
	"github.com/xkazm04/refract/pkg/requirement"
)

// Detector supplies the magic-number findings for the scanner.
type Detector interface {
	MagicNumbers(content string) []detector.MagicNumber
}

// Thresholds are the trigger cutoffs for clean-code suggestions.
type Thresholds struct {
	// MagicTrigger emits a constants suggestion at this many significant
	// (non-low) magic numbers.
	MagicTrigger int
	// FileLines emits an oversized-file suggestion above this many
	// lines; FileLinesHigh escalates severity.
	FileLines     int
	FileLinesHigh int
}

// DefaultThresholds returns the documented trigger cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MagicTrigger:  3,
		FileLines:     500,
		FileLinesHigh: 1000,
	}
}

// Scanner emits clean-code suggestions for a corpus.
type Scanner struct {
	det        Detector
	thresholds Thresholds
}

var _ analyzer.CategoryScanner = (*Scanner)(nil)

// Option is a functional option for configuring Scanner.
type Option func(*Scanner)

// WithDetector substitutes the default magic-number detector.
func WithDetector(d Detector) Option {
	return func(s *Scanner) {
		s.det = d
	}
}

// WithThresholds sets custom trigger cutoffs.
func WithThresholds(t Thresholds) Option {
	return func(s *Scanner) {
		s.thresholds = t
	}
}

// New creates a clean-code scanner with default detectors and cutoffs.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		det:        sourceDetector{},
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Category implements analyzer.CategoryScanner.
func (s *Scanner) Category() models.Category {
	return models.CategoryCleanCode
}

// Scan evaluates every file independently.
func (s *Scanner) Scan(ctx context.Context, files []models.FileAnalysis) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	for _, f := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if sug, ok := s.magicNumbers(f); ok {
			suggestions = append(suggestions, sug)
		}
		if sug, ok := s.oversizedFile(f); ok {
			suggestions = append(suggestions, sug)
		}
	}
	return suggestions, nil
}

func (s *Scanner) magicNumbers(f models.FileAnalysis) (models.Suggestion, bool) {
	var significant []detector.MagicNumber
	anyHigh := false
	for _, m := range s.det.MagicNumbers(f.Content) {
		if m.Severity == models.SeverityLow {
			continue
		}
		if m.Severity == models.SeverityHigh {
			anyHigh = true
		}
		significant = append(significant, m)
	}
	if len(significant) < s.thresholds.MagicTrigger {
		return models.Suggestion{}, false
	}

	severity := models.SeverityLow
	if anyHigh {
		severity = models.SeverityMedium
	}

	lines := make([]int, len(significant))
	for i, m := range significant {
		lines[i] = m.Line
	}

	return models.Suggestion{
		ID:    models.SuggestionID(models.RefactorExtractConstants, f.Path),
		Type:  models.RefactorExtractConstants,
		Title: "Name the magic numbers",
		Description: fmt.Sprintf("%s contains %d unexplained numeric literals.",
			f.Path, len(significant)),
		Category:     models.CategoryCleanCode,
		Severity:     severity,
		Effort:       models.EffortLow,
		Impact:       models.ImpactMedium,
		Files:        []string{f.Path},
		LineNumbers:  map[string][]int{f.Path: lines},
		SuggestedFix: "Introduce named constants stating what each literal means.",
		RefactorSteps: []string{
			"Name a constant for each flagged literal.",
			"Replace every occurrence with the constant.",
		},
		CleanArchitecturePrinciple: "Meaningful names",
		RequirementTemplate:        requirement.Generate(models.RefactorExtractConstants, f.Path, lines),
	}, true
}

func (s *Scanner) oversizedFile(f models.FileAnalysis) (models.Suggestion, bool) {
	if f.Lines <= s.thresholds.FileLines {
		return models.Suggestion{}, false
	}

	severity := models.SeverityMedium
	if f.Lines >= s.thresholds.FileLinesHigh {
		severity = models.SeverityHigh
	}

	return models.Suggestion{
		ID:    models.SuggestionID(models.RefactorSplitLargeFile, f.Path),
		Type:  models.RefactorSplitLargeFile,
		Title: "Split oversized file",
		Description: fmt.Sprintf("%s is %d lines long; files this size mix multiple concerns.",
			f.Path, f.Lines),
		Category:     models.CategoryCleanCode,
		Severity:     severity,
		Effort:       models.EffortHigh,
		Impact:       models.ImpactHigh,
		Files:        []string{f.Path},
		SuggestedFix: "Separate the file's concerns into smaller cohesive modules.",
		RefactorSteps: []string{
			"Identify the distinct concerns the file mixes.",
			"Move each concern into its own module.",
			"Re-export from the original path if needed.",
		},
		CleanArchitecturePrinciple: "Single Responsibility Principle",
		RequirementTemplate:        requirement.Generate(models.RefactorSplitLargeFile, f.Path, nil),
	}, true
}

// sourceDetector is the default Detector backed by the line-based
// magic-number detector in pkg/detector.
type sourceDetector struct{}

func (sourceDetector) MagicNumbers(content string) []detector.MagicNumber {
	return detector.MagicNumbers(content)
}
