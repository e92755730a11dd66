// Package duplication detects repeated code, both within a single file and
// across file pairs.
package duplication

import (
	"context"
	"fmt"
	"sort"

	"github.com/xkazm04/refract/pkg/analyzer"
	"github.com/xkazm04/refract/pkg/detector"
	"github.com/xkazm04/refract/pkg/models"
	"github.com/xkazm04/refract/pkg/requirement"
)

// Detector supplies duplicate findings for the scanner.
type Detector interface {
	DuplicateBlocks(content string) []detector.Block
	CrossFileMatches(files []models.FileAnalysis) []detector.PairMatch
}

// Thresholds are the trigger cutoffs for duplication suggestions.
type Thresholds struct {
	// WithinTrigger emits a within-file suggestion at this many duplicate
	// blocks; WithinHigh escalates severity.
	WithinTrigger int
	WithinHigh    int
	// PairTrigger emits a cross-file suggestion once a file pair
	// accumulates this many matches; PairHigh escalates severity. A
	// single shared block is treated as coincidence, not duplication.
	PairTrigger int
	PairHigh    int
}

// DefaultThresholds returns the documented trigger cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WithinTrigger: 4,
		WithinHigh:    8,
		PairTrigger:   2,
		PairHigh:      5,
	}
}

// Scanner emits duplication suggestions for a corpus.
type Scanner struct {
	det        Detector
	thresholds Thresholds
}

var _ analyzer.CategoryScanner = (*Scanner)(nil)

// Option is a functional option for configuring Scanner.
type Option func(*Scanner)

// WithDetector substitutes the default fingerprint detector.
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

// New creates a duplication scanner with default detectors and cutoffs.
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
	return models.CategoryDuplication
}

// Scan runs the within-file detector per file and the pairwise detector
// once over the whole corpus.
func (s *Scanner) Scan(ctx context.Context, files []models.FileAnalysis) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion

	for _, f := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if sug, ok := s.withinFile(f); ok {
			suggestions = append(suggestions, sug)
		}
	}

	suggestions = append(suggestions, s.crossFile(files)...)
	return suggestions, nil
}

func (s *Scanner) withinFile(f models.FileAnalysis) (models.Suggestion, bool) {
	blocks := s.det.DuplicateBlocks(f.Content)
	if len(blocks) < s.thresholds.WithinTrigger {
		return models.Suggestion{}, false
	}

	severity := models.SeverityMedium
	if len(blocks) >= s.thresholds.WithinHigh {
		severity = models.SeverityHigh
	}

	lines := make([]int, len(blocks))
	for i, b := range blocks {
		lines[i] = b.Line
	}
	sort.Ints(lines)

	return models.Suggestion{
		ID:    models.SuggestionID(models.RefactorExtractDuplicates, f.Path),
		Type:  models.RefactorExtractDuplicates,
		Title: "Deduplicate repeated blocks",
		Description: fmt.Sprintf("%s repeats the same code block %d times.",
			f.Path, len(blocks)),
		Category:     models.CategoryDuplication,
		Severity:     severity,
		Effort:       models.EffortMedium,
		Impact:       models.ImpactHigh,
		Files:        []string{f.Path},
		LineNumbers:  map[string][]int{f.Path: lines},
		SuggestedFix: "Extract the repeated logic into one function and call it from each site.",
		RefactorSteps: []string{
			"Extract the repeated block into a shared function.",
			"Parameterize the differences between occurrences.",
			"Replace each duplicate with a call.",
		},
		CleanArchitecturePrinciple: "Don't Repeat Yourself",
		RequirementTemplate:        requirement.Generate(models.RefactorExtractDuplicates, f.Path, lines),
	}, true
}

// crossFile groups pairwise matches by their order-independent pair key so
// repeated matches between the same two files collapse into at most one
// suggestion.
func (s *Scanner) crossFile(files []models.FileAnalysis) []models.Suggestion {
	matches := s.det.CrossFileMatches(files)
	if len(matches) == 0 {
		return nil
	}

	pairs := make(map[string][]detector.PairMatch)
	var order []string
	for _, m := range matches {
		key := models.PairKey(m.FileA, m.FileB)
		if len(pairs[key]) == 0 {
			order = append(order, key)
		}
		pairs[key] = append(pairs[key], m)
	}
	sort.Strings(order)

	var suggestions []models.Suggestion
	for _, key := range order {
		group := pairs[key]
		if len(group) < s.thresholds.PairTrigger {
			continue
		}

		severity := models.SeverityMedium
		if len(group) >= s.thresholds.PairHigh {
			severity = models.SeverityHigh
		}

		fileA, fileB := models.SplitPairKey(key)
		lineNumbers := map[string][]int{}
		for _, m := range group {
			lineNumbers[m.FileA] = append(lineNumbers[m.FileA], m.LineA)
			lineNumbers[m.FileB] = append(lineNumbers[m.FileB], m.LineB)
		}
		for path := range lineNumbers {
			sort.Ints(lineNumbers[path])
		}

		suggestions = append(suggestions, models.Suggestion{
			ID:    models.SuggestionID(models.RefactorExtractSharedUtility, key),
			Type:  models.RefactorExtractSharedUtility,
			Title: "Extract shared utility from duplicated files",
			Description: fmt.Sprintf("%s and %s share %d duplicated code blocks.",
				fileA, fileB, len(group)),
			Category:     models.CategoryDuplication,
			Severity:     severity,
			Effort:       models.EffortMedium,
			Impact:       models.ImpactHigh,
			Files:        []string{fileA, fileB},
			LineNumbers:  lineNumbers,
			SuggestedFix: "Move the shared logic into a utility module imported by both files.",
			RefactorSteps: []string{
				"Create a shared utility module.",
				"Move the duplicated logic there, parameterizing differences.",
				"Import the utility from both files and delete the copies.",
			},
			CleanArchitecturePrinciple: "Don't Repeat Yourself",
			RequirementTemplate:        requirement.GeneratePair(models.RefactorExtractSharedUtility, fileA, fileB, lineNumbers),
		})
	}
	return suggestions
}

// sourceDetector is the default Detector backed by the blake3 fingerprint
// detectors in pkg/detector.
type sourceDetector struct{}

func (sourceDetector) DuplicateBlocks(content string) []detector.Block {
	return detector.DuplicateBlocks(content)
}

func (sourceDetector) CrossFileMatches(files []models.FileAnalysis) []detector.PairMatch {
	return detector.CrossFileMatches(files)
}
